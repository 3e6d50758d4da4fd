package content

// Built-in copy shown when the CMS has nothing for a section or cannot be
// reached.
var (
	DefaultHeroSubtitle = "An Amazing"
	DefaultHeroTitle    = "Full-Stack Developer"
	DefaultHeroGreeting = `Hi 👋. I'm a full-stack developer passionate about creating
	beautiful, performant web applications.`

	DefaultAboutTitle = "About me"
	// DefaultAboutBody is trusted markup rendered as-is.
	DefaultAboutBody = `I'm a <span class="text-gradient">full-stack developer</span> with a strong
	focus on developing <span class="text-gradient">bug-free</span>, smooth user experiences.`
	DefaultSkillsTitle = "Skills & Expertise"

	DefaultTechSkillsTitle    = "Tech Stack"
	DefaultTechSkillsSubtitle = "Technologies I work with"

	ProjectsTitle   = "Selected Work"
	ProjectsTagline = `A collection of projects that showcase my passion for creating
	meaningful digital experiences`

	ContactTitle = "Let's Connect"
	ContactBody  = `I'm always open to new opportunities and interesting projects.
	Feel free to reach out!`

	DefaultExperiences = []Experience{
		{Role: "Senior Frontend Engineer", Company: "Tech Innovations Inc", Order: 0},
		{Role: "Full-Stack Developer", Company: "Digital Solutions Co", Order: 1},
		{Role: "Software Engineer", Company: "Creative Labs", Order: 2},
		{Role: "Junior Developer", Company: "StartUp Studio", Order: 3},
	}
)
