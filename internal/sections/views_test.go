package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/content"
)

func resolved[T any](v T) State[T] {
	return State[T]{Phase: Resolved, Data: v}
}

func TestHeroView_Document(t *testing.T) {
	m := HeroView(resolved(&content.Hero{
		Title:        "Platform Engineer",
		ContactEmail: "me@example.com",
		Description: []content.Block{{
			Type:     "block",
			Style:    "normal",
			Children: []content.Span{{Type: "span", Text: "I ship Go."}},
		}},
	}))

	assert.False(t, m.Fallback)
	assert.Equal(t, "Platform Engineer", m.Title)
	assert.Equal(t, "An Amazing", m.Subtitle, "missing subtitle uses the default")
	assert.Equal(t, "<p>I ship Go.</p>", string(m.Description))
	assert.Equal(t, "me@example.com", m.ContactEmail)
	assert.Empty(t, m.ResumeURL)
}

func TestHeroView_NoDescriptionOmitsIt(t *testing.T) {
	m := HeroView(resolved(&content.Hero{Title: "T", Subtitle: "S"}))
	assert.Equal(t, "S", m.Subtitle)
	assert.Empty(t, m.Description)
}

func TestExperienceView_Fallback(t *testing.T) {
	m := ExperienceView(resolved([]content.Experience{}))
	require.True(t, m.Fallback)
	require.Len(t, m.Entries, len(content.DefaultExperiences))
	assert.Equal(t, "Senior Frontend Engineer", m.Entries[0].Role)

	for i, e := range m.Entries {
		assert.Equal(t, i%4+1, e.Accent)
	}
}

func TestExperienceView_DoesNotReorderInput(t *testing.T) {
	in := []content.Experience{{Role: "b", Order: 2}, {Role: "a", Order: 1}}
	m := ExperienceView(resolved(in))
	assert.Equal(t, "a", m.Entries[0].Role)
	assert.Equal(t, "b", in[0].Role)
}

func TestProjectsView_Cards(t *testing.T) {
	m := ProjectsView(resolved([]content.Project{
		{Title: "Live", IsReleased: true, LiveURL: "https://live", GithubURL: "https://gh", Order: 1,
			Technologies: []content.Technology{{Name: "React.js"}, {Name: "Elm"}}},
		{Title: "Code", IsReleased: true, GithubURL: "https://gh", Order: 2},
		{Title: "Soon", IsReleased: false, LiveURL: "https://live", Order: 3},
		{Title: "Bare", IsReleased: true, Order: 4},
	}))
	require.Len(t, m.Projects, 4)

	live := m.Projects[0]
	assert.Equal(t, "https://live", live.LinkURL)
	assert.Equal(t, "Visit Project", live.LinkLabel)
	require.Len(t, live.Tech, 2)
	assert.Contains(t, live.Tech[0].IconURL, "/react/")
	assert.Empty(t, live.Tech[1].IconURL, "unknown technologies render without an icon")

	code := m.Projects[1]
	assert.Equal(t, "https://gh", code.LinkURL)
	assert.Equal(t, "View Code", code.LinkLabel)

	soon := m.Projects[2]
	assert.True(t, soon.ComingSoon)
	assert.Empty(t, soon.LinkURL)

	bare := m.Projects[3]
	assert.False(t, bare.ComingSoon)
	assert.Empty(t, bare.LinkURL)
	assert.Empty(t, bare.LinkLabel)
}

func TestAboutView_Styling(t *testing.T) {
	m := AboutView(resolved(&content.About{
		Title: "Me",
		Styling: &content.AboutStyling{
			BackgroundColor: "muted",
			TextAlign:       "left",
			MaxWidth:        "max-w-6xl",
		},
	}))
	assert.Equal(t, "bg-muted", m.BackgroundClass)
	assert.Equal(t, "text-left", m.AlignClass)
	assert.Equal(t, "max-w-6xl", m.MaxWidth)
	assert.Contains(t, string(m.Body), "full-stack developer", "no content keeps the default paragraph")

	m = AboutView(resolved(&content.About{
		Styling: &content.AboutStyling{
			BackgroundColor: "neon",
			TextAlign:       "justify",
			MaxWidth:        `max-w-4xl" onclick="x`,
		},
	}))
	assert.Equal(t, "About me", m.Title)
	assert.Equal(t, "", m.BackgroundClass)
	assert.Equal(t, "text-center", m.AlignClass)
	assert.Equal(t, "max-w-4xl", m.MaxWidth)
}

func TestAboutView_Skills(t *testing.T) {
	doc := &content.About{
		Title:      "Me",
		ShowSkills: true,
		Skills: []content.AboutSkill{
			{Name: "Go", Level: "expert", Color: "outline"},
			{Name: "Rust", Level: "beginner", Color: "rainbow"},
		},
	}
	m := AboutView(resolved(doc))
	require.True(t, m.ShowSkills)
	assert.Equal(t, "Skills & Expertise", m.SkillsTitle)
	assert.Equal(t, "outline", m.Skills[0].Variant)
	assert.Equal(t, "secondary", m.Skills[1].Variant)

	doc.ShowSkills = false
	assert.False(t, AboutView(resolved(doc)).ShowSkills)
}

func TestTechSkillsView(t *testing.T) {
	m := TechSkillsView(resolved(&content.TechSkills{
		Categories: []content.SkillCategory{
			{Name: "tools", Order: 2, Skills: []content.TechSkill{{Name: "Docker", Icon: "SiDocker"}}},
			{Name: "frontend", Order: 1, Skills: []content.TechSkill{
				{Name: "React", Icon: "SiReact", Color: "#000000"},
				{Name: "Elm", Icon: "SiElm"},
			}},
		},
	}))

	assert.Equal(t, "Tech Stack", m.Title)
	require.Len(t, m.Categories, 2)
	assert.Equal(t, "Frontend", m.Categories[0].Label)
	assert.Equal(t, "Tools & Platforms", m.Categories[1].Label)

	require.Len(t, m.Row, 3)
	assert.Equal(t, []string{"React", "Elm", "Docker"}, []string{m.Row[0].Name, m.Row[1].Name, m.Row[2].Name})
	assert.Equal(t, "https://cdn.simpleicons.org/react/000000", m.Row[0].IconURL)
	assert.Empty(t, m.Row[1].IconURL)
	assert.Equal(t, "EL", m.Row[1].Monogram)
	assert.Equal(t, "#2496ED", m.Row[2].Color)
}
