package sanity

import "sort"

// Kind tells whether a query yields one document or a list of them.
type Kind int

const (
	Singleton Kind = iota
	List
)

func (k Kind) String() string {
	if k == List {
		return "list"
	}
	return "singleton"
}

// Query is a named GROQ query.
type Query struct {
	Name string
	GROQ string
	Kind Kind
}

var (
	HeroQuery = Query{
		Name: "hero",
		Kind: Singleton,
		GROQ: `*[_type == "hero"][0] {
  _id,
  title,
  subtitle,
  description,
  "profileImage": profileImage.asset->url,
  resumeUrl,
  contactEmail
}`,
	}

	ExperiencesQuery = Query{
		Name: "experiences",
		Kind: List,
		GROQ: `*[_type == "experience"] | order(order asc) {
  _id,
  role,
  company,
  period,
  description,
  order
}`,
	}

	ProjectsQuery = Query{
		Name: "projects",
		Kind: List,
		GROQ: `*[_type == "project"] | order(featured desc, order asc) {
  _id,
  title,
  year,
  role,
  description,
  "image": image.asset->url,
  technologies,
  githubUrl,
  liveUrl,
  featured,
  isReleased,
  order
}`,
	}

	AboutQuery = Query{
		Name: "about",
		Kind: Singleton,
		GROQ: `*[_type == "about"][0]`,
	}

	TechSkillsQuery = Query{
		Name: "techSkills",
		Kind: Singleton,
		GROQ: `*[_type == "techSkill"][0] {
  _id,
  title,
  subtitle,
  categories[] | order(order asc) {
    name,
    order,
    skills[] {
      name,
      icon,
      color,
      proficiency
    }
  }
}`,
	}
)

// Queries holds every named query the site issues.
var Queries = map[string]Query{
	HeroQuery.Name:        HeroQuery,
	ExperiencesQuery.Name: ExperiencesQuery,
	ProjectsQuery.Name:    ProjectsQuery,
	AboutQuery.Name:       AboutQuery,
	TechSkillsQuery.Name:  TechSkillsQuery,
}

// Lookup returns the named query.
func Lookup(name string) (Query, bool) {
	q, ok := Queries[name]
	return q, ok
}

// Names returns the query names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Queries))
	for name := range Queries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
