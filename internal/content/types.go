// Package content holds the documents the site reads from the CMS.
package content

// Span is a run of text inside a Portable Text block.
type Span struct {
	Type  string   `json:"_type"`
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

// MarkDef is an annotation referenced from a span's marks by key.
type MarkDef struct {
	Key  string `json:"_key"`
	Type string `json:"_type"`
	Href string `json:"href,omitempty"`
}

// Block is one Portable Text block.
type Block struct {
	Type     string    `json:"_type"`
	Key      string    `json:"_key,omitempty"`
	Style    string    `json:"style,omitempty"`
	ListItem string    `json:"listItem,omitempty"`
	Level    int       `json:"level,omitempty"`
	Children []Span    `json:"children,omitempty"`
	MarkDefs []MarkDef `json:"markDefs,omitempty"`
}

type Hero struct {
	ID           string  `json:"_id"`
	Title        string  `json:"title"`
	Subtitle     string  `json:"subtitle,omitempty"`
	Description  []Block `json:"description,omitempty"`
	ProfileImage string  `json:"profileImage,omitempty"`
	ResumeURL    string  `json:"resumeUrl,omitempty"`
	ContactEmail string  `json:"contactEmail,omitempty"`
}

type Experience struct {
	ID          string `json:"_id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Period      string `json:"period,omitempty"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order"`
}

type AboutSkill struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
	Color string `json:"color,omitempty"`
}

type AboutStyling struct {
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextAlign       string `json:"textAlign,omitempty"`
	MaxWidth        string `json:"maxWidth,omitempty"`
}

type About struct {
	ID          string        `json:"_id"`
	Title       string        `json:"title"`
	Subtitle    string        `json:"subtitle,omitempty"`
	Content     []Block       `json:"content,omitempty"`
	ShowSkills  bool          `json:"showSkills,omitempty"`
	SkillsTitle string        `json:"skillsTitle,omitempty"`
	Skills      []AboutSkill  `json:"skills,omitempty"`
	Styling     *AboutStyling `json:"styling,omitempty"`
}

type Technology struct {
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

type Project struct {
	ID           string       `json:"_id"`
	Title        string       `json:"title"`
	Year         string       `json:"year,omitempty"`
	Role         string       `json:"role,omitempty"`
	Description  string       `json:"description,omitempty"`
	Image        string       `json:"image,omitempty"`
	Technologies []Technology `json:"technologies,omitempty"`
	GithubURL    string       `json:"githubUrl,omitempty"`
	LiveURL      string       `json:"liveUrl,omitempty"`
	Featured     bool         `json:"featured"`
	IsReleased   bool         `json:"isReleased"`
	Order        int          `json:"order"`
}

type TechSkill struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Color       string `json:"color,omitempty"`
	Proficiency string `json:"proficiency,omitempty"`
}

type SkillCategory struct {
	Name   string      `json:"name"`
	Order  int         `json:"order"`
	Skills []TechSkill `json:"skills,omitempty"`
}

type TechSkills struct {
	ID         string          `json:"_id"`
	Title      string          `json:"title,omitempty"`
	Subtitle   string          `json:"subtitle,omitempty"`
	Categories []SkillCategory `json:"categories,omitempty"`
}
