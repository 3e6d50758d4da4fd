package sections

import (
	"context"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/icons"
	"github.com/Zachkp/portfolio/internal/sanity"
)

// categoryLabels holds the studio labels for the category values the CMS
// offers. Anything else is title-cased.
var categoryLabels = map[string]string{
	"frontend": "Frontend",
	"backend":  "Backend",
	"database": "Database",
	"tools":    "Tools & Platforms",
	"mobile":   "Mobile",
	"design":   "Design",
}

// CategoryLabel returns the display name of a skill category.
func CategoryLabel(name string) string {
	name = strings.TrimSpace(name)
	if label, ok := categoryLabels[strings.ToLower(name)]; ok {
		return label
	}
	// Casers keep state, so each call gets its own.
	return cases.Title(language.English).String(name)
}

type SkillItem struct {
	Name        string
	IconURL     string
	Monogram    string
	Color       string
	Proficiency string
}

type CategoryItem struct {
	Label  string
	Skills []SkillItem
}

type TechSkillsModel struct {
	Title      string
	Subtitle   string
	Categories []CategoryItem
	// Row is every skill in category order, shown as one scrolling strip.
	Row      []SkillItem
	Fallback bool
}

type TechSkills struct{}

func (TechSkills) Name() string { return "techSkills" }

func (ts TechSkills) Load(ctx context.Context, l *Loader) View {
	state := LoadOne[content.TechSkills](ctx, l, sanity.TechSkillsQuery)
	return View{Section: ts.Name(), Phase: state.Phase, Model: TechSkillsView(state)}
}

// TechSkillsView builds the tech stack strip. Without a document the strip
// is empty under the default heading.
func TechSkillsView(state State[*content.TechSkills]) TechSkillsModel {
	doc := state.Data
	if state.Phase != Resolved || doc == nil {
		return TechSkillsModel{
			Title:    content.DefaultTechSkillsTitle,
			Subtitle: content.DefaultTechSkillsSubtitle,
			Fallback: true,
		}
	}

	m := TechSkillsModel{
		Title:    orDefault(doc.Title, content.DefaultTechSkillsTitle),
		Subtitle: orDefault(doc.Subtitle, content.DefaultTechSkillsSubtitle),
	}

	cats := slices.Clone(doc.Categories)
	content.SortCategories(cats)
	for _, c := range cats {
		item := CategoryItem{Label: CategoryLabel(c.Name)}
		for _, s := range c.Skills {
			skill := skillItem(s)
			item.Skills = append(item.Skills, skill)
			m.Row = append(m.Row, skill)
		}
		m.Categories = append(m.Categories, item)
	}
	return m
}

func skillItem(s content.TechSkill) SkillItem {
	item := SkillItem{
		Name:        s.Name,
		Color:       s.Color,
		Proficiency: s.Proficiency,
	}
	icon, ok := icons.Resolve(s.Icon, s.Name)
	if !ok {
		item.Monogram = icons.Monogram(s.Name)
		return item
	}
	item.IconURL = icon.URL(s.Color)
	if item.Color == "" {
		item.Color = icon.Color
	}
	return item
}
