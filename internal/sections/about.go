package sections

import (
	"context"
	"html/template"
	"regexp"

	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/richtext"
	"github.com/Zachkp/portfolio/internal/sanity"
)

var (
	backgroundClasses = map[string]string{
		"default": "",
		"muted":   "bg-muted",
		"card":    "bg-card bordered",
	}
	alignClasses = map[string]string{
		"left":   "text-left",
		"center": "text-center",
		"right":  "text-right",
	}
	maxWidthPattern = regexp.MustCompile(`^max-w-[a-z0-9]+$`)
)

const defaultMaxWidth = "max-w-4xl"

type AboutSkillItem struct {
	Name    string
	Level   string
	Variant string
}

type AboutModel struct {
	Title           string
	Subtitle        string
	Body            template.HTML
	ShowSkills      bool
	SkillsTitle     string
	Skills          []AboutSkillItem
	BackgroundClass string
	AlignClass      string
	MaxWidth        string
	Tech            TechSkillsModel
	Fallback        bool
}

// About shows the about document together with the tech stack strip. The two
// documents are fetched in parallel and resolve independently.
type About struct{}

func (About) Name() string { return "about" }

func (a About) Load(ctx context.Context, l *Loader) View {
	var (
		about State[*content.About]
		tech  State[*content.TechSkills]
		g     errgroup.Group
	)
	g.Go(func() error {
		about = LoadOne[content.About](ctx, l, sanity.AboutQuery)
		return nil
	})
	g.Go(func() error {
		tech = LoadOne[content.TechSkills](ctx, l, sanity.TechSkillsQuery)
		return nil
	})
	_ = g.Wait()

	m := AboutView(about)
	m.Tech = TechSkillsView(tech)
	return View{Section: a.Name(), Phase: about.Phase, Model: m}
}

// AboutView maps the about document. Styling options the site does not know
// fall back to the defaults.
func AboutView(state State[*content.About]) AboutModel {
	m := AboutModel{
		Title:       content.DefaultAboutTitle,
		SkillsTitle: content.DefaultSkillsTitle,
		AlignClass:  alignClasses["center"],
		MaxWidth:    defaultMaxWidth,
	}

	doc := state.Data
	if state.Phase != Resolved || doc == nil {
		m.Body = template.HTML("<p>" + content.DefaultAboutBody + "</p>")
		m.Fallback = true
		return m
	}

	m.Title = orDefault(doc.Title, content.DefaultAboutTitle)
	m.Subtitle = doc.Subtitle
	if len(doc.Content) > 0 {
		m.Body = richtext.PortableText(doc.Content)
	} else {
		m.Body = template.HTML("<p>" + content.DefaultAboutBody + "</p>")
	}

	if doc.ShowSkills && len(doc.Skills) > 0 {
		m.ShowSkills = true
		m.SkillsTitle = orDefault(doc.SkillsTitle, content.DefaultSkillsTitle)
		for _, s := range doc.Skills {
			m.Skills = append(m.Skills, AboutSkillItem{
				Name:    s.Name,
				Level:   s.Level,
				Variant: badgeVariant(s.Color),
			})
		}
	}

	if st := doc.Styling; st != nil {
		if class, ok := backgroundClasses[st.BackgroundColor]; ok {
			m.BackgroundClass = class
		}
		if class, ok := alignClasses[st.TextAlign]; ok {
			m.AlignClass = class
		}
		if maxWidthPattern.MatchString(st.MaxWidth) {
			m.MaxWidth = st.MaxWidth
		}
	}
	return m
}

func badgeVariant(color string) string {
	switch color {
	case "default", "secondary", "destructive", "outline":
		return color
	default:
		return "secondary"
	}
}
