package sections

import (
	"context"
	"html/template"
	"strings"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/richtext"
	"github.com/Zachkp/portfolio/internal/sanity"
)

type HeroModel struct {
	Subtitle     string
	Title        string
	Description  template.HTML
	ProfileImage string
	ResumeURL    string
	ContactEmail string
	Fallback     bool
}

type Hero struct{}

func (Hero) Name() string { return "hero" }

func (h Hero) Load(ctx context.Context, l *Loader) View {
	state := LoadOne[content.Hero](ctx, l, sanity.HeroQuery)
	return View{Section: h.Name(), Phase: state.Phase, Model: HeroView(state)}
}

// HeroView maps the hero document onto the hero markup. Subtitle and title
// always have a value; the remaining fields only render when set.
func HeroView(state State[*content.Hero]) HeroModel {
	doc := state.Data
	if state.Phase != Resolved || doc == nil {
		return HeroModel{
			Subtitle:    content.DefaultHeroSubtitle,
			Title:       content.DefaultHeroTitle,
			Description: paragraph(content.DefaultHeroGreeting),
			Fallback:    true,
		}
	}

	m := HeroModel{
		Subtitle:     orDefault(doc.Subtitle, content.DefaultHeroSubtitle),
		Title:        orDefault(doc.Title, content.DefaultHeroTitle),
		ProfileImage: doc.ProfileImage,
		ResumeURL:    doc.ResumeURL,
		ContactEmail: doc.ContactEmail,
	}
	if len(doc.Description) > 0 {
		m.Description = richtext.PortableText(doc.Description)
	}
	return m
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func paragraph(text string) template.HTML {
	return template.HTML("<p>" + template.HTMLEscapeString(strings.Join(strings.Fields(text), " ")) + "</p>")
}
