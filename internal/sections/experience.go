package sections

import (
	"context"
	"html/template"
	"slices"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/richtext"
	"github.com/Zachkp/portfolio/internal/sanity"
)

// cardAccents cycles through the gradient card styles.
const cardAccents = 4

type ExperienceItem struct {
	Role        string
	Company     string
	Period      string
	Description template.HTML
	Accent      int
}

type ExperienceModel struct {
	Entries  []ExperienceItem
	Fallback bool
}

type Experience struct{}

func (Experience) Name() string { return "experience" }

func (e Experience) Load(ctx context.Context, l *Loader) View {
	state := LoadMany[content.Experience](ctx, l, sanity.ExperiencesQuery)
	return View{Section: e.Name(), Phase: state.Phase, Model: ExperienceView(state)}
}

// ExperienceView lists the entries ordered by their order field.
func ExperienceView(state State[[]content.Experience]) ExperienceModel {
	entries := state.Data
	fallback := state.Phase != Resolved || len(entries) == 0
	if fallback {
		entries = content.DefaultExperiences
	}

	entries = slices.Clone(entries)
	content.SortExperiences(entries)

	m := ExperienceModel{Entries: make([]ExperienceItem, len(entries)), Fallback: fallback}
	for i, e := range entries {
		m.Entries[i] = ExperienceItem{
			Role:        e.Role,
			Company:     e.Company,
			Period:      e.Period,
			Description: richtext.Markdown(e.Description),
			Accent:      i%cardAccents + 1,
		}
	}
	return m
}
