package sections

import (
	"context"
	"html/template"
	"slices"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/icons"
	"github.com/Zachkp/portfolio/internal/richtext"
	"github.com/Zachkp/portfolio/internal/sanity"
)

type TechBadge struct {
	Name    string
	IconURL string
}

type ProjectCard struct {
	Title       string
	Year        string
	Role        string
	Description template.HTML
	Image       string
	Tech        []TechBadge
	Featured    bool
	ComingSoon  bool
	LinkURL     string
	LinkLabel   string
}

type ProjectsModel struct {
	Title    string
	Tagline  string
	Projects []ProjectCard
	Fallback bool
}

type Projects struct{}

func (Projects) Name() string { return "projects" }

func (p Projects) Load(ctx context.Context, l *Loader) View {
	state := LoadMany[content.Project](ctx, l, sanity.ProjectsQuery)
	return View{Section: p.Name(), Phase: state.Phase, Model: ProjectsView(state)}
}

// ProjectsView lists featured projects first, then by order. Without
// projects only the section heading renders.
func ProjectsView(state State[[]content.Project]) ProjectsModel {
	m := ProjectsModel{
		Title:   content.ProjectsTitle,
		Tagline: content.ProjectsTagline,
	}
	if state.Phase != Resolved || len(state.Data) == 0 {
		m.Fallback = true
		return m
	}

	projects := slices.Clone(state.Data)
	content.SortProjects(projects)

	m.Projects = make([]ProjectCard, len(projects))
	for i, p := range projects {
		m.Projects[i] = projectCard(p)
	}
	return m
}

func projectCard(p content.Project) ProjectCard {
	card := ProjectCard{
		Title:       p.Title,
		Year:        p.Year,
		Role:        p.Role,
		Description: richtext.Markdown(p.Description),
		Image:       p.Image,
		Featured:    p.Featured,
		ComingSoon:  !p.IsReleased,
	}

	for _, t := range p.Technologies {
		badge := TechBadge{Name: t.Name}
		if icon, ok := icons.Resolve(t.Icon, t.Name); ok {
			badge.IconURL = icon.URL("")
		}
		card.Tech = append(card.Tech, badge)
	}

	if card.ComingSoon {
		return card
	}
	switch {
	case p.LiveURL != "":
		card.LinkURL, card.LinkLabel = p.LiveURL, "Visit Project"
	case p.GithubURL != "":
		card.LinkURL, card.LinkLabel = p.GithubURL, "View Code"
	}
	return card
}
