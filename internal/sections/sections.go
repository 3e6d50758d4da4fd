// Package sections implements the content-bound parts of the page. Each
// section fetches its documents once, shows a skeleton while that is
// pending and falls back to built-in copy when the CMS has nothing or cannot
// be reached. The two cases look the same to the visitor.
package sections

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// View is what the templates render for one section.
type View struct {
	Section string
	Phase   Phase
	Model   any
}

// Pending reports whether the view should render as a skeleton.
func (v View) Pending() bool { return v.Phase == Pending }

// Section is one content-bound part of the page.
type Section interface {
	Name() string
	Load(ctx context.Context, l *Loader) View
}

// Page lists the sections of the home page in display order. The tech stack
// renders inside About, which fetches both documents.
var Page = []Section{
	Hero{},
	Experience{},
	About{},
	Projects{},
}

var registry = map[string]Section{}

func init() {
	for _, s := range []Section{Hero{}, Experience{}, About{}, Projects{}, TechSkills{}} {
		registry[s.Name()] = s
	}
}

// Lookup returns the section with the given name.
func Lookup(name string) (Section, bool) {
	s, ok := registry[name]
	return s, ok
}

// Skeletons returns the pending view of every page section.
func Skeletons() []View {
	views := make([]View, len(Page))
	for i, s := range Page {
		views[i] = View{Section: s.Name(), Phase: Pending}
	}
	return views
}

// LoadPage loads every page section concurrently. Sections are independent:
// one failing does not cancel or affect the others.
func LoadPage(ctx context.Context, l *Loader) []View {
	return loadAll(ctx, l, Page)
}

func loadAll(ctx context.Context, l *Loader, secs []Section) []View {
	views := make([]View, len(secs))
	var g errgroup.Group
	for i, s := range secs {
		i, s := i, s
		g.Go(func() error {
			views[i] = s.Load(ctx, l)
			return nil
		})
	}
	_ = g.Wait()
	return views
}
