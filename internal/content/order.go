package content

import (
	"cmp"
	"slices"
)

// The CMS queries already order their results, but documents are re-sorted
// here so the rendered order never depends on the upstream query. All sorts
// are stable: equal keys keep the order the documents arrived in.

// SortExperiences orders entries by Order ascending.
func SortExperiences(entries []Experience) {
	slices.SortStableFunc(entries, func(a, b Experience) int {
		return cmp.Compare(a.Order, b.Order)
	})
}

// SortProjects puts featured projects first, then orders by Order ascending.
func SortProjects(projects []Project) {
	slices.SortStableFunc(projects, func(a, b Project) int {
		if a.Featured != b.Featured {
			if a.Featured {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Order, b.Order)
	})
}

// SortCategories orders skill categories by Order ascending.
func SortCategories(categories []SkillCategory) {
	slices.SortStableFunc(categories, func(a, b SkillCategory) int {
		return cmp.Compare(a.Order, b.Order)
	})
}
