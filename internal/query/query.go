// Package query derives the display projection of the catalog: search, then
// category filter, then a stable sort. Run is pure; the same catalog and
// state always produce the same ordered result.
package query

import (
	"sort"
	"strings"

	"github.com/ticuv/showcase/internal/catalog"
)

// FilterAll disables category filtering.
const FilterAll = "all"

// Sort modes.
const (
	SortFeatured = "featured" // featured first, then year descending
	SortLatest   = "latest"   // year descending
	SortOldest   = "oldest"   // year ascending
)

// State is the full set of user-controlled query inputs. The zero value is
// not valid; use DefaultState.
type State struct {
	Filter string
	Sort   string
	Search string
}

// DefaultState is the state applied on page load and on "reset filters".
func DefaultState() State {
	return State{Filter: FilterAll, Sort: SortFeatured}
}

// IsDefault reports whether the state matches the reset defaults.
func (s State) IsDefault() bool {
	return s == DefaultState()
}

// Active reports whether any narrowing input is in effect. It drives the
// results-count affordance, which stays hidden for the unfiltered view.
func (s State) Active() bool {
	return s.Filter != FilterAll || strings.TrimSpace(s.Search) != ""
}

// Run projects the catalog through the state. Sorting is stable: records with
// equal keys keep their catalog order, which pagination depends on.
func Run(c *catalog.Catalog, state State) []catalog.Project {
	result := make([]catalog.Project, 0, c.Len())

	needle := strings.ToLower(strings.TrimSpace(state.Search))
	for _, p := range c.Projects() {
		if needle != "" && !matches(p, needle) {
			continue
		}
		if state.Filter != FilterAll && state.Filter != "" && p.Category != state.Filter {
			continue
		}
		result = append(result, p)
	}

	switch state.Sort {
	case SortFeatured:
		sort.SliceStable(result, func(i, j int) bool {
			if result[i].Featured != result[j].Featured {
				return result[i].Featured
			}
			return result[i].Year > result[j].Year
		})
	case SortLatest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Year > result[j].Year
		})
	case SortOldest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Year < result[j].Year
		})
	}

	return result
}

// matches tests a case-insensitive substring against title, tags,
// description, tools, and category.
func matches(p catalog.Project, needle string) bool {
	if strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	for _, tool := range p.Tools {
		if strings.Contains(strings.ToLower(tool), needle) {
			return true
		}
	}
	return false
}

// Counts returns the number of projects per category plus the "all" total,
// for the filter-count badges. Counts ignore search and sort.
func Counts(c *catalog.Catalog) map[string]int {
	counts := map[string]int{FilterAll: c.Len()}
	for _, p := range c.Projects() {
		counts[p.Category]++
	}
	return counts
}
