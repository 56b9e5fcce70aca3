package catalog

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

// Year bounds considered plausible for a portfolio entry.
const (
	MinYear = 2000
	MaxYear = 2100
)

var idPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Validate checks every record against the catalog invariants: identifier
// format and uniqueness, category membership, year range, non-empty tags, and
// URL well-formedness. It returns nil when the document is clean, otherwise a
// *ValidationError listing every finding.
func Validate(projects []Project) error {
	var issues []Issue
	seen := make(map[string]bool, len(projects))

	report := func(i int, p Project, format string, args ...any) {
		issues = append(issues, Issue{Index: i, ID: p.ID, Message: fmt.Sprintf(format, args...)})
	}

	for i, p := range projects {
		if p.ID == "" {
			report(i, p, "missing required field: id")
		} else {
			if !idPattern.MatchString(p.ID) {
				report(i, p, "invalid id %q: lowercase letters, digits, and hyphens only", p.ID)
			}
			if seen[p.ID] {
				report(i, p, "duplicate id %q", p.ID)
			}
			seen[p.ID] = true
		}
		if p.Title == "" {
			report(i, p, "missing required field: title")
		}
		if p.Description == "" {
			report(i, p, "missing required field: description")
		}
		if p.Image == "" {
			report(i, p, "missing required field: image")
		}
		if p.Category == "" {
			report(i, p, "missing required field: category")
		} else if !slices.Contains(Categories, p.Category) {
			report(i, p, "invalid category %q: must be one of %v", p.Category, Categories)
		}
		if p.Year < MinYear || p.Year > MaxYear {
			report(i, p, "invalid year %d", p.Year)
		}
		if len(p.Tags) == 0 {
			report(i, p, "tags must be a non-empty array")
		}
		for _, field := range []struct{ name, value string }{
			{"image", p.Image},
			{"thumbnail", p.Thumbnail},
			{"link", p.Link},
		} {
			if field.value == "" {
				continue
			}
			if _, err := url.Parse(field.value); err != nil || strings.ContainsAny(field.value, " \t") {
				report(i, p, "invalid URL for %s: %q", field.name, field.value)
			}
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// Summary aggregates counts over a project slice for reporting.
type Summary struct {
	Total      int
	Featured   int
	ByCategory map[string]int
}

// Summarize computes totals for a validated project slice.
func Summarize(projects []Project) Summary {
	s := Summary{Total: len(projects), ByCategory: make(map[string]int)}
	for _, p := range projects {
		if p.Featured {
			s.Featured++
		}
		s.ByCategory[p.Category]++
	}
	return s
}
