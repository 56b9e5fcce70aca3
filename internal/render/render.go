// Package render partitions a query result into the featured, recent, and
// archive display groups and tracks archive pagination.
package render

import (
	"fmt"

	"github.com/ticuv/showcase/internal/catalog"
)

// RecentSize is the number of non-featured projects shown in the recent
// group; everything past it belongs to the archive.
const RecentSize = 3

// Default pagination constants, overridable through configuration.
const (
	DefaultPageSize     = 6
	DefaultLoadMoreStep = 6
)

// Groups is the materialized display model for one query result.
type Groups struct {
	Featured []catalog.Project
	Recent   []catalog.Project
	Archive  []catalog.Project
	// Visible is how many archive entries are currently revealed. Archive
	// entries past Visible exist in the model but are flagged hidden.
	Visible int
}

// Partition splits a query result into display groups. Featured records all
// go to the featured group; the first RecentSize non-featured records form
// the recent group and the rest the archive. visible is clamped to the
// archive length.
func Partition(result []catalog.Project, visible int) Groups {
	var g Groups
	for _, p := range result {
		if p.Featured {
			g.Featured = append(g.Featured, p)
		} else if len(g.Recent) < RecentSize {
			g.Recent = append(g.Recent, p)
		} else {
			g.Archive = append(g.Archive, p)
		}
	}
	if visible < 0 {
		visible = 0
	}
	if visible > len(g.Archive) {
		visible = len(g.Archive)
	}
	g.Visible = visible
	return g
}

// VisibleArchive returns the revealed slice of the archive.
func (g Groups) VisibleArchive() []catalog.Project {
	return g.Archive[:g.Visible]
}

// Empty reports whether every group is empty, which triggers the explicit
// no-results affordance instead of a blank page.
func (g Groups) Empty() bool {
	return len(g.Featured) == 0 && len(g.Recent) == 0 && len(g.Archive) == 0
}

// HasArchive reports whether any projects spill past the recent group.
func (g Groups) HasArchive() bool {
	return len(g.Archive) > 0
}

// Remaining is how many archive entries are still hidden.
func (g Groups) Remaining() int {
	return len(g.Archive) - g.Visible
}

// LoadMoreLabel is the text for the load-more control.
func (g Groups) LoadMoreLabel() string {
	if g.Remaining() <= 0 {
		return "All Projects Loaded"
	}
	return fmt.Sprintf("Load More (%d remaining)", g.Remaining())
}

// Pager tracks how much of the archive is revealed. Revealing more never
// re-runs the query, so already-shown entries stay put; the counter resets
// only on an explicit filter, sort, or search change.
type Pager struct {
	PageSize int
	Step     int
	visible  int
}

// NewPager creates a pager with the given initial page size and load-more
// step, falling back to the defaults for non-positive values.
func NewPager(pageSize, step int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if step <= 0 {
		step = DefaultLoadMoreStep
	}
	return &Pager{PageSize: pageSize, Step: step, visible: pageSize}
}

// Visible returns the current reveal count.
func (p *Pager) Visible() int {
	return p.visible
}

// More reveals the next batch and returns the new count.
func (p *Pager) More() int {
	p.visible += p.Step
	return p.visible
}

// Reset restores the initial page size. Call only on an explicit query state
// change.
func (p *Pager) Reset() int {
	p.visible = p.PageSize
	return p.visible
}

// ResultsLabel is the results-count string shown while a filter or search is
// active.
func ResultsLabel(count int) string {
	if count == 1 {
		return "1 project found"
	}
	return fmt.Sprintf("%d projects found", count)
}
