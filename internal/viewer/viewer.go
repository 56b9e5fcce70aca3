// Package viewer implements the project detail overlay: a closed/open state
// machine with wrap-around prev/next traversal and hash deep links.
package viewer

import (
	"github.com/ticuv/showcase/internal/catalog"
)

// DefaultSection is the location token restored when the viewer closes.
const DefaultSection = "work"

// Viewer presents one project at a time. Traversal order is frozen at open
// time: prev/next walk the query result captured then, not a live re-query,
// so the order stays stable while the viewer is up.
type Viewer struct {
	catalog *catalog.Catalog
	order   []catalog.Project // traversal snapshot, set on Open
	index   int
	open    bool
	section string // token to restore on close
}

// New creates a closed viewer over the given catalog. Deep links resolve
// against the full catalog, not the current filtered view.
func New(c *catalog.Catalog) *Viewer {
	return &Viewer{catalog: c, section: DefaultSection}
}

// IsOpen reports whether a project is being presented.
func (v *Viewer) IsOpen() bool {
	return v.open
}

// Current returns the presented project. ok is false when closed.
func (v *Viewer) Current() (catalog.Project, bool) {
	if !v.open || len(v.order) == 0 {
		return catalog.Project{}, false
	}
	return v.order[v.index], true
}

// Open presents the project at index within the given query result and
// freezes that result as the traversal order. Opening over an empty result
// is refused.
func (v *Viewer) Open(result []catalog.Project, index int) bool {
	if len(result) == 0 {
		return false
	}
	if index < 0 || index >= len(result) {
		index = 0
	}
	v.order = result
	v.index = index
	v.open = true
	return true
}

// OpenID looks the identifier up in the full catalog and presents it with
// the whole catalog as traversal order. Unknown identifiers are a silent
// no-op so a stale or adversarial link cannot disturb displayed state.
func (v *Viewer) OpenID(id string) bool {
	i := v.catalog.IndexOf(id)
	if i < 0 {
		return false
	}
	return v.Open(v.catalog.Projects(), i)
}

// Next advances to the following project, wrapping at the end.
func (v *Viewer) Next() {
	if !v.open || len(v.order) == 0 {
		return
	}
	v.index = (v.index + 1) % len(v.order)
}

// Prev steps back to the preceding project, wrapping at the start.
func (v *Viewer) Prev() {
	if !v.open || len(v.order) == 0 {
		return
	}
	v.index = (v.index - 1 + len(v.order)) % len(v.order)
}

// Close dismisses the viewer. The traversal snapshot is dropped.
func (v *Viewer) Close() {
	v.open = false
	v.order = nil
	v.index = 0
}

// Token returns the location token for the current state: a project deep
// link while open, otherwise the section token.
func (v *Viewer) Token() string {
	if p, ok := v.Current(); ok {
		return ProjectToken(p.ID)
	}
	return v.section
}

// Resolve applies a location token received from back/forward navigation.
// A project token opens that project if it exists (and closes the viewer if
// it does not resolve while nothing was open stays closed); any other token
// closes the viewer and becomes the restore section.
func (v *Viewer) Resolve(token string) {
	if id, ok := ParseProjectToken(token); ok {
		// Unknown ids leave state untouched.
		v.OpenID(id)
		return
	}
	v.Close()
	if token != "" {
		v.section = token
	}
}
