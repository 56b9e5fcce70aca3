// Package catalog defines the project catalog: the record type, the loaded
// collection, and the validation rules the catalog document must satisfy.
package catalog

// Categories is the fixed set of project categories.
var Categories = []string{"visuals", "3d", "branding", "generative"}

// Layout hints affecting display size. Empty means default sizing.
const (
	LayoutWide  = "wide"
	LayoutTall  = "tall"
	LayoutLarge = "large"
)

// Project is a single portfolio entry as stored in projects.json.
// Unknown fields in the document are ignored for forward compatibility.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Year        int      `json:"year"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
	Tools       []string `json:"tools,omitempty"`
	Client      string   `json:"client,omitempty"`
	Link        string   `json:"link,omitempty"`
	Featured    bool     `json:"featured"`
	Layout      string   `json:"layout,omitempty"`
}

// DisplayThumbnail returns the thumbnail URL, falling back to the primary
// image when no thumbnail is set.
func (p Project) DisplayThumbnail() string {
	if p.Thumbnail != "" {
		return p.Thumbnail
	}
	return p.Image
}

// Catalog is the ordered collection of projects loaded from the catalog
// document. It is immutable after construction; a reload builds a new one.
type Catalog struct {
	projects []Project
	byID     map[string]int
}

// New builds a Catalog from an ordered project slice. Thumbnail fallback is
// applied here so downstream consumers never see an empty thumbnail.
func New(projects []Project) *Catalog {
	c := &Catalog{
		projects: make([]Project, len(projects)),
		byID:     make(map[string]int, len(projects)),
	}
	for i, p := range projects {
		if p.Thumbnail == "" {
			p.Thumbnail = p.Image
		}
		c.projects[i] = p
		if _, dup := c.byID[p.ID]; !dup {
			c.byID[p.ID] = i
		}
	}
	return c
}

// Projects returns the catalog contents in document order. Callers must not
// mutate the returned slice.
func (c *Catalog) Projects() []Project {
	return c.projects
}

// Len returns the number of projects.
func (c *Catalog) Len() int {
	return len(c.projects)
}

// ByID looks up a project by its identifier.
func (c *Catalog) ByID(id string) (Project, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Project{}, false
	}
	return c.projects[i], true
}

// IndexOf returns the document-order position of a project, or -1.
func (c *Catalog) IndexOf(id string) int {
	if i, ok := c.byID[id]; ok {
		return i
	}
	return -1
}

// Related returns up to limit projects sharing a category with the given
// project, excluding the project itself, in document order.
func (c *Catalog) Related(id string, limit int) []Project {
	p, ok := c.ByID(id)
	if !ok {
		return nil
	}
	var related []Project
	for _, q := range c.projects {
		if q.ID == id || q.Category != p.Category {
			continue
		}
		related = append(related, q)
		if len(related) == limit {
			break
		}
	}
	return related
}
