package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Store owns the live catalog snapshot. Loads replace the snapshot as a
// whole; readers always see a complete, validated catalog. When loads
// overlap (a watcher-triggered reload racing a manual refresh) the most
// recently started load wins and stale results are discarded.
type Store struct {
	source Source
	logger *slog.Logger

	started uint64 // generation counter for last-load-wins

	mu      sync.RWMutex
	catalog *Catalog
	onSwap  []func(*Catalog)
}

// NewStore creates a Store reading from the given source. The catalog is
// empty until the first successful Load.
func NewStore(source Source, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		source:  source,
		logger:  logger,
		catalog: New(nil),
	}
}

// OnSwap registers a callback invoked after the snapshot is replaced.
// Registration is not safe concurrently with Load; wire dependents up front.
func (s *Store) OnSwap(fn func(*Catalog)) {
	s.onSwap = append(s.onSwap, fn)
}

// Snapshot returns the current catalog. The returned value is immutable.
func (s *Store) Snapshot() *Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// Load fetches, parses, and validates the catalog document, then swaps it in.
// On any error the previous snapshot is left untouched so callers can fall
// back to already-rendered content.
func (s *Store) Load(ctx context.Context) (*Catalog, error) {
	gen := atomic.AddUint64(&s.started, 1)

	raw, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	c, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if gen != atomic.LoadUint64(&s.started) {
		// A newer load started while this one was in flight.
		s.mu.Unlock()
		s.logger.Debug("discarding stale catalog load", "generation", gen)
		return nil, nil
	}
	s.catalog = c
	callbacks := s.onSwap
	s.mu.Unlock()

	s.logger.Info("catalog loaded", "source", s.source.Location(), "projects", c.Len())
	for _, fn := range callbacks {
		fn(c)
	}
	return c, nil
}

// Import replaces the snapshot with an administratively supplied document.
// Unlike Load it refuses documents that fail record validation, since an
// operator is present to fix them.
func (s *Store) Import(b []byte) (*Catalog, error) {
	projects, err := Decode(b)
	if err != nil {
		return nil, err
	}
	if err := Validate(projects); err != nil {
		return nil, err
	}
	c := New(projects)

	atomic.AddUint64(&s.started, 1) // supersede any in-flight load
	s.mu.Lock()
	s.catalog = c
	callbacks := s.onSwap
	s.mu.Unlock()

	s.logger.Info("catalog imported", "projects", c.Len())
	for _, fn := range callbacks {
		fn(c)
	}
	return c, nil
}

// Export serializes the current snapshot back to the document wire shape.
func (s *Store) Export() ([]byte, error) {
	doc := document{Projects: s.Snapshot().Projects()}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return b, nil
}

// document is the top-level wire shape of projects.json.
type document struct {
	Projects []Project `json:"projects"`
}

// Decode extracts the projects array from a catalog document. It
// distinguishes malformed JSON (ErrParse) from a structurally wrong document
// (ErrShape) so callers can report the right failure.
func Decode(b []byte) ([]Project, error) {
	var probe struct {
		Projects json.RawMessage `json:"projects"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(probe.Projects) == 0 || string(probe.Projects) == "null" {
		return nil, ErrShape
	}
	var projects []Project
	if err := json.Unmarshal(probe.Projects, &projects); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShape, err)
	}
	return projects, nil
}

// Parse decodes a catalog document into a Catalog. Records that fail
// validation are kept (the site renders what it can); shape errors are fatal.
func Parse(b []byte) (*Catalog, error) {
	projects, err := Decode(b)
	if err != nil {
		return nil, err
	}
	return New(projects), nil
}
