package work

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/ticuv/showcase/internal/catalog"
	"github.com/ticuv/showcase/internal/query"
	"github.com/ticuv/showcase/internal/render"
	"github.com/ticuv/showcase/internal/site/notifier"
)

// PageConfig carries the archive tuning knobs the page and its API share.
type PageConfig struct {
	Title            string
	PageSize         int
	LoadMoreStep     int
	SearchDebounceMs int
}

// Handlers provides HTTP handlers for the work feature.
type Handlers struct {
	store    *catalog.Store
	tmpl     *template.Template
	notifier *notifier.Notifier
	cfg      PageConfig
	logger   *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(store *catalog.Store, tmpl *template.Template, notify *notifier.Notifier, cfg PageConfig, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{
		store:    store,
		tmpl:     tmpl,
		notifier: notify,
		cfg:      cfg,
		logger:   logger,
	}
}

type pageData struct {
	Title            string
	Categories       []string
	PageSize         int
	LoadMoreStep     int
	SearchDebounceMs int
}

// WorkPage renders the portfolio page shell. Project data is fetched by the
// frontend through the JSON API.
func (h *Handlers) WorkPage(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title:            h.cfg.Title,
		Categories:       catalog.Categories,
		PageSize:         h.cfg.PageSize,
		LoadMoreStep:     h.cfg.LoadMoreStep,
		SearchDebounceMs: h.cfg.SearchDebounceMs,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		h.logger.Error("render work page", "error", err)
	}
}

// groupsResponse is the JSON shape of GET /api/projects.
type groupsResponse struct {
	Featured      []catalog.Project `json:"featured"`
	Recent        []catalog.Project `json:"recent"`
	Archive       []catalog.Project `json:"archive"`
	Counts        map[string]int    `json:"counts"`
	Total         int               `json:"total"`
	Remaining     int               `json:"remaining"`
	ResultsLabel  string            `json:"resultsLabel"`
	LoadMoreLabel string            `json:"loadMoreLabel"`
	Empty         bool              `json:"empty"`
}

// Projects answers the archive query: search, category filter, sort, and
// the visible-archive window.
func (h *Handlers) Projects(w http.ResponseWriter, r *http.Request) {
	c := h.store.Snapshot()
	state := stateFromQuery(r)

	visible := h.cfg.PageSize
	if raw := r.URL.Query().Get("visible"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			visible = n
		}
	}

	result := query.Run(c, state)
	groups := render.Partition(result, visible)

	resp := groupsResponse{
		Featured:      groups.Featured,
		Recent:        groups.Recent,
		Archive:       groups.VisibleArchive(),
		Counts:        query.Counts(c),
		Total:         len(result),
		Remaining:     groups.Remaining(),
		ResultsLabel:  render.ResultsLabel(len(result)),
		LoadMoreLabel: groups.LoadMoreLabel(),
		Empty:         groups.Empty(),
	}
	writeJSON(w, http.StatusOK, resp)
}

// detailResponse is the JSON shape of GET /api/projects/{id}.
type detailResponse struct {
	Project catalog.Project   `json:"project"`
	Related []catalog.Project `json:"related"`
	Token   string            `json:"token"`
}

// ProjectDetail serves a single project plus its related projects. Unknown
// ids are a 404; the frontend treats that as a no-op.
func (h *Handlers) ProjectDetail(w http.ResponseWriter, r *http.Request) {
	c := h.store.Snapshot()
	id := chi.URLParam(r, "id")

	p, ok := c.ByID(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "project not found"})
		return
	}

	resp := detailResponse{
		Project: p,
		Related: c.Related(id, 3),
		Token:   "project/" + id,
	}
	writeJSON(w, http.StatusOK, resp)
}

// Updates is the long-lived SSE endpoint. When the catalog on disk changes
// it asks the page to re-fetch; the initial state is served by WorkPage.
func (h *Handlers) Updates(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	updates := h.notifier.Subscribe()
	defer h.notifier.Unsubscribe(updates)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			if err := sse.ExecuteScript("window.__showcaseRefresh && window.__showcaseRefresh()"); err != nil {
				return
			}
		}
	}
}

func stateFromQuery(r *http.Request) query.State {
	q := r.URL.Query()
	state := query.DefaultState()
	if v := q.Get("q"); v != "" {
		state.Search = v
	}
	if v := q.Get("category"); v != "" {
		state.Filter = v
	}
	switch q.Get("sort") {
	case query.SortLatest:
		state.Sort = query.SortLatest
	case query.SortOldest:
		state.Sort = query.SortOldest
	case query.SortFeatured, "":
		state.Sort = query.SortFeatured
	}
	return state
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
