package admin

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/ticuv/showcase/internal/backup"
	"github.com/ticuv/showcase/internal/catalog"
	"github.com/ticuv/showcase/internal/site/notifier"
)

// maxImportSize caps the accepted import document at 8 MiB.
const maxImportSize = 8 << 20

// Handlers provides the authenticated catalog management endpoints.
type Handlers struct {
	store       *catalog.Store
	notifier    *notifier.Notifier
	catalogPath string
	backupsDir  string
	logger      *slog.Logger
}

// NewHandlers creates a new Handlers instance. catalogPath may be empty when
// the catalog is served from a remote source; import and backup then degrade
// to in-memory-only operations.
func NewHandlers(store *catalog.Store, notify *notifier.Notifier, catalogPath, backupsDir string, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{
		store:       store,
		notifier:    notify,
		catalogPath: catalogPath,
		backupsDir:  backupsDir,
		logger:      logger,
	}
}

// RequireToken rejects requests whose X-Admin-Token header does not match.
func RequireToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("X-Admin-Token")
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid admin token"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type importResponse struct {
	Projects int    `json:"projects"`
	Backup   string `json:"backup,omitempty"`
}

type issuesResponse struct {
	Error  string          `json:"error"`
	Issues []catalog.Issue `json:"issues,omitempty"`
}

// Import replaces the catalog with the posted document. The previous catalog
// file is backed up first, and the new document is persisted to disk so the
// change survives a restart.
func (h *Handlers) Import(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, issuesResponse{Error: "read body: " + err.Error()})
		return
	}

	var backupPath string
	if h.catalogPath != "" {
		backupPath, err = backup.Create(h.catalogPath, h.backupsDir, time.Now())
		if err != nil {
			h.logger.Warn("backup before import failed", "error", err)
			backupPath = ""
		}
	}

	c, err := h.store.Import(body)
	if err != nil {
		var verr *catalog.ValidationError
		switch {
		case errors.As(err, &verr):
			writeJSON(w, http.StatusUnprocessableEntity, issuesResponse{Error: "validation failed", Issues: verr.Issues})
		default:
			writeJSON(w, http.StatusBadRequest, issuesResponse{Error: err.Error()})
		}
		return
	}

	if h.catalogPath != "" {
		doc, err := h.store.Export()
		if err == nil {
			err = os.WriteFile(h.catalogPath, doc, 0o644)
		}
		if err != nil {
			h.logger.Error("persist imported catalog", "error", err)
		}
	}

	h.notifier.Broadcast()
	h.logger.Info("catalog imported", "projects", c.Len())
	writeJSON(w, http.StatusOK, importResponse{Projects: c.Len(), Backup: backupPath})
}

// Export streams the current catalog as a downloadable document.
func (h *Handlers) Export(w http.ResponseWriter, _ *http.Request) {
	doc, err := h.store.Export()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, issuesResponse{Error: err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="projects.json"`)
	_, _ = w.Write(doc)
}

// Backup makes a timestamped copy of the catalog file on demand.
func (h *Handlers) Backup(w http.ResponseWriter, _ *http.Request) {
	if h.catalogPath == "" {
		writeJSON(w, http.StatusConflict, issuesResponse{Error: "catalog is not file-backed"})
		return
	}
	path, err := backup.Create(h.catalogPath, h.backupsDir, time.Now())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, issuesResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"backup": path})
}

// Backups lists existing backups, newest first.
func (h *Handlers) Backups(w http.ResponseWriter, _ *http.Request) {
	names, err := backup.List(h.backupsDir)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, issuesResponse{Error: err.Error()})
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"backups": names})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
