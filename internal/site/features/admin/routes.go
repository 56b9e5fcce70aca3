// Package admin provides token-guarded catalog management endpoints.
package admin

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/ticuv/showcase/internal/catalog"
	"github.com/ticuv/showcase/internal/site/notifier"
)

// SetupRoutes mounts the admin endpoints under /admin. With an empty token
// the endpoints are not mounted at all.
func SetupRoutes(
	router chi.Router,
	store *catalog.Store,
	notify *notifier.Notifier,
	token, catalogPath, backupsDir string,
	logger *slog.Logger,
) error {
	if token == "" {
		return nil
	}

	handlers := NewHandlers(store, notify, catalogPath, backupsDir, logger)

	router.Route("/admin", func(r chi.Router) {
		r.Use(RequireToken(token))
		r.Post("/import", handlers.Import)
		r.Get("/export", handlers.Export)
		r.Post("/backup", handlers.Backup)
		r.Get("/backups", handlers.Backups)
	})

	return nil
}
