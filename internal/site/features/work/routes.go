// Package work provides the portfolio page and its project query API.
package work

import (
	"html/template"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/ticuv/showcase/internal/catalog"
	"github.com/ticuv/showcase/internal/site/notifier"
	"github.com/ticuv/showcase/web"
)

// SetupRoutes configures routes for the work feature.
func SetupRoutes(
	router chi.Router,
	store *catalog.Store,
	notify *notifier.Notifier,
	cfg PageConfig,
	logger *slog.Logger,
) error {
	tmpl, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return err
	}

	handlers := NewHandlers(store, tmpl, notify, cfg, logger)

	router.Get("/", handlers.WorkPage)
	router.Get("/api/projects", handlers.Projects)
	router.Get("/api/projects/{id}", handlers.ProjectDetail)
	router.Get("/updates", handlers.Updates)

	return nil
}
