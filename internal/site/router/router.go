// Package router sets up HTTP routes for the site server.
package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/ticuv/showcase/internal/catalog"
	"github.com/ticuv/showcase/internal/site/assets"
	adminFeature "github.com/ticuv/showcase/internal/site/features/admin"
	contactFeature "github.com/ticuv/showcase/internal/site/features/contact"
	prefsFeature "github.com/ticuv/showcase/internal/site/features/prefs"
	workFeature "github.com/ticuv/showcase/internal/site/features/work"
	"github.com/ticuv/showcase/internal/site/notifier"
)

// Deps bundles everything the route tree needs.
type Deps struct {
	Store        *catalog.Store
	SessionStore sessions.Store
	Notifier     *notifier.Notifier
	Assets       *assets.Handler
	Page         workFeature.PageConfig
	Mailer       contactFeature.Mailer
	AdminToken   string
	CatalogPath  string
	BackupsDir   string
	Logger       *slog.Logger
}

// SetupRoutes configures all routes for the site server.
func SetupRoutes(router chi.Router, deps Deps) error {
	// Static assets
	router.Handle("/static/*", deps.Assets)

	// Feature routes
	if err := workFeature.SetupRoutes(router, deps.Store, deps.Notifier, deps.Page, deps.Logger); err != nil {
		return err
	}

	if err := adminFeature.SetupRoutes(router, deps.Store, deps.Notifier, deps.AdminToken, deps.CatalogPath, deps.BackupsDir, deps.Logger); err != nil {
		return err
	}

	if err := contactFeature.SetupRoutes(router, deps.Mailer, deps.Logger); err != nil {
		return err
	}

	if err := prefsFeature.SetupRoutes(router, deps.SessionStore); err != nil {
		return err
	}

	return nil
}
