package prefs

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
)

// SetupRoutes configures routes for the prefs feature.
func SetupRoutes(router chi.Router, sessionStore sessions.Store) error {
	handlers := NewHandlers(sessionStore)

	router.Get("/api/prefs", handlers.Get)
	router.Put("/api/prefs", handlers.Put)

	return nil
}
