// Package contact accepts contact form submissions and relays them by mail.
package contact

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes mounts the contact endpoint. With a nil mailer (no SMTP
// configuration) the endpoint is not mounted.
func SetupRoutes(router chi.Router, mailer Mailer, logger *slog.Logger) error {
	if mailer == nil {
		return nil
	}

	handlers := NewHandlers(mailer, logger)
	router.Post("/contact", handlers.Submit)

	return nil
}
