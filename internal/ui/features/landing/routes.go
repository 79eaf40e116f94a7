// Package landing serves the single landing page and its companion endpoints.
package landing

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/cosmicmystery/cosmicsite/internal/contact"
	"github.com/cosmicmystery/cosmicsite/internal/site"
	"github.com/cosmicmystery/cosmicsite/internal/starfield"
)

// SetupRoutes configures routes for the landing feature.
func SetupRoutes(
	router chi.Router,
	s *site.Site,
	stars *starfield.Generator,
	contacts *contact.Processor,
	sessionStore sessions.Store,
	logger *slog.Logger,
) error {
	handlers := NewHandlers(s, stars, contacts, sessionStore, logger)

	router.Get("/", handlers.HomePage)
	router.Get(site.RevealPath, handlers.Reveal)
	router.Get("/index.md", handlers.Markdown)
	router.Get("/structured-data.json", handlers.StructuredData)
	router.Get("/healthz", handlers.Health)

	if s.ContactForm() {
		router.Post(site.ContactPath, handlers.SubmitContact)
	}

	return nil
}
