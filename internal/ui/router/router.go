// Package router sets up HTTP routes for the site server.
package router

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/cosmicmystery/cosmicsite/internal/contact"
	"github.com/cosmicmystery/cosmicsite/internal/site"
	"github.com/cosmicmystery/cosmicsite/internal/starfield"
	landingFeature "github.com/cosmicmystery/cosmicsite/internal/ui/features/landing"
	"github.com/cosmicmystery/cosmicsite/internal/ui/notifier"
	"github.com/cosmicmystery/cosmicsite/internal/ui/resources"
)

// Deps are the collaborators shared by all routes.
type Deps struct {
	Site         *site.Site
	Stars        *starfield.Generator
	Contacts     *contact.Processor
	SessionStore sessions.Store
	Notifier     *notifier.Notifier
	Logger       *slog.Logger
	IsDev        bool
}

// SetupRoutes configures all routes for the site server.
func SetupRoutes(router chi.Router, d Deps) error {
	// Live reload endpoints for dev mode
	if d.IsDev && d.Notifier != nil {
		setupReload(router, d.Notifier)
	}

	// Static assets
	router.Handle("/static/*", resources.Handler())

	return landingFeature.SetupRoutes(router, d.Site, d.Stars, d.Contacts, d.SessionStore, d.Logger)
}

func setupReload(router chi.Router, notify *notifier.Notifier) {
	var reloadOnce sync.Once

	router.Get(site.ReloadPath, func(w http.ResponseWriter, r *http.Request) {
		sse := datastar.NewSSE(w, r)
		reload := func() { _ = sse.ExecuteScript("window.location.reload()") }

		// The first stream after a restart reloads straight away to pick up
		// the new binary.
		reloadOnce.Do(reload)

		updates, cancel := notify.Subscribe()
		defer cancel()

		select {
		case _, ok := <-updates:
			if ok {
				reload()
			}
		case <-r.Context().Done():
		}
	})

	router.Post("/hotreload", func(w http.ResponseWriter, _ *http.Request) {
		notify.Broadcast()
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}
