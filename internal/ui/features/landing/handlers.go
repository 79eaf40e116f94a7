package landing

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/cosmicmystery/cosmicsite/internal/contact"
	"github.com/cosmicmystery/cosmicsite/internal/content"
	"github.com/cosmicmystery/cosmicsite/internal/site"
	"github.com/cosmicmystery/cosmicsite/internal/starfield"
	"github.com/cosmicmystery/cosmicsite/internal/ui/components"
)

// SessionName is the cookie carrying flash messages across the contact
// form redirect.
const SessionName = "cosmicsite"

// Flash keys.
const (
	flashSuccess = "success"
	flashError   = "error"
)

// Flash messages shown after a contact submission.
const (
	MessageThanks      = "Thank you for reaching out. We will be in touch soon."
	MessageUndelivered = "We could not send your message. Please email us directly."
)

// Handlers provides HTTP handlers for the landing feature.
type Handlers struct {
	site         *site.Site
	stars        *starfield.Generator
	contacts     *contact.Processor
	sessionStore sessions.Store
	logger       *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(s *site.Site, stars *starfield.Generator, contacts *contact.Processor, sessionStore sessions.Store, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{
		site:         s,
		stars:        stars,
		contacts:     contacts,
		sessionStore: sessionStore,
		logger:       logger,
	}
}

// HomePage renders the page in its pre-reveal state. The client calls
// Reveal once the document is mounted.
func (h *Handlers) HomePage(w http.ResponseWriter, r *http.Request) {
	v := h.site.View(site.ModeServer)
	v.Flash = h.popFlash(w, r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.site.Render(r.Context(), w, site.ModeServer, v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type revealSignals struct {
	Revealed bool `json:"revealed"`
}

// Reveal performs mount initialization: it flips the reveal signal and
// patches in a freshly drawn star field.
func (h *Handlers) Reveal(w http.ResponseWriter, r *http.Request) {
	var mount starfield.Mount
	mount.Initialize(h.stars)
	v := site.Revealed(h.site.View(site.ModeServer), &mount)

	sse := datastar.NewSSE(w, r)
	if err := sse.MarshalAndPatchSignals(revealSignals{Revealed: v.Revealed}); err != nil {
		h.logger.Error("failed to patch reveal signal", "error", err)
		return
	}
	if err := sse.PatchElementTempl(components.StarField(v.Points)); err != nil {
		h.logger.Error("failed to patch star field", "error", err)
		_ = sse.ConsoleError(err)
	}
}

// Markdown serves the page as Markdown.
func (h *Handlers) Markdown(w http.ResponseWriter, r *http.Request) {
	md, err := h.site.Markdown(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = w.Write([]byte(md))
}

// StructuredData serves the JSON-LD block on its own.
func (h *Handlers) StructuredData(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/ld+json")
	_, _ = w.Write(h.site.StructuredData())
}

// Health reports liveness.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// SubmitContact accepts the contact form and redirects back to it with a
// flash message.
func (h *Handlers) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	inq, err := h.contacts.Submit(r.Context(), contact.Submission{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Interest: r.PostFormValue("interest"),
		Message:  r.PostFormValue("message"),
	})

	var fe *contact.FieldError
	switch {
	case err == nil:
		h.logger.Debug("contact inquiry accepted", "inquiry_id", inq.ID)
		h.addFlash(w, r, flashSuccess, MessageThanks)
	case errors.As(err, &fe):
		h.addFlash(w, r, flashError, "Please check your "+fe.Field+": it "+fe.Reason+".")
	default:
		h.logger.Error("failed to deliver contact inquiry", "error", err)
		h.addFlash(w, r, flashError, MessageUndelivered)
	}

	http.Redirect(w, r, "/#"+content.AnchorContactForm, http.StatusSeeOther)
}

func (h *Handlers) addFlash(w http.ResponseWriter, r *http.Request, kind, msg string) {
	if h.sessionStore == nil {
		return
	}
	sess, err := h.sessionStore.Get(r, SessionName)
	if err != nil {
		h.logger.Debug("discarding unreadable session", "error", err)
	}
	if sess == nil {
		return
	}
	sess.AddFlash(msg, kind)
	if err := sess.Save(r, w); err != nil {
		h.logger.Error("failed to save session", "error", err)
	}
}

func (h *Handlers) popFlash(w http.ResponseWriter, r *http.Request) *components.Flash {
	if h.sessionStore == nil {
		return nil
	}
	sess, err := h.sessionStore.Get(r, SessionName)
	if err != nil {
		return nil
	}

	var flash *components.Flash
	for _, kind := range []string{flashError, flashSuccess} {
		for _, f := range sess.Flashes(kind) {
			if msg, ok := f.(string); ok && flash == nil {
				flash = &components.Flash{Kind: kind, Message: msg}
			}
		}
	}
	if flash != nil {
		if err := sess.Save(r, w); err != nil {
			h.logger.Error("failed to save session", "error", err)
		}
	}
	return flash
}
