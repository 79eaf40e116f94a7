// Package features provides shared test utilities for UI feature tests.
package features

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"

	"github.com/cosmicmystery/cosmicsite/internal/contact"
	"github.com/cosmicmystery/cosmicsite/internal/site"
	"github.com/cosmicmystery/cosmicsite/internal/starfield"
	"github.com/cosmicmystery/cosmicsite/internal/testutil"
	"github.com/cosmicmystery/cosmicsite/internal/ui/notifier"
)

// TestFixture holds all dependencies needed for UI handler tests.
type TestFixture struct {
	Site         *site.Site
	Stars        *starfield.Generator
	Sink         *RecordingSink
	Contacts     *contact.Processor
	Notifier     *notifier.Notifier
	SessionStore *sessions.CookieStore
}

// FixtureOption tweaks the site options before the fixture is built.
type FixtureOption func(*site.Options)

// WithoutContactForm disables the contact form section.
func WithoutContactForm() FixtureOption {
	return func(o *site.Options) { o.ContactForm = false }
}

// WithContactEmail overrides the published contact address.
func WithContactEmail(email string) FixtureOption {
	return func(o *site.Options) { o.ContactEmail = email }
}

// SetupTestFixture creates a site with the contact form enabled, a seeded
// star generator and a recording contact sink.
func SetupTestFixture(t *testing.T, opts ...FixtureOption) *TestFixture {
	t.Helper()

	o := site.Options{ContactForm: true}
	for _, opt := range opts {
		opt(&o)
	}

	s, err := site.New(o)
	require.NoError(t, err)

	sink := &RecordingSink{}
	n := notifier.New()
	t.Cleanup(n.Close)

	return &TestFixture{
		Site:         s,
		Stars:        starfield.NewSeededGenerator(42, 1024),
		Sink:         sink,
		Contacts:     contact.NewProcessor(contact.MultiSink{sink, contact.LogSink{Logger: testutil.NewTestLogger(t)}}),
		Notifier:     n,
		SessionStore: NewTestSessionStore(),
	}
}

// RecordingSink keeps delivered inquiries in memory.
type RecordingSink struct {
	mu        sync.Mutex
	inquiries []contact.Inquiry
	// Err, when set, is returned from Deliver instead of recording.
	Err error
}

// Deliver implements contact.Sink.
func (s *RecordingSink) Deliver(_ context.Context, inq contact.Inquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.inquiries = append(s.inquiries, inq)
	return nil
}

// Inquiries returns what has been delivered so far.
func (s *RecordingSink) Inquiries() []contact.Inquiry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]contact.Inquiry(nil), s.inquiries...)
}

// RequestWithTimeout wraps a request with a context timeout.
func RequestWithTimeout(t *testing.T, r *http.Request, timeout time.Duration) *http.Request {
	t.Helper()
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	t.Cleanup(cancel)
	return r.WithContext(ctx)
}

// NewTestSessionStore creates a session store for testing.
func NewTestSessionStore() *sessions.CookieStore {
	return sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!"))
}
