// Package contact handles "Get Involved" inquiries submitted from the
// landing page. Inquiries are sanitized and handed to a Sink.
package contact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/mail"
	"os"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// Field length limits, in runes.
const (
	MaxNameLength    = 120
	MaxMessageLength = 4000
)

// Interests a visitor may pick on the form.
var Interests = []string{"Research Sponsorship", "Equipment Fund", "Educational Initiatives", "Other"}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid inquiry")

// FieldError describes one rejected form field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Reason }

// Unwrap lets errors.Is(err, ErrInvalid) match.
func (e *FieldError) Unwrap() error { return ErrInvalid }

// Submission is the raw form input.
type Submission struct {
	Name     string
	Email    string
	Interest string
	Message  string
}

// Inquiry is an accepted, sanitized submission.
type Inquiry struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Interest   string    `json:"interest"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

// Sink receives accepted inquiries.
type Sink interface {
	Deliver(ctx context.Context, inq Inquiry) error
}

// Processor validates submissions and forwards them to a Sink.
type Processor struct {
	sink   Sink
	policy *bluemonday.Policy
	now    func() time.Time
}

// NewProcessor creates a Processor delivering to sink.
func NewProcessor(sink Sink) *Processor {
	return &Processor{
		sink:   sink,
		policy: bluemonday.StrictPolicy(),
		now:    time.Now,
	}
}

// Submit validates s and delivers the resulting inquiry. Validation failures
// return a *FieldError; delivery failures are wrapped.
func (p *Processor) Submit(ctx context.Context, s Submission) (Inquiry, error) {
	inq, err := p.normalize(s)
	if err != nil {
		return Inquiry{}, err
	}
	if err := p.sink.Deliver(ctx, inq); err != nil {
		return Inquiry{}, fmt.Errorf("failed to deliver inquiry %s: %w", inq.ID, err)
	}
	return inq, nil
}

func (p *Processor) normalize(s Submission) (Inquiry, error) {
	name := p.clean(s.Name)
	if name == "" {
		return Inquiry{}, &FieldError{Field: "name", Reason: "is required"}
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return Inquiry{}, &FieldError{Field: "name", Reason: fmt.Sprintf("must be at most %d characters", MaxNameLength)}
	}

	addr, err := mail.ParseAddress(strings.TrimSpace(s.Email))
	if err != nil {
		return Inquiry{}, &FieldError{Field: "email", Reason: "must be a valid email address"}
	}

	interest := strings.TrimSpace(s.Interest)
	if interest == "" {
		interest = "Other"
	}
	if !isInterest(interest) {
		return Inquiry{}, &FieldError{Field: "interest", Reason: "is not a known option"}
	}

	message := p.clean(s.Message)
	if message == "" {
		return Inquiry{}, &FieldError{Field: "message", Reason: "is required"}
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return Inquiry{}, &FieldError{Field: "message", Reason: fmt.Sprintf("must be at most %d characters", MaxMessageLength)}
	}

	return Inquiry{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      addr.Address,
		Interest:   interest,
		Message:    message,
		ReceivedAt: p.now().UTC(),
	}, nil
}

// clean strips all markup and surrounding whitespace. The sanitizer emits
// escaped text; it is unescaped again so renderers escape exactly once.
func (p *Processor) clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(p.policy.Sanitize(s)))
}

func isInterest(s string) bool {
	for _, i := range Interests {
		if i == s {
			return true
		}
	}
	return false
}

// LogSink writes inquiries to a structured logger.
type LogSink struct {
	Logger *slog.Logger
}

// Deliver logs the inquiry at info level.
func (s LogSink) Deliver(ctx context.Context, inq Inquiry) error {
	s.Logger.InfoContext(ctx, "contact inquiry received",
		"inquiry_id", inq.ID,
		"name", inq.Name,
		"email", inq.Email,
		"interest", inq.Interest,
		"message_length", utf8.RuneCountInString(inq.Message),
	)
	return nil
}

// MultiSink delivers to every sink in order, stopping at the first error.
type MultiSink []Sink

// Deliver implements Sink.
func (m MultiSink) Deliver(ctx context.Context, inq Inquiry) error {
	for _, s := range m {
		if err := s.Deliver(ctx, inq); err != nil {
			return err
		}
	}
	return nil
}

// FileSink appends inquiries to a file as JSON lines.
type FileSink struct {
	mu   sync.Mutex
	path string
}

// NewFileSink returns a sink appending to path. The file is created on
// first delivery.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Deliver implements Sink.
func (s *FileSink) Deliver(_ context.Context, inq Inquiry) error {
	line, err := json.Marshal(inq)
	if err != nil {
		return fmt.Errorf("failed to encode inquiry: %w", err)
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open inbox: %w", err)
	}
	if _, err := f.Write(line); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to append to inbox: %w", err)
	}
	return f.Close()
}
