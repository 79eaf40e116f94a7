// Package site assembles the landing page from content, metadata and
// structured data, for both the live server and the static export.
package site

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/cosmicmystery/cosmicsite/internal/content"
	"github.com/cosmicmystery/cosmicsite/internal/seo"
	"github.com/cosmicmystery/cosmicsite/internal/starfield"
	"github.com/cosmicmystery/cosmicsite/internal/ui/components"
	"github.com/cosmicmystery/cosmicsite/internal/ui/resources"
)

// Mode selects how the page reaches its revealed state.
type Mode int

const (
	// ModeServer pages fetch /reveal over SSE after first paint.
	ModeServer Mode = iota
	// ModeStatic pages reveal themselves with the bundled reveal.js.
	ModeStatic
)

// RevealPath is the SSE endpoint server-rendered pages call once mounted.
const RevealPath = "/reveal"

// ContactPath receives contact form submissions.
const ContactPath = "/contact"

// ReloadPath streams a reload script to dev pages when assets change.
const ReloadPath = "/reload"

// Options configures a Site.
type Options struct {
	BaseURL      string
	ContactEmail string
	ContactForm  bool
	// LiveReload makes server pages listen on ReloadPath.
	LiveReload bool
}

// Site renders the landing page. It is immutable after New and safe for
// concurrent use.
type Site struct {
	opts       Options
	meta       seo.Metadata
	structured []byte
}

// New builds a Site, resolving metadata against the base URL and encoding
// the JSON-LD block once.
func New(opts Options) (*Site, error) {
	if opts.ContactEmail == "" {
		opts.ContactEmail = content.DefaultContactEmail
	}

	page := content.Load(opts.ContactEmail)
	structured, err := seo.Organization(page.Founders).JSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode structured data: %w", err)
	}

	return &Site{
		opts:       opts,
		meta:       seo.Default().WithBaseURL(opts.BaseURL),
		structured: structured,
	}, nil
}

// Metadata returns the document metadata.
func (s *Site) Metadata() seo.Metadata {
	return s.meta
}

// StructuredData returns the encoded JSON-LD block.
func (s *Site) StructuredData() []byte {
	return append([]byte(nil), s.structured...)
}

// ContactForm reports whether the contact form section is rendered.
func (s *Site) ContactForm() bool {
	return s.opts.ContactForm
}

// Shell returns the document shell for the given mode.
func (s *Site) Shell(mode Mode) components.Shell {
	shell := components.Shell{
		Meta:           s.meta,
		StructuredData: s.structured,
		StaticPath:     resources.StaticPath,
		Datastar:       true,
	}
	if mode == ModeServer && s.opts.LiveReload {
		shell.ReloadURL = ReloadPath
	}
	if mode == ModeStatic {
		shell.StaticPath = resources.RelativeStaticPath
		shell.Datastar = false
		shell.Scripts = []string{resources.RelativeStaticPath("js/reveal.js")}
	}
	return shell
}

// View returns the initial page state: hidden hero and an empty star field.
// Every call gets its own copy of the content.
func (s *Site) View(mode Mode) components.PageView {
	v := components.PageView{
		Content:     content.Load(s.opts.ContactEmail),
		ContactForm: s.opts.ContactForm,
		ContactURL:  ContactPath,
	}
	switch mode {
	case ModeServer:
		v.RevealURL = RevealPath
	case ModeStatic:
		// No server to post to; hand the message to the mail client.
		v.ContactURL = "mailto:" + s.opts.ContactEmail
	}
	return v
}

// Revealed returns v after mount initialization has run on it.
func Revealed(v components.PageView, m *starfield.Mount) components.PageView {
	v.Revealed = m.Revealed()
	v.Points = m.Points()
	return v
}

// Render writes the full HTML document.
func (s *Site) Render(ctx context.Context, w io.Writer, mode Mode, v components.PageView) error {
	if err := components.Page(s.Shell(mode), v).Render(ctx, w); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

// Markdown renders the page and converts it to Markdown.
func (s *Site) Markdown(ctx context.Context) (string, error) {
	var buf bytes.Buffer
	v := s.View(ModeServer)
	v.ContactForm = false
	if err := s.Render(ctx, &buf, ModeServer, v); err != nil {
		return "", err
	}
	return ToMarkdown(buf.String())
}

// ToMarkdown converts an HTML document to Markdown.
func ToMarkdown(doc string) (string, error) {
	md, err := htmltomarkdown.ConvertString(doc)
	if err != nil {
		return "", fmt.Errorf("failed to convert page to markdown: %w", err)
	}
	return strings.TrimSpace(md) + "\n", nil
}
