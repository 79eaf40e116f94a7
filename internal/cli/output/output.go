// Package output renders command results for terminals and scripts.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Mode selects the output format.
type Mode string

// Output modes.
const (
	ModeAuto Mode = "auto"
	ModeText Mode = "text"
	ModeJSON Mode = "json"
	ModeYAML Mode = "yaml"
)

// Renderer writes command results in the resolved mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode

	ok   lipgloss.Style
	bad  lipgloss.Style
	dim  lipgloss.Style
	bold lipgloss.Style
}

// NewRenderer creates a renderer. ModeAuto resolves to text on a terminal
// and JSON otherwise.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	resolved := Resolve(mode, out)
	lr := lipgloss.NewRenderer(out)
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   resolved,
		ok:     lr.NewStyle().Foreground(lipgloss.Color("2")),
		bad:    lr.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		dim:    lr.NewStyle().Faint(true),
		bold:   lr.NewStyle().Bold(true),
	}
}

// Resolve turns ModeAuto into a concrete mode for w.
func Resolve(mode Mode, w io.Writer) Mode {
	switch mode {
	case ModeText, ModeJSON, ModeYAML:
		return mode
	}
	if IsTerminal(w) {
		return ModeText
	}
	return ModeJSON
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}

// Mode returns the resolved output mode.
func (r *Renderer) Mode() Mode {
	return r.mode
}

// Out returns the primary output writer.
func (r *Renderer) Out() io.Writer {
	return r.out
}

// Structured reports whether results should be emitted as data.
func (r *Renderer) Structured() bool {
	return r.mode == ModeJSON || r.mode == ModeYAML
}

// Data writes v as JSON or YAML depending on the mode.
func (r *Renderer) Data(v any) error {
	switch r.mode {
	case ModeYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

// Table writes a light-styled table with an optional title.
func (r *Renderer) Table(title string, header table.Row, rows []table.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	if title != "" {
		t.SetTitle(title)
	}
	t.AppendHeader(header)
	t.AppendRows(rows)
	t.Render()
}

// Heading writes a bold line.
func (r *Renderer) Heading(s string) {
	_, _ = fmt.Fprintln(r.out, r.bold.Render(s))
}

// Success writes a green line.
func (r *Renderer) Success(format string, args ...any) {
	_, _ = fmt.Fprintln(r.out, r.ok.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Failure writes a red line to the error stream.
func (r *Renderer) Failure(format string, args ...any) {
	_, _ = fmt.Fprintln(r.errOut, r.bad.Render("✗ "+fmt.Sprintf(format, args...)))
}

// Muted writes a faint line.
func (r *Renderer) Muted(format string, args ...any) {
	_, _ = fmt.Fprintln(r.out, r.dim.Render(fmt.Sprintf(format, args...)))
}

// Mark returns a styled check or cross.
func (r *Renderer) Mark(ok bool) string {
	if ok {
		return r.ok.Render("✓")
	}
	return r.bad.Render("✗")
}
