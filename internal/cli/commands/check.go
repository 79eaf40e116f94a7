package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/cosmicmystery/cosmicsite/internal/pagecheck"
	"github.com/cosmicmystery/cosmicsite/internal/site"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Timeout time.Duration
}

// CheckResult is the structured output of the check command.
type CheckResult struct {
	Source string            `json:"source" yaml:"source"`
	Report *pagecheck.Report `json:"report" yaml:"report"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check [file|url]",
		Short: "Check page links and structured data",
		Long: `Inspect a landing page for same-page links without a target and for
JSON-LD blocks that do not parse.

Without an argument the page is rendered in memory from the current
configuration. A path checks an exported file, a URL checks a running
server. The command exits non-zero when a problem is found.`,
		Example: `  # Check the page as configured
  cosmicsite check

  # Check an export
  cosmicsite check dist/index.html

  # Check a deployment
  cosmicsite check https://cosmicmystery.org/`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 10*time.Second, "Timeout for fetching a URL")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, opts *CheckOptions) error {
	cc := NewCommandContext(cmd)

	source := "(rendered)"
	var doc []byte
	var err error
	switch {
	case len(args) == 0:
		doc, err = renderPage(cmd.Context(), cc)
	case strings.HasPrefix(args[0], "http://") || strings.HasPrefix(args[0], "https://"):
		source = args[0]
		doc, err = fetchPage(cmd.Context(), args[0], opts.Timeout)
	default:
		source = args[0]
		doc, err = os.ReadFile(args[0])
		if err != nil {
			err = fmt.Errorf("failed to read %s: %w", args[0], err)
		}
	}
	if err != nil {
		return err
	}

	report, err := pagecheck.Inspect(bytes.NewReader(doc))
	if err != nil {
		return err
	}
	cc.Logger.Debug("page inspected", "source", source, "anchors", len(report.Anchors), "ids", len(report.IDs))

	r := cc.Renderer
	if r.Structured() {
		if err := r.Data(CheckResult{Source: source, Report: report}); err != nil {
			return err
		}
		return report.Err()
	}

	r.Heading(source)
	anchors := make([]table.Row, 0, len(report.Anchors))
	for _, a := range report.Anchors {
		anchors = append(anchors, table.Row{r.Mark(a.Found), a.Href, a.Text})
	}
	r.Table("Same-page links", table.Row{"", "Href", "Text"}, anchors)

	blocks := make([]table.Row, 0, len(report.StructuredData))
	for _, b := range report.StructuredData {
		blocks = append(blocks, table.Row{r.Mark(b.Error == ""), b.ID, b.Type, b.Error})
	}
	r.Table("Structured data", table.Row{"", "ID", "Type", "Error"}, blocks)

	if err := report.Err(); err != nil {
		return err
	}
	r.Success("%d links and %d structured data blocks OK", len(report.Anchors), len(report.StructuredData))
	return nil
}

func renderPage(ctx context.Context, cc *CommandContext) ([]byte, error) {
	s, err := cc.Site(false)
	if err != nil {
		return nil, fmt.Errorf("failed to build site: %w", err)
	}
	var buf bytes.Buffer
	if err := s.Render(ctx, &buf, site.ModeServer, s.View(site.ModeServer)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fetchPage(ctx context.Context, url string, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %s: %w", url, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: %s", url, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", url, err)
	}
	return body, nil
}
