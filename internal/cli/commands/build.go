package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/cosmicmystery/cosmicsite/internal/cli/config"
	"github.com/cosmicmystery/cosmicsite/internal/pagecheck"
	"github.com/cosmicmystery/cosmicsite/internal/site"
)

// BuildResult is the structured output of the build command.
type BuildResult struct {
	OutputDir string   `json:"output_dir" yaml:"output_dir"`
	Files     []string `json:"files" yaml:"files"`
	Bytes     int64    `json:"bytes" yaml:"bytes"`
	Minified  bool     `json:"minified" yaml:"minified"`
	Dangling  []string `json:"dangling_anchors,omitempty" yaml:"dangling_anchors,omitempty"`
}

// NewBuildCommand creates the build command.
func NewBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the landing page as static files",
		Long: `Render the landing page and write it, with its assets, to a directory
that any static file host can serve.

The export contains:
- index.html, revealed by a small script instead of the server
- index.md, a Markdown rendition of the page
- structured-data.json, the Organization JSON-LD
- static/, the stylesheet, scripts and images`,
		Example: `  # Export to ./dist
  cosmicsite build

  # Export unminified assets elsewhere
  cosmicsite build --output-dir public --minify=false`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd)
		},
	}

	d := config.Default()
	cmd.Flags().String("output-dir", d.Build.OutputDir, "Directory to write the export to")
	cmd.Flags().Bool("minify", d.Build.Minify, "Minify stylesheets and scripts")

	return cmd
}

func runBuild(cmd *cobra.Command) error {
	cc := NewCommandContext(cmd)
	if err := cc.Cfg.ValidateBuild(); err != nil {
		return err
	}

	s, err := cc.Site(false)
	if err != nil {
		return fmt.Errorf("failed to build site: %w", err)
	}

	res, err := s.Export(cmd.Context(), site.ExportOptions{
		OutputDir: cc.Cfg.Build.OutputDir,
		Minify:    cc.Cfg.Build.Minify,
		Logger:    cc.Logger,
	})
	if err != nil {
		return err
	}

	result := BuildResult{
		OutputDir: res.OutputDir,
		Files:     res.Files,
		Bytes:     res.Bytes,
		Minified:  cc.Cfg.Build.Minify,
	}

	dangling, err := danglingAnchors(filepath.Join(res.OutputDir, site.IndexFile))
	if err != nil {
		return err
	}
	for _, a := range dangling {
		result.Dangling = append(result.Dangling, a.Href)
		cc.Logger.Warn("link target missing from export", "href", a.Href, "text", a.Text)
	}

	r := cc.Renderer
	if r.Structured() {
		return r.Data(result)
	}

	rows := make([]table.Row, 0, len(result.Files))
	for _, f := range result.Files {
		info, err := os.Stat(filepath.Join(result.OutputDir, filepath.FromSlash(f)))
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", f, err)
		}
		rows = append(rows, table.Row{f, info.Size()})
	}
	r.Table("", table.Row{"File", "Bytes"}, rows)
	r.Success("Exported %d files (%d bytes) to %s", len(result.Files), result.Bytes, result.OutputDir)
	for _, href := range result.Dangling {
		r.Failure("%s has no target on the page", href)
	}
	return nil
}

func danglingAnchors(path string) ([]pagecheck.Anchor, error) {
	f, err := os.Open(path) //nolint:gosec // path is inside the export directory
	if err != nil {
		return nil, fmt.Errorf("failed to open export: %w", err)
	}
	defer func() { _ = f.Close() }()

	report, err := pagecheck.Inspect(f)
	if err != nil {
		return nil, err
	}
	return report.Dangling(), nil
}
