package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/cosmicmystery/cosmicsite/internal/ui/resources"
)

// Exported file names, relative to the output directory.
const (
	IndexFile          = "index.html"
	MarkdownFile       = "index.md"
	StructuredDataFile = "structured-data.json"
)

// ExportOptions configures a static export.
type ExportOptions struct {
	OutputDir string
	Minify    bool
	Logger    *slog.Logger
	// Assets overrides the bundled static files.
	Assets fs.FS
}

// ExportResult lists what an export wrote.
type ExportResult struct {
	OutputDir string
	Files     []string
	Bytes     int64
}

// Export writes the landing page, its Markdown rendition, the JSON-LD block
// and all static assets to opts.OutputDir.
func (s *Site) Export(ctx context.Context, opts ExportOptions) (*ExportResult, error) {
	if opts.OutputDir == "" {
		return nil, errors.New("output directory is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	assets := opts.Assets
	if assets == nil {
		assets = resources.FS()
	}

	if err := os.MkdirAll(opts.OutputDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	res := &ExportResult{OutputDir: opts.OutputDir}
	write := func(rel string, data []byte) error {
		dst := filepath.Join(opts.OutputDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", rel, err)
		}
		if err := os.WriteFile(dst, data, 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", rel, err)
		}
		res.Files = append(res.Files, rel)
		res.Bytes += int64(len(data))
		logger.Debug("wrote file", "path", rel, "bytes", len(data))
		return nil
	}

	var page bytes.Buffer
	if err := s.Render(ctx, &page, ModeStatic, s.View(ModeStatic)); err != nil {
		return nil, err
	}
	if err := write(IndexFile, page.Bytes()); err != nil {
		return nil, err
	}

	md, err := s.Markdown(ctx)
	if err != nil {
		return nil, err
	}
	if err := write(MarkdownFile, []byte(md)); err != nil {
		return nil, err
	}

	if err := write(StructuredDataFile, s.StructuredData()); err != nil {
		return nil, err
	}

	err = fs.WalkDir(assets, ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(assets, p)
		if err != nil {
			return fmt.Errorf("failed to read asset %s: %w", p, err)
		}
		if opts.Minify {
			if data, err = minifyAsset(p, data); err != nil {
				return err
			}
		}
		return write(resources.RelativeStaticPath(p), data)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to copy static assets: %w", err)
	}

	sort.Strings(res.Files)
	logger.Info("site exported", "dir", opts.OutputDir, "files", len(res.Files), "bytes", res.Bytes)
	return res, nil
}

// minifyAsset runs stylesheets and scripts through esbuild. Other files are
// returned unchanged.
func minifyAsset(name string, data []byte) ([]byte, error) {
	var loader api.Loader
	switch strings.ToLower(path.Ext(name)) {
	case ".css":
		loader = api.LoaderCSS
	case ".js":
		loader = api.LoaderJS
	default:
		return data, nil
	}

	result := api.Transform(string(data), api.TransformOptions{
		Loader:            loader,
		Sourcefile:        name,
		MinifyWhitespace:  true,
		MinifyIdentifiers: true,
		MinifySyntax:      true,
		Target:            api.ES2020,
		LogLevel:          api.LogLevelSilent,
	})
	if len(result.Errors) > 0 {
		var errMsg string
		for _, e := range result.Errors {
			line := 0
			if e.Location != nil {
				line = e.Location.Line
			}
			errMsg += fmt.Sprintf("%s:%d: %s\n", name, line, e.Text)
		}
		return nil, fmt.Errorf("esbuild errors:\n%s", errMsg)
	}
	return result.Code, nil
}
