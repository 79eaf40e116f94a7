package site

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmicmystery/cosmicsite/internal/pagecheck"
	"github.com/cosmicmystery/cosmicsite/internal/starfield"
	"github.com/cosmicmystery/cosmicsite/internal/testutil"
)

func newSite(t *testing.T, form bool) *Site {
	t.Helper()
	s, err := New(Options{ContactForm: form})
	require.NoError(t, err)
	return s
}

func render(t *testing.T, s *Site, mode Mode) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, s.Render(context.Background(), &buf, mode, s.View(mode)))
	return buf.String()
}

func TestNew_DefaultsContactEmail(t *testing.T) {
	s := newSite(t, true)
	assert.Equal(t, "donations@cosmicmystery.org", s.View(ModeServer).Content.Contact.Email)
}

func TestView_InitialState(t *testing.T) {
	s := newSite(t, true)

	v := s.View(ModeServer)
	assert.False(t, v.Revealed)
	assert.Empty(t, v.Points)
	assert.Equal(t, RevealPath, v.RevealURL)
	assert.Equal(t, ContactPath, v.ContactURL)

	static := s.View(ModeStatic)
	assert.Empty(t, static.RevealURL)
	assert.Equal(t, "mailto:donations@cosmicmystery.org", static.ContactURL)
}

func TestRevealed(t *testing.T) {
	s := newSite(t, true)
	var m starfield.Mount
	m.Initialize(starfield.NewSeededGenerator(5, 5))

	v := Revealed(s.View(ModeServer), &m)
	assert.True(t, v.Revealed)
	assert.Equal(t, m.Points(), v.Points)

	var buf bytes.Buffer
	require.NoError(t, s.Render(context.Background(), &buf, ModeServer, v))
	html := buf.String()
	assert.Contains(t, html, "translate-y-0 opacity-100")
	assert.Contains(t, html, "{revealed: true}")
	assert.Equal(t, starfield.PointCount, strings.Count(html, `class="star"`))
}

func TestRevealed_BeforeInitialize(t *testing.T) {
	var m starfield.Mount
	v := Revealed(newSite(t, true).View(ModeServer), &m)
	assert.False(t, v.Revealed)
	assert.Empty(t, v.Points)
}

func TestRender_ServerMode(t *testing.T) {
	html := render(t, newSite(t, true), ModeServer)

	assert.Contains(t, html, "<title>Cosmic Mystery Center")
	assert.Contains(t, html, `application/ld+json`)
	assert.Contains(t, html, "datastar")
	assert.Contains(t, html, `href="/static/css/site.css"`)
	assert.Contains(t, html, "translate-y-10 opacity-0")
	assert.NotContains(t, html, "reveal.js")

	report, err := pagecheck.Inspect(strings.NewReader(html))
	require.NoError(t, err)
	assert.NoError(t, report.Err())
	require.Len(t, report.StructuredData, 1)
	assert.Equal(t, "ResearchOrganization", report.StructuredData[0].Type)
}

func TestRender_StaticMode(t *testing.T) {
	html := render(t, newSite(t, true), ModeStatic)

	assert.Contains(t, html, `src="static/js/reveal.js"`)
	assert.Contains(t, html, `href="static/css/site.css"`)
	assert.NotContains(t, html, "cdn.jsdelivr.net")
	assert.NotContains(t, html, "data-init")
}

func TestRender_WithoutContactFormLeavesDanglingAnchor(t *testing.T) {
	html := render(t, newSite(t, false), ModeServer)

	report, err := pagecheck.Inspect(strings.NewReader(html))
	require.NoError(t, err)
	require.ErrorIs(t, report.Err(), pagecheck.ErrDanglingAnchors)

	dangling := report.Dangling()
	require.Len(t, dangling, 1)
	assert.Equal(t, "#contact-form", dangling[0].Href)
}

func TestMarkdown(t *testing.T) {
	md, err := newSite(t, true).Markdown(context.Background())
	require.NoError(t, err)

	assert.Contains(t, md, "Cosmic Mystery Center")
	assert.Contains(t, md, "Our Legacy")
	assert.Contains(t, md, "Future Research Timeline")
	assert.Contains(t, md, "David Eagan")
	assert.NotContains(t, md, "<section")
}

func TestExport(t *testing.T) {
	out := filepath.Join(t.TempDir(), "dist")
	assets := fstest.MapFS{
		"css/site.css": {Data: []byte("body {\n  color: #ffffff;\n}\n")},
		"js/reveal.js": {Data: []byte("const revealedValue = true;\nconsole.log(revealedValue);\n")},
		"img/logo.txt": {Data: []byte("keep me")},
	}

	res, err := newSite(t, true).Export(context.Background(), ExportOptions{
		OutputDir: out,
		Minify:    true,
		Logger:    testutil.NewTestLogger(t),
		Assets:    assets,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		IndexFile,
		MarkdownFile,
		"static/css/site.css",
		"static/img/logo.txt",
		"static/js/reveal.js",
		StructuredDataFile,
	}, res.Files)
	assert.Positive(t, res.Bytes)

	css, err := os.ReadFile(filepath.Join(out, "static", "css", "site.css"))
	require.NoError(t, err)
	assert.NotContains(t, string(css), "\n  ", "stylesheet is minified")

	txt, err := os.ReadFile(filepath.Join(out, "static", "img", "logo.txt"))
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(txt))

	raw, err := os.ReadFile(filepath.Join(out, StructuredDataFile))
	require.NoError(t, err)
	var ld map[string]any
	require.NoError(t, json.Unmarshal(raw, &ld))
	assert.Equal(t, "https://schema.org", ld["@context"])

	index, err := os.Open(filepath.Join(out, IndexFile))
	require.NoError(t, err)
	defer index.Close()
	report, err := pagecheck.Inspect(index)
	require.NoError(t, err)
	assert.NoError(t, report.Err())
}

func TestExport_Unminified(t *testing.T) {
	out := t.TempDir()
	src := "body {\n  color: red;\n}\n"

	_, err := newSite(t, true).Export(context.Background(), ExportOptions{
		OutputDir: out,
		Assets:    fstest.MapFS{"css/site.css": {Data: []byte(src)}},
	})
	require.NoError(t, err)

	css, err := os.ReadFile(filepath.Join(out, "static", "css", "site.css"))
	require.NoError(t, err)
	assert.Equal(t, src, string(css))
}

func TestExport_RequiresOutputDir(t *testing.T) {
	_, err := newSite(t, true).Export(context.Background(), ExportOptions{})
	assert.Error(t, err)
}

func TestMinifyAsset_InvalidScript(t *testing.T) {
	_, err := minifyAsset("broken.js", []byte("function ("))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.js")
}

func TestMinifyAsset_PassesThroughOtherTypes(t *testing.T) {
	data := []byte("<svg></svg>")
	out, err := minifyAsset("icon.svg", data)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}
