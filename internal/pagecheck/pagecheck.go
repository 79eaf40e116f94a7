// Package pagecheck inspects a rendered HTML document for same-page link
// integrity and embedded structured data.
package pagecheck

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrDanglingAnchors is returned by Report.Err when at least one fragment
// link has no matching element id.
var ErrDanglingAnchors = errors.New("dangling same-page anchors")

// ErrStructuredData is returned by Report.Err when a JSON-LD block does not
// parse.
var ErrStructuredData = errors.New("invalid structured data")

// Anchor is a fragment link found in the document.
type Anchor struct {
	Href   string `json:"href" yaml:"href"`
	Target string `json:"target" yaml:"target"`
	Text   string `json:"text" yaml:"text"`
	Found  bool   `json:"found" yaml:"found"`
}

// StructuredBlock is the content of one <script type="application/ld+json">.
type StructuredBlock struct {
	ID    string         `json:"id,omitempty" yaml:"id,omitempty"`
	Raw   string         `json:"-" yaml:"-"`
	Type  string         `json:"type" yaml:"type"`
	Data  map[string]any `json:"-" yaml:"-"`
	Error string         `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report is the result of inspecting one document.
type Report struct {
	Anchors        []Anchor          `json:"anchors" yaml:"anchors"`
	IDs            []string          `json:"ids" yaml:"ids"`
	StructuredData []StructuredBlock `json:"structured_data" yaml:"structured_data"`
}

// Dangling returns the fragment links with no matching target, in document order.
func (r *Report) Dangling() []Anchor {
	var out []Anchor
	for _, a := range r.Anchors {
		if !a.Found {
			out = append(out, a)
		}
	}
	return out
}

// Err summarizes every problem in the report, or returns nil.
func (r *Report) Err() error {
	var errs []error
	if dangling := r.Dangling(); len(dangling) > 0 {
		hrefs := make([]string, 0, len(dangling))
		for _, a := range dangling {
			hrefs = append(hrefs, a.Href)
		}
		errs = append(errs, fmt.Errorf("%w: %s", ErrDanglingAnchors, strings.Join(unique(hrefs), ", ")))
	}
	for _, b := range r.StructuredData {
		if b.Error != "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrStructuredData, b.Error))
		}
	}
	return errors.Join(errs...)
}

// HasID reports whether the document contains an element with the given id.
func (r *Report) HasID(id string) bool {
	i := sort.SearchStrings(r.IDs, id)
	return i < len(r.IDs) && r.IDs[i] == id
}

// Inspect parses the document and collects fragment links, element ids and
// JSON-LD blocks.
func Inspect(rd io.Reader) (*Report, error) {
	doc, err := html.Parse(rd)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	report := &Report{}
	ids := map[string]struct{}{}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if id := attr(n, "id"); id != "" {
				ids[id] = struct{}{}
			}
			switch n.DataAtom {
			case atom.A:
				if href := attr(n, "href"); strings.HasPrefix(href, "#") && len(href) > 1 {
					report.Anchors = append(report.Anchors, Anchor{
						Href:   href,
						Target: href[1:],
						Text:   strings.Join(strings.Fields(textContent(n)), " "),
					})
				}
			case atom.Script:
				if strings.EqualFold(attr(n, "type"), "application/ld+json") {
					report.StructuredData = append(report.StructuredData, parseBlock(attr(n, "id"), textContent(n)))
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	report.IDs = make([]string, 0, len(ids))
	for id := range ids {
		report.IDs = append(report.IDs, id)
	}
	sort.Strings(report.IDs)

	for i := range report.Anchors {
		_, report.Anchors[i].Found = ids[report.Anchors[i].Target]
	}
	return report, nil
}

func parseBlock(id, raw string) StructuredBlock {
	block := StructuredBlock{ID: id, Raw: raw}
	if err := json.Unmarshal([]byte(raw), &block.Data); err != nil {
		block.Error = err.Error()
		return block
	}
	if t, ok := block.Data["@type"].(string); ok {
		block.Type = t
	}
	return block
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func unique(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
