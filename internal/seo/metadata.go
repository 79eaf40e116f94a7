// Package seo describes the page-level metadata consumed by crawlers and
// social previews: the document head tags and the schema.org record.
package seo

import (
	"net/url"
	"strconv"
	"strings"
)

// Image is a preview image reference.
type Image struct {
	URL    string
	Width  int
	Height int
	Alt    string
}

// OpenGraph holds the og:* fields.
type OpenGraph struct {
	Title       string
	Description string
	Images      []Image
	Type        string
}

// Twitter holds the twitter:* card fields.
type Twitter struct {
	Card        string
	Title       string
	Description string
	Images      []string
}

// Robots holds crawler directives. A negative max value means "no limit".
type Robots struct {
	Index           bool
	Follow          bool
	MaxVideoPreview int
	MaxImagePreview string
	MaxSnippet      int
}

// Metadata is the static description of the page handed to the document
// shell once per render.
type Metadata struct {
	Title       string
	Description string
	Keywords    []string
	OpenGraph   OpenGraph
	Twitter     Twitter
	Robots      Robots
	GoogleBot   Robots
}

// Tag is one rendered <meta> element. Exactly one of Name or Property is set.
type Tag struct {
	Name     string
	Property string
	Content  string
}

// Default returns the landing page metadata.
func Default() Metadata {
	return Metadata{
		Title:       "Cosmic Mystery Center | Exploring Universe's Greatest Enigmas",
		Description: "The Cosmic Mystery Center, founded by David Eagan and Kurt Arbuckle, is at the forefront of investigating unexplained phenomena through scientific discovery.",
		Keywords:    []string{"cosmic mystery", "paranormal research", "scientific discovery", "unexplained phenomena"},
		OpenGraph: OpenGraph{
			Title:       "Cosmic Mystery Center | Scientific Discovery of the Unknown",
			Description: "Leading institution in paranormal research and unexplained phenomena investigation.",
			Images: []Image{
				{URL: "/og-image.jpg", Width: 1200, Height: 630, Alt: "Cosmic Mystery Center"},
			},
			Type: "website",
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       "Cosmic Mystery Center",
			Description: "Exploring Universe's Greatest Enigmas Through Scientific Discovery",
			Images:      []string{"/og-image.jpg"},
		},
		Robots: Robots{Index: true, Follow: true},
		GoogleBot: Robots{
			Index:           true,
			Follow:          true,
			MaxVideoPreview: -1,
			MaxImagePreview: "large",
			MaxSnippet:      -1,
		},
	}
}

// WithBaseURL returns a copy whose relative image references are resolved
// against base. An empty or unparsable base leaves references untouched.
func (m Metadata) WithBaseURL(base string) Metadata {
	if base == "" {
		return m
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return m
	}

	resolve := func(ref string) string {
		r, err := url.Parse(ref)
		if err != nil || r.IsAbs() {
			return ref
		}
		return u.ResolveReference(r).String()
	}

	images := make([]Image, len(m.OpenGraph.Images))
	for i, img := range m.OpenGraph.Images {
		img.URL = resolve(img.URL)
		images[i] = img
	}
	m.OpenGraph.Images = images

	tw := make([]string, len(m.Twitter.Images))
	for i, ref := range m.Twitter.Images {
		tw[i] = resolve(ref)
	}
	m.Twitter.Images = tw
	m.Keywords = append([]string(nil), m.Keywords...)
	return m
}

// Directive renders r in the comma-separated form crawlers expect,
// e.g. "index, follow, max-image-preview:large".
func (r Robots) Directive() string {
	parts := make([]string, 0, 5)
	if r.Index {
		parts = append(parts, "index")
	} else {
		parts = append(parts, "noindex")
	}
	if r.Follow {
		parts = append(parts, "follow")
	} else {
		parts = append(parts, "nofollow")
	}
	if r.MaxVideoPreview != 0 {
		parts = append(parts, "max-video-preview:"+strconv.Itoa(r.MaxVideoPreview))
	}
	if r.MaxImagePreview != "" {
		parts = append(parts, "max-image-preview:"+r.MaxImagePreview)
	}
	if r.MaxSnippet != 0 {
		parts = append(parts, "max-snippet:"+strconv.Itoa(r.MaxSnippet))
	}
	return strings.Join(parts, ", ")
}

// Tags flattens the metadata into <meta> elements in head order.
// The title is rendered separately by the document shell.
func (m Metadata) Tags() []Tag {
	tags := []Tag{
		{Name: "description", Content: m.Description},
	}
	if len(m.Keywords) > 0 {
		tags = append(tags, Tag{Name: "keywords", Content: strings.Join(m.Keywords, ",")})
	}
	tags = append(tags,
		Tag{Name: "robots", Content: m.Robots.Directive()},
		Tag{Name: "googlebot", Content: m.GoogleBot.Directive()},
		Tag{Property: "og:title", Content: m.OpenGraph.Title},
		Tag{Property: "og:description", Content: m.OpenGraph.Description},
	)
	for _, img := range m.OpenGraph.Images {
		tags = append(tags, Tag{Property: "og:image", Content: img.URL})
		if img.Width > 0 {
			tags = append(tags, Tag{Property: "og:image:width", Content: strconv.Itoa(img.Width)})
		}
		if img.Height > 0 {
			tags = append(tags, Tag{Property: "og:image:height", Content: strconv.Itoa(img.Height)})
		}
		if img.Alt != "" {
			tags = append(tags, Tag{Property: "og:image:alt", Content: img.Alt})
		}
	}
	tags = append(tags,
		Tag{Property: "og:type", Content: m.OpenGraph.Type},
		Tag{Name: "twitter:card", Content: m.Twitter.Card},
		Tag{Name: "twitter:title", Content: m.Twitter.Title},
		Tag{Name: "twitter:description", Content: m.Twitter.Description},
	)
	for _, ref := range m.Twitter.Images {
		tags = append(tags, Tag{Name: "twitter:image", Content: ref})
	}
	return tags
}
