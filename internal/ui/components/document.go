package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/cosmicmystery/cosmicsite/internal/seo"
)

// DatastarScriptURL is the datastar client bundle loaded by server-rendered pages.
const DatastarScriptURL = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"

// Shell configures the outer document.
type Shell struct {
	Meta           seo.Metadata
	StructuredData []byte
	StaticPath     func(string) string
	// Scripts are extra script URLs appended to the head, deferred.
	Scripts []string
	// Datastar loads the datastar client bundle.
	Datastar bool
	// ReloadURL, when set, is held open by the page and reloads it on
	// demand. Requires Datastar.
	ReloadURL string
}

// Document renders the html/head/body shell around body.
func Document(s Shell, bodyAttrs []g.Node, body ...g.Node) g.Node {
	head := []g.Node{
		h.Meta(h.Charset("utf-8")),
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
		g.El("title", g.Text(s.Meta.Title)),
		g.Map(s.Meta.Tags(), metaTag),
		h.Link(h.Rel("stylesheet"), h.Href(s.StaticPath("css/site.css"))),
		g.El("noscript", g.El("style", g.Raw(".hero-content{opacity:1;transform:none}"))),
	}
	if s.Datastar {
		head = append(head, h.Script(h.Type("module"), h.Src(DatastarScriptURL)))
	}
	for _, src := range s.Scripts {
		head = append(head, h.Script(h.Src(src), h.Defer()))
	}
	if len(s.StructuredData) > 0 {
		head = append(head, h.Script(
			h.Type("application/ld+json"),
			h.ID("schema-org"),
			g.Raw(string(s.StructuredData)),
		))
	}

	if s.Datastar && s.ReloadURL != "" {
		body = append(body, h.Div(h.ID("live-reload"), g.Attr("hidden"), g.Attr("data-init", "@get('"+s.ReloadURL+"')")))
	}

	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(head...),
			h.Body(append(bodyAttrs, body...)...),
		),
	)
}

func metaTag(t seo.Tag) g.Node {
	if t.Property != "" {
		return h.Meta(g.Attr("property", t.Property), h.Content(t.Content))
	}
	return h.Meta(h.Name(t.Name), h.Content(t.Content))
}
