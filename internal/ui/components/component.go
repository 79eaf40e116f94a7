// Package components renders the landing page markup.
//
// Markup is assembled from gomponents nodes and exposed as templ.Component
// so handlers can Render it directly or stream it through datastar patches.
package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Component adapts a node tree to templ.Component.
func Component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}
