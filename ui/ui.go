// Package ui renders the Guru landing pages as gomponents nodes.
package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Component adapts a node to a templ.Component so the page tree can render it.
func Component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

func hx(name, value string) g.Node {
	return g.Attr("hx-"+name, value)
}
