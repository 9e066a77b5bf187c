package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/guruhq/landing/scrollstep/dom"
)

// Hero is the headline block at the top of a page.
type Hero struct {
	Title    string
	Subtitle string
	CTAURL   string
	CTALabel string
}

// HeroSection renders the headline block.
func HeroSection(h Hero) g.Node {
	return Section(Class("hero"),
		Div(Class("container"),
			H1(g.Text(h.Title)),
			P(Class("hero-subtitle"), g.Text(h.Subtitle)),
			A(Class("button button-primary button-large"), Href(h.CTAURL), g.Text(h.CTALabel)),
		),
	)
}

// Feature is one card of the features grid.
type Feature struct {
	Title       string
	Description string
}

// FeaturesSection renders the features grid.
func FeaturesSection(heading string, features []Feature) g.Node {
	return Section(ID(FeaturesID), Class("features"),
		Div(Class("container"),
			H2(g.Text(heading)),
			Div(Class("feature-grid"),
				g.Group(g.Map(features, func(f Feature) g.Node {
					return Div(Class("feature-card"),
						H3(g.Text(f.Title)),
						P(g.Text(f.Description)),
					)
				})),
			),
		),
	)
}

// OneStopSolution renders the section that follows How It Works. Scrolling
// past the last step hands off to it, so it carries the attribute named by
// handOffSelector, which must be a bare attribute selector.
func OneStopSolution(handOffSelector, heading, body string, points []string) (g.Node, error) {
	attr, err := dom.MarkerAttr(handOffSelector)
	if err != nil {
		return nil, fmt.Errorf("one-stop solution: %w", err)
	}
	return Section(ID(OneStopSolutionID), Class("one-stop-solution"), g.Attr(attr),
		Div(Class("container"),
			H2(g.Text(heading)),
			P(g.Text(body)),
			Ul(Class("checklist"),
				g.Group(g.Map(points, func(p string) g.Node {
					return Li(g.Text(p))
				})),
			),
		),
	), nil
}
