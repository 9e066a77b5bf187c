package ui

import (
	"fmt"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/guruhq/landing/howitworks"
	"github.com/guruhq/landing/scrollstep"
	"github.com/guruhq/landing/scrollstep/dom"
)

// Walkthrough is the data behind the How It Works section.
type Walkthrough struct {
	Heading string
	Intro   string
	Steps   []howitworks.Step
	// Active is the step rendered visible before the browser binding takes
	// over, and the only one without it.
	Active   int
	PageURL  string
	Carousel scrollstep.Config
}

// StepURL links to step i of the section on the current page.
func (w Walkthrough) StepURL(i int) string {
	return fmt.Sprintf("%s?step=%d", w.PageURL, i)
}

// marker turns a "[data-x]" selector into the bare attribute it matches.
func marker(selector string) g.Node {
	return g.Attr(strings.Trim(selector, "[]"))
}

func hiddenUnless(visible bool) g.Node {
	return g.If(!visible, g.Attr("hidden"))
}

// HowItWorks renders the step carousel. Both the pinned desktop layout and
// the small viewport pager are rendered; the stylesheet shows one of them.
func HowItWorks(w Walkthrough) (g.Node, error) {
	if len(w.Steps) == 0 {
		return nil, fmt.Errorf("how it works: no steps")
	}
	active := min(max(w.Active, 0), len(w.Steps)-1)

	var panels, images, cards, dots []g.Node
	for i, step := range w.Steps {
		desc, err := step.DescriptionHTML()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		number := Div(Class("step-number"), g.Text(strconv.Itoa(i+1)))

		panels = append(panels, Div(Class("step-panel"), marker(dom.PanelSelector),
			hiddenUnless(i == active),
			number,
			Div(
				H3(g.Text(step.Title)),
				Div(Class("step-description"), g.Raw(desc)),
			),
		))
		images = append(images, Img(Class("step-image"), marker(dom.ImageSelector),
			Src(step.Image), Alt(step.Title), g.Attr("loading", "lazy"),
			hiddenUnless(i == active),
		))
		cards = append(cards, Article(Class("step-card"),
			number,
			H3(g.Text(step.Title)),
			Div(Class("step-description"), g.Raw(desc)),
			Img(Src(step.Image), Alt(step.Title), g.Attr("loading", "lazy")),
		))
		dots = append(dots, A(Class("step-dot"), marker(dom.DotSelector),
			g.Attr(dom.AttrIndex, strconv.Itoa(i)),
			Href(w.StepURL(i)+"#"+HowItWorksID),
			hx("get", w.StepURL(i)),
			hx("target", "#"+HowItWorksID),
			hx("swap", "outerHTML"),
			Aria("label", fmt.Sprintf("Go to step %d", i+1)),
			g.If(i == active, Aria("current", "step")),
		))
	}

	c := w.Carousel
	return Section(ID(HowItWorksID), Class("how-it-works"), marker(dom.SectionSelector),
		g.Attr(dom.AttrThreshold, strconv.FormatFloat(c.Threshold, 'f', -1, 64)),
		g.Attr(dom.AttrCooldown, c.Cooldown.String()),
		g.Attr(dom.AttrBreakpoint, strconv.Itoa(c.Breakpoint)),
		g.Attr(dom.AttrHandOff, c.HandOffSelector),
		g.Attr(dom.AttrSmallIntersection, strconv.FormatFloat(c.SmallIntersection, 'f', -1, 64)),
		g.Attr(dom.AttrLargeIntersection, strconv.FormatFloat(c.LargeIntersection, 'f', -1, 64)),
		g.Attr(dom.AttrDirection, scrollstep.Down.String()),
		g.Attr(dom.AttrArmed, "false"),
		Div(Class("container"),
			Div(Class("section-intro"),
				H2(g.Text(w.Heading)),
				P(g.Text(w.Intro)),
			),
			Div(Class("hiw-desktop"),
				Div(Class("device-frame"),
					Div(Class("device-screen"), g.Group(images)),
				),
				Div(Class("step-panels"), g.Group(panels)),
			),
			Div(Class("hiw-mobile"),
				Button(Class("pager-button"), marker(dom.PrevSelector), Type("button"),
					Aria("label", "Previous step"), g.Text("‹")),
				Div(Class("step-track"), marker(dom.TrackSelector), g.Group(cards)),
				Button(Class("pager-button"), marker(dom.NextSelector), Type("button"),
					Aria("label", "Next step"), g.Text("›")),
			),
			Nav(Class("step-dots"), Aria("label", "Steps"), g.Group(dots)),
		),
		Div(Class("step-spacer"), marker(dom.SpacerSelector), Aria("hidden", "true"), g.Attr("hidden")),
	), nil
}
