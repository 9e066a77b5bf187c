package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Section ids the navigation links scroll to.
const (
	FeaturesID        = "features"
	HowItWorksID      = "how-it-works"
	OneStopSolutionID = "one-stop-solution"
	MobileMenuID      = "mobile-menu"
)

// NavLink is an in-page link to a section.
type NavLink struct {
	Label  string
	Anchor string
}

// NavLinks are shown in the navbar and the mobile menu.
var NavLinks = []NavLink{
	{Label: "Features", Anchor: FeaturesID},
	{Label: "How it Works", Anchor: HowItWorksID},
	{Label: "Why Us", Anchor: OneStopSolutionID},
}

// Navigation holds what the navbar needs for one audience.
type Navigation struct {
	// PageURL is the route of the current page. The mobile menu is loaded
	// from and closed through it.
	PageURL     string
	ToggleURL   string
	ToggleLabel string
	SignInURL   string
	CTAURL      string
	CTALabel    string
}

func (n Navigation) menuURL(open bool) string {
	if open {
		return n.PageURL + "?menu=open"
	}
	return n.PageURL + "?menu=closed"
}

// Navbar renders the fixed top bar.
func Navbar(n Navigation) g.Node {
	links := make([]g.Node, 0, len(NavLinks))
	for _, l := range NavLinks {
		links = append(links, A(Class("nav-link"), Href("#"+l.Anchor), g.Text(l.Label)))
	}
	return Header(Class("navbar"),
		Nav(Class("container navbar-inner"), Aria("label", "Main"),
			A(Class("brand"), Href("/"), g.Text("Guru")),
			Div(Class("nav-links"), g.Group(links)),
			Div(Class("nav-actions"),
				A(Class("nav-link toggle"), Href(n.ToggleURL), g.Text(n.ToggleLabel)),
				A(Class("button button-ghost"), Href(n.SignInURL), g.Text("Sign In")),
				A(Class("button button-primary"), Href(n.CTAURL), g.Text(n.CTALabel)),
			),
			Button(Class("hamburger"), Type("button"),
				Aria("label", "Open menu"),
				Aria("controls", MobileMenuID),
				hx("get", n.menuURL(true)),
				hx("target", "#"+MobileMenuID),
				hx("swap", "innerHTML"),
				Span(), Span(), Span(),
			),
		),
	)
}

// MenuPortal is the empty mount point the mobile menu is swapped into.
func MenuPortal() g.Node {
	return Div(ID(MobileMenuID), Aria("live", "polite"))
}

// MobileMenu renders the contents of the menu portal. A closed menu renders
// nothing so swapping it in empties the portal.
func MobileMenu(n Navigation, open bool) g.Node {
	if !open {
		return g.Group(nil)
	}
	closeAttrs := func(swap string) g.Node {
		return g.Group([]g.Node{
			hx("get", n.menuURL(false)),
			hx("target", "#"+MobileMenuID),
			hx("swap", swap),
		})
	}
	items := make([]g.Node, 0, len(NavLinks))
	for _, l := range NavLinks {
		items = append(items, Li(
			A(Class("mobile-link"), Href("#"+l.Anchor),
				closeAttrs("innerHTML show:#"+l.Anchor+":top"),
				g.Text(l.Label),
			),
		))
	}
	return Div(Class("mobile-menu"), Role("dialog"), Aria("modal", "true"),
		Div(Class("mobile-menu-backdrop"), g.Attr("data-menu-backdrop"),
			closeAttrs("innerHTML"),
			hx("trigger", "click target:[data-menu-backdrop]"),
		),
		Nav(Class("mobile-menu-panel"), Aria("label", "Mobile"),
			Button(Class("mobile-menu-close"), Type("button"), Aria("label", "Close menu"),
				closeAttrs("innerHTML"),
				g.Text("×"),
			),
			Ul(g.Group(items)),
			A(Class("mobile-link toggle"), Href(n.ToggleURL), g.Text(n.ToggleLabel)),
			A(Class("button button-ghost"), Href(n.SignInURL), g.Text("Sign In")),
			A(Class("button button-primary"), Href(n.CTAURL), g.Text(n.CTALabel)),
		),
	)
}
