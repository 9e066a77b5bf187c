//lint:file-ignore U1000 page tree fields are read through reflection

// Package site is the page tree of the Guru landing site: a page per
// audience, each with its mobile menu and How It Works section as htmx
// partials.
package site

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/guruhq/landing"
	"github.com/guruhq/landing/howitworks"
	"github.com/guruhq/landing/scrollstep"
	"github.com/guruhq/landing/ui"
)

// Settings are the site-wide values pages are rendered with.
type Settings struct {
	SignInURL        string
	FindTutorURL     string
	StartTeachingURL string
	Carousel         scrollstep.Config
}

// Pages is the root of the page tree.
type Pages struct {
	students studentPage `route:"GET / Find a Tutor"`
	tutors   tutorPage   `route:"GET /tutor Start Teaching"`
}

// Mount registers the pages on router. catalog and settings are handed to
// every component.
func Mount(s *landing.Site, router landing.Router, catalog *howitworks.Catalog, settings *Settings) (*landing.PageNode, error) {
	return s.Mount(router, Pages{}, "/", "Guru", catalog, settings)
}

type studentPage struct{}

func (studentPage) Page(r *http.Request, c *howitworks.Catalog, s *Settings) (templ.Component, error) {
	return newView(r, howitworks.Students, c, s).page()
}

func (studentPage) MobileMenu(r *http.Request, c *howitworks.Catalog, s *Settings) (templ.Component, error) {
	return newView(r, howitworks.Students, c, s).mobileMenu()
}

func (studentPage) HowItWorks(r *http.Request, c *howitworks.Catalog, s *Settings) (templ.Component, error) {
	return newView(r, howitworks.Students, c, s).howItWorks()
}

type tutorPage struct{}

func (tutorPage) Page(r *http.Request, c *howitworks.Catalog, s *Settings) (templ.Component, error) {
	return newView(r, howitworks.Tutors, c, s).page()
}

func (tutorPage) MobileMenu(r *http.Request, c *howitworks.Catalog, s *Settings) (templ.Component, error) {
	return newView(r, howitworks.Tutors, c, s).mobileMenu()
}

func (tutorPage) HowItWorks(r *http.Request, c *howitworks.Catalog, s *Settings) (templ.Component, error) {
	return newView(r, howitworks.Tutors, c, s).howItWorks()
}

// wording holds the audience specific text.
type wording struct {
	title    string
	hero     ui.Hero
	intro    string
	ctaLabel string
	toggle   string
}

var wordings = map[howitworks.Audience]wording{
	howitworks.Students: {
		title: "Find a Tutor | Guru",
		hero: ui.Hero{
			Title:    "Find the tutor who gets you",
			Subtitle: "Verified tutors for every subject and level, matched to your goals.",
		},
		intro:    "Find the right tutor in a few simple steps",
		ctaLabel: "Find a Tutor",
		toggle:   "For Tutors",
	},
	howitworks.Tutors: {
		title: "Start Teaching | Guru",
		hero: ui.Hero{
			Title:    "Teach what you love",
			Subtitle: "Reach students who need your expertise and teach on your own schedule.",
		},
		intro:    "Join our community of expert tutors in just a few simple steps",
		ctaLabel: "Start Teaching",
		toggle:   "For Students",
	},
}

type view struct {
	r        *http.Request
	audience howitworks.Audience
	catalog  *howitworks.Catalog
	settings *Settings
	words    wording
}

func newView(r *http.Request, aud howitworks.Audience, c *howitworks.Catalog, s *Settings) view {
	return view{r: r, audience: aud, catalog: c, settings: s, words: wordings[aud]}
}

func (v view) other() any {
	if v.audience == howitworks.Tutors {
		return studentPage{}
	}
	return tutorPage{}
}

func (v view) self() any {
	if v.audience == howitworks.Tutors {
		return tutorPage{}
	}
	return studentPage{}
}

func (v view) ctaURL() string {
	if v.audience == howitworks.Tutors {
		return v.settings.StartTeachingURL
	}
	return v.settings.FindTutorURL
}

func (v view) navigation() (ui.Navigation, error) {
	self, err := landing.URLFor(v.r.Context(), v.self())
	if err != nil {
		return ui.Navigation{}, err
	}
	other, err := landing.URLFor(v.r.Context(), v.other())
	if err != nil {
		return ui.Navigation{}, err
	}
	return ui.Navigation{
		PageURL:     self,
		ToggleURL:   other,
		ToggleLabel: v.words.toggle,
		SignInURL:   v.settings.SignInURL,
		CTAURL:      v.ctaURL(),
		CTALabel:    v.words.ctaLabel,
	}, nil
}

func (v view) walkthrough(pageURL string) ui.Walkthrough {
	steps := v.catalog.Steps(v.audience)
	cfg := v.settings.Carousel
	cfg.StepCount = len(steps)
	return ui.Walkthrough{
		Heading:  "How It Works",
		Intro:    v.words.intro,
		Steps:    steps,
		Active:   activeStep(v.r, len(steps)),
		PageURL:  pageURL,
		Carousel: cfg,
	}
}

func (v view) page() (templ.Component, error) {
	nav, err := v.navigation()
	if err != nil {
		return nil, err
	}
	hero := v.words.hero
	hero.CTAURL, hero.CTALabel = nav.CTAURL, nav.CTALabel
	n, err := ui.Landing(ui.LandingPage{
		Title:       v.words.title,
		Nav:         nav,
		Hero:        hero,
		Walkthrough: v.walkthrough(nav.PageURL),
	})
	if err != nil {
		return nil, fmt.Errorf("%s page: %w", v.audience, err)
	}
	return ui.Component(n), nil
}

func (v view) mobileMenu() (templ.Component, error) {
	nav, err := v.navigation()
	if err != nil {
		return nil, err
	}
	open := v.r.URL.Query().Get("menu") != "closed"
	return ui.Component(ui.MobileMenu(nav, open)), nil
}

func (v view) howItWorks() (templ.Component, error) {
	self, err := landing.URLFor(v.r.Context(), v.self())
	if err != nil {
		return nil, err
	}
	n, err := ui.HowItWorks(v.walkthrough(self))
	if err != nil {
		return nil, err
	}
	return ui.Component(n), nil
}

// activeStep reads ?step= and clamps it into [0, n). Anything unparsable is
// step 0.
func activeStep(r *http.Request, n int) int {
	i, err := strconv.Atoi(r.URL.Query().Get("step"))
	if err != nil || n == 0 {
		return 0
	}
	return min(max(i, 0), n-1)
}
