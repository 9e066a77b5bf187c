package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var features = []Feature{
	{Title: "Verified Tutors", Description: "Every tutor's qualifications are checked before their profile goes live."},
	{Title: "Smart Matching", Description: "Requests are matched on subject, level, schedule and budget."},
	{Title: "Direct Messaging", Description: "Students, parents and tutors talk directly before booking anything."},
	{Title: "Flexible Scheduling", Description: "Sessions fit around school, work and everything else."},
}

var oneStopPoints = []string{
	"Find, message and book tutors in one place",
	"Manage lessons and progress from a single dashboard",
	"Secure payments handled for you",
}

// LandingPage is everything one audience's landing page shows.
type LandingPage struct {
	Title       string
	Nav         Navigation
	Hero        Hero
	Walkthrough Walkthrough
}

// Landing renders a full landing page.
func Landing(p LandingPage) (g.Node, error) {
	steps, err := HowItWorks(p.Walkthrough)
	if err != nil {
		return nil, err
	}
	oneStop, err := OneStopSolution(p.Walkthrough.Carousel.HandOffSelector,
		"Your One-Stop Solution",
		"Guru brings the whole tutoring journey together so nothing falls through the cracks.",
		oneStopPoints)
	if err != nil {
		return nil, err
	}
	return Document(p.Title,
		Navbar(p.Nav),
		Main(
			HeroSection(p.Hero),
			FeaturesSection("Everything you need to learn and teach", features),
			steps,
			oneStop,
		),
		PageFooter(),
	), nil
}
