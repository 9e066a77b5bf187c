// Package howitworks holds the step content shown by the How It Works
// carousel for each audience of the landing page.
package howitworks

import (
	"fmt"
	"slices"
)

// Audience selects the landing page variant.
type Audience string

const (
	Students Audience = "student"
	Tutors   Audience = "tutor"
)

// Audiences lists every known audience in display order.
var Audiences = []Audience{Students, Tutors}

// ParseAudience accepts "student", "students", "tutor" or "tutors".
func ParseAudience(s string) (Audience, error) {
	switch s {
	case "student", "students":
		return Students, nil
	case "tutor", "tutors":
		return Tutors, nil
	}
	return "", fmt.Errorf("unknown audience %q", s)
}

// Step is one entry of the carousel. Description may contain inline markdown.
type Step struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Image       string `yaml:"image" json:"image"`
}

// Catalog maps each audience to its ordered steps. It is built once at
// startup and only read afterwards.
type Catalog struct {
	steps map[Audience][]Step
}

// NewCatalog validates and copies steps.
func NewCatalog(steps map[Audience][]Step) (*Catalog, error) {
	c := &Catalog{steps: make(map[Audience][]Step, len(steps))}
	for aud, list := range steps {
		if !slices.Contains(Audiences, aud) {
			return nil, fmt.Errorf("unknown audience %q", aud)
		}
		if len(list) == 0 {
			return nil, fmt.Errorf("audience %q has no steps", aud)
		}
		for i, s := range list {
			if s.Title == "" {
				return nil, fmt.Errorf("audience %q step %d: title is required", aud, i+1)
			}
		}
		c.steps[aud] = slices.Clone(list)
	}
	for _, aud := range Audiences {
		if _, ok := c.steps[aud]; !ok {
			return nil, fmt.Errorf("audience %q is missing", aud)
		}
	}
	return c, nil
}

// Steps returns a copy of the steps for aud.
func (c *Catalog) Steps(aud Audience) []Step {
	return slices.Clone(c.steps[aud])
}

// Len is the number of steps for aud.
func (c *Catalog) Len(aud Audience) int {
	return len(c.steps[aud])
}

// Image paths served from the static assets directory.
const (
	imageTutorSignup      = "/static/images/tutor_signup.png"
	imageGetVerified      = "/static/images/get_verified.png"
	imageStudentDashboard = "/static/images/student_dashboard.png"
	imageTutorDashboard   = "/static/images/tutor_dashboard.png"
)

// DefaultCatalog returns the built-in steps.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(map[Audience][]Step{
		Tutors: {
			{
				Title:       "Sign Up",
				Description: "Create your tutor profile in minutes. Add your qualifications, teaching experience, and subjects you specialize in.",
				Image:       imageTutorSignup,
			},
			{
				Title:       "Get Verified",
				Description: "Our team reviews your credentials to ensure high-quality standards. Most applications are verified within **24 hours**.",
				Image:       imageGetVerified,
			},
			{
				Title:       "Start Looking for Your Next Student",
				Description: "Browse through student requests that match your expertise. Our smart matching system helps find the perfect fit.",
				Image:       imageTutorDashboard,
			},
			{
				Title:       "Chat with Parents/Students",
				Description: "Connect directly with students or parents to understand their needs and discuss how you can help them succeed.",
				Image:       imageStudentDashboard,
			},
			{
				Title:       "Share Your Knowledge!",
				Description: "Start teaching and making a difference in students' lives while earning competitive rates on your own schedule.",
				Image:       imageTutorDashboard,
			},
		},
		Students: {
			{
				Title:       "Tell Us What You Need",
				Description: "Post the subject, level and schedule you are looking for. It takes less than two minutes.",
				Image:       imageStudentDashboard,
			},
			{
				Title:       "Get Matched",
				Description: "Our matching system suggests *verified* tutors who fit your goals and budget.",
				Image:       imageTutorDashboard,
			},
			{
				Title:       "Chat Before You Book",
				Description: "Message tutors directly to ask questions and agree on a plan before the first lesson.",
				Image:       imageStudentDashboard,
			},
			{
				Title:       "Start Learning",
				Description: "Book sessions that fit your week and track your progress from the dashboard.",
				Image:       imageStudentDashboard,
			},
		},
	})
	if err != nil {
		panic(fmt.Sprintf("howitworks: invalid default catalog: %v", err))
	}
	return c
}
