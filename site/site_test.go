package site

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guruhq/landing"
	"github.com/guruhq/landing/howitworks"
	"github.com/guruhq/landing/scrollstep"
)

var testSettings = &Settings{
	SignInURL:        "https://app.example.com/login",
	FindTutorURL:     "https://app.example.com/find",
	StartTeachingURL: "https://app.example.com/teach",
	Carousel:         scrollstep.DefaultConfig(0),
}

func newTestSite(t *testing.T) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	root, err := Mount(landing.New(), landing.NewChiRouter(r), howitworks.DefaultCatalog(), testSettings)
	require.NoError(t, err)
	require.Len(t, root.Children, 2)
	return r
}

func get(h http.Handler, target string, headers ...string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	for i := 0; i+1 < len(headers); i += 2 {
		r.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func TestPages(t *testing.T) {
	h := newTestSite(t)
	tests := []struct {
		target string
		want   []string
		steps  int
	}{
		{
			target: "/",
			want: []string{
				"<title>Find a Tutor | Guru</title>",
				`href="/tutor">For Tutors</a>`,
				`href="https://app.example.com/find"`,
				`hx-get="/?menu=open"`,
			},
			steps: 4,
		},
		{
			target: "/tutor",
			want: []string{
				"<title>Start Teaching | Guru</title>",
				`href="/">For Students</a>`,
				`href="https://app.example.com/teach"`,
				`hx-get="/tutor?menu=open"`,
				"Join our community of expert tutors",
			},
			steps: 5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(h, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			for _, want := range tt.want {
				assert.Contains(t, body, want)
			}
			assert.Equal(t, tt.steps, strings.Count(body, "data-step-panel"))
			assert.Contains(t, body, `href="https://app.example.com/login"`)
		})
	}
}

func TestMobileMenuPartial(t *testing.T) {
	h := newTestSite(t)

	rec := get(h, "/tutor?menu=open", "HX-Request", "true", "HX-Target", "mobile-menu")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, `<div class="mobile-menu"`), body)
	assert.Contains(t, body, `hx-get="/tutor?menu=closed"`)
	assert.NotContains(t, body, "<html")

	rec = get(h, "/tutor?menu=closed", "HX-Request", "true", "HX-Target", "mobile-menu")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHowItWorksPartial(t *testing.T) {
	h := newTestSite(t)
	tests := []struct {
		query  string
		active string
	}{
		{query: "?step=3", active: `data-index="3"`},
		{query: "?step=42", active: `data-index="4"`},
		{query: "?step=-1", active: `data-index="0"`},
		{query: "?step=abc", active: `data-index="0"`},
		{query: "", active: `data-index="0"`},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := get(h, "/tutor"+tt.query, "HX-Request", "true", "HX-Target", "how-it-works")
			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.True(t, strings.HasPrefix(body, `<section id="how-it-works"`), body)
			i := strings.Index(body, `aria-current="step"`)
			require.Positive(t, i)
			dot := body[strings.LastIndex(body[:i], "<a "):i]
			assert.Contains(t, dot, tt.active)
		})
	}
}

func TestUnknownTargetRetargetsBody(t *testing.T) {
	h := newTestSite(t)
	rec := get(h, "/", "HX-Request", "true", "HX-Target", "features")
	assert.Equal(t, "body", rec.Header().Get("HX-Retarget"))
	assert.Contains(t, rec.Body.String(), "<html")
}

func TestActiveStep(t *testing.T) {
	tests := []struct {
		query string
		n     int
		want  int
	}{
		{"step=2", 5, 2},
		{"step=9", 5, 4},
		{"step=-2", 5, 0},
		{"step=x", 5, 0},
		{"", 5, 0},
		{"step=1", 0, 0},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/?"+tt.query, http.NoBody)
		assert.Equal(t, tt.want, activeStep(r, tt.n), "query %q n=%d", tt.query, tt.n)
	}
}

func TestCustomHandOffSelector(t *testing.T) {
	settings := *testSettings
	settings.Carousel.HandOffSelector = "[data-why-us]"
	r := chi.NewRouter()
	_, err := Mount(landing.New(), landing.NewChiRouter(r), howitworks.DefaultCatalog(), &settings)
	require.NoError(t, err)

	rec := get(r, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `data-handoff="[data-why-us]"`)
	assert.Contains(t, body, `class="one-stop-solution" data-why-us>`)
	assert.NotContains(t, body, "data-one-stop-solution")
}
