package landing

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router registers page handlers.
type Router interface {
	HandleMethod(method, pattern string, handler http.Handler)
}

type chiRouter struct {
	router chi.Router
}

// NewChiRouter adapts a chi router.
func NewChiRouter(r chi.Router) Router {
	return &chiRouter{router: r}
}

func (r *chiRouter) HandleMethod(method, pattern string, handler http.Handler) {
	if method == methodAll || method == "" {
		r.router.Handle(pattern, handler)
		return
	}
	r.router.Method(method, pattern, handler)
}

type stdRouter struct {
	mux *http.ServeMux
}

// NewRouter adapts an [http.ServeMux]. A nil mux uses
// [http.DefaultServeMux]. The root path "/" is registered as "/{$}" so it
// does not swallow every unmatched request.
func NewRouter(mux *http.ServeMux) Router {
	if mux == nil {
		mux = http.DefaultServeMux
	}
	return &stdRouter{mux: mux}
}

func (r *stdRouter) HandleMethod(method, pattern string, handler http.Handler) {
	if pattern == "/" {
		pattern = "/{$}"
	}
	if method != methodAll && method != "" {
		pattern = method + " " + pattern
	}
	r.mux.Handle(pattern, handler)
}
