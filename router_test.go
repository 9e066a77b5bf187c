package landing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func echo(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	})
}

func TestRouters(t *testing.T) {
	mux := http.NewServeMux()
	chiMux := chi.NewRouter()
	routers := map[string]struct {
		router  Router
		handler http.Handler
	}{
		"std": {NewRouter(mux), mux},
		"chi": {NewChiRouter(chiMux), chiMux},
	}
	for name, rt := range routers {
		t.Run(name, func(t *testing.T) {
			rt.router.HandleMethod(http.MethodGet, "/", echo("root"))
			rt.router.HandleMethod(http.MethodPost, "/steps", echo("post"))
			rt.router.HandleMethod(methodAll, "/any", echo("any"))

			tests := []struct {
				method, path string
				wantCode     int
				wantBody     string
			}{
				{http.MethodGet, "/", http.StatusOK, "root"},
				{http.MethodPost, "/steps", http.StatusOK, "post"},
				{http.MethodGet, "/steps", http.StatusMethodNotAllowed, ""},
				{http.MethodDelete, "/any", http.StatusOK, "any"},
				{http.MethodGet, "/missing", http.StatusNotFound, ""},
			}
			for _, tt := range tests {
				rec := httptest.NewRecorder()
				rt.handler.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, http.NoBody))
				if rec.Code != tt.wantCode {
					t.Errorf("%s %s: status %d, want %d", tt.method, tt.path, rec.Code, tt.wantCode)
				}
				if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
					t.Errorf("%s %s: body %q, want %q", tt.method, tt.path, rec.Body.String(), tt.wantBody)
				}
			}
		})
	}
}
