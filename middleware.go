package landing

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs one line per request with its status and duration.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.LogAttrs(r.Context(), slog.LevelInfo, "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())),
				slog.Bool("htmx", r.Header.Get("HX-Request") == "true"),
			)
		})
	}
}

// WrapMiddleware converts a standard middleware to a MiddlewareFunc.
func WrapMiddleware(mw func(http.Handler) http.Handler) MiddlewareFunc {
	return func(next http.Handler, _ *PageNode) http.Handler {
		return mw(next)
	}
}

// LogRoutes logs every page of the tree that serves requests.
func LogRoutes(logger *slog.Logger, root *PageNode) {
	for node := range root.All() {
		if len(node.Components) == 0 && !node.Value.Type().Implements(handlerType) && !node.Value.Type().Implements(errHandlerType) {
			continue
		}
		logger.Info("page", "name", node.Name, "method", node.Method, "route", node.FullRoute(), "title", node.Title)
	}
}
