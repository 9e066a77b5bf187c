package landing

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/a-h/templ"
	"github.com/angelofallars/htmx-go"
)

// MiddlewareFunc wraps the handler of a single page.
type MiddlewareFunc func(http.Handler, *PageNode) http.Handler

// Site mounts page trees onto a router.
type Site struct {
	onError     func(http.ResponseWriter, *http.Request, error)
	middlewares []MiddlewareFunc
	logger      *slog.Logger
}

// Option configures a [Site].
type Option func(*Site)

// New creates a Site. Without options, errors are logged and answered with
// their HTTPError status or 500.
func New(options ...Option) *Site {
	s := &Site{logger: slog.Default()}
	s.onError = s.defaultErrorHandler
	for _, opt := range options {
		opt(s)
	}
	return s
}

// WithErrorHandler replaces the default error handler.
func WithErrorHandler(onError func(http.ResponseWriter, *http.Request, error)) Option {
	return func(s *Site) {
		s.onError = onError
	}
}

// WithMiddlewares adds middlewares applied to every page, outermost last.
func WithMiddlewares(middlewares ...MiddlewareFunc) Option {
	return func(s *Site) {
		s.middlewares = append(s.middlewares, middlewares...)
	}
}

// WithLogger sets the logger used by the default error handler.
func WithLogger(l *slog.Logger) Option {
	return func(s *Site) {
		s.logger = l
	}
}

// Mount parses the page tree rooted at pages and registers a handler for
// every page that has components or implements ServeHTTP. deps are made
// available to component methods by type.
func (s *Site) Mount(router Router, pages any, route, title string, deps ...any) (*PageNode, error) {
	pc, err := parsePageTree(route, pages, deps...)
	if err != nil {
		return nil, err
	}
	pc.root.Title = title
	if err := s.registerPageNode(router, pc, pc.root); err != nil {
		return nil, err
	}
	return pc.root, nil
}

func (s *Site) registerPageNode(router Router, pc *parseContext, node *PageNode) error {
	for _, child := range node.Children {
		if err := s.registerPageNode(router, pc, child); err != nil {
			return err
		}
	}
	handler, err := s.buildHandler(pc, node)
	if err != nil {
		return err
	}
	if handler == nil {
		return nil
	}
	handler = withParseContext(pc)(handler, node)
	for _, mw := range s.middlewares {
		handler = mw(handler, node)
	}
	router.HandleMethod(node.Method, node.FullRoute(), handler)
	return nil
}

type errHandler interface {
	ServeHTTP(http.ResponseWriter, *http.Request) error
}

var (
	errorType      = reflect.TypeFor[error]()
	handlerType    = reflect.TypeFor[http.Handler]()
	errHandlerType = reflect.TypeFor[errHandler]()
	componentType  = reflect.TypeFor[templ.Component]()
)

func (s *Site) buildHandler(pc *parseContext, node *PageNode) (http.Handler, error) {
	if h := s.asHandler(node.Value); h != nil {
		return h, nil
	}
	if len(node.Components) == 0 {
		return nil, nil
	}
	if _, ok := node.Components[pageComponent]; !ok {
		return nil, fmt.Errorf("page %s has components but no %s method", node.Name, pageComponent)
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name, retarget := componentFor(r, node)
		comp, err := pc.callComponent(node, node.Components[name], r)
		if err != nil {
			s.onError(w, r, err)
			return
		}

		// Render into a buffer so a failing component does not leave a
		// half-written page behind.
		buf := getBuffer()
		defer releaseBuffer(buf)
		if err := comp.Render(r.Context(), buf); err != nil {
			s.onError(w, r, fmt.Errorf("rendering %s.%s: %w", node.Name, name, err))
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if retarget {
			if err := htmx.NewResponse().Retarget("body").Write(w); err != nil {
				s.onError(w, r, err)
				return
			}
		}
		_, _ = buf.WriteTo(w)
	}), nil
}

func (s *Site) asHandler(v reflect.Value) http.Handler {
	if !v.IsValid() {
		return nil
	}
	if v.Type().Implements(handlerType) {
		return v.Interface().(http.Handler)
	}
	if v.Type().Implements(errHandlerType) {
		h := v.Interface().(errHandler)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := h.ServeHTTP(w, r); err != nil {
				s.onError(w, r, err)
			}
		})
	}
	return nil
}

func (s *Site) defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		s.logger.Warn("request failed", "path", r.URL.Path, "status", httpErr.Code, "error", err)
		http.Error(w, httpErr.Message, httpErr.Code)
		return
	}
	s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
