package landing

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/jackielii/ctxkey"
)

var pcCtx = ctxkey.New[*parseContext]("landing.parseContext", nil)

func withParseContext(pc *parseContext) MiddlewareFunc {
	return func(next http.Handler, _ *PageNode) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(pcCtx.WithValue(r.Context(), pc)))
		})
	}
}

// URLFor returns the route of the page whose type matches page, for use by
// components while handling a request. page may also be a
// func(*PageNode) bool to match by other criteria.
func URLFor(ctx context.Context, page any) (string, error) {
	pc := pcCtx.Value(ctx)
	if pc == nil {
		return "", errors.New("urlfor: no mounted page tree in context")
	}
	if match, ok := page.(func(*PageNode) bool); ok {
		for node := range pc.root.All() {
			if match(node) {
				return node.FullRoute(), nil
			}
		}
		return "", errors.New("urlfor: no page node matched")
	}
	want := pointerType(reflect.TypeOf(page))
	for node := range pc.root.All() {
		if node.Value.Type() == want {
			return node.FullRoute(), nil
		}
	}
	return "", fmt.Errorf("urlfor: no page node found for %s", want)
}

func pointerType(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Ptr {
		return t
	}
	return reflect.PointerTo(t)
}
