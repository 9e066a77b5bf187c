package landing

import (
	"net/http"
	"strings"

	"github.com/angelofallars/htmx-go"
)

// componentFor picks the component to render for r. htmx requests render the
// component named after HX-Target; when the page has no such component the
// full Page is rendered and the response must retarget the body.
func componentFor(r *http.Request, node *PageNode) (name string, retarget bool) {
	if !htmx.IsHTMX(r) {
		return pageComponent, false
	}
	target, ok := htmx.GetTarget(r)
	if !ok || target == "" {
		return pageComponent, true
	}
	name = mixedCase(target)
	if _, ok := node.Components[name]; ok && name != "" {
		return name, false
	}
	return pageComponent, true
}

// mixedCase turns an element id into a method name: "mobile-menu" becomes
// "MobileMenu". Ids containing spaces cannot be hx-targets and yield "".
func mixedCase(s string) string {
	if s == "" || strings.Contains(s, " ") {
		return ""
	}
	parts := strings.Split(s, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, "")
}

// VaryHTMX marks page responses as depending on the htmx request headers so
// caches keep full pages and partials apart.
func VaryHTMX(next http.Handler, _ *PageNode) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "HX-Request")
		w.Header().Add("Vary", "HX-Target")
		next.ServeHTTP(w, r)
	})
}
