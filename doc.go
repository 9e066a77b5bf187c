// Package landing mounts the Guru marketing pages from a tree of structs.
//
// Each struct field tagged with `route:"[METHOD] /path Title"` becomes a page.
// Methods on the page type that return a [templ.Component] are its
// components: a plain request renders Page, an htmx request renders the
// component named after the HX-Target header ("mobile-menu" renders
// MobileMenu). Component arguments are filled from the request, the page
// node, and the dependencies passed to [Site.Mount].
package landing
