package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Asset paths under /static.
const (
	StylesheetPath = "/static/site.css"
	HTMXPath       = "/static/htmx.min.js"
	WasmExecPath   = "/static/wasm_exec.js"
	WasmPath       = "/static/howitworks.wasm"
)

const htmxConfig = `{"scrollBehavior":"smooth","defaultSwapStyle":"innerHTML"}`

const wasmBoot = `if (window.WebAssembly && window.Go) {
  const go = new Go();
  WebAssembly.instantiateStreaming(fetch("` + WasmPath + `"), go.importObject)
    .then((r) => go.run(r.instance))
    .catch((err) => console.warn("how it works:", err));
}`

// Document wraps body in the page shell. The mobile menu portal is the last
// child of body so the menu overlays everything else.
func Document(title string, body ...g.Node) g.Node {
	return Doctype(
		HTML(Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Meta(Name("htmx-config"), Content(htmxConfig)),
				TitleEl(g.Text(title)),
				Link(Rel("stylesheet"), Href(StylesheetPath)),
				Script(Src(HTMXPath), g.Attr("defer")),
				Script(Src(WasmExecPath), g.Attr("defer")),
				Script(Type("module"), g.Raw(wasmBoot)),
			),
			Body(
				g.Group(body),
				MenuPortal(),
			),
		),
	)
}

// PageFooter renders the page footer.
func PageFooter() g.Node {
	return Footer(Class("footer"),
		Div(Class("container"),
			P(g.Text("© Guru. Learning made personal.")),
		),
	)
}
