package howitworks

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

// Raw HTML in descriptions is escaped; goldmark's default renderer is not
// configured with html.WithUnsafe.
var md = goldmark.New()

// DescriptionHTML renders the step description as inline HTML. The
// paragraph wrapper goldmark adds around a single block is removed so the
// result can sit inside an existing <p>.
func (s Step) DescriptionHTML() (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(s.Description), &buf); err != nil {
		return "", fmt.Errorf("rendering description of %q: %w", s.Title, err)
	}
	out := bytes.TrimSpace(buf.Bytes())
	if inner, ok := bytes.CutPrefix(out, []byte("<p>")); ok {
		if inner, ok := bytes.CutSuffix(inner, []byte("</p>")); ok && !bytes.Contains(inner, []byte("<p>")) {
			out = inner
		}
	}
	return string(out), nil
}
