package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// HTMLWriter writes markup and remembers the first error so components can
// emit many pieces and check once.
type HTMLWriter struct {
	w   io.Writer
	err error
}

// NewHTMLWriter wraps w.
func NewHTMLWriter(w io.Writer) *HTMLWriter {
	return &HTMLWriter{w: w}
}

// Raw writes trusted markup as-is.
func (h *HTMLWriter) Raw(markup string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, markup)
}

// Text writes escaped text content.
func (h *HTMLWriter) Text(value string) {
	h.Raw(templ.EscapeString(value))
}

// Attr writes ` name="value"` with value escaped.
func (h *HTMLWriter) Attr(name, value string) {
	h.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// Component renders c in place. Nil components are skipped.
func (h *HTMLWriter) Component(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// Err returns the first write or render error.
func (h *HTMLWriter) Err() error {
	return h.err
}
