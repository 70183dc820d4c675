package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// HTMXScriptURL is the pinned htmx build loaded by every page.
const HTMXScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// ToastsID is the element id out-of-band toasts are swapped into.
const ToastsID = "toasts"

// LayoutOptions configures a full HTML page.
type LayoutOptions struct {
	Title   string
	Lang    string
	AppName string
	// Main is rendered inside <main>; HTMX navigation swaps only this part.
	Main templ.Component
	// Toasts is rendered inside the toast region on first load.
	Toasts templ.Component
	// Scripts are inline scripts appended to the body.
	Scripts []string
}

// Layout renders a complete HTML document around opts.Main.
func Layout(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := strings.TrimSpace(opts.Lang)
		if lang == "" {
			lang = "en"
		}
		title := strings.TrimSpace(opts.Title)
		if appName := strings.TrimSpace(opts.AppName); appName != "" {
			if title == "" {
				title = appName
			} else {
				title += " | " + appName
			}
		}

		h := NewHTMLWriter(w)
		h.Raw(`<!DOCTYPE html><html`)
		h.Attr("lang", lang)
		h.Raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.Raw(`<title>`)
		h.Text(title)
		h.Raw(`</title><script`)
		h.Attr("src", HTMXScriptURL)
		h.Raw(`></script></head><body>`)
		h.Raw(`<div class="toast toast-top toast-end"`)
		h.Attr("id", ToastsID)
		h.Raw(` aria-live="polite">`)
		h.Component(ctx, opts.Toasts)
		h.Raw(`</div><main class="container mx-auto p-4">`)
		h.Component(ctx, opts.Main)
		h.Raw(`</main>`)
		for _, script := range opts.Scripts {
			if strings.TrimSpace(script) == "" {
				continue
			}
			h.Raw(`<script>`)
			h.Raw(script)
			h.Raw(`</script>`)
		}
		h.Raw(`</body></html>`)
		return h.Err()
	})
}
