// Package htmx holds request detection and response helpers for HTMX-driven
// pages.
package htmx

import (
	"bytes"
	"html"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

const (
	// ResponseHeaderKey is the HTMX request header used to detect partial updates.
	ResponseHeaderKey = "HX-Request"
	// TriggerHeaderKey asks HTMX to dispatch client-side events after a response.
	TriggerHeaderKey = "HX-Trigger"
)

// IsHTMXRequest reports whether the request was initiated by HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(ResponseHeaderKey), "true")
}

// Trigger adds event to the HX-Trigger response header. Must be called
// before the header is written.
func Trigger(w http.ResponseWriter, event string) {
	event = strings.TrimSpace(event)
	if w == nil || event == "" {
		return
	}
	current := w.Header().Get(TriggerHeaderKey)
	for _, existing := range strings.Split(current, ",") {
		if strings.TrimSpace(existing) == event {
			return
		}
	}
	if current != "" {
		event = current + ", " + event
	}
	w.Header().Set(TriggerHeaderKey, event)
}

// TitleTag formats an escaped `<title>` element.
func TitleTag(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return "<title>" + html.EscapeString(title) + "</title>"
}

// RenderPage writes full for normal requests. HTMX requests get the contents
// of full's <main> element, or fragment when full is nil, prefixed with
// htmxTitle unless the body already carries a title.
func RenderPage(w http.ResponseWriter, r *http.Request, fragment templ.Component, full templ.Component, htmxTitle string) {
	if !IsHTMXRequest(r) {
		if full == nil {
			full = fragment
		}
		if full != nil {
			templ.Handler(full).ServeHTTP(w, r)
		}
		return
	}

	source := fragment
	if full != nil {
		source = full
	}
	if source == nil {
		return
	}
	var buf bytes.Buffer
	if err := source.Render(r.Context(), &buf); err != nil {
		log.Printf("htmx render %s: %v", r.URL.Path, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	body := buf.Bytes()
	if full != nil {
		if inner, ok := extractMainContent(body); ok {
			body = inner
		}
	}
	if htmxTitle != "" && !bytes.Contains(bytes.ToLower(body), []byte("<title")) {
		body = append([]byte(htmxTitle), body...)
	}
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	}
	_, _ = w.Write(body)
}

// extractMainContent returns the inner HTML of the first <main> element.
func extractMainContent(body []byte) ([]byte, bool) {
	start := bytes.Index(body, []byte("<main"))
	if start < 0 {
		return nil, false
	}
	openEnd := bytes.IndexByte(body[start:], '>')
	if openEnd < 0 {
		return nil, false
	}
	contentStart := start + openEnd + 1
	end := bytes.Index(body[contentStart:], []byte("</main>"))
	if end < 0 {
		return nil, false
	}
	return body[contentStart : contentStart+end], true
}
