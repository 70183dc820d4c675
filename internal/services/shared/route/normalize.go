// Package route holds path canonicalization shared by HTTP route handlers.
package route

import (
	"net/http"
	"strings"
)

// RedirectTrailingSlash answers 301 to the path without trailing slashes,
// keeping escaped segments and the query string. It reports whether a
// redirect was written.
func RedirectTrailingSlash(w http.ResponseWriter, r *http.Request) bool {
	if w == nil || r == nil || r.URL == nil {
		return false
	}
	escaped := r.URL.EscapedPath()
	canonical := strings.TrimRight(escaped, "/")
	if canonical == "" {
		canonical = "/"
	}
	if canonical == escaped {
		return false
	}
	if r.URL.RawQuery != "" {
		canonical += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, canonical, http.StatusMovedPermanently)
	return true
}
