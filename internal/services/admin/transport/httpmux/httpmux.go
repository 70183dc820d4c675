// Package httpmux assembles the admin root mux.
package httpmux

import (
	"net/http"

	routepath "github.com/louisbranch/userboard/internal/services/admin/routepath"
)

// MountHealth answers liveness probes with 200 "ok".
func MountHealth(rootMux *http.ServeMux) {
	if rootMux == nil {
		return
	}
	rootMux.HandleFunc(routepath.Healthz, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
}

// MountAdminRoutes mounts admin application routes under root path. The
// bare root redirects to the users view.
func MountAdminRoutes(rootMux *http.ServeMux, adminMux *http.ServeMux) {
	if rootMux == nil || adminMux == nil {
		return
	}
	rootMux.Handle(routepath.Root, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == routepath.Root {
			http.Redirect(w, r, routepath.Users, http.StatusFound)
			return
		}
		adminMux.ServeHTTP(w, r)
	}))
}
