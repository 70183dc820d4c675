// Package users mounts the users view routes.
package users

import (
	"net/http"
	"strings"

	sharedpath "github.com/louisbranch/userboard/internal/services/admin/module/sharedpath"
	routepath "github.com/louisbranch/userboard/internal/services/admin/routepath"
	sharedroute "github.com/louisbranch/userboard/internal/services/shared/route"
)

// Service defines users route handlers consumed by this route module.
type Service interface {
	HandleUsersPage(w http.ResponseWriter, r *http.Request)
	HandleUsersList(w http.ResponseWriter, r *http.Request)
	HandleUsersLive(w http.ResponseWriter, r *http.Request)
	HandleUserDelete(w http.ResponseWriter, r *http.Request, userID string)
}

// RegisterRoutes wires user routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Users, allow(http.MethodGet, service.HandleUsersPage))
	mux.HandleFunc(routepath.UsersList, allow(http.MethodGet, service.HandleUsersList))
	mux.HandleFunc(routepath.UsersLive, allow(http.MethodGet, service.HandleUsersLive))
	mux.HandleFunc(routepath.UsersPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleUserPath(w, r, service)
	})
}

// HandleUserPath parses user subroutes and dispatches to service handlers.
func HandleUserPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}

	parts, ok := sharedpath.SplitEscapedPath(strings.TrimPrefix(r.URL.EscapedPath(), routepath.UsersPrefix))
	if !ok {
		http.NotFound(w, r)
		return
	}
	if len(parts) == 2 && parts[1] == "delete" {
		if !methodAllowed(w, r, http.MethodPost) {
			return
		}
		service.HandleUserDelete(w, r, parts[0])
		return
	}
	http.NotFound(w, r)
}

func allow(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !methodAllowed(w, r, method) {
			return
		}
		next(w, r)
	}
}

func methodAllowed(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method || (method == http.MethodGet && r.Method == http.MethodHead) {
		return true
	}
	w.Header().Set("Allow", method)
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	return false
}
