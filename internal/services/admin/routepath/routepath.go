// Package routepath names the admin HTTP routes.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root    = "/"
	Healthz = "/healthz"
)

const (
	Users       = "/users"
	UsersList   = "/users/list"
	UsersLive   = "/users/live"
	UsersPrefix = "/users/"
)

// UserDelete returns the delete endpoint for userID.
func UserDelete(userID string) string {
	return UsersPrefix + escapeSegment(userID) + "/delete"
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
