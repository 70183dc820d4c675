package userlist

import "strings"

// Record is one row of the users view.
type Record struct {
	ID           string
	Name         string
	Email        string
	PostCount    int
	CommentCount int
}

// DisplayName returns the trimmed name, or placeholder when it is empty.
func (r Record) DisplayName(placeholder string) string {
	if name := strings.TrimSpace(r.Name); name != "" {
		return name
	}
	return placeholder
}

// NormalizeCount maps an optional count to a non-negative int.
func NormalizeCount(value *int64) int {
	if value == nil || *value < 0 {
		return 0
	}
	return int(*value)
}
