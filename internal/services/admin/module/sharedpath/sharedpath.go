// Package sharedpath splits route suffixes for prefix-mounted modules.
package sharedpath

import (
	"net/url"
	"strings"
)

// SplitEscapedPath splits an escaped route suffix into decoded, non-empty
// segments. Splitting happens before decoding so an id containing an
// escaped "/" stays a single segment. ok is false when a segment is not
// valid escaping.
func SplitEscapedPath(escaped string) (parts []string, ok bool) {
	rawParts := strings.Split(escaped, "/")
	parts = make([]string, 0, len(rawParts))
	for _, raw := range rawParts {
		part, err := url.PathUnescape(raw)
		if err != nil {
			return nil, false
		}
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		parts = append(parts, part)
	}
	return parts, true
}
