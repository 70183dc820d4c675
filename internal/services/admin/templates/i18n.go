package templates

import (
	"golang.org/x/text/message"

	sharedtemplates "github.com/louisbranch/userboard/internal/services/shared/templates"
)

// Localizer provides translated strings for admin components.
type Localizer = sharedtemplates.Localizer

// T returns a translated string or the key if no localizer is available.
func T(loc Localizer, key message.Reference, args ...any) string {
	return sharedtemplates.T(loc, key, args...)
}
