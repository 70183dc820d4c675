package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Loading renders the loading ring used by lazy containers and buttons.
func Loading() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<span class="loading loading-ring loading-md" aria-hidden="true"></span>`)
		return err
	})
}
