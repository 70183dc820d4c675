package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	sharedtemplates "github.com/louisbranch/userboard/internal/services/shared/templates"
)

// Toast kinds. They double as alert class suffixes.
const (
	ToastSuccess = "success"
	ToastInfo    = "info"
	ToastWarning = "warning"
	ToastError   = "error"
)

// LoadingSpinner renders the shared loading ring.
func LoadingSpinner() templ.Component {
	return sharedtemplates.Loading()
}

// LazyLoad renders a container that fetches url once on load.
func LazyLoad(url, message string) templ.Component {
	return LazyContainer("", url, "load", message)
}

// LazyContainer renders a container that replaces its content with url
// whenever trigger fires. The spinner shows until the first response.
func LazyContainer(id, url, trigger, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := sharedtemplates.NewHTMLWriter(w)
		h.Raw(`<div`)
		if id != "" {
			h.Attr("id", id)
		}
		h.Attr("hx-get", url)
		h.Attr("hx-trigger", trigger)
		h.Raw(` hx-swap="innerHTML" aria-busy="true"><div class="flex justify-center p-6">`)
		h.Component(ctx, LoadingSpinner())
		h.Raw(`<span class="sr-only">`)
		h.Text(message)
		h.Raw(`</span></div></div>`)
		return h.Err()
	})
}

// Toast renders one dismissible notice.
func Toast(kind, message string, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		kind = toastKind(kind)
		h := sharedtemplates.NewHTMLWriter(w)
		h.Raw(`<div`)
		h.Attr("class", "alert alert-"+kind)
		if kind == ToastError {
			h.Raw(` role="alert"`)
		} else {
			h.Raw(` role="status"`)
		}
		h.Attr("data-toast-kind", kind)
		h.Raw(`><span>`)
		h.Text(message)
		h.Raw(`</span><button type="button" class="btn btn-ghost btn-xs"`)
		h.Attr("aria-label", T(loc, "toast.dismiss"))
		h.Raw(` onclick="this.parentElement.remove()">&times;</button></div>`)
		return h.Err()
	})
}

// ToastOOB wraps a toast for an out-of-band append into the toast region.
func ToastOOB(kind, message string, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := sharedtemplates.NewHTMLWriter(w)
		h.Raw(`<div`)
		h.Attr("hx-swap-oob", "beforeend:#"+sharedtemplates.ToastsID)
		h.Raw(`>`)
		h.Component(ctx, Toast(kind, message, loc))
		h.Raw(`</div>`)
		return h.Err()
	})
}

func toastKind(kind string) string {
	switch kind {
	case ToastSuccess, ToastInfo, ToastWarning, ToastError:
		return kind
	default:
		return ToastInfo
	}
}
