package admin

import (
	"context"
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/userboard/internal/services/admin/flash"
	"github.com/louisbranch/userboard/internal/services/admin/routepath"
	"github.com/louisbranch/userboard/internal/services/admin/templates"
	"github.com/louisbranch/userboard/internal/services/admin/userlist"
	sharedhtmx "github.com/louisbranch/userboard/internal/services/shared/htmx"
)

// deleteResponder turns one delete interaction into an HTTP response. It is
// the controller's notifier and the request-local half of its refresher.
type deleteResponder interface {
	userlist.Notifier
	userlist.Refresher
	finish(r *http.Request)
}

type toastNotice struct {
	kind    string
	message string
}

// htmxResponder answers an HTMX delete: toasts are appended out of band
// and the list is re-fetched through the HX-Trigger header.
type htmxResponder struct {
	w      http.ResponseWriter
	loc    templates.Localizer
	toasts []toastNotice
}

func newHTMXResponder(w http.ResponseWriter, loc templates.Localizer) *htmxResponder {
	return &htmxResponder{w: w, loc: loc}
}

func (h *htmxResponder) Success(message string) {
	h.toasts = append(h.toasts, toastNotice{kind: templates.ToastSuccess, message: message})
}

func (h *htmxResponder) Error(message string) {
	h.toasts = append(h.toasts, toastNotice{kind: templates.ToastError, message: message})
}

func (h *htmxResponder) Refresh(context.Context) {
	sharedhtmx.Trigger(h.w, templates.UsersRefreshEvent)
}

func (h *htmxResponder) finish(r *http.Request) {
	components := make([]templ.Component, 0, len(h.toasts))
	for _, toast := range h.toasts {
		components = append(components, templates.ToastOOB(toast.kind, toast.message, h.loc))
	}
	h.w.Header().Set("Content-Type", "text/html; charset=utf-8")
	h.w.WriteHeader(http.StatusOK)
	for _, component := range components {
		if err := component.Render(r.Context(), h.w); err != nil {
			log.Printf("render toast: %v", err)
			return
		}
	}
}

// redirectResponder answers a plain form post: the notice rides a flash
// cookie and the browser is sent back to the users page, which re-fetches
// the list.
type redirectResponder struct {
	w      http.ResponseWriter
	notice *flash.Notice
}

func newRedirectResponder(w http.ResponseWriter) *redirectResponder {
	return &redirectResponder{w: w}
}

func (h *redirectResponder) Success(message string) {
	notice := flash.NoticeText(flash.KindSuccess, message)
	h.notice = &notice
}

func (h *redirectResponder) Error(message string) {
	notice := flash.NoticeText(flash.KindError, message)
	h.notice = &notice
}

// Refresh is a no-op: finish always redirects to the list.
func (h *redirectResponder) Refresh(context.Context) {}

func (h *redirectResponder) finish(r *http.Request) {
	if h.notice != nil {
		flash.Write(h.w, r, *h.notice)
	}
	http.Redirect(h.w, r, routepath.Users, http.StatusSeeOther)
}
