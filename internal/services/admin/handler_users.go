package admin

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/userboard/internal/services/admin/flash"
	"github.com/louisbranch/userboard/internal/services/admin/i18n"
	"github.com/louisbranch/userboard/internal/services/admin/templates"
	"github.com/louisbranch/userboard/internal/services/admin/userlist"
	sharedhtmx "github.com/louisbranch/userboard/internal/services/shared/htmx"
	usersservice "github.com/louisbranch/userboard/internal/services/users/api/grpc/users"
	"golang.org/x/text/message"
)

// HandleUsersPage renders the users page. The list itself is loaded lazily
// from HandleUsersList.
func (h *Handler) HandleUsersPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(lang, loc, r)

	var toasts templ.Component
	if notice, ok := flash.ReadAndClear(w, r); ok {
		text := notice.Text(func(key string) string { return templates.T(loc, key) })
		toasts = templates.Toast(string(notice.Kind), text, loc)
	}

	title := templates.T(loc, i18n.KeyUsersTitle) + " | " + templates.T(loc, i18n.KeyAppName)
	sharedhtmx.RenderPage(w, r, templates.UsersPage(loc), templates.UsersFullPage(page, toasts), sharedhtmx.TitleTag(title))
}

// HandleUsersList renders the list fragment. Failures render an inline
// notice with status 200 so HTMX still swaps it in.
func (h *Handler) HandleUsersList(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	view := templates.UserListView{}

	gateway := h.gateway()
	if gateway == nil {
		view.LoadError = templates.T(loc, i18n.KeyUsersUnavailable)
	} else {
		records, err := gateway.ListUsers(usersservice.WithLocale(r.Context(), lang))
		if err != nil {
			log.Printf("list users: %v", err)
			view.LoadError = templates.T(loc, i18n.KeyUsersUnavailable)
		} else {
			view.Records = records
		}
	}

	templ.Handler(templates.UserList(view, loc)).ServeHTTP(w, r)
}

// HandleUsersLive upgrades to the live refresh channel.
func (h *Handler) HandleUsersLive(w http.ResponseWriter, r *http.Request) {
	if h.live == nil {
		http.NotFound(w, r)
		return
	}
	h.live.ServeHTTP(w, r)
}

// HandleUserDelete deletes userID and answers with toasts and a refresh,
// either as HTMX out-of-band swaps or as a flash notice and redirect.
func (h *Handler) HandleUserDelete(w http.ResponseWriter, r *http.Request, userID string) {
	loc, lang := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}

	var responder deleteResponder
	if sharedhtmx.IsHTMXRequest(r) {
		responder = newHTMXResponder(w, loc)
	} else {
		responder = newRedirectResponder(w)
	}

	controller := userlist.NewController(
		h.deleteAction(loc),
		userlist.Refreshers{responder, h.liveRefresher},
		responder,
		deleteMessages(loc),
	)
	controller.Delete(usersservice.WithLocale(r.Context(), lang), userID)
	responder.finish(r)
}

func (h *Handler) deleteAction(loc *message.Printer) userlist.DeleteAction {
	return userlist.DeleteActionFunc(func(ctx context.Context, userID string) (userlist.DeleteResult, error) {
		gateway := h.gateway()
		if gateway == nil {
			return userlist.DeleteResult{}, errors.New(templates.T(loc, i18n.KeyUsersUnavailable))
		}
		return gateway.DeleteUser(ctx, userID)
	})
}

func deleteMessages(loc *message.Printer) userlist.Messages {
	return userlist.Messages{
		IDRequired:   templates.T(loc, i18n.KeyUsersIDRequired),
		Deleted:      templates.T(loc, i18n.KeyUsersDeleted),
		DeleteFailed: templates.T(loc, i18n.KeyUsersDeleteError),
	}
}
