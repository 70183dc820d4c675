package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/louisbranch/userboard/internal/services/admin/routepath"
	"github.com/louisbranch/userboard/internal/services/admin/userlist"
	sharedtemplates "github.com/louisbranch/userboard/internal/services/shared/templates"
)

const (
	// UsersListID is the lazy container that holds the rendered list.
	UsersListID = "users-list"
	// UsersRefreshEvent re-fetches the list when triggered on <body>.
	UsersRefreshEvent = "users-refresh"
)

// UserListView provides data for the users list fragment.
type UserListView struct {
	Records []userlist.Record
	// LoadError replaces the list when the records could not be fetched.
	LoadError string
}

// UserList renders records in the given order.
func UserList(view UserListView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := sharedtemplates.NewHTMLWriter(w)
		if view.LoadError != "" {
			h.Raw(`<div class="alert alert-warning" role="alert" data-users-error>`)
			h.Text(view.LoadError)
			h.Raw(`</div>`)
			return h.Err()
		}
		if len(view.Records) == 0 {
			h.Raw(`<p class="users-empty">`)
			h.Text(T(loc, "users.empty"))
			h.Raw(`</p>`)
			return h.Err()
		}

		unnamed := T(loc, "users.unnamed")
		h.Raw(`<ul class="users divide-y" role="list">`)
		for _, record := range view.Records {
			name := record.DisplayName(unnamed)
			h.Raw(`<li class="user flex items-center justify-between gap-4 py-3"`)
			h.Attr("data-user-id", record.ID)
			h.Raw(`><div class="user-details"><span class="user-name font-semibold">`)
			h.Text(name)
			h.Raw(`</span> <span class="user-email text-sm opacity-70">`)
			h.Text(record.Email)
			h.Raw(`</span><div class="user-counts text-sm"><span class="user-posts">`)
			h.Text(T(loc, "users.posts") + " " + strconv.Itoa(record.PostCount))
			h.Raw(`</span> <span class="user-comments">`)
			h.Text(T(loc, "users.comments") + " " + strconv.Itoa(record.CommentCount))
			h.Raw(`</span></div></div>`)

			action := routepath.UserDelete(record.ID)
			h.Raw(`<form method="post"`)
			h.Attr("action", action)
			h.Raw(`><button type="submit" class="btn btn-error btn-sm"`)
			h.Attr("hx-post", action)
			h.Raw(` hx-swap="none" hx-disabled-elt="this"`)
			h.Attr("aria-label", T(loc, "users.delete_label", name))
			h.Raw(`>`)
			h.Text(T(loc, "users.delete"))
			h.Raw(`<span class="htmx-indicator">`)
			h.Component(ctx, LoadingSpinner())
			h.Raw(`</span></button></form></li>`)
		}
		h.Raw(`</ul>`)
		return h.Err()
	})
}

// UsersPage renders the users section with its lazily loaded list.
func UsersPage(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := sharedtemplates.NewHTMLWriter(w)
		h.Raw(`<section id="users-page"><h1 class="mb-4 text-2xl">`)
		h.Text(T(loc, "users.title"))
		h.Raw(`</h1>`)
		h.Component(ctx, LazyContainer(UsersListID, routepath.UsersList, "load, "+UsersRefreshEvent+" from:body", T(loc, "users.loading")))
		h.Raw(`</section>`)
		return h.Err()
	})
}

// liveRefreshScript re-fetches the list when the server announces a change.
const liveRefreshScript = `(function(){` +
	`var scheme=location.protocol==="https:"?"wss://":"ws://";` +
	`function connect(delay){` +
	`var ws=new WebSocket(scheme+location.host+"` + routepath.UsersLive + `");` +
	`ws.onmessage=function(){htmx.trigger(document.body,"` + UsersRefreshEvent + `")};` +
	`ws.onclose=function(){setTimeout(function(){connect(Math.min(delay*2,30000))},delay)};` +
	`}` +
	`connect(1000);` +
	`})();`

// UsersFullPage renders the users page inside the full layout. toasts may
// carry a pending flash notice.
func UsersFullPage(page PageContext, toasts templ.Component) templ.Component {
	return sharedtemplates.Layout(sharedtemplates.LayoutOptions{
		Title:   T(page.Loc, "users.title"),
		Lang:    page.Lang,
		AppName: T(page.Loc, "app.name"),
		Main:    UsersPage(page.Loc),
		Toasts:  toasts,
		Scripts: []string{liveRefreshScript},
	})
}
