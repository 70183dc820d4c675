package admin

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/louisbranch/userboard/internal/services/admin/i18n"
	usersmodule "github.com/louisbranch/userboard/internal/services/admin/module/users"
	"github.com/louisbranch/userboard/internal/services/admin/templates"
	"github.com/louisbranch/userboard/internal/services/admin/transport/httpmux"
	"github.com/louisbranch/userboard/internal/services/admin/userlist"
	"golang.org/x/text/message"
)

// HandlerConfig wires handler dependencies. Every field may be nil: the
// users view then reports the service as unavailable and live refresh is
// off.
type HandlerConfig struct {
	Users UsersGatewayProvider
	// Live serves the websocket endpoint for open users views.
	Live http.Handler
	// LiveRefresher announces a list change to other open views.
	LiveRefresher userlist.Refresher
}

// Handler routes admin users requests.
type Handler struct {
	users         UsersGatewayProvider
	live          http.Handler
	liveRefresher userlist.Refresher
}

// NewHandler builds the HTTP handler for the admin server.
func NewHandler(cfg HandlerConfig) http.Handler {
	handler := &Handler{
		users:         cfg.Users,
		live:          cfg.Live,
		liveRefresher: cfg.LiveRefresher,
	}
	return handler.routes()
}

// routes wires the HTTP routes for the admin handler.
func (h *Handler) routes() http.Handler {
	adminMux := http.NewServeMux()
	usersmodule.RegisterRoutes(adminMux, h)

	rootMux := http.NewServeMux()
	httpmux.MountHealth(rootMux)
	httpmux.MountAdminRoutes(rootMux, adminMux)
	return rootMux
}

func (h *Handler) gateway() UsersGateway {
	if h == nil || h.users == nil {
		return nil
	}
	return h.users.UsersGateway()
}

func (h *Handler) localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	return i18n.Printer(tag), tag.String()
}

func (h *Handler) pageContext(lang string, loc *message.Printer, r *http.Request) templates.PageContext {
	return templates.PageContext{
		Lang:        lang,
		Loc:         loc,
		CurrentPath: r.URL.Path,
	}
}

func requireSameOrigin(w http.ResponseWriter, r *http.Request, loc *message.Printer) bool {
	forbidden := func() bool {
		http.Error(w, templates.T(loc, i18n.KeyForbidden), http.StatusForbidden)
		return false
	}
	if r == nil {
		return forbidden()
	}
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
		if !sameOrigin(origin, r) {
			return forbidden()
		}
		return true
	}
	if referer := strings.TrimSpace(r.Referer()); referer != "" {
		if !sameOrigin(referer, r) {
			return forbidden()
		}
		return true
	}
	return forbidden()
}

func sameOrigin(rawURL string, r *http.Request) bool {
	if rawURL == "" || rawURL == "null" || r == nil {
		return false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	if !strings.EqualFold(parsed.Host, r.Host) {
		return false
	}
	if parsed.Scheme != "" {
		return strings.EqualFold(parsed.Scheme, requestScheme(r))
	}
	return true
}

func requestScheme(r *http.Request) string {
	if r == nil {
		return "http"
	}
	if proto := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); proto != "" {
		parts := strings.Split(proto, ",")
		return strings.ToLower(strings.TrimSpace(parts[0]))
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
