package httpmux

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMountHealth(t *testing.T) {
	t.Parallel()

	rootMux := http.NewServeMux()
	MountHealth(rootMux)

	rec := httptest.NewRecorder()
	rootMux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body := rec.Body.String(); body != "ok" {
		t.Fatalf("body = %q, want %q", body, "ok")
	}
}

func TestMountAdminRoutesMountsRoot(t *testing.T) {
	t.Parallel()

	rootMux := http.NewServeMux()
	adminMux := http.NewServeMux()
	adminMux.HandleFunc("/users", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("users"))
	})

	MountAdminRoutes(rootMux, adminMux)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	rootMux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body := rec.Body.String(); body != "users" {
		t.Fatalf("body = %q, want %q", body, "users")
	}
}

func TestMountAdminRoutesRedirectsRoot(t *testing.T) {
	t.Parallel()

	rootMux := http.NewServeMux()
	MountAdminRoutes(rootMux, http.NewServeMux())

	rec := httptest.NewRecorder()
	rootMux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if loc := rec.Header().Get("Location"); loc != "/users" {
		t.Fatalf("location = %q, want %q", loc, "/users")
	}
}

func TestMountAdminRoutesUnknownPath(t *testing.T) {
	t.Parallel()

	rootMux := http.NewServeMux()
	MountAdminRoutes(rootMux, http.NewServeMux())

	rec := httptest.NewRecorder()
	rootMux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestMountNoopsOnNilInputs(t *testing.T) {
	t.Parallel()

	rootMux := http.NewServeMux()
	MountHealth(nil)
	MountAdminRoutes(nil, http.NewServeMux())
	MountAdminRoutes(rootMux, nil)
}
