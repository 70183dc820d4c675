package route

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRedirectTrailingSlash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		target   string
		wantOK   bool
		wantCode int
		wantLoc  string
	}{
		{name: "canonical path", target: "/users", wantCode: http.StatusOK},
		{name: "root path", target: "/", wantCode: http.StatusOK},
		{
			name:     "trailing slash",
			target:   "/users/",
			wantOK:   true,
			wantCode: http.StatusMovedPermanently,
			wantLoc:  "/users",
		},
		{
			name:     "repeated slashes with query",
			target:   "/users/list//?lang=pt-BR",
			wantOK:   true,
			wantCode: http.StatusMovedPermanently,
			wantLoc:  "/users/list?lang=pt-BR",
		},
		{
			name:     "escaped segment kept",
			target:   "/users/a%2Fb/delete/",
			wantOK:   true,
			wantCode: http.StatusMovedPermanently,
			wantLoc:  "/users/a%2Fb/delete",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			got := RedirectTrailingSlash(rec, httptest.NewRequest(http.MethodGet, tc.target, nil))
			if got != tc.wantOK {
				t.Fatalf("RedirectTrailingSlash = %v, want %v", got, tc.wantOK)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if got {
				if loc := rec.Header().Get("Location"); loc != tc.wantLoc {
					t.Fatalf("location = %q, want %q", loc, tc.wantLoc)
				}
			}
		})
	}
}

func TestRedirectTrailingSlashNilInputs(t *testing.T) {
	t.Parallel()
	if RedirectTrailingSlash(nil, nil) {
		t.Fatal("expected false for nil inputs")
	}
}
