package flash

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"
)

func roundTrip(t *testing.T, notice Notice) (Notice, bool) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/users/u-1/delete", nil)
	writeRR := httptest.NewRecorder()
	Write(writeRR, req, notice)
	setCookieHeader := writeRR.Header().Get("Set-Cookie")
	if setCookieHeader == "" {
		return Notice{}, false
	}
	cookie, err := http.ParseSetCookie(setCookieHeader)
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	next := httptest.NewRequest(http.MethodGet, "/users", nil)
	next.AddCookie(cookie)
	return ReadAndClear(httptest.NewRecorder(), next)
}

func TestWriteAndReadAndClearRoundTrip(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/users/u-1/delete", nil)
	writeRR := httptest.NewRecorder()

	Write(writeRR, req, NoticeSuccess("users.deleted"))
	cookie, err := http.ParseSetCookie(writeRR.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cookie.Secure {
		t.Fatal("expected insecure cookie for plain http request")
	}
	req.AddCookie(cookie)

	readRR := httptest.NewRecorder()
	notice, ok := ReadAndClear(readRR, req)
	if !ok {
		t.Fatalf("ReadAndClear() ok = false, want true")
	}
	if notice.Kind != KindSuccess || notice.Key != "users.deleted" {
		t.Fatalf("notice = %+v", notice)
	}
	if readRR.Header().Get("Set-Cookie") == "" {
		t.Fatalf("expected clear Set-Cookie header")
	}
}

func TestLiteralMessageRoundTrip(t *testing.T) {
	t.Parallel()

	notice, ok := roundTrip(t, NoticeText(KindError, "Network down"))
	if !ok {
		t.Fatal("expected notice")
	}
	if notice.Text(func(string) string { return "translated" }) != "Network down" {
		t.Fatalf("Text() = %q, want literal message", notice.Text(nil))
	}
}

func TestLongMessageIsTruncated(t *testing.T) {
	t.Parallel()

	notice, ok := roundTrip(t, NoticeText(KindError, strings.Repeat("é", 1000)))
	if !ok {
		t.Fatal("expected notice")
	}
	if got := utf8.RuneCountInString(notice.Message); got != maxMessageRunes {
		t.Fatalf("message runes = %d, want %d", got, maxMessageRunes)
	}
}

func TestTextTranslatesKey(t *testing.T) {
	t.Parallel()

	notice := NoticeSuccess("users.deleted")
	if got := notice.Text(strings.ToUpper); got != "USERS.DELETED" {
		t.Fatalf("Text() = %q", got)
	}
	if got := notice.Text(nil); got != "users.deleted" {
		t.Fatalf("Text(nil) = %q", got)
	}
}

func TestReadAndClearInvalidCookieValueStillClears(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-base64"})
	rr := httptest.NewRecorder()

	if _, ok := ReadAndClear(rr, req); ok {
		t.Fatalf("ReadAndClear() ok = true, want false")
	}
	if rr.Header().Get("Set-Cookie") == "" {
		t.Fatalf("expected clear Set-Cookie header")
	}
}

func TestWriteIgnoresInvalidNotice(t *testing.T) {
	t.Parallel()

	for _, notice := range []Notice{
		{Kind: KindSuccess},
		{Kind: "loud", Key: "users.deleted"},
	} {
		rr := httptest.NewRecorder()
		Write(rr, httptest.NewRequest(http.MethodGet, "/users", nil), notice)
		if rr.Header().Get("Set-Cookie") != "" {
			t.Fatalf("expected no cookie for %+v", notice)
		}
	}
}

func TestSecureCookieBehindHTTPS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  func() *http.Request
	}{
		{
			name: "tls",
			req: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/users/u-1/delete", nil)
				r.TLS = &tls.ConnectionState{}
				return r
			},
		},
		{
			name: "forwarded proto",
			req: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/users/u-1/delete", nil)
				r.Header.Set("X-Forwarded-Proto", "HTTPS")
				return r
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			Write(rr, tc.req(), NoticeSuccess("users.deleted"))
			cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
			if err != nil {
				t.Fatalf("ParseSetCookie() error = %v", err)
			}
			if !cookie.Secure {
				t.Fatal("expected secure cookie")
			}
		})
	}
}
