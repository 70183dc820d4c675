package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "userboard_lang"

	langCookieMaxAge = 365 * 24 * time.Hour
)

// English comes first so unmatched requests fall back to it.
var supportedTags = []language.Tag{
	language.English,
	language.MustParse("pt-BR"),
}

var tagMatcher = language.NewMatcher(supportedTags)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supportedTags...)
}

// Default returns the default language tag.
func Default() language.Tag {
	return supportedTags[0]
}

// Printer returns a message printer for the closest supported match of tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(match(tag))
}

// ResolveTag picks the request language from, in order, the lang query
// parameter, the language cookie and Accept-Language. persist reports that
// the choice came from the query and should be stored in the cookie.
func ResolveTag(r *http.Request) (tag language.Tag, persist bool) {
	if r == nil {
		return Default(), false
	}
	if tag, ok := parseSupported(r.URL.Query().Get(LangParam)); ok {
		return tag, true
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := parseSupported(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return match(tags...), false
		}
	}
	return Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int(langCookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

func match(tags ...language.Tag) language.Tag {
	_, index, _ := tagMatcher.Match(tags...)
	return supportedTags[index]
}

// parseSupported accepts value only when it names a supported language
// with high confidence, e.g. "pt" for pt-BR but not "fr".
func parseSupported(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Tag{}, false
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	_, index, confidence := tagMatcher.Match(parsed)
	if confidence < language.High {
		return language.Tag{}, false
	}
	return supportedTags[index], true
}
