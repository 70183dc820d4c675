package errors

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BaseLocale is the locale used when a caller does not send one.
const BaseLocale = "en-US"

var errorMessages = map[string]map[Code]string{
	"en-US": {
		CodeUnknown:            "Something went wrong",
		CodeUserIDRequired:     "Id is required",
		CodeUserNotFound:       "User not found",
		CodeStorageUnavailable: "User storage is unavailable",
	},
	"pt-BR": {
		CodeUnknown:            "Algo deu errado",
		CodeUserIDRequired:     "O id é obrigatório",
		CodeUserNotFound:       "Usuário não encontrado",
		CodeStorageUnavailable: "O armazenamento de usuários está indisponível",
	},
}

var supportedLocales = []language.Tag{
	language.MustParse("en-US"),
	language.MustParse("pt-BR"),
}

var localeMatcher = language.NewMatcher(supportedLocales)

func init() {
	for locale, messages := range errorMessages {
		tag := language.MustParse(locale)
		for code, text := range messages {
			_ = message.SetString(tag, messageKey(code), text)
		}
	}
}

func messageKey(code Code) string {
	return "error." + string(code)
}

// ResolveLocale maps a requested locale to a supported one.
func ResolveLocale(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return supportedLocales[0]
	}
	requested, err := language.Parse(locale)
	if err != nil {
		return supportedLocales[0]
	}
	_, index, _ := localeMatcher.Match(requested)
	return supportedLocales[index]
}

// LocalizeCode returns the user-facing message for code in locale. Codes
// without catalog text use the CodeUnknown message.
func LocalizeCode(locale string, code Code) string {
	tag := ResolveLocale(locale)
	if _, ok := errorMessages[tag.String()][code]; !ok {
		code = CodeUnknown
	}
	return message.NewPrinter(tag).Sprintf(messageKey(code))
}
