// Package i18n resolves the operator's language and holds the admin UI
// message catalog for English and Brazilian Portuguese.
package i18n
