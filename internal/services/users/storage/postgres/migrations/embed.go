package migrations

import "embed"

// FS contains embedded PostgreSQL migrations for users storage.
//
//go:embed *.sql
var FS embed.FS
