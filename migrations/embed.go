package migrations

import "embed"

// FS holds the SQL migration files compiled into the binary.
//
//go:embed *.sql
var FS embed.FS
