// Package migrations embeds the sqlite schema migration files.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
