// Package migrations embeds the SQLite schema migrations for the client's
// local claim cache.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
