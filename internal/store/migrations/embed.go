// Package migrations embeds the goose SQL migrations applied when the
// local store is opened. The schema is idempotent; no upgrade path beyond
// the initial version is modeled, a schema change means a destructive
// reset of the affected tables.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
