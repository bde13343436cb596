// Package migrations embeds the SQL migration files so server bootstrap
// and tests can run them through the goose programmatic API.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
