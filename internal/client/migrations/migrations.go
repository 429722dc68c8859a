// Package migrations embeds the schema of the local client database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
