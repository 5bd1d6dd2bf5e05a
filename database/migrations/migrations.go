package migrations

import "embed"

// Migrations holds the goose SQL files applied on startup.
//
//go:embed *.sql
var Migrations embed.FS
