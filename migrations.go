package urs

import "embed"

// Migrations holds the embedded goose SQL migrations applied by the migrate
// command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
