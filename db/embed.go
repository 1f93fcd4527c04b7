// Package db embeds the SQL migrations so production builds carry the
// schema with the binary. Enabled with the embed_migrations build tag.
package db

import "embed"

// Migrations holds the SQL migration files.
//
//go:embed migrations
var Migrations embed.FS
