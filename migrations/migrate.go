// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

// Package migrations embeds the schema migrations for the client's local
// SQLite key/value store.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var schemaFS embed.FS

// Migrate brings the local kv schema up to date. It is safe to run on every
// startup; goose skips versions that are already applied.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(schemaFS)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set sqlite dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("apply kv store migrations: %w", err)
	}

	return nil
}
