package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema creates the users, products and orders tables when they are
// missing. Existing tables are left untouched; there is no migration of
// changed column definitions.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	return WithTransaction(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
		return nil
	})
}
