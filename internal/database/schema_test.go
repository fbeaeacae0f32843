package database_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/safar/go-sql-shop/internal/database"
	"github.com/safar/go-sql-shop/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRollback = errors.New("rollback")

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO users (f_name, l_name, email, password) VALUES ('a', 'b', 'c', 'd')`)
	require.NoError(t, err)

	require.NoError(t, database.EnsureSchema(ctx, db))

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestEnsureSchemaCreatesTables(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()

	for _, table := range []string{"users", "products", "orders"} {
		var exists bool
		err := db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM information_schema.tables WHERE table_name = $1)`,
			table).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, "table %s", table)
	}
}

func TestOrderDefaults(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()

	var status string
	err := db.QueryRowContext(ctx,
		`INSERT INTO orders (user_id, product_id) VALUES (7, 8) RETURNING status`).Scan(&status)
	require.NoError(t, err)
	assert.Equal(t, "pending", status)
}

func TestWithTransactionRollsBack(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()

	err := database.WithTransaction(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO products (name, price) VALUES ('x', 1)`); err != nil {
			return err
		}
		return errRollback
	})
	assert.ErrorIs(t, err, errRollback)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count))
	assert.Zero(t, count)
}

func TestWithTransactionCommits(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()

	err := database.WithTransaction(ctx, db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO products (name, price) VALUES ('x', 1)`)
		return err
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count))
	assert.Equal(t, 1, count)
}
