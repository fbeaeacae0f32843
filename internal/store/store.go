// Package store runs the insert and select statements behind each resource.
package store

import "database/sql"

// Store wraps the shared connection pool and is safe for concurrent use.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}
