// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/danielhkuo/sportscal/db"
)

var ErrEventNotFound = errors.New("event not found")

// Store runs the catalog's queries against one database handle
type Store struct {
	db      *sql.DB
	dialect db.Dialect
}

func New(conn *sql.DB, dialect db.Dialect) *Store {
	return &Store{db: conn, dialect: dialect}
}

// inTx executes fn inside a transaction.
// If fn returns an error the tx rolls back, else it commits.
func inTx(ctx context.Context, conn *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
