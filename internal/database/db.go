package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens the sqlite file holding the ledger snapshot. Foreign keys on,
// and a busy timeout so a register swipe and a report query do not trip over
// each other's locks.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	// sqlite allows one writer; a single connection avoids SQLITE_BUSY churn
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	return db, nil
}

// WithTx runs fn inside a transaction, rolling back on any error. Batch
// imports go through this so a failed import leaves the snapshot untouched.
func WithTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Now stamps registered swipes: UTC, whole seconds, matching the precision
// sqlite stores for DATETIME columns so values round-trip unchanged.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
