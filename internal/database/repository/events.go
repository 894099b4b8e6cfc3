package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/portaria/internal/database"
)

// EventRepo handles persisted swipe events.
type EventRepo struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

func (r *EventRepo) Insert(ctx context.Context, e Event) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO events(ledger_id, partner_name, company, kind, ts, created_at)
	VALUES(?, ?, ?, ?, ?, CURRENT_TIMESTAMP);
	`,
		e.LedgerID, e.PartnerName, e.Company, e.Kind, e.Timestamp)
	return err
}

// InsertBatch writes all events in one transaction; an import either lands
// whole or not at all.
func (r *EventRepo) InsertBatch(ctx context.Context, events []Event) error {
	return database.WithTx(r.db, func(tx *sql.Tx) error {
		for _, e := range events {
			_, err := tx.ExecContext(ctx, `
			INSERT INTO events(ledger_id, partner_name, company, kind, ts, created_at)
			VALUES(?, ?, ?, ?, ?, CURRENT_TIMESTAMP);
			`,
				e.LedgerID, e.PartnerName, e.Company, e.Kind, e.Timestamp)
			if err != nil {
				return fmt.Errorf("insert event %s: %w", e.LedgerID, err)
			}
		}
		return nil
	})
}

// List returns the full snapshot ordered chronologically. Reconciliation
// always consumes the whole set; there is no incremental path.
func (r *EventRepo) List(ctx context.Context) ([]Event, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT seq, ledger_id, partner_name, company, kind, ts, created_at
	FROM events
	ORDER BY ts ASC, seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.Seq, &e.LedgerID, &e.PartnerName, &e.Company, &e.Kind, &e.Timestamp, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Count returns the number of stored events.
func (r *EventRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&n)
	return n, err
}

// DeleteAll wipes the snapshot, mirroring the ledger's clear-all action.
func (r *EventRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM events`)
	return err
}
