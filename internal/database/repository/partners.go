package repository

import (
	"context"
	"database/sql"
)

// PartnerRepo handles the partner registry.
type PartnerRepo struct {
	db *sql.DB
}

func NewPartnerRepo(db *sql.DB) *PartnerRepo { return &PartnerRepo{db: db} }

// Upsert inserts or refreshes a partner, keyed by (name, company).
func (r *PartnerRepo) Upsert(ctx context.Context, p Partner) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO partners(id, name, company, status, created_at, updated_at)
	VALUES(?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	ON CONFLICT(name, company) DO UPDATE SET
		status = excluded.status,
		updated_at = CURRENT_TIMESTAMP;
	`,
		p.ID, p.Name, p.Company, p.Status)
	return err
}

func (r *PartnerRepo) List(ctx context.Context) ([]Partner, error) {
	return r.list(ctx, `SELECT id, name, company, status, created_at, updated_at FROM partners ORDER BY name ASC`)
}

func (r *PartnerRepo) ListByCompany(ctx context.Context, company string) ([]Partner, error) {
	return r.list(ctx, `SELECT id, name, company, status, created_at, updated_at FROM partners WHERE company = ? ORDER BY name ASC`, company)
}

func (r *PartnerRepo) list(ctx context.Context, query string, args ...interface{}) ([]Partner, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Partner
	for rows.Next() {
		var p Partner
		if err := rows.Scan(&p.ID, &p.Name, &p.Company, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
