package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

const insertEntry = `INSERT INTO lookup_journal
	(user_id, country_code, region, number_type, classification, created_at)
	VALUES (:user_id, :country_code, :region, :number_type, :classification, :created_at)`

const selectTotals = `SELECT COUNT(*) AS total, COUNT(DISTINCT user_id) AS users
	FROM lookup_journal WHERE created_at >= $1`

const selectByClassification = `SELECT classification, COUNT(*) AS count
	FROM lookup_journal WHERE created_at >= $1
	GROUP BY classification`

const selectTopCountries = `SELECT country_code, region, COUNT(*) AS count
	FROM lookup_journal WHERE created_at >= $1 AND country_code > 0
	GROUP BY country_code, region
	ORDER BY count DESC, country_code ASC
	LIMIT $2`

// Repository is the PostgreSQL-backed journal.
type Repository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewRepository wraps an open connection.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// Record inserts e, stamping CreatedAt when it is zero.
func (r *Repository) Record(ctx context.Context, e Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = r.now().UTC()
	}
	if _, err := r.db.NamedExecContext(ctx, insertEntry, e); err != nil {
		return fmt.Errorf("journal: insert: %w", err)
	}
	return nil
}

// Stats aggregates entries created at or after since. limit caps TopCountries.
func (r *Repository) Stats(ctx context.Context, since time.Time, limit int) (*Stats, error) {
	if limit <= 0 {
		limit = 5
	}
	var totals struct {
		Total int `db:"total"`
		Users int `db:"users"`
	}
	if err := r.db.GetContext(ctx, &totals, selectTotals, since); err != nil {
		return nil, fmt.Errorf("journal: totals: %w", err)
	}

	var rows []struct {
		Classification string `db:"classification"`
		Count          int    `db:"count"`
	}
	if err := r.db.SelectContext(ctx, &rows, selectByClassification, since); err != nil {
		return nil, fmt.Errorf("journal: by classification: %w", err)
	}

	var top []CountryCount
	if err := r.db.SelectContext(ctx, &top, selectTopCountries, since, limit); err != nil {
		return nil, fmt.Errorf("journal: top countries: %w", err)
	}

	stats := &Stats{
		Since:            since,
		Total:            totals.Total,
		Users:            totals.Users,
		ByClassification: make(map[string]int, len(rows)),
		TopCountries:     top,
	}
	for _, row := range rows {
		stats.ByClassification[row.Classification] = row.Count
	}
	return stats, nil
}
