package stats

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new daily stats repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// atomically adds 1 to the named counter for today, creating the row
// on first write. The store owns the definition of "today" (CURRENT_DATE
// is evaluated server-side).
func (r *Repository) Increment(ctx context.Context, event Event) error {
	if !event.Valid() {
		return fmt.Errorf("unknown stat event %q", event)
	}

	query := fmt.Sprintf(queryIncrementStat, event, event, event)

	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to increment %s: %w", event, err)
	}

	return nil
}

// returns up to limit daily stat rows, most recent date first
func (r *Repository) ListDaily(ctx context.Context, limit int) ([]DailyStat, error) {
	rows, err := r.db.Query(ctx, queryListDaily, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily stats: %w", err)
	}

	defer rows.Close()
	var days []DailyStat

	for rows.Next() {
		var day DailyStat

		err := rows.Scan(
			&day.Date,
			&day.PageViews,
			&day.EmailSubmissions,
			&day.EmailDuplicates,
			&day.EmailErrors,
			&day.ContactSubmissions,
		)

		if err != nil {
			return nil, err
		}

		days = append(days, day)
	}

	return days, rows.Err()
}
