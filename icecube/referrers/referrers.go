package referrers

import (
	"context"
	"fmt"

	apperrors "codeberg.org/icecube/server/internal/errors"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new referrer log repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// inserts one referrer log row for a page visit. Duplicate-key errors
// reported by the store are suppressed as non-fatal; nothing downstream
// depends on referrer rows being unique.
func (r *Repository) Record(ctx context.Context, referrer, pageURL string) error {
	if referrer == "" {
		referrer = Direct
	}

	if _, err := r.db.Exec(ctx, queryRecord, referrer, pageURL); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil
		}

		return fmt.Errorf("failed to record referrer: %w", err)
	}

	return nil
}
