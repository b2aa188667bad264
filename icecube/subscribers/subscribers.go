package subscribers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "codeberg.org/icecube/server/internal/errors"
	"github.com/jackc/pgx/v5/pgxpool"
)

// returned when the normalized address already has a subscriber row.
// A duplicate signup is an expected outcome, not a failure.
var ErrAlreadySubscribed = errors.New("email already subscribed")

// creates a new subscriber repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// inserts a subscriber row for the given address. The address is
// normalized to lowercase before insertion so that case variants of the
// same mailbox collapse onto one row. Returns ErrAlreadySubscribed when
// the unique constraint on email fires.
func (r *Repository) Subscribe(ctx context.Context, email, source string) (*Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if source == "" {
		source = DefaultSource
	}

	var sub Subscriber

	err := r.db.QueryRow(ctx, querySubscribe, email, source).Scan(
		&sub.ID,
		&sub.Email,
		&sub.Source,
		&sub.CreatedAt,
	)

	if err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, ErrAlreadySubscribed
		}

		return nil, fmt.Errorf("failed to insert subscriber: %w", err)
	}

	return &sub, nil
}
