package errors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// postgres unique_violation error code
const pgUniqueViolation = "23505"

// reports whether err is a postgres unique-constraint violation.
// Repositories use this to map duplicate inserts to named conflict errors
// instead of leaking the wire-level error code to callers.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	return false
}
