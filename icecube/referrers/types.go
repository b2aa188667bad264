package referrers

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// handles referrer log database operations
type Repository struct {
	db *pgxpool.Pool
}

// stored as the referrer value for visits with no external referrer
const Direct = "direct"
