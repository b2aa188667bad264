package subscribers

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles email subscriber database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents a subscribed email address
type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// acquisition channel recorded when no source is supplied
const DefaultSource = "coming_soon_page"
