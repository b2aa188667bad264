package stats

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles daily stats database operations
type Repository struct {
	db *pgxpool.Pool
}

// Event names a daily counter column. The set is closed: Valid must
// accept an event before its name is spliced into the upsert statement.
type Event string

const (
	EventPageViews          Event = "page_views"
	EventEmailSubmissions   Event = "email_submissions"
	EventEmailDuplicates    Event = "email_duplicates"
	EventEmailErrors        Event = "email_errors"
	EventContactSubmissions Event = "contact_submissions"
)

// reports whether e names a known counter column
func (e Event) Valid() bool {
	switch e {
	case EventPageViews, EventEmailSubmissions, EventEmailDuplicates,
		EventEmailErrors, EventContactSubmissions:
		return true
	}

	return false
}

// DailyStat is one row of the daily_stats table. Counter fields are
// pointers because rows created before a column existed hold NULLs.
type DailyStat struct {
	Date               time.Time `json:"date"`
	PageViews          *int      `json:"page_views"`
	EmailSubmissions   *int      `json:"email_submissions"`
	EmailDuplicates    *int      `json:"email_duplicates"`
	EmailErrors        *int      `json:"email_errors"`
	ContactSubmissions *int      `json:"contact_submissions"`
}
