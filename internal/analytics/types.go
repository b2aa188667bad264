package analytics

import (
	"context"

	"codeberg.org/icecube/server/icecube/stats"
)

// provides the atomic counter increment for daily stats
type StatStore interface {
	Increment(ctx context.Context, event stats.Event) error
}

// provides the referrer log insert
type ReferrerStore interface {
	Record(ctx context.Context, referrer, pageURL string) error
}
