package stats

import (
	"context"

	"codeberg.org/icecube/server/icecube/stats"
)

// provides the ordered daily stats read
type StatsReader interface {
	ListDaily(ctx context.Context, limit int) ([]stats.DailyStat, error)
}

// DayReport is the display shape for one day of stats. Missing
// counters are reported as zero, never null.
type DayReport struct {
	PageViews        int `json:"pageViews"`
	EmailSubmissions int `json:"emailSubmissions"`
	EmailDuplicates  int `json:"emailDuplicates"`
	EmailErrors      int `json:"emailErrors"`
}

// Report maps ISO date strings to their day's counters.
type Report map[string]DayReport

// token presence/absence flags attached to 401 responses when stats
// debug is enabled; never carries the values themselves
type tokenDebug struct {
	ReceivedToken string `json:"receivedToken"`
	ExpectedToken string `json:"expectedToken"`
}
