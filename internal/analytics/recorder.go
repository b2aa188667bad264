package analytics

import (
	"context"
	"net"
	"net/url"
	"strings"
	"sync"
	"time"

	"codeberg.org/icecube/server/icecube/stats"
	"codeberg.org/icecube/server/internal/logger"
	"codeberg.org/icecube/server/internal/metrics"
)

// how long a single fire-and-forget emission may take before its
// context is cancelled
const emissionTimeout = 5 * time.Second

// Recorder emits analytics signals on a best-effort basis. Every
// emission runs as an independent fire-and-forget task: failures are
// logged locally and swallowed, and nothing here ever blocks or breaks
// the user-facing flow that triggered it.
type Recorder struct {
	stats     StatStore
	referrers ReferrerStore
	metrics   *metrics.Metrics

	wg       sync.WaitGroup
	warnOnce sync.Once
}

// creates a new recorder. Either store may be nil, in which case the
// corresponding emissions become no-ops (unconfigured deployments
// degrade instead of crashing). metrics may be nil in tests.
func NewRecorder(statStore StatStore, referrerStore ReferrerStore, m *metrics.Metrics) *Recorder {
	return &Recorder{
		stats:     statStore,
		referrers: referrerStore,
		metrics:   m,
	}
}

// increments the daily counter named by event for "today"; the store
// owns the definition of today and creates the row on first write
func (r *Recorder) Track(event stats.Event) {
	if r.stats == nil {
		r.warnNotConfigured()
		return
	}

	r.bestEffort(string(event), func(ctx context.Context) error {
		if err := r.stats.Increment(ctx, event); err != nil {
			if r.metrics != nil {
				r.metrics.EventsDropped.WithLabelValues(string(event)).Inc()
			}

			return err
		}

		if r.metrics != nil {
			r.metrics.EventsTracked.WithLabelValues(string(event)).Inc()
		}

		return nil
	})
}

// records one page view: a page_views increment plus a referrer log
// row. The referrer value is the referring hostname when it differs
// from the serving host, otherwise the "direct" sentinel.
func (r *Recorder) PageView(referrer, pageURL, host string) {
	r.Track(stats.EventPageViews)

	if r.referrers == nil {
		r.warnNotConfigured()
		return
	}

	origin := ReferrerOrigin(referrer, host)

	r.bestEffort("referrer", func(ctx context.Context) error {
		return r.referrers.Record(ctx, origin, pageURL)
	})
}

// blocks until all in-flight emissions have finished; used on shutdown
// so queued increments are not lost with the process
func (r *Recorder) Wait() {
	r.wg.Wait()
}

// runs fn as an independent asynchronous task, discarding any failure.
// All analytics emissions go through here so the swallow-and-log policy
// lives in exactly one place.
func (r *Recorder) bestEffort(op string, fn func(ctx context.Context) error) {
	r.wg.Add(1)

	go func() {
		defer r.wg.Done()

		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("analytics emission panicked", "op", op, "panic", rec)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), emissionTimeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			logger.Debug("analytics emission dropped", "op", op, "error", err)
		}
	}()
}

func (r *Recorder) warnNotConfigured() {
	r.warnOnce.Do(func() {
		logger.Warn("analytics store not configured, events will be dropped")
	})
}

// computes the referring origin for a page visit: the referrer URL's
// hostname when it points at a different site, else Direct. Empty or
// unparsable referrers count as direct visits.
func ReferrerOrigin(referrer, currentHost string) string {
	if referrer == "" {
		return "direct"
	}

	u, err := url.Parse(referrer)
	if err != nil || u.Hostname() == "" {
		return "direct"
	}

	if strings.EqualFold(u.Hostname(), hostname(currentHost)) {
		return "direct"
	}

	return u.Hostname()
}

// strips an optional port from a host header value
func hostname(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}

	return host
}
