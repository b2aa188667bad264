// Package metrics defines the Prometheus collectors for the icecube
// backend and exposes the scrape handler.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// contact delivery outcomes
const (
	OutcomeSent   = "sent"
	OutcomeFailed = "failed"
)

// Metrics holds all Prometheus collectors for the service.
type Metrics struct {
	EventsTracked     *prometheus.CounterVec
	EventsDropped     *prometheus.CounterVec
	ContactSendsTotal *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	m := &Metrics{
		EventsTracked: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "icecube_events_tracked_total",
				Help: "Analytics events successfully recorded, by event type.",
			},
			[]string{"event"},
		),
		EventsDropped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "icecube_events_dropped_total",
				Help: "Analytics events dropped after a store failure, by event type.",
			},
			[]string{"event"},
		),
		ContactSendsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "icecube_contact_sends_total",
				Help: "Contact form delivery attempts by outcome (sent, failed).",
			},
			[]string{"outcome"},
		),
	}

	prometheus.MustRegister(
		m.EventsTracked,
		m.EventsDropped,
		m.ContactSendsTotal,
	)

	return m
}

// ContactSend counts one contact delivery attempt by outcome. Safe on
// a nil receiver so handlers need no metrics wiring in tests.
func (m *Metrics) ContactSend(outcome string) {
	if m == nil {
		return
	}

	m.ContactSendsTotal.WithLabelValues(outcome).Inc()
}

// Handler returns the Prometheus scrape HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
