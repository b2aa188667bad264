package contact

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codeberg.org/icecube/server/icecube/stats"
	"codeberg.org/icecube/server/internal/mailer"
	"codeberg.org/icecube/server/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	err     error
	lastMsg mailer.ContactMessage
	calls   int
}

func (f *fakeMailer) Send(_ context.Context, msg mailer.ContactMessage) error {
	f.calls++
	f.lastMsg = msg

	return f.err
}

type fakeTracker struct {
	events []stats.Event
}

func (f *fakeTracker) Track(event stats.Event) {
	f.events = append(f.events, event)
}

func newContactRouter(mail Mailer, tracker Tracker, m *metrics.Metrics) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/v1/contact", SendContactHandler(mail, tracker, m))

	return router
}

// fresh unregistered collectors so tests never collide on the default
// registry
func newTestMetrics() *metrics.Metrics {
	return &metrics.Metrics{
		ContactSendsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "contact_sends_total"},
			[]string{"outcome"},
		),
	}
}

func postContact(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	return w
}

func TestSendContact_Success(t *testing.T) {
	mail := &fakeMailer{}
	tracker := &fakeTracker{}
	router := newContactRouter(mail, tracker, nil)

	w := postContact(router, `{"from_name":"Ada","from_email":"ada@example.com","message":"hello"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "has been sent")
	assert.Equal(t, []stats.Event{stats.EventContactSubmissions}, tracker.events)
	assert.Equal(t, "Ada", mail.lastMsg.FromName)
	assert.Equal(t, "ada@example.com", mail.lastMsg.FromEmail)
}

func TestSendContact_DeliveryFailureFiresNoCounter(t *testing.T) {
	mail := &fakeMailer{err: errors.New("emailjs send failed with status 400")}
	tracker := &fakeTracker{}
	router := newContactRouter(mail, tracker, nil)

	w := postContact(router, `{"from_name":"Ada","from_email":"ada@example.com","message":"hello"}`)

	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "try again later")
	assert.Empty(t, tracker.events, "a failed send must not count as a contact submission")
}

func TestSendContact_CountsDeliveryOutcomes(t *testing.T) {
	m := newTestMetrics()
	tracker := &fakeTracker{}

	okRouter := newContactRouter(&fakeMailer{}, tracker, m)
	w := postContact(okRouter, `{"from_name":"Ada","from_email":"ada@example.com","message":"hello"}`)
	require.Equal(t, http.StatusOK, w.Code)

	failRouter := newContactRouter(&fakeMailer{err: errors.New("emailjs send failed with status 500")}, tracker, m)
	w = postContact(failRouter, `{"from_name":"Ada","from_email":"ada@example.com","message":"hello"}`)
	require.Equal(t, http.StatusBadGateway, w.Code)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.ContactSendsTotal.WithLabelValues(metrics.OutcomeSent)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ContactSendsTotal.WithLabelValues(metrics.OutcomeFailed)))
}

func TestSendContact_MissingFields(t *testing.T) {
	mail := &fakeMailer{}
	router := newContactRouter(mail, &fakeTracker{}, nil)

	w := postContact(router, `{"from_name":"Ada","from_email":"","message":"hello"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "fill in all fields")
	assert.Zero(t, mail.calls)
}

func TestSendContact_NotConfigured(t *testing.T) {
	tracker := &fakeTracker{}
	router := newContactRouter(nil, tracker, nil)

	w := postContact(router, `{"from_name":"Ada","from_email":"ada@example.com","message":"hello"}`)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Empty(t, tracker.events)
}
