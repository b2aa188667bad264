package events

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecorder struct {
	referrer string
	pageURL  string
	host     string
	calls    int
}

func (f *fakeRecorder) PageView(referrer, pageURL, host string) {
	f.calls++
	f.referrer = referrer
	f.pageURL = pageURL
	f.host = host
}

func newEventsRouter(recorder PageViewRecorder, siteHost string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/v1/events/pageview", PageViewHandler(recorder, siteHost))

	return router
}

func TestPageView_RecordsOncePerCall(t *testing.T) {
	recorder := &fakeRecorder{}
	router := newEventsRouter(recorder, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events/pageview", strings.NewReader(`{"page_url":"/pricing"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", "https://other.example/x")
	req.Host = "icecube.example"
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, 1, recorder.calls)
	assert.Equal(t, "https://other.example/x", recorder.referrer)
	assert.Equal(t, "/pricing", recorder.pageURL)
	assert.Equal(t, "icecube.example", recorder.host)
}

// the API serves from its own origin, so same-site navigations must be
// classified against the configured landing-page host, never against
// the host header of the API request
func TestPageView_ClassifiesAgainstSiteHost(t *testing.T) {
	recorder := &fakeRecorder{}
	router := newEventsRouter(recorder, "icecube.example")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events/pageview", strings.NewReader(`{"page_url":"/about"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", "https://icecube.example/")
	req.Host = "api.icecube.example"
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "icecube.example", recorder.host)
}

func TestPageView_DefaultsPageURL(t *testing.T) {
	recorder := &fakeRecorder{}
	router := newEventsRouter(recorder, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events/pageview", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "/", recorder.pageURL)
	assert.Empty(t, recorder.referrer)
}

func TestPageView_InvalidBody(t *testing.T) {
	recorder := &fakeRecorder{}
	router := newEventsRouter(recorder, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events/pageview", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, recorder.calls)
}
