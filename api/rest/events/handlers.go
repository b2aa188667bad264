package events

import (
	"net/http"

	apperrors "codeberg.org/icecube/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// PageViewHandler accepts the page-load beacon. The page fires it once
// per load; recording is fire-and-forget, so the response never waits
// on the store. Referrers are classified against the landing page's
// host, not the API host; the request Host only serves as a fallback
// when no site host is configured.
func PageViewHandler(recorder PageViewRecorder, siteHost string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PageViewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.BadRequest(c, "invalid request body")
			return
		}

		pageURL := req.PageURL
		if pageURL == "" {
			pageURL = "/"
		}

		host := siteHost
		if host == "" {
			host = c.Request.Host
		}

		recorder.PageView(c.GetHeader("Referer"), pageURL, host)

		c.Status(http.StatusAccepted)
	}
}
