package contact

import (
	"net/http"
	"strings"

	icestats "codeberg.org/icecube/server/icecube/stats"
	apperrors "codeberg.org/icecube/server/internal/errors"
	"codeberg.org/icecube/server/internal/logger"
	"codeberg.org/icecube/server/internal/mailer"
	"codeberg.org/icecube/server/internal/metrics"
	"github.com/gin-gonic/gin"
)

// SendContactHandler delivers a contact-form message. The
// contact_submissions counter fires only after a confirmed send; a
// failed delivery surfaces a generic retry-later message and counts
// only toward the failed-outcome delivery metric.
func SendContactHandler(mail Mailer, tracker Tracker, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if mail == nil {
			apperrors.ServiceUnavailable(c, "Email service not configured. Please try again later.")
			return
		}

		var req ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.BadRequest(c, "invalid request body")
			return
		}

		name := strings.TrimSpace(req.FromName)
		email := strings.TrimSpace(req.FromEmail)
		message := strings.TrimSpace(req.Message)

		if name == "" || email == "" || message == "" {
			apperrors.ValidationError(c, "Please fill in all fields")
			return
		}

		msg := mailer.ContactMessage{
			FromName:  name,
			FromEmail: email,
			Message:   message,
		}

		if err := mail.Send(c.Request.Context(), msg); err != nil {
			logger.ErrorErr(err, "contact message delivery failed")
			m.ContactSend(metrics.OutcomeFailed)
			apperrors.BadGateway(c, "Something went wrong. Please try again later.")
			return
		}

		m.ContactSend(metrics.OutcomeSent)
		tracker.Track(icestats.EventContactSubmissions)

		c.JSON(http.StatusOK, ContactResponse{
			Message: "Thank you! Your message has been sent.",
		})
	}
}
