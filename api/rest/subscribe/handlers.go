package subscribe

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	icestats "codeberg.org/icecube/server/icecube/stats"
	"codeberg.org/icecube/server/icecube/subscribers"
	apperrors "codeberg.org/icecube/server/internal/errors"
	"github.com/gin-gonic/gin"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CreateSubscriberHandler handles email signups from the landing page.
// Exactly one analytics counter fires per attempt: email_submissions on
// a confirmed insert, email_duplicates on the unique-constraint path,
// email_errors on anything else. Validation failures fire nothing.
func CreateSubscriberHandler(subscriberRepo SubscriberStore, tracker Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.BadRequest(c, "invalid request body")
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		if email == "" {
			apperrors.ValidationError(c, "Please enter your email address")
			return
		}

		if !emailRegex.MatchString(email) {
			apperrors.ValidationError(c, "Please enter a valid email address")
			return
		}

		if !req.Consent {
			apperrors.ValidationError(c, "Please accept the privacy policy to continue")
			return
		}

		if subscriberRepo == nil {
			apperrors.ServiceUnavailable(c, "Service not configured. Please contact administrator.")
			return
		}

		_, err := subscriberRepo.Subscribe(c.Request.Context(), email, req.Source)

		if err != nil {
			if errors.Is(err, subscribers.ErrAlreadySubscribed) {
				tracker.Track(icestats.EventEmailDuplicates)
				apperrors.Conflict(c, "This email is already subscribed!")
				return
			}

			tracker.Track(icestats.EventEmailErrors)
			apperrors.InternalError(c, "Something went wrong. Please try again later.")
			return
		}

		tracker.Track(icestats.EventEmailSubmissions)

		c.JSON(http.StatusCreated, SubscribeResponse{
			Message: "Thank you! We'll notify you when we launch.",
		})
	}
}
