package contact

import (
	"context"

	"codeberg.org/icecube/server/icecube/stats"
	"codeberg.org/icecube/server/internal/mailer"
)

// delivers contact messages through the external email service
type Mailer interface {
	Send(ctx context.Context, msg mailer.ContactMessage) error
}

// emits analytics events without affecting the request outcome
type Tracker interface {
	Track(event stats.Event)
}

// contains one contact-form submission
type ContactRequest struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	Message   string `json:"message"`
}

type ContactResponse struct {
	Message string `json:"message"`
}
