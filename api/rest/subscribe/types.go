package subscribe

import (
	"context"

	"codeberg.org/icecube/server/icecube/stats"
	"codeberg.org/icecube/server/icecube/subscribers"
)

// provides the subscriber insert
type SubscriberStore interface {
	Subscribe(ctx context.Context, email, source string) (*subscribers.Subscriber, error)
}

// emits analytics events without affecting the request outcome
type Tracker interface {
	Track(event stats.Event)
}

// contains one signup attempt from the landing page
type SubscribeRequest struct {
	Email   string `json:"email"`
	Consent bool   `json:"consent"`
	Source  string `json:"source"`
}

type SubscribeResponse struct {
	Message string `json:"message"`
}
