package services

import (
	"encoding/json"
	"log"
	"time"

	"todoapi/internal/models"
)

// Exchange and routing keys of user lifecycle events.
const (
	UserEventsExchange = "users"
	UserCreatedEvent   = "user.created"
	UserUpdatedEvent   = "user.updated"
	UserDeletedEvent   = "user.deleted"
)

// Publisher sends a message body to an exchange under a routing key.
type Publisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// UserEvent is the message body of a user lifecycle event.
type UserEvent struct {
	Event      string       `json:"event"`
	UserID     int64        `json:"userId"`
	User       *models.User `json:"user,omitempty"`
	OccurredAt time.Time    `json:"occurredAt"`
}

// publishUserEvent is best effort: failures are logged and never surface to the caller.
func publishUserEvent(p Publisher, event string, userID int64, user *models.User) {
	if p == nil {
		return
	}
	body, err := json.Marshal(UserEvent{Event: event, UserID: userID, User: user, OccurredAt: time.Now()})
	if err != nil {
		log.Printf("Failed to marshal %s event for user %d: %v", event, userID, err)
		return
	}
	if err := p.Publish(UserEventsExchange, event, body); err != nil {
		log.Printf("Warning: failed to publish %s event for user %d: %v", event, userID, err)
	}
}
