package events

import "time"

// Event types published to the user-event queue.
const (
	UserCreated = "user.created"
	UserUpdated = "user.updated"
	UserDeleted = "user.deleted"
)

// UserEvent is the JSON payload put on the RabbitMQ queue for each user
// lifecycle change. Consumers (cmd/notifier) act on Type.
type UserEvent struct {
	Type      string    `json:"type"`
	UserID    string    `json:"userId"`
	Email     string    `json:"email,omitempty"`
	Firstname string    `json:"firstname,omitempty"`
	At        time.Time `json:"at"`
}
