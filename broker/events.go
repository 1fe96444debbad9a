package broker

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EventType string

// Standardized event types in format: <resource>.<action>
const (
	TodoCreated EventType = "todo.created"
	TodoUpdated EventType = "todo.updated"
	TodoDeleted EventType = "todo.deleted"

	UserCreated EventType = "user.created"
)

// Event is the payload published for every successful mutation. UserID
// scopes delivery: the stream service only forwards an event to clients
// authenticated as that user.
type Event struct {
	ID        uuid.UUID       `json:"id"`
	Type      EventType       `json:"type"`
	UserID    string          `json:"user_id"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

func NewEvent(eventType EventType, userID string, data interface{}) (*Event, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:        uuid.New(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Data:      dataBytes,
	}, nil
}
