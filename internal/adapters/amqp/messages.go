package amqp

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/cashclose_app/internal/core/ports/clients"
)

// ClosingEventMessage is the wire body of a closing event.
// It carries identity only; consumers load the record itself from the store.
type ClosingEventMessage struct {
	Type       string    `json:"type"`
	ClosingID  string    `json:"closingID"`
	Date       string    `json:"date"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewClosingEventMessage stamps the message with the current time when the event has none.
func NewClosingEventMessage(event clients.ClosingEvent) *ClosingEventMessage {
	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}
	return &ClosingEventMessage{
		Type:       event.Type,
		ClosingID:  event.ClosingID,
		Date:       event.Date,
		OccurredAt: occurredAt,
	}
}

// ToJSON converts the message to JSON bytes
func (m *ClosingEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ClosingEventMessageFromJSON decodes a message body.
func ClosingEventMessageFromJSON(data []byte) (*ClosingEventMessage, error) {
	var msg ClosingEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
