package clients

import (
	"context"
	"time"
)

// TextGenerator produces free text from a prompt.
// Implementations return apperrors.ErrMissingCredentials when no API key is configured.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Event types published on record changes.
const (
	EventClosingCreated  = "closing.created"
	EventClosingAnalyzed = "closing.analyzed"
)

// ClosingEvent is the notification body sent when a record changes.
type ClosingEvent struct {
	Type       string    `json:"type"`
	ClosingID  string    `json:"closingID"`
	Date       string    `json:"date"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EventPublisher delivers ClosingEvents to whoever listens. Failures are reported, never retried.
type EventPublisher interface {
	Publish(ctx context.Context, event ClosingEvent) error
}
