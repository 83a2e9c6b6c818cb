package amqp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/cashclose_app/internal/core/ports/clients"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingChannel struct {
	exchange, key string
	msg           amqp091.Publishing
	hadDeadline   bool
	err           error
	closed        bool
}

func (c *recordingChannel) PublishWithContext(ctx context.Context, exchange, key string, _, _ bool, msg amqp091.Publishing) error {
	c.exchange, c.key, c.msg = exchange, key, msg
	_, c.hadDeadline = ctx.Deadline()
	return c.err
}

func (c *recordingChannel) Close() error {
	c.closed = true
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	ch := &recordingChannel{}
	p := &Publisher{channel: ch, exchangeName: "cashclose", queueName: "cashclose.closings"}
	occurred := time.Date(2023, 10, 26, 21, 0, 0, 0, time.UTC)

	err := p.Publish(context.Background(), clients.ClosingEvent{
		Type:       clients.EventClosingCreated,
		ClosingID:  "rec-1",
		Date:       "2023-10-26",
		OccurredAt: occurred,
	})

	require.NoError(t, err)
	assert.Equal(t, "cashclose", ch.exchange)
	assert.Equal(t, "cashclose.closings", ch.key)
	assert.True(t, ch.hadDeadline)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp091.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, clients.EventClosingCreated, ch.msg.Type)

	msg, err := ClosingEventMessageFromJSON(ch.msg.Body)
	require.NoError(t, err)
	assert.Equal(t, "rec-1", msg.ClosingID)
	assert.Equal(t, "2023-10-26", msg.Date)
	assert.True(t, occurred.Equal(msg.OccurredAt))
}

func TestPublisher_EventsForOneClosingHaveDistinctMessageIDs(t *testing.T) {
	ch := &recordingChannel{}
	p := &Publisher{channel: ch, exchangeName: "cashclose", queueName: "cashclose.closings"}
	ctx := context.Background()

	require.NoError(t, p.Publish(ctx, clients.ClosingEvent{Type: clients.EventClosingCreated, ClosingID: "rec-1"}))
	created := ch.msg
	require.NoError(t, p.Publish(ctx, clients.ClosingEvent{Type: clients.EventClosingAnalyzed, ClosingID: "rec-1"}))
	analyzed := ch.msg

	assert.NotEmpty(t, created.MessageId)
	assert.NotEqual(t, created.MessageId, analyzed.MessageId)
	assert.Equal(t, "rec-1", created.CorrelationId)
	assert.Equal(t, "rec-1", analyzed.CorrelationId)
}

func TestPublisher_PublishError(t *testing.T) {
	ch := &recordingChannel{err: errors.New("channel/connection is not open")}
	p := &Publisher{channel: ch, exchangeName: "x", queueName: "q"}

	err := p.Publish(context.Background(), clients.ClosingEvent{Type: clients.EventClosingAnalyzed, ClosingID: "rec-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish message")
}

func TestPublisher_Close(t *testing.T) {
	ch := &recordingChannel{}
	p := &Publisher{channel: ch}

	assert.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestNewClosingEventMessage_StampsMissingTime(t *testing.T) {
	msg := NewClosingEventMessage(clients.ClosingEvent{Type: clients.EventClosingCreated, ClosingID: "a"})
	assert.WithinDuration(t, time.Now(), msg.OccurredAt, time.Second)
}

func TestClosingEventMessage_InvalidJSON(t *testing.T) {
	_, err := ClosingEventMessageFromJSON([]byte(`{"closingID": 12}`))
	assert.Error(t, err)
}
