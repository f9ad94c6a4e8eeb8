package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduleService/pkg/logger"
)

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
	closed   bool
}

func (c *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	c.exchange = exchange
	c.key = key
	c.msg = msg
	return c.err
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

type countingMetrics struct {
	statuses []string
}

func (m *countingMetrics) ObserveNotification(status string) {
	m.statuses = append(m.statuses, status)
}

func TestPublishClosedDayConflict(t *testing.T) {
	ch := &fakeChannel{}
	m := &countingMetrics{}
	p := newPublisher(ch, "salon.schedule", time.Second, m, logger.NewNop())

	event := ClosedDayConflict{
		Date:           "2025-03-10",
		EntryID:        uuid.New(),
		AppointmentIDs: []uuid.UUID{uuid.New(), uuid.New()},
		OccurredAt:     time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	require.NoError(t, p.PublishClosedDayConflict(context.Background(), event))

	assert.Equal(t, "salon.schedule", ch.exchange)
	assert.Equal(t, RoutingKeyClosedDayConflict, ch.key)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, ch.msg.MessageId, ch.msg.Headers["x-event-id"])

	var decoded ClosedDayConflict
	require.NoError(t, json.Unmarshal(ch.msg.Body, &decoded))
	assert.NotEqual(t, uuid.Nil, decoded.EventID)
	assert.Equal(t, event.Date, decoded.Date)
	assert.Equal(t, event.AppointmentIDs, decoded.AppointmentIDs)
	assert.Equal(t, []string{"sent"}, m.statuses)
}

func TestPublishClosedDayConflictFailure(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	m := &countingMetrics{}
	p := newPublisher(ch, "salon.schedule", 0, m, logger.NewNop())

	err := p.PublishClosedDayConflict(context.Background(), ClosedDayConflict{Date: "2025-03-10"})

	assert.ErrorIs(t, err, ErrPublish)
	assert.Equal(t, []string{"failed"}, m.statuses)
}

func TestCloseWithoutConnection(t *testing.T) {
	ch := &fakeChannel{}
	p := newPublisher(ch, "salon.schedule", 0, &countingMetrics{}, logger.NewNop())

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}
