package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/events"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := events.NewPublisherWithWriter(newLogger(), w)

	event := entities.OrderEvent{
		Type:       entities.EventOrderAccepted,
		OrderID:    "o1",
		UserID:     "u1",
		DriverID:   "d1",
		Status:     entities.StatusPreparing,
		OccurredAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, p.Publish(context.Background(), event))

	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, []byte("o1"), msg.Key)
	assert.Equal(t, []kafka.Header{{Key: "type", Value: []byte("order_accepted")}}, msg.Headers)

	var got map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, map[string]any{
		"type":        "order_accepted",
		"order_id":    "o1",
		"user_id":     "u1",
		"driver_id":   "d1",
		"status":      "PREPARING",
		"occurred_at": "2024-05-01T12:00:00Z",
	}, got)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestPublisher_PublishError(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker unavailable")}
	p := events.NewPublisherWithWriter(newLogger(), w)

	err := p.Publish(context.Background(), entities.OrderEvent{Type: entities.EventOrderCreated, OrderID: "o1"})
	assert.ErrorContains(t, err, "broker unavailable")
	assert.ErrorContains(t, err, "order_created")
}
