package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/config"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher sends order events to Kafka keyed by order id, so the events of
// one order stay in one partition.
type Publisher struct {
	logger *slog.Logger
	writer MessageWriter
}

func NewPublisher(logger *slog.Logger, cfg config.Kafka) *Publisher {
	return NewPublisherWithWriter(logger, &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.EventsTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequireOne,
	})
}

func NewPublisherWithWriter(logger *slog.Logger, w MessageWriter) *Publisher {
	return &Publisher{
		logger: logger.With(slog.String("service", "events")),
		writer: w,
	}
}

func (p *Publisher) Publish(ctx context.Context, event entities.OrderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		published.WithLabelValues(string(event.Type), "error").Inc()
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}
	published.WithLabelValues(string(event.Type), "ok").Inc()
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
