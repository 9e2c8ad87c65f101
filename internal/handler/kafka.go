package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/config"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type LocationReporter interface {
	ReportDriverLocation(ctx context.Context, orderID, driverID string, c entities.Coordinate) error
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// LocationMessage позиция водителя из топика локаций
type LocationMessage struct {
	OrderID  string  `json:"order_id" validate:"required"`
	DriverID string  `json:"driver_id" validate:"required"`
	Lat      float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng      float64 `json:"lng" validate:"gte=-180,lte=180"`
}

// KafkaHandler consumes driver positions. Positions are best effort: bad
// messages and store rejections are dropped and every offset is committed.
type KafkaHandler struct {
	reader   MessageReader
	logger   *slog.Logger
	validate *validator.Validate
	reporter LocationReporter
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, reporter LocationReporter) *KafkaHandler {
	return NewKafkaHandlerWithReader(logger, kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.LocationTopic,
		MaxWait: cfg.ReaderMaxWait,
	}), reporter)
}

func NewKafkaHandlerWithReader(logger *slog.Logger, reader MessageReader, reporter LocationReporter) *KafkaHandler {
	return &KafkaHandler{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		validate: validator.New(),
		reporter: reporter,
	}
}

func (h *KafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || ctx.Err() != nil {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		locationsInProgress.Inc()
		start := time.Now()
		if err := h.handleLocation(ctx, m); err != nil {
			h.logger.Warn("location dropped", slog.Any("error", err), slog.Int64("offset", m.Offset))
		}
		locationProcessingDuration.Observe(time.Since(start).Seconds())
		locationsInProgress.Dec()

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *KafkaHandler) handleLocation(ctx context.Context, m kafka.Message) error {
	var msg LocationMessage
	if err := json.Unmarshal(m.Value, &msg); err != nil {
		locationsInvalid.Inc()
		return fmt.Errorf("failed to unmarshal location: %w", err)
	}
	if err := h.validate.Struct(msg); err != nil {
		locationsInvalid.Inc()
		return fmt.Errorf("invalid location data: %w", err)
	}

	c := entities.Coordinate{Lat: msg.Lat, Lng: msg.Lng}
	if !c.Valid() {
		locationsInvalid.Inc()
		return errors.New("invalid location data: coordinate out of range")
	}
	if err := h.reporter.ReportDriverLocation(ctx, msg.OrderID, msg.DriverID, c); err != nil {
		locationsRejected.Inc()
		return err
	}
	locationsProcessed.Inc()
	return nil
}

func (h *KafkaHandler) Close() error {
	return h.reader.Close()
}
