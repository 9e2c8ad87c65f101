package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/config"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"

	"github.com/lib/pq"
)

// ChangesChannel is the NOTIFY channel written by the orders trigger.
const ChangesChannel = "order_changes"

const pingInterval = 90 * time.Second

type ChangeSink interface {
	Notify(change entities.OrderChange)
	// Resync is called after the connection was re-established and
	// notifications could have been lost.
	Resync()
}

type Listener struct {
	logger   *slog.Logger
	listener *pq.Listener
	sink     ChangeSink
}

func NewListener(logger *slog.Logger, cfg config.Postgres, sink ChangeSink) *Listener {
	logger = logger.With(slog.String("component", "pg_listener"))

	report := func(ev pq.ListenerEventType, err error) {
		if err != nil {
			logger.Warn("listener event", slog.Int("event", int(ev)), slog.Any("error", err))
		}
	}

	return &Listener{
		logger:   logger,
		listener: pq.NewListener(DSN(cfg), cfg.ListenerMinReconnect, cfg.ListenerMaxReconnect, report),
		sink:     sink,
	}
}

// Start subscribes to the changes channel and forwards notifications until ctx is done.
func (l *Listener) Start(ctx context.Context) error {
	if err := l.listener.Listen(ChangesChannel); err != nil {
		return fmt.Errorf("failed to listen %s: %w", ChangesChannel, err)
	}
	go l.run(ctx)
	return nil
}

func (l *Listener) run(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-l.listener.Notify:
			if !ok {
				return
			}
			// nil приходит после переподключения
			if n == nil {
				l.logger.Info("listener reconnected, resyncing subscriptions")
				l.sink.Resync()
				continue
			}
			change, err := ParseChange(n.Extra)
			if err != nil {
				l.logger.Error("failed to parse notification", slog.String("payload", n.Extra), slog.Any("error", err))
				continue
			}
			l.sink.Notify(change)
		case <-ticker.C:
			if err := l.listener.Ping(); err != nil {
				l.logger.Warn("listener ping failed", slog.Any("error", err))
			}
		}
	}
}

func (l *Listener) Close() error {
	return l.listener.Close()
}

// ParseChange decodes the trigger payload.
func ParseChange(payload string) (entities.OrderChange, error) {
	var change entities.OrderChange
	if err := json.Unmarshal([]byte(payload), &change); err != nil {
		return entities.OrderChange{}, fmt.Errorf("failed to unmarshal change: %w", err)
	}
	if change.OrderID == "" {
		return entities.OrderChange{}, fmt.Errorf("change without order id")
	}
	return change, nil
}
