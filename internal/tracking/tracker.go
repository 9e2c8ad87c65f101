package tracking

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
)

var ErrClosed = errors.New("tracker is closed")

const writeTimeout = 5 * time.Second

type LocationReporter interface {
	ReportDriverLocation(ctx context.Context, orderID, driverID string, c entities.Coordinate) error
}

// Tracker forwards position streams to the order store, at most one stream
// per order.
type Tracker struct {
	logger   *slog.Logger
	reporter LocationReporter

	mu        sync.Mutex
	closed    bool
	reporters map[string]*reporter
}

type reporter struct {
	orderID  string
	driverID string
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewTracker(logger *slog.Logger, r LocationReporter) *Tracker {
	return &Tracker{
		logger:    logger.With(slog.String("service", "tracker")),
		reporter:  r,
		reporters: make(map[string]*reporter),
	}
}

// Start writes every position from source as the driver's location of the
// order. A running reporter for the same order is stopped first.
func (t *Tracker) Start(orderID, driverID string, source <-chan entities.Coordinate) error {
	return t.start(orderID, driverID, func(context.Context) <-chan entities.Coordinate { return source })
}

// StartSimulation drives along path at the given cadence. The simulation
// ends together with its reporter.
func (t *Tracker) StartSimulation(orderID, driverID string, path []entities.Coordinate, interval time.Duration) error {
	return t.start(orderID, driverID, func(ctx context.Context) <-chan entities.Coordinate {
		return Simulate(ctx, path, interval)
	})
}

func (t *Tracker) start(orderID, driverID string, source func(ctx context.Context) <-chan entities.Coordinate) error {
	ctx, cancel := context.WithCancel(context.Background())
	r := &reporter{
		orderID:  orderID,
		driverID: driverID,
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		cancel()
		return ErrClosed
	}
	prev := t.reporters[orderID]
	t.reporters[orderID] = r
	t.mu.Unlock()

	if prev != nil {
		prev.stop()
	}

	activeReporters.Inc()
	go t.run(ctx, r, source(ctx))
	t.logger.Info("reporter started", "order_id", orderID, "driver_id", driverID)
	return nil
}

// Stop cancels the reporter of the order and waits for it. A write already
// in flight completes, no further write is issued.
func (t *Tracker) Stop(orderID string) bool {
	t.mu.Lock()
	r := t.reporters[orderID]
	delete(t.reporters, orderID)
	t.mu.Unlock()

	if r == nil {
		return false
	}
	r.stop()
	return true
}

// Active reports whether the order has a running reporter.
func (t *Tracker) Active(orderID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.reporters[orderID]
	return ok
}

// Close stops every reporter.
func (t *Tracker) Close() error {
	t.mu.Lock()
	t.closed = true
	reporters := t.reporters
	t.reporters = make(map[string]*reporter)
	t.mu.Unlock()

	for _, r := range reporters {
		r.stop()
	}
	return nil
}

func (r *reporter) stop() {
	r.cancel()
	<-r.done
}

func (t *Tracker) run(ctx context.Context, r *reporter, source <-chan entities.Coordinate) {
	defer func() {
		r.cancel()
		t.forget(r)
		activeReporters.Dec()
		close(r.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case c, ok := <-source:
			if !ok {
				return
			}
			// select может выбрать source при уже отменённом контексте
			if ctx.Err() != nil {
				return
			}
			if !t.write(ctx, r, c) {
				return
			}
		}
	}
}

// write reports one position and tells whether the reporter should go on.
func (t *Tracker) write(ctx context.Context, r *reporter, c entities.Coordinate) bool {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()

	err := t.reporter.ReportDriverLocation(ctx, r.orderID, r.driverID, c)
	switch {
	case err == nil:
		positionsWritten.Inc()
		return true
	case errors.Is(err, entities.ErrInvalidTransition), errors.Is(err, entities.ErrOrderNotFound):
		t.logger.Info("reporter stopped, order no longer on the way", "order_id", r.orderID, "err", err)
		return false
	default:
		t.logger.Error("failed to report location", "order_id", r.orderID, "err", err)
		positionErrors.Inc()
		return true
	}
}

func (t *Tracker) forget(r *reporter) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.reporters[r.orderID] == r {
		delete(t.reporters, r.orderID)
	}
}
