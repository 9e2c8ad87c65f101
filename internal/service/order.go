package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/food-delivery-service/pkg/trm"
	"github.com/SergeyBogomolovv/food-delivery-service/pkg/utils"

	"github.com/shopspring/decimal"
)

type OrderRepo interface {
	InsertOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	InsertLineItems(ctx context.Context, orderID string, items []entities.LineItem) error
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)

	// Условные записи: изменение применяется только если заказ всё ещё
	// в ожидаемом состоянии, иначе ErrInvalidTransition.
	AcceptOrder(ctx context.Context, id, driverID string) (entities.Order, error)
	AdvanceStatus(ctx context.Context, id, driverID string, expected, next entities.Status) (entities.Order, error)
	UpdateDriverLocation(ctx context.Context, id, driverID string, c entities.Coordinate) error
	CancelOrder(ctx context.Context, id, userID string) (entities.Order, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}

type IdempotencyStore interface {
	Reserve(ctx context.Context, scope, key string) (result string, claimed bool, err error)
	Complete(ctx context.Context, scope, key, result string) error
	Release(ctx context.Context, scope, key string) error
}

type NewOrder struct {
	UserID  string
	Items   []entities.LineItem
	Total   decimal.Decimal
	Address *entities.DeliveryAddress

	// IdempotencyKey makes retries of the same request return the first result.
	IdempotencyKey string
}

// OrderService owns the order lifecycle. Every mutation is a single
// conditional write in the store and is never retried.
type OrderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	events    EventPublisher
	idem      IdempotencyStore
	now       func() time.Time
}

// NewOrderService creates the lifecycle manager. events and idem are optional.
func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, events EventPublisher, idem IdempotencyStore) *OrderService {
	return &OrderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		events:    events,
		idem:      idem,
		now:       time.Now,
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, in NewOrder) (entities.Order, error) {
	if err := validateNewOrder(in); err != nil {
		return entities.Order{}, err
	}

	if in.IdempotencyKey != "" && s.idem != nil {
		result, claimed, err := s.idem.Reserve(ctx, in.UserID, in.IdempotencyKey)
		switch {
		case err != nil:
			return entities.Order{}, fmt.Errorf("failed to reserve idempotency key: %w", err)
		case !claimed:
			idempotentReplays.Inc()
			s.logger.DebugContext(ctx, "idempotent replay", slog.String("order_id", result))
			return s.repo.GetOrder(ctx, result)
		}

		order, err := s.createOrder(ctx, in)
		if err != nil {
			s.releaseKey(ctx, in)
			return entities.Order{}, err
		}
		s.completeKey(ctx, in, order.ID)
		return order, nil
	}

	return s.createOrder(ctx, in)
}

var idempotencyRetry = utils.RetryConfig{MaxAttempts: 3, InitialDelay: 20 * time.Millisecond}

// completeKey stores the created order id under the key. If that keeps failing
// the key is released so retries are not stuck on a pending reservation.
func (s *OrderService) completeKey(ctx context.Context, in NewOrder, orderID string) {
	ctx = context.WithoutCancel(ctx)
	err := utils.Retry(ctx, idempotencyRetry, func() error {
		return s.idem.Complete(ctx, in.UserID, in.IdempotencyKey, orderID)
	})
	if err == nil {
		return
	}
	s.logger.WarnContext(ctx, "failed to store idempotency result", slog.String("order_id", orderID), slog.Any("error", err))
	s.releaseKey(ctx, in)
}

func (s *OrderService) releaseKey(ctx context.Context, in NewOrder) {
	if err := s.idem.Release(context.WithoutCancel(ctx), in.UserID, in.IdempotencyKey); err != nil {
		s.logger.WarnContext(ctx, "failed to release idempotency key", slog.Any("error", err))
	}
}

func (s *OrderService) createOrder(ctx context.Context, in NewOrder) (entities.Order, error) {
	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.repo.InsertOrder(ctx, entities.Order{
			UserID:  in.UserID,
			Total:   in.Total,
			Status:  entities.StatusCreated,
			Address: in.Address,
		})
		if err != nil {
			return fmt.Errorf("failed to insert order: %w", err)
		}
		if err := s.repo.InsertLineItems(ctx, order.ID, in.Items); err != nil {
			return fmt.Errorf("failed to insert line items: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, asStoreError(err)
	}

	order.Items = in.Items
	s.committed(ctx, entities.EventOrderCreated, order)
	return order, nil
}

func (s *OrderService) AcceptOrder(ctx context.Context, orderID, driverID string) (entities.Order, error) {
	order, err := s.repo.AcceptOrder(ctx, orderID, driverID)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to accept order: %w", err)
	}
	s.committed(ctx, entities.EventOrderAccepted, order)
	return order, nil
}

// AdvanceStatus moves an order the driver works on one step forward.
func (s *OrderService) AdvanceStatus(ctx context.Context, orderID, driverID string, expected, next entities.Status) (entities.Order, error) {
	if !expected.CanAdvance(next) {
		return entities.Order{}, fmt.Errorf("%w: %s -> %s", entities.ErrInvalidTransition, expected, next)
	}

	order, err := s.repo.AdvanceStatus(ctx, orderID, driverID, expected, next)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to advance order: %w", err)
	}
	s.committed(ctx, entities.EventStatusAdvanced, order)
	return order, nil
}

// ReportDriverLocation is best effort: callers log and drop failures.
func (s *OrderService) ReportDriverLocation(ctx context.Context, orderID, driverID string, c entities.Coordinate) error {
	if err := validateCoordinate(c); err != nil {
		return err
	}
	if err := s.repo.UpdateDriverLocation(ctx, orderID, driverID, c); err != nil {
		return fmt.Errorf("failed to report location: %w", err)
	}
	locationReports.Inc()
	return nil
}

func (s *OrderService) CancelOrder(ctx context.Context, orderID, userID string) (entities.Order, error) {
	order, err := s.repo.CancelOrder(ctx, orderID, userID)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to cancel order: %w", err)
	}
	s.committed(ctx, entities.EventOrderCanceled, order)
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	return s.repo.GetOrder(ctx, id)
}

// GetOrderFor returns the order when the session may see it: clients see
// their own orders, drivers see unassigned orders and the ones they carry.
func (s *OrderService) GetOrderFor(ctx context.Context, session entities.Session, id string) (entities.Order, error) {
	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if !order.VisibleTo(session) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	return s.repo.ListOrders(ctx, filter)
}

func (s *OrderService) committed(ctx context.Context, typ entities.EventType, order entities.Order) {
	transitions.WithLabelValues(string(typ)).Inc()
	s.logger.InfoContext(ctx, "order changed",
		slog.String("event", string(typ)),
		slog.String("order_id", order.ID),
		slog.String("status", order.Status.String()),
	)

	if s.events == nil {
		return
	}
	event := entities.OrderEvent{
		Type:       typ,
		OrderID:    order.ID,
		UserID:     order.UserID,
		DriverID:   order.DriverID,
		Status:     order.Status,
		OccurredAt: s.now().UTC(),
	}
	// запись уже закоммичена, ошибка публикации не откатывает её
	if err := s.events.Publish(context.WithoutCancel(ctx), event); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order event", slog.String("order_id", order.ID), slog.Any("error", err))
	}
}

func validateNewOrder(in NewOrder) error {
	switch {
	case in.UserID == "":
		return entities.Invalid("user is required")
	case len(in.Items) == 0:
		return entities.Invalid("order has no items")
	case !in.Total.IsPositive():
		return entities.Invalid("total must be positive")
	}
	for i, it := range in.Items {
		if it.Price.IsNegative() {
			return entities.Invalid("item %d has negative price", i)
		}
	}
	if sum := entities.ItemsTotal(in.Items); !sum.Equal(in.Total) {
		return entities.Invalid("total %s does not match items sum %s", in.Total, sum)
	}
	return nil
}

func validateCoordinate(c entities.Coordinate) error {
	if !c.Valid() {
		return entities.Invalid("coordinate out of range")
	}
	return nil
}

// asStoreError tags unexpected persistence failures with ErrStore.
func asStoreError(err error) error {
	if errors.Is(err, entities.ErrStore) || errors.Is(err, entities.ErrValidation) {
		return err
	}
	return entities.StoreFault(err)
}
