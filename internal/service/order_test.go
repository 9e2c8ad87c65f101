package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/service"
	mocks "github.com/SergeyBogomolovv/food-delivery-service/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/food-delivery-service/pkg/trm/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func passThroughTx(t *testing.T) *txMocks.MockManager {
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
	return tx
}

var burgerAndCola = []entities.LineItem{
	{ProductID: 1, Name: "Classic Burger", Price: decimal.RequireFromString("8.00")},
	{ProductID: 10, Name: "Coca-Cola", Price: decimal.RequireFromString("2.50")},
}

func TestOrderService_CreateOrder(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, events *mocks.MockEventPublisher)

	dbError := errors.New("db error")
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		in           service.NewOrder
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "OK",
			in:   service.NewOrder{UserID: "u1", Items: burgerAndCola, Total: decimal.RequireFromString("10.50")},
			mockBehavior: func(repo *mocks.MockOrderRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().
					InsertOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
						return o.UserID == "u1" && o.Status == entities.StatusCreated && o.DriverID == ""
					})).
					RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
						o.ID = "o1"
						o.CreatedAt = createdAt
						return o, nil
					})
				repo.EXPECT().InsertLineItems(mock.Anything, "o1", burgerAndCola).Return(nil)
				events.EXPECT().
					Publish(mock.Anything, mock.MatchedBy(func(e entities.OrderEvent) bool {
						return e.Type == entities.EventOrderCreated && e.OrderID == "o1" && e.Status == entities.StatusCreated
					})).
					Return(nil)
			},
		},
		{
			name:         "no items",
			in:           service.NewOrder{UserID: "u1", Total: decimal.RequireFromString("10.50")},
			mockBehavior: func(repo *mocks.MockOrderRepo, events *mocks.MockEventPublisher) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:         "total is not positive",
			in:           service.NewOrder{UserID: "u1", Items: burgerAndCola, Total: decimal.Zero},
			mockBehavior: func(repo *mocks.MockOrderRepo, events *mocks.MockEventPublisher) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:         "total differs from items",
			in:           service.NewOrder{UserID: "u1", Items: burgerAndCola, Total: decimal.RequireFromString("11.00")},
			mockBehavior: func(repo *mocks.MockOrderRepo, events *mocks.MockEventPublisher) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name: "insert fails",
			in:   service.NewOrder{UserID: "u1", Items: burgerAndCola, Total: decimal.RequireFromString("10.50")},
			mockBehavior: func(repo *mocks.MockOrderRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().InsertOrder(mock.Anything, mock.Anything).Return(entities.Order{}, dbError)
			},
			wantErr: entities.ErrStore,
		},
		{
			name: "line items fail",
			in:   service.NewOrder{UserID: "u1", Items: burgerAndCola, Total: decimal.RequireFromString("10.50")},
			mockBehavior: func(repo *mocks.MockOrderRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().InsertOrder(mock.Anything, mock.Anything).Return(entities.Order{ID: "o1"}, nil)
				repo.EXPECT().InsertLineItems(mock.Anything, "o1", mock.Anything).Return(dbError)
			},
			wantErr: dbError,
		},
		{
			name: "publish failure does not fail the order",
			in:   service.NewOrder{UserID: "u1", Items: burgerAndCola, Total: decimal.RequireFromString("10.50")},
			mockBehavior: func(repo *mocks.MockOrderRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().InsertOrder(mock.Anything, mock.Anything).Return(entities.Order{ID: "o1", Status: entities.StatusCreated}, nil)
				repo.EXPECT().InsertLineItems(mock.Anything, "o1", mock.Anything).Return(nil)
				events.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("kafka down"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			events := mocks.NewMockEventPublisher(t)
			tc.mockBehavior(repo, events)

			svc := service.NewOrderService(newLogger(), passThroughTx(t), repo, events, nil)

			order, err := svc.CreateOrder(context.Background(), tc.in)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "o1", order.ID)
			assert.Equal(t, tc.in.Items, order.Items)
		})
	}
}

func TestOrderService_CreateOrder_Idempotency(t *testing.T) {
	in := service.NewOrder{
		UserID:         "u1",
		Items:          burgerAndCola,
		Total:          decimal.RequireFromString("10.50"),
		IdempotencyKey: "key-1",
	}

	t.Run("first request completes the key", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		idem := mocks.NewMockIdempotencyStore(t)

		idem.EXPECT().Reserve(mock.Anything, "u1", "key-1").Return("", true, nil)
		repo.EXPECT().InsertOrder(mock.Anything, mock.Anything).Return(entities.Order{ID: "o1"}, nil)
		repo.EXPECT().InsertLineItems(mock.Anything, "o1", mock.Anything).Return(nil)
		idem.EXPECT().Complete(mock.Anything, "u1", "key-1", "o1").Return(nil)

		svc := service.NewOrderService(newLogger(), passThroughTx(t), repo, nil, idem)
		order, err := svc.CreateOrder(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, "o1", order.ID)
	})

	t.Run("key is released when result cannot be stored", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		idem := mocks.NewMockIdempotencyStore(t)

		idem.EXPECT().Reserve(mock.Anything, "u1", "key-1").Return("", true, nil)
		repo.EXPECT().InsertOrder(mock.Anything, mock.Anything).Return(entities.Order{ID: "o1"}, nil)
		repo.EXPECT().InsertLineItems(mock.Anything, "o1", mock.Anything).Return(nil)
		idem.EXPECT().Complete(mock.Anything, "u1", "key-1", "o1").Return(errors.New("redis down")).Times(3)
		idem.EXPECT().Release(mock.Anything, "u1", "key-1").Return(nil).Once()

		svc := service.NewOrderService(newLogger(), passThroughTx(t), repo, nil, idem)
		order, err := svc.CreateOrder(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, "o1", order.ID)
	})

	t.Run("complete is retried", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		idem := mocks.NewMockIdempotencyStore(t)

		idem.EXPECT().Reserve(mock.Anything, "u1", "key-1").Return("", true, nil)
		repo.EXPECT().InsertOrder(mock.Anything, mock.Anything).Return(entities.Order{ID: "o1"}, nil)
		repo.EXPECT().InsertLineItems(mock.Anything, "o1", mock.Anything).Return(nil)
		idem.EXPECT().Complete(mock.Anything, "u1", "key-1", "o1").Return(errors.New("timeout")).Once()
		idem.EXPECT().Complete(mock.Anything, "u1", "key-1", "o1").Return(nil).Once()

		svc := service.NewOrderService(newLogger(), passThroughTx(t), repo, nil, idem)
		order, err := svc.CreateOrder(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, "o1", order.ID)
	})

	t.Run("result is stored after the caller went away", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		idem := mocks.NewMockIdempotencyStore(t)
		ctx, cancel := context.WithCancel(context.Background())

		idem.EXPECT().Reserve(mock.Anything, "u1", "key-1").Return("", true, nil)
		repo.EXPECT().InsertOrder(mock.Anything, mock.Anything).Return(entities.Order{ID: "o1"}, nil)
		repo.EXPECT().InsertLineItems(mock.Anything, "o1", mock.Anything).RunAndReturn(
			func(context.Context, string, []entities.LineItem) error {
				cancel()
				return nil
			})
		idem.EXPECT().Complete(mock.Anything, "u1", "key-1", "o1").RunAndReturn(
			func(ctx context.Context, _, _, _ string) error {
				return ctx.Err()
			}).Once()

		svc := service.NewOrderService(newLogger(), passThroughTx(t), repo, nil, idem)
		order, err := svc.CreateOrder(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "o1", order.ID)
	})

	t.Run("replay returns stored order", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		idem := mocks.NewMockIdempotencyStore(t)

		idem.EXPECT().Reserve(mock.Anything, "u1", "key-1").Return("o1", false, nil)
		repo.EXPECT().GetOrder(mock.Anything, "o1").Return(entities.Order{ID: "o1"}, nil)

		svc := service.NewOrderService(newLogger(), passThroughTx(t), repo, nil, idem)
		order, err := svc.CreateOrder(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, "o1", order.ID)
	})

	t.Run("failed create releases the key", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		idem := mocks.NewMockIdempotencyStore(t)

		idem.EXPECT().Reserve(mock.Anything, "u1", "key-1").Return("", true, nil)
		repo.EXPECT().InsertOrder(mock.Anything, mock.Anything).Return(entities.Order{}, errors.New("db error"))
		idem.EXPECT().Release(mock.Anything, "u1", "key-1").Return(nil)

		svc := service.NewOrderService(newLogger(), passThroughTx(t), repo, nil, idem)
		_, err := svc.CreateOrder(context.Background(), in)
		assert.ErrorIs(t, err, entities.ErrStore)
	})

	t.Run("reserve error is returned", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		idem := mocks.NewMockIdempotencyStore(t)
		inProgress := errors.New("in progress")

		idem.EXPECT().Reserve(mock.Anything, "u1", "key-1").Return("", false, inProgress)

		svc := service.NewOrderService(newLogger(), passThroughTx(t), repo, nil, idem)
		_, err := svc.CreateOrder(context.Background(), in)
		assert.ErrorIs(t, err, inProgress)
	})
}

func TestOrderService_AdvanceStatus(t *testing.T) {
	testCases := []struct {
		name         string
		expected     entities.Status
		next         entities.Status
		mockBehavior func(repo *mocks.MockOrderRepo)
		wantErr      error
	}{
		{
			name:     "preparing to on the way",
			expected: entities.StatusPreparing,
			next:     entities.StatusOnTheWay,
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().
					AdvanceStatus(mock.Anything, "o1", "d1", entities.StatusPreparing, entities.StatusOnTheWay).
					Return(entities.Order{ID: "o1", DriverID: "d1", Status: entities.StatusOnTheWay}, nil)
			},
		},
		{
			name:         "delivered back to preparing",
			expected:     entities.StatusDelivered,
			next:         entities.StatusPreparing,
			mockBehavior: func(repo *mocks.MockOrderRepo) {},
			wantErr:      entities.ErrInvalidTransition,
		},
		{
			name:         "skipping a step",
			expected:     entities.StatusPreparing,
			next:         entities.StatusDelivered,
			mockBehavior: func(repo *mocks.MockOrderRepo) {},
			wantErr:      entities.ErrInvalidTransition,
		},
		{
			name:         "cancel is not an advance",
			expected:     entities.StatusOnTheWay,
			next:         entities.StatusCanceled,
			mockBehavior: func(repo *mocks.MockOrderRepo) {},
			wantErr:      entities.ErrInvalidTransition,
		},
		{
			name:     "stale expected status",
			expected: entities.StatusOnTheWay,
			next:     entities.StatusDelivered,
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().
					AdvanceStatus(mock.Anything, "o1", "d1", entities.StatusOnTheWay, entities.StatusDelivered).
					Return(entities.Order{}, entities.ErrInvalidTransition)
			},
			wantErr: entities.ErrInvalidTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			tc.mockBehavior(repo)

			svc := service.NewOrderService(newLogger(), passThroughTx(t), repo, nil, nil)
			order, err := svc.AdvanceStatus(context.Background(), "o1", "d1", tc.expected, tc.next)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.next, order.Status)
		})
	}
}

func TestOrderService_ReportDriverLocation(t *testing.T) {
	testCases := []struct {
		name         string
		coord        entities.Coordinate
		mockBehavior func(repo *mocks.MockOrderRepo)
		wantErr      error
	}{
		{
			name:  "accepted",
			coord: entities.Coordinate{Lat: 52.23, Lng: 21.01},
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().UpdateDriverLocation(mock.Anything, "o1", "d1", entities.Coordinate{Lat: 52.23, Lng: 21.01}).Return(nil)
			},
		},
		{
			name:         "latitude out of range",
			coord:        entities.Coordinate{Lat: 91, Lng: 0},
			mockBehavior: func(repo *mocks.MockOrderRepo) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:         "latitude is NaN",
			coord:        entities.Coordinate{Lat: math.NaN(), Lng: 0},
			mockBehavior: func(repo *mocks.MockOrderRepo) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:         "longitude is infinite",
			coord:        entities.Coordinate{Lat: 0, Lng: math.Inf(-1)},
			mockBehavior: func(repo *mocks.MockOrderRepo) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:  "order not on the way",
			coord: entities.Coordinate{Lat: 1, Lng: 1},
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().UpdateDriverLocation(mock.Anything, "o1", "d1", mock.Anything).Return(entities.ErrInvalidTransition)
			},
			wantErr: entities.ErrInvalidTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			tc.mockBehavior(repo)

			svc := service.NewOrderService(newLogger(), passThroughTx(t), repo, nil, nil)
			err := svc.ReportDriverLocation(context.Background(), "o1", "d1", tc.coord)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_GetOrderFor(t *testing.T) {
	client := entities.Session{UserID: "u1", Role: entities.RoleClient}
	driver := entities.Session{UserID: "d1", Role: entities.RoleDriver}

	testCases := []struct {
		name    string
		session entities.Session
		order   entities.Order
		wantErr error
	}{
		{
			name:    "owner",
			session: client,
			order:   entities.Order{ID: "o1", UserID: "u1", Status: entities.StatusCreated},
		},
		{
			name:    "other client",
			session: client,
			order:   entities.Order{ID: "o1", UserID: "u2", Status: entities.StatusCreated},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "driver sees available order",
			session: driver,
			order:   entities.Order{ID: "o1", UserID: "u2", Status: entities.StatusCreated},
		},
		{
			name:    "assigned driver",
			session: driver,
			order:   entities.Order{ID: "o1", UserID: "u2", DriverID: "d1", Status: entities.StatusDelivered},
		},
		{
			name:    "other driver",
			session: driver,
			order:   entities.Order{ID: "o1", UserID: "u2", DriverID: "d2", Status: entities.StatusPreparing},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			repo.EXPECT().GetOrder(mock.Anything, "o1").Return(tc.order, nil)

			svc := service.NewOrderService(newLogger(), passThroughTx(t), repo, nil, nil)
			_, err := svc.GetOrderFor(context.Background(), tc.session, "o1")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
