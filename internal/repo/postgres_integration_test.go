//go:build integration

package repo_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/config"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/postgres"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/repo"
	"github.com/SergeyBogomolovv/food-delivery-service/pkg/trm"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDB(t *testing.T) (*repo.PostgresRepo, trm.Manager, config.Postgres) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	cfg := config.Postgres{
		Host:                 host,
		Port:                 port.Int(),
		DBName:               "testdb",
		User:                 "testuser",
		Password:             "testpass",
		SSLMode:              "disable",
		MaxOpenConns:         10,
		ListenerMinReconnect: 100 * time.Millisecond,
		ListenerMaxReconnect: time.Second,
	}

	db, err := postgres.New(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, postgres.Migrate(db))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return repo.NewPostgresRepo(logger, db), trm.NewManager(db), cfg
}

func createOrder(t *testing.T, r *repo.PostgresRepo, tx trm.Manager, userID string) entities.Order {
	t.Helper()
	ctx := context.Background()

	var order entities.Order
	err := tx.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = r.InsertOrder(ctx, entities.Order{
			UserID: userID,
			Total:  decimal.RequireFromString("10.50"),
			Status: entities.StatusCreated,
			Address: &entities.DeliveryAddress{
				Name: "Home", Street: "Main St 1", City: "Warsaw", PostalCode: "00-001",
				Location: &entities.Coordinate{Lat: 52.23, Lng: 21.01},
			},
		})
		if err != nil {
			return err
		}
		return r.InsertLineItems(ctx, order.ID, []entities.LineItem{
			{ProductID: 1, Name: "Classic Burger", Price: decimal.RequireFromString("8.00")},
			{ProductID: 10, Name: "Coca-Cola", Price: decimal.RequireFromString("2.50")},
		})
	})
	require.NoError(t, err)
	return order
}

func TestPostgresRepo_Lifecycle(t *testing.T) {
	r, tx, _ := setupTestDB(t)
	ctx := context.Background()

	userID, driverID := uuid.NewString(), uuid.NewString()
	created := createOrder(t, r, tx, userID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := r.GetOrder(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Classic Burger", got.Items[0].Name)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("10.50")))

	accepted, err := r.AcceptOrder(ctx, created.ID, driverID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPreparing, accepted.Status)
	assert.Equal(t, driverID, accepted.DriverID)

	_, err = r.AcceptOrder(ctx, created.ID, uuid.NewString())
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)

	err = r.UpdateDriverLocation(ctx, created.ID, driverID, entities.Coordinate{Lat: 1, Lng: 1})
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)

	_, err = r.AdvanceStatus(ctx, created.ID, driverID, entities.StatusPreparing, entities.StatusOnTheWay)
	require.NoError(t, err)
	require.NoError(t, r.UpdateDriverLocation(ctx, created.ID, driverID, entities.Coordinate{Lat: 52.2, Lng: 21.0}))

	delivered, err := r.AdvanceStatus(ctx, created.ID, driverID, entities.StatusOnTheWay, entities.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusDelivered, delivered.Status)
	require.NotNil(t, delivered.DriverLocation)

	_, err = r.CancelOrder(ctx, created.ID, userID)
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)

	_, err = r.GetOrder(ctx, uuid.NewString())
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	_, err = r.GetOrder(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestPostgresRepo_CancelBeforeAccept(t *testing.T) {
	r, tx, _ := setupTestDB(t)
	ctx := context.Background()

	userID := uuid.NewString()
	created := createOrder(t, r, tx, userID)

	canceled, err := r.CancelOrder(ctx, created.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusCanceled, canceled.Status)
	assert.Empty(t, canceled.DriverID)

	_, err = r.AcceptOrder(ctx, created.ID, uuid.NewString())
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)

	history, err := r.ListOrders(ctx, entities.OrderFilter{UserID: userID})
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, entities.StatusCanceled, history[0].Status)
}

func TestPostgresRepo_ConcurrentAccept(t *testing.T) {
	r, tx, _ := setupTestDB(t)
	ctx := context.Background()

	order := createOrder(t, r, tx, uuid.NewString())

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners int
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.AcceptOrder(ctx, order.ID, uuid.NewString())
			if err != nil && !errors.Is(err, entities.ErrInvalidTransition) {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if err == nil {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, winners)
}

func TestPostgresRepo_HistoryOrder(t *testing.T) {
	r, tx, _ := setupTestDB(t)
	ctx := context.Background()

	userID := uuid.NewString()
	for range 5 {
		createOrder(t, r, tx, userID)
	}

	orders, err := r.ListOrders(ctx, entities.OrderFilter{UserID: userID})
	require.NoError(t, err)
	require.Len(t, orders, 5)
	for i := 1; i < len(orders); i++ {
		assert.True(t, orders[i-1].CreatedAt.After(orders[i].CreatedAt))
	}

	current, err := r.ListOrders(ctx, entities.OrderFilter{
		UserID: userID, Statuses: entities.ActiveStatuses, Limit: 1,
	})
	require.NoError(t, err)
	require.Len(t, current, 1)
	assert.Equal(t, orders[0].ID, current[0].ID)
}

type changeRecorder struct {
	changes chan entities.OrderChange
}

func (c *changeRecorder) Notify(change entities.OrderChange) { c.changes <- change }
func (c *changeRecorder) Resync()                            {}

func TestListener_ForwardsChanges(t *testing.T) {
	r, tx, cfg := setupTestDB(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := &changeRecorder{changes: make(chan entities.OrderChange, 8)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	l := postgres.NewListener(logger, cfg, rec)
	require.NoError(t, l.Start(ctx))
	defer l.Close()

	userID := uuid.NewString()
	order := createOrder(t, r, tx, userID)

	select {
	case change := <-rec.changes:
		assert.Equal(t, entities.OrderChange{OrderID: order.ID, UserID: userID}, change)
	case <-time.After(5 * time.Second):
		t.Fatal("no change received")
	}
}

func TestPostgresRepo_UsersAndAddresses(t *testing.T) {
	r, _, _ := setupTestDB(t)
	ctx := context.Background()

	u, err := r.CreateUser(ctx, entities.User{Email: "ann@example.com", Role: entities.RoleClient, PasswordHash: "x"})
	require.NoError(t, err)

	_, err = r.CreateUser(ctx, entities.User{Email: "ann@example.com", Role: entities.RoleClient, PasswordHash: "x"})
	assert.ErrorIs(t, err, entities.ErrEmailTaken)

	version, err := r.BumpTokenVersion(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	a, err := r.SaveAddress(ctx, entities.Address{UserID: u.ID, Name: "Home", Street: "Main St 1", City: "Warsaw"})
	require.NoError(t, err)

	other, err := r.CreateUser(ctx, entities.User{Email: "bob@example.com", Role: entities.RoleClient, PasswordHash: "x"})
	require.NoError(t, err)
	_, err = r.SaveAddress(ctx, entities.Address{ID: a.ID, UserID: other.ID, Name: "Stolen", Street: "x", City: "y"})
	assert.ErrorIs(t, err, entities.ErrAddressNotFound)

	list, err := r.ListAddresses(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Home", list[0].Name)

	require.NoError(t, r.DeleteAddress(ctx, u.ID, a.ID))
	assert.ErrorIs(t, r.DeleteAddress(ctx, u.ID, a.ID), entities.ErrAddressNotFound)
}
