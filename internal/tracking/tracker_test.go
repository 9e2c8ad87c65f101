package tracking_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/repo"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/service"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/tracking"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const waitFor = 2 * time.Second

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type write struct {
	orderID string
	coord   entities.Coordinate
	ctxErr  error
}

// recorder stores written positions. When gate is set every write waits for
// a value from it; failAfter makes writes past that count fail with err.
type recorder struct {
	mu        sync.Mutex
	writes    []write
	gate      chan struct{}
	started   chan struct{}
	failAfter int
	err       error
}

func (r *recorder) ReportDriverLocation(ctx context.Context, orderID, driverID string, c entities.Coordinate) error {
	if r.started != nil {
		r.started <- struct{}{}
	}
	if r.gate != nil {
		<-r.gate
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil && len(r.writes) >= r.failAfter {
		return r.err
	}
	r.writes = append(r.writes, write{orderID: orderID, coord: c, ctxErr: ctx.Err()})
	return nil
}

func (r *recorder) written() []write {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]write(nil), r.writes...)
}

func coords(n int) []entities.Coordinate {
	out := make([]entities.Coordinate, n)
	for i := range out {
		out[i] = entities.Coordinate{Lat: float64(i), Lng: float64(i)}
	}
	return out
}

func feed(points []entities.Coordinate) <-chan entities.Coordinate {
	ch := make(chan entities.Coordinate, len(points))
	for _, p := range points {
		ch <- p
	}
	close(ch)
	return ch
}

func TestTracker_ForwardsPositions(t *testing.T) {
	rec := &recorder{}
	tracker := tracking.NewTracker(newLogger(), rec)
	defer tracker.Close()

	require.NoError(t, tracker.Start("o1", "d1", feed(coords(3))))
	require.Eventually(t, func() bool { return !tracker.Active("o1") }, waitFor, time.Millisecond)

	writes := rec.written()
	require.Len(t, writes, 3)
	for i, w := range writes {
		assert.Equal(t, "o1", w.orderID)
		assert.Equal(t, float64(i), w.coord.Lat)
	}
}

func TestTracker_StopLetsInflightWriteComplete(t *testing.T) {
	rec := &recorder{gate: make(chan struct{}), started: make(chan struct{})}
	tracker := tracking.NewTracker(newLogger(), rec)
	defer tracker.Close()

	source := make(chan entities.Coordinate)
	require.NoError(t, tracker.Start("o1", "d1", source))

	source <- entities.Coordinate{Lat: 1, Lng: 1}
	<-rec.started

	stopped := make(chan bool)
	go func() { stopped <- tracker.Stop("o1") }()

	select {
	case <-stopped:
		t.Fatal("stop returned before the in-flight write finished")
	case <-time.After(50 * time.Millisecond):
	}

	rec.gate <- struct{}{}
	assert.True(t, <-stopped)

	writes := rec.written()
	require.Len(t, writes, 1)
	assert.NoError(t, writes[0].ctxErr)

	select {
	case source <- entities.Coordinate{Lat: 2, Lng: 2}:
		t.Fatal("stopped reporter still reads positions")
	case <-time.After(50 * time.Millisecond):
	}
	assert.False(t, tracker.Stop("o1"))
}

func TestTracker_StopsItselfWhenOrderLeavesOnTheWay(t *testing.T) {
	rec := &recorder{failAfter: 2, err: entities.ErrInvalidTransition}
	tracker := tracking.NewTracker(newLogger(), rec)
	defer tracker.Close()

	source := make(chan entities.Coordinate, 5)
	for _, c := range coords(5) {
		source <- c
	}
	require.NoError(t, tracker.Start("o1", "d1", source))

	require.Eventually(t, func() bool { return !tracker.Active("o1") }, waitFor, time.Millisecond)
	assert.Len(t, rec.written(), 2)
	assert.Len(t, source, 2)
}

func TestTracker_StartReplacesRunningReporter(t *testing.T) {
	rec := &recorder{}
	tracker := tracking.NewTracker(newLogger(), rec)
	defer tracker.Close()

	first := make(chan entities.Coordinate)
	require.NoError(t, tracker.Start("o1", "d1", first))
	second := make(chan entities.Coordinate)
	require.NoError(t, tracker.Start("o1", "d1", second))

	select {
	case first <- entities.Coordinate{Lat: 1}:
		t.Fatal("replaced reporter still reads positions")
	case second <- entities.Coordinate{Lat: 2}:
	case <-time.After(waitFor):
		t.Fatal("new reporter does not read positions")
	}
	require.Eventually(t, func() bool { return len(rec.written()) == 1 }, waitFor, time.Millisecond)
	assert.Equal(t, float64(2), rec.written()[0].coord.Lat)
	assert.True(t, tracker.Active("o1"))
}

func TestTracker_Close(t *testing.T) {
	tracker := tracking.NewTracker(newLogger(), &recorder{})

	require.NoError(t, tracker.Start("o1", "d1", make(chan entities.Coordinate)))
	require.NoError(t, tracker.Start("o2", "d1", make(chan entities.Coordinate)))

	require.NoError(t, tracker.Close())
	assert.False(t, tracker.Active("o1"))
	assert.False(t, tracker.Active("o2"))
	assert.ErrorIs(t, tracker.Start("o3", "d1", nil), tracking.ErrClosed)
}

func TestTracker_SimulatedDrive(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryStore()
	svc := service.NewOrderService(newLogger(), store, store, nil, nil)
	tracker := tracking.NewTracker(newLogger(), svc)
	defer tracker.Close()

	order, err := svc.CreateOrder(ctx, service.NewOrder{
		UserID: "client-1",
		Items:  []entities.LineItem{{ProductID: 1, Name: "Classic Burger", Price: decimal.RequireFromString("8.00")}},
		Total:  decimal.RequireFromString("8.00"),
	})
	require.NoError(t, err)
	_, err = svc.AcceptOrder(ctx, order.ID, "driver-1")
	require.NoError(t, err)
	_, err = svc.AdvanceStatus(ctx, order.ID, "driver-1", entities.StatusPreparing, entities.StatusOnTheWay)
	require.NoError(t, err)

	from := entities.Coordinate{Lat: 48.8566, Lng: 2.3522}
	to := entities.Coordinate{Lat: 48.86, Lng: 2.33}
	path := tracking.Interpolate(from, to, 20)

	require.NoError(t, tracker.StartSimulation(order.ID, "driver-1", path, time.Millisecond))
	require.Eventually(t, func() bool { return !tracker.Active(order.ID) }, waitFor, time.Millisecond)

	got, err := svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DriverLocation)
	assert.Equal(t, to, *got.DriverLocation)
}

func TestTracker_DeliveryStopsReporter(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryStore()
	svc := service.NewOrderService(newLogger(), store, store, nil, nil)
	tracker := tracking.NewTracker(newLogger(), svc)
	defer tracker.Close()

	order, err := svc.CreateOrder(ctx, service.NewOrder{
		UserID: "client-1",
		Items:  []entities.LineItem{{ProductID: 1, Name: "Classic Burger", Price: decimal.RequireFromString("8.00")}},
		Total:  decimal.RequireFromString("8.00"),
	})
	require.NoError(t, err)
	_, err = svc.AcceptOrder(ctx, order.ID, "driver-1")
	require.NoError(t, err)
	_, err = svc.AdvanceStatus(ctx, order.ID, "driver-1", entities.StatusPreparing, entities.StatusOnTheWay)
	require.NoError(t, err)

	source := make(chan entities.Coordinate)
	require.NoError(t, tracker.Start(order.ID, "driver-1", source))
	source <- entities.Coordinate{Lat: 1, Lng: 1}
	require.Eventually(t, func() bool {
		o, err := svc.GetOrder(ctx, order.ID)
		return err == nil && o.DriverLocation != nil
	}, waitFor, time.Millisecond)

	_, err = svc.AdvanceStatus(ctx, order.ID, "driver-1", entities.StatusOnTheWay, entities.StatusDelivered)
	require.NoError(t, err)

	source <- entities.Coordinate{Lat: 2, Lng: 2}
	require.Eventually(t, func() bool { return !tracker.Active(order.ID) }, waitFor, time.Millisecond)

	got, err := svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DriverLocation)
	assert.Equal(t, entities.Coordinate{Lat: 1, Lng: 1}, *got.DriverLocation)
}

func TestTracker_StopEndsSimulation(t *testing.T) {
	rec := &recorder{}
	tracker := tracking.NewTracker(newLogger(), rec)
	defer tracker.Close()

	path := tracking.Interpolate(entities.Coordinate{}, entities.Coordinate{Lat: 1, Lng: 1}, 20)
	require.NoError(t, tracker.StartSimulation("o1", "d1", path, time.Hour))
	require.Eventually(t, func() bool { return len(rec.written()) == 1 }, waitFor, time.Millisecond)

	assert.True(t, tracker.Stop("o1"))
	assert.Len(t, rec.written(), 1)
}
