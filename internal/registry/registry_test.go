package registry_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/registry"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/repo"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/service"
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

// versionLister returns a single order whose ID is the current version and
// counts queries per user.
type versionLister struct {
	mu      sync.Mutex
	version int
	err     error
	calls   map[string]int
	served  int
}

func newVersionLister() *versionLister {
	return &versionLister{version: 1, calls: make(map[string]int)}
}

func (l *versionLister) ListOrders(_ context.Context, f entities.OrderFilter) ([]entities.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls[f.UserID]++
	l.served = l.version
	if l.err != nil {
		return nil, l.err
	}
	return []entities.Order{{ID: strconv.Itoa(l.version), UserID: f.UserID}}, nil
}

func (l *versionLister) set(v int) {
	l.mu.Lock()
	l.version = v
	l.mu.Unlock()
}

func (l *versionLister) lastServed() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.served
}

func (l *versionLister) callsFor(userID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls[userID]
}

func next(t *testing.T, sub *registry.Subscription) registry.Snapshot {
	t.Helper()
	select {
	case snap, ok := <-sub.Updates():
		require.True(t, ok, "updates closed")
		return snap
	case <-time.After(waitFor):
		t.Fatalf("no snapshot for %s", sub.Query())
	}
	return registry.Snapshot{}
}

func waitClosed(t *testing.T, sub *registry.Subscription) {
	t.Helper()
	deadline := time.After(waitFor)
	for {
		select {
		case _, ok := <-sub.Updates():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("subscription %s not closed", sub.Query())
		}
	}
}

func newRegistry(t *testing.T, lister registry.OrderLister) *registry.Registry {
	reg := registry.New(newLogger(), lister, nil)
	t.Cleanup(func() { _ = reg.Close() })
	return reg
}

func TestScope_Subscribe(t *testing.T) {
	reg := newRegistry(t, newVersionLister())
	scope, err := reg.NewScope(context.Background(), "u1")
	require.NoError(t, err)

	sub, err := scope.Subscribe(registry.ClientHistory("u1"))
	require.NoError(t, err)

	snap := next(t, sub)
	assert.Equal(t, registry.ClientHistory("u1"), snap.Query)
	require.NoError(t, snap.Err)
	require.Len(t, snap.Orders, 1)
	assert.Equal(t, "1", snap.Orders[0].ID)
}

func TestScope_SubscribeInvalidQuery(t *testing.T) {
	reg := newRegistry(t, newVersionLister())
	scope, err := reg.NewScope(context.Background(), "u1")
	require.NoError(t, err)

	tests := []registry.Query{
		{Kind: "bogus"},
		{Kind: registry.KindClientHistory},
		{Kind: registry.KindAvailable, Param: "x"},
	}
	for _, q := range tests {
		t.Run(q.String(), func(t *testing.T) {
			_, err := scope.Subscribe(q)
			assert.ErrorIs(t, err, entities.ErrValidation)
		})
	}
	assert.Equal(t, 0, reg.Feeds())
}

func TestScope_ResubscribeReplacesPrevious(t *testing.T) {
	reg := newRegistry(t, newVersionLister())
	scope, err := reg.NewScope(context.Background(), "u1")
	require.NoError(t, err)

	first, err := scope.Subscribe(registry.ClientHistory("u1"))
	require.NoError(t, err)
	second, err := scope.Subscribe(registry.ClientHistory("u1"))
	require.NoError(t, err)

	waitClosed(t, first)
	next(t, second)
	assert.Equal(t, 1, scope.Len())
	assert.Equal(t, 1, reg.Feeds())
}

func TestRegistry_SharedFeed(t *testing.T) {
	lister := newVersionLister()
	reg := newRegistry(t, lister)

	a, err := reg.NewScope(context.Background(), "a")
	require.NoError(t, err)
	b, err := reg.NewScope(context.Background(), "b")
	require.NoError(t, err)

	subA, err := a.Subscribe(registry.Available())
	require.NoError(t, err)
	subB, err := b.Subscribe(registry.Available())
	require.NoError(t, err)

	next(t, subA)
	next(t, subB)
	assert.Equal(t, 1, reg.Feeds())
	assert.Equal(t, 1, lister.callsFor(""))

	lister.set(2)
	reg.Notify(entities.OrderChange{OrderID: "o1", UserID: "u1"})

	assert.Equal(t, "2", next(t, subA).Orders[0].ID)
	assert.Equal(t, "2", next(t, subB).Orders[0].ID)
	assert.Equal(t, 2, lister.callsFor(""))

	subA.Close()
	assert.Equal(t, 1, reg.Feeds())
	subB.Close()
	assert.Equal(t, 0, reg.Feeds())
}

func TestRegistry_NotifyOnlyAffectedFeeds(t *testing.T) {
	lister := newVersionLister()
	reg := newRegistry(t, lister)
	scope, err := reg.NewScope(context.Background(), "admin")
	require.NoError(t, err)

	subU1, err := scope.Subscribe(registry.ClientHistory("u1"))
	require.NoError(t, err)
	subU2, err := scope.Subscribe(registry.ClientHistory("u2"))
	require.NoError(t, err)
	next(t, subU1)
	next(t, subU2)

	reg.Notify(entities.OrderChange{OrderID: "o1", UserID: "u1"})
	next(t, subU1)

	assert.Never(t, func() bool { return len(subU2.Updates()) > 0 }, 100*time.Millisecond, 10*time.Millisecond)
	assert.Equal(t, 1, lister.callsFor("u2"))
	assert.Equal(t, 2, lister.callsFor("u1"))
}

func TestSubscription_SlowConsumerSeesLatest(t *testing.T) {
	lister := newVersionLister()
	reg := newRegistry(t, lister)
	scope, err := reg.NewScope(context.Background(), "u1")
	require.NoError(t, err)

	sub, err := scope.Subscribe(registry.ClientHistory("u1"))
	require.NoError(t, err)
	next(t, sub)

	for v := 2; v <= 5; v++ {
		lister.set(v)
		reg.Notify(entities.OrderChange{OrderID: "o1", UserID: "u1"})
		require.Eventually(t, func() bool { return lister.lastServed() == v }, waitFor, time.Millisecond)
	}

	// at most one pending snapshot plus the one still being published
	received := 0
	for {
		snap := next(t, sub)
		received++
		if snap.Orders[0].ID == "5" {
			break
		}
	}
	assert.LessOrEqual(t, received, 2)
}

func TestSubscription_DeliversErrors(t *testing.T) {
	lister := newVersionLister()
	lister.err = errors.New("store down")
	reg := newRegistry(t, lister)
	scope, err := reg.NewScope(context.Background(), "u1")
	require.NoError(t, err)

	sub, err := scope.Subscribe(registry.OrderByID("o1"))
	require.NoError(t, err)

	snap := next(t, sub)
	assert.EqualError(t, snap.Err, "store down")
	assert.Empty(t, snap.Orders)
}

func TestSubscription_CloseIsIdempotent(t *testing.T) {
	reg := newRegistry(t, newVersionLister())
	scope, err := reg.NewScope(context.Background(), "u1")
	require.NoError(t, err)

	sub, err := scope.Subscribe(registry.ClientCurrent("u1"))
	require.NoError(t, err)

	sub.Close()
	sub.Close()
	waitClosed(t, sub)
	assert.Equal(t, 0, reg.Feeds())
	assert.Equal(t, 0, scope.Len())
}

func TestScope_ContextCancelReleases(t *testing.T) {
	reg := newRegistry(t, newVersionLister())
	ctx, cancel := context.WithCancel(context.Background())
	scope, err := reg.NewScope(ctx, "u1")
	require.NoError(t, err)

	sub, err := scope.Subscribe(registry.ClientHistory("u1"))
	require.NoError(t, err)

	cancel()
	waitClosed(t, sub)
	require.Eventually(t, func() bool { return reg.Feeds() == 0 }, waitFor, time.Millisecond)

	_, err = scope.Subscribe(registry.ClientHistory("u1"))
	assert.ErrorIs(t, err, registry.ErrScopeClosed)
}

type fakeAuth struct {
	events chan entities.AuthEvent
}

func (a *fakeAuth) Changes(ctx context.Context) <-chan entities.AuthEvent {
	return a.events
}

func TestRegistry_ReleasesSignedOutOwner(t *testing.T) {
	auth := &fakeAuth{events: make(chan entities.AuthEvent)}
	reg := registry.New(newLogger(), newVersionLister(), auth)
	t.Cleanup(func() { _ = reg.Close() })
	require.NoError(t, reg.Start(context.Background()))

	mine, err := reg.NewScope(context.Background(), "u1")
	require.NoError(t, err)
	other, err := reg.NewScope(context.Background(), "u2")
	require.NoError(t, err)

	subMine, err := mine.Subscribe(registry.ClientHistory("u1"))
	require.NoError(t, err)
	subOther, err := other.Subscribe(registry.ClientHistory("u2"))
	require.NoError(t, err)
	next(t, subOther)

	auth.events <- entities.AuthEvent{Type: entities.SignedIn, UserID: "u1"}
	auth.events <- entities.AuthEvent{Type: entities.SignedOut, UserID: "u1"}

	waitClosed(t, subMine)
	reg.Notify(entities.OrderChange{OrderID: "o2", UserID: "u2"})
	next(t, subOther)
}

func TestRegistry_Close(t *testing.T) {
	reg := registry.New(newLogger(), newVersionLister(), nil)
	scope, err := reg.NewScope(context.Background(), "u1")
	require.NoError(t, err)
	sub, err := scope.Subscribe(registry.Available())
	require.NoError(t, err)

	require.NoError(t, reg.Close())
	require.NoError(t, reg.Close())
	waitClosed(t, sub)

	_, err = reg.NewScope(context.Background(), "u1")
	assert.ErrorIs(t, err, registry.ErrClosed)
}

func TestRegistry_MemoryStoreChanges(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryStore()
	svc := service.NewOrderService(newLogger(), store, store, nil, nil)
	reg := newRegistry(t, store)
	store.OnChange(reg.Notify)

	client, err := reg.NewScope(ctx, "client-1")
	require.NoError(t, err)
	driver, err := reg.NewScope(ctx, "driver-1")
	require.NoError(t, err)

	current, err := client.Subscribe(registry.ClientCurrent("client-1"))
	require.NoError(t, err)
	available, err := driver.Subscribe(registry.Available())
	require.NoError(t, err)
	active, err := driver.Subscribe(registry.DriverActive("driver-1"))
	require.NoError(t, err)

	assert.Empty(t, next(t, current).Orders)
	assert.Empty(t, next(t, available).Orders)
	assert.Empty(t, next(t, active).Orders)

	created, err := svc.CreateOrder(ctx, service.NewOrder{
		UserID: "client-1",
		Items: []entities.LineItem{
			{ProductID: 1, Name: "Classic Burger", Price: decimal.RequireFromString("8.00")},
		},
		Total: decimal.RequireFromString("8.00"),
	})
	require.NoError(t, err)

	snap := next(t, current)
	require.Len(t, snap.Orders, 1)
	assert.Equal(t, created.ID, snap.Orders[0].ID)
	require.Len(t, next(t, available).Orders, 1)

	_, err = svc.AcceptOrder(ctx, created.ID, "driver-1")
	require.NoError(t, err)

	assert.Empty(t, next(t, available).Orders)
	snap = next(t, active)
	require.Len(t, snap.Orders, 1)
	assert.Equal(t, entities.StatusPreparing, snap.Orders[0].Status)
	assert.Equal(t, entities.StatusPreparing, next(t, current).Orders[0].Status)
}
