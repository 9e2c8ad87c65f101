package registry

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
)

var ErrClosed = errors.New("registry is closed")

const queryTimeout = 5 * time.Second

type OrderLister interface {
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
}

type AuthSource interface {
	Changes(ctx context.Context) <-chan entities.AuthEvent
}

// Registry keeps one feed per distinct query and re-runs a feed whenever a
// change may affect its result.
type Registry struct {
	logger *slog.Logger
	lister OrderLister
	auth   AuthSource

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
	feeds  map[Query]*feed
	scopes map[*Scope]struct{}
}

// New creates a registry. auth may be nil, then scopes are released only by
// their owners.
func New(logger *slog.Logger, lister OrderLister, auth AuthSource) *Registry {
	ctx, cancel := context.WithCancel(context.Background())
	return &Registry{
		logger: logger,
		lister: lister,
		auth:   auth,
		ctx:    ctx,
		cancel: cancel,
		feeds:  make(map[Query]*feed),
		scopes: make(map[*Scope]struct{}),
	}
}

// Start watches sign-outs. It returns immediately.
func (r *Registry) Start(ctx context.Context) error {
	if r.auth == nil {
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	events := r.auth.Changes(ctx)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer cancel()
		for {
			select {
			case <-r.ctx.Done():
				return
			case <-ctx.Done():
				return
			case ev := <-events:
				if ev.Type == entities.SignedOut {
					r.ReleaseOwner(ev.UserID)
				}
			}
		}
	}()
	return nil
}

// Close releases every scope and stops all feeds.
func (r *Registry) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	scopes := make([]*Scope, 0, len(r.scopes))
	for s := range r.scopes {
		scopes = append(scopes, s)
	}
	r.mu.Unlock()

	for _, s := range scopes {
		s.Close()
	}
	r.cancel()
	r.wg.Wait()
	r.logger.Info("registry closed")
	return nil
}

// NewScope returns a scope owned by owner which is closed when ctx is done.
func (r *Registry) NewScope(ctx context.Context, owner string) (*Scope, error) {
	s := &Scope{
		reg:   r,
		owner: owner,
		done:  make(chan struct{}),
		subs:  make(map[Query]*Subscription),
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, ErrClosed
	}
	r.scopes[s] = struct{}{}
	r.mu.Unlock()

	s.watch(ctx)
	return s, nil
}

// ReleaseOwner closes every scope owned by owner.
func (r *Registry) ReleaseOwner(owner string) {
	r.mu.Lock()
	var scopes []*Scope
	for s := range r.scopes {
		if s.owner == owner {
			scopes = append(scopes, s)
		}
	}
	r.mu.Unlock()

	for _, s := range scopes {
		s.Close()
	}
	if len(scopes) > 0 {
		r.logger.Info("released scopes of signed out user", "user_id", owner, "scopes", len(scopes))
	}
}

// Notify re-runs the feeds whose result may depend on change.
func (r *Registry) Notify(change entities.OrderChange) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for q, f := range r.feeds {
		if q.Affected(change) {
			f.markDirty()
		}
	}
}

// Resync re-runs every feed. Used when changes may have been missed.
func (r *Registry) Resync() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.feeds {
		f.markDirty()
	}
}

// Feeds returns the number of distinct live queries.
func (r *Registry) Feeds() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.feeds)
}

func (r *Registry) attach(sub *Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	if sub.isClosed() {
		return ErrScopeClosed
	}
	f, ok := r.feeds[sub.query]
	if !ok {
		f = newFeed(r, sub.query)
		r.feeds[sub.query] = f
		activeFeeds.Inc()
		r.wg.Add(1)
		go f.run()
	}
	f.add(sub)
	activeSubscriptions.Inc()
	return nil
}

func (r *Registry) release(sub *Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.feeds[sub.query]
	if !ok {
		return
	}
	left, found := f.remove(sub)
	if !found {
		return
	}
	activeSubscriptions.Dec()
	if left == 0 {
		delete(r.feeds, sub.query)
		f.cancel()
		activeFeeds.Dec()
	}
}

func (r *Registry) forgetScope(s *Scope) {
	r.mu.Lock()
	delete(r.scopes, s)
	r.mu.Unlock()
}

// feed runs one query and fans its snapshots out to subscribers.
type feed struct {
	reg    *Registry
	query  Query
	ctx    context.Context
	cancel context.CancelFunc
	dirty  chan struct{}

	mu   sync.Mutex
	subs map[*Subscription]struct{}
	last *Snapshot
}

func newFeed(r *Registry, q Query) *feed {
	ctx, cancel := context.WithCancel(r.ctx)
	f := &feed{
		reg:    r,
		query:  q,
		ctx:    ctx,
		cancel: cancel,
		dirty:  make(chan struct{}, 1),
		subs:   make(map[*Subscription]struct{}),
	}
	f.markDirty()
	return f
}

func (f *feed) markDirty() {
	select {
	case f.dirty <- struct{}{}:
	default:
	}
}

func (f *feed) add(sub *Subscription) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs[sub] = struct{}{}
	if f.last != nil {
		sub.offer(*f.last)
	}
}

func (f *feed) remove(sub *Subscription) (int, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.subs[sub]; !ok {
		return len(f.subs), false
	}
	delete(f.subs, sub)
	return len(f.subs), true
}

func (f *feed) run() {
	defer f.reg.wg.Done()
	for {
		select {
		case <-f.ctx.Done():
			return
		case <-f.dirty:
			f.refresh()
		}
	}
}

func (f *feed) refresh() {
	ctx, cancel := context.WithTimeout(f.ctx, queryTimeout)
	orders, err := f.reg.lister.ListOrders(ctx, f.query.Filter())
	cancel()

	if f.ctx.Err() != nil {
		return
	}
	if err != nil {
		f.reg.logger.Error("failed to refresh feed", "query", f.query.String(), "err", err)
		feedErrors.Inc()
	}
	f.publish(Snapshot{Query: f.query, Orders: orders, Err: err})
}

func (f *feed) publish(snap Snapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.last = &snap
	for sub := range f.subs {
		sub.offer(snap)
	}
}
