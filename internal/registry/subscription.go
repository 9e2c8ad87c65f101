package registry

import (
	"sync"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
)

// Snapshot is the full result of a query at some point in time. Orders are
// shared between subscribers and must not be modified.
type Snapshot struct {
	Query  Query
	Orders []entities.Order
	Err    error
}

// Subscription delivers snapshots of one query. Only the latest undelivered
// snapshot is kept: a slow reader skips intermediate states.
type Subscription struct {
	query Query
	reg   *Registry
	scope *Scope

	mu      sync.Mutex
	closed  bool
	updates chan Snapshot
}

func newSubscription(reg *Registry, scope *Scope, q Query) *Subscription {
	return &Subscription{
		query:   q,
		reg:     reg,
		scope:   scope,
		updates: make(chan Snapshot, 1),
	}
}

func (s *Subscription) Query() Query {
	return s.query
}

// Updates is closed when the subscription is closed.
func (s *Subscription) Updates() <-chan Snapshot {
	return s.updates
}

// offer replaces any pending snapshot with snap. It never blocks.
func (s *Subscription) offer(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	select {
	case <-s.updates:
		snapshotsDropped.Inc()
	default:
	}
	s.updates <- snap
	snapshotsDelivered.Inc()
}

// Close releases the subscription. It is safe to call more than once.
func (s *Subscription) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.updates)
	s.mu.Unlock()

	s.reg.release(s)
	if s.scope != nil {
		s.scope.forget(s)
	}
}

func (s *Subscription) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
