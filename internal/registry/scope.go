package registry

import (
	"context"
	"errors"
	"sync"
)

var ErrScopeClosed = errors.New("subscription scope is closed")

// Scope groups the subscriptions of one consumer. Closing it, cancelling its
// context or the owner signing out releases all of them.
type Scope struct {
	reg   *Registry
	owner string

	done chan struct{}

	mu     sync.Mutex
	closed bool
	subs   map[Query]*Subscription
	stop   func() bool
}

func (s *Scope) Owner() string {
	return s.owner
}

// Done is closed once the scope is closed.
func (s *Scope) Done() <-chan struct{} {
	return s.done
}

// Subscribe starts delivering snapshots of q. A previous subscription to the
// same query in this scope is closed first.
func (s *Scope) Subscribe(q Query) (*Subscription, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrScopeClosed
	}
	prev := s.subs[q]
	delete(s.subs, q)
	s.mu.Unlock()

	if prev != nil {
		prev.Close()
	}

	sub := newSubscription(s.reg, s, q)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrScopeClosed
	}
	racing := s.subs[q]
	s.subs[q] = sub
	s.mu.Unlock()

	if racing != nil {
		racing.Close()
	}

	if err := s.reg.attach(sub); err != nil {
		sub.Close()
		return nil, err
	}
	return sub, nil
}

// Unsubscribe closes the subscription to q, if any.
func (s *Scope) Unsubscribe(q Query) {
	s.mu.Lock()
	sub := s.subs[q]
	s.mu.Unlock()

	if sub != nil {
		sub.Close()
	}
}

// Len returns the number of open subscriptions.
func (s *Scope) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

func (s *Scope) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	subs := make([]*Subscription, 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.subs = make(map[Query]*Subscription)
	stop := s.stop
	close(s.done)
	s.mu.Unlock()

	if stop != nil {
		stop()
	}
	for _, sub := range subs {
		sub.Close()
	}
	s.reg.forgetScope(s)
}

func (s *Scope) forget(sub *Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subs[sub.query] == sub {
		delete(s.subs, sub.query)
	}
}

func (s *Scope) watch(ctx context.Context) {
	stop := context.AfterFunc(ctx, s.Close)

	s.mu.Lock()
	s.stop = stop
	s.mu.Unlock()
}
