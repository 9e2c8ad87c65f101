package repo

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/food-delivery-service/pkg/trm"

	"github.com/google/uuid"
)

// MemoryStore keeps orders, users and addresses in process memory. It is used
// when the service runs without postgres and by the scenario tests.
// It also acts as its own transaction manager.
type MemoryStore struct {
	mu          sync.RWMutex
	orders      map[string]entities.Order
	users       map[string]entities.User
	emails      map[string]string // email -> user id
	addresses   map[string]entities.Address
	lastCreated time.Time
	now         func() time.Time

	sinkMu   sync.RWMutex
	onChange func(entities.OrderChange)
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		orders:    make(map[string]entities.Order),
		users:     make(map[string]entities.User),
		emails:    make(map[string]string),
		addresses: make(map[string]entities.Address),
		now:       time.Now,
	}
}

// OnChange registers the callback invoked after every committed order write.
func (s *MemoryStore) OnChange(fn func(entities.OrderChange)) {
	s.sinkMu.Lock()
	defer s.sinkMu.Unlock()
	s.onChange = fn
}

func (s *MemoryStore) emit(changes ...entities.OrderChange) {
	s.sinkMu.RLock()
	fn := s.onChange
	s.sinkMu.RUnlock()

	if fn == nil {
		return
	}
	for _, c := range changes {
		fn(c)
	}
}

// nextCreatedAt must be called with s.mu held.
func (s *MemoryStore) nextCreatedAt() time.Time {
	t := s.now().UTC()
	if !t.After(s.lastCreated) {
		t = s.lastCreated.Add(time.Microsecond)
	}
	s.lastCreated = t
	return t
}

func (s *MemoryStore) InsertOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	s.mu.Lock()
	o.ID = uuid.NewString()
	o.CreatedAt = s.nextCreatedAt()
	o = cloneOrder(o)

	if tx := extractMemTx(ctx); tx != nil {
		s.mu.Unlock()
		tx.stage(o)
		return cloneOrder(o), nil
	}

	s.orders[o.ID] = o
	s.mu.Unlock()

	s.emit(entities.ChangeOf(o))
	return cloneOrder(o), nil
}

func (s *MemoryStore) InsertLineItems(ctx context.Context, orderID string, items []entities.LineItem) error {
	if tx := extractMemTx(ctx); tx != nil {
		if tx.attach(orderID, items) {
			return nil
		}
	}

	s.mu.Lock()
	o, ok := s.orders[orderID]
	if !ok {
		s.mu.Unlock()
		return entities.ErrOrderNotFound
	}
	o.Items = append(slices.Clone(o.Items), items...)
	s.orders[orderID] = o
	s.mu.Unlock()

	s.emit(entities.ChangeOf(o))
	return nil
}

func (s *MemoryStore) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return cloneOrder(o), nil
}

func (s *MemoryStore) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	s.mu.RLock()
	result := make([]entities.Order, 0)
	for _, o := range s.orders {
		if filter.Matches(o) {
			result = append(result, cloneOrder(o))
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(result, func(a, b entities.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if filter.Limit > 0 && uint64(len(result)) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (s *MemoryStore) AcceptOrder(ctx context.Context, id, driverID string) (entities.Order, error) {
	return s.update(id, func(o *entities.Order) error {
		if o.Status != entities.StatusCreated || o.DriverID != "" {
			return entities.ErrInvalidTransition
		}
		o.DriverID = driverID
		o.Status = entities.StatusPreparing
		return nil
	})
}

func (s *MemoryStore) AdvanceStatus(ctx context.Context, id, driverID string, expected, next entities.Status) (entities.Order, error) {
	return s.update(id, func(o *entities.Order) error {
		if o.Status != expected || o.DriverID != driverID {
			return entities.ErrInvalidTransition
		}
		o.Status = next
		return nil
	})
}

func (s *MemoryStore) CancelOrder(ctx context.Context, id, userID string) (entities.Order, error) {
	return s.update(id, func(o *entities.Order) error {
		if o.UserID != userID {
			return entities.ErrOrderNotFound
		}
		if o.Status.IsTerminal() {
			return entities.ErrInvalidTransition
		}
		o.Status = entities.StatusCanceled
		return nil
	})
}

func (s *MemoryStore) UpdateDriverLocation(ctx context.Context, id, driverID string, c entities.Coordinate) error {
	_, err := s.update(id, func(o *entities.Order) error {
		if o.Status != entities.StatusOnTheWay || o.DriverID != driverID {
			return entities.ErrInvalidTransition
		}
		o.DriverLocation = &c
		return nil
	})
	return err
}

// update applies fn atomically; fn rejects the write by returning an error.
func (s *MemoryStore) update(id string, fn func(o *entities.Order) error) (entities.Order, error) {
	s.mu.Lock()
	o, ok := s.orders[id]
	if !ok {
		s.mu.Unlock()
		return entities.Order{}, entities.ErrOrderNotFound
	}
	o = cloneOrder(o)
	if err := fn(&o); err != nil {
		s.mu.Unlock()
		return entities.Order{}, err
	}
	s.orders[id] = o
	s.mu.Unlock()

	s.emit(entities.ChangeOf(o))
	return cloneOrder(o), nil
}

func (s *MemoryStore) CreateUser(ctx context.Context, u entities.User) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.emails[u.Email]; ok {
		return entities.User{}, entities.ErrEmailTaken
	}
	u.ID = uuid.NewString()
	s.users[u.ID] = u
	s.emails[u.Email] = u.ID
	return u, nil
}

func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emails[email]
	if !ok {
		return entities.User{}, entities.ErrUserNotFound
	}
	return s.users[id], nil
}

func (s *MemoryStore) GetUserByID(ctx context.Context, id string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return entities.User{}, entities.ErrUserNotFound
	}
	return u, nil
}

func (s *MemoryStore) BumpTokenVersion(ctx context.Context, id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return 0, entities.ErrUserNotFound
	}
	u.TokenVersion++
	s.users[id] = u
	return u.TokenVersion, nil
}

func (s *MemoryStore) UpdateDisplayName(ctx context.Context, id, name string) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return entities.User{}, entities.ErrUserNotFound
	}
	u.DisplayName = name
	s.users[id] = u
	return u, nil
}

func (s *MemoryStore) ListAddresses(ctx context.Context, userID string) ([]entities.Address, error) {
	s.mu.RLock()
	result := make([]entities.Address, 0)
	for _, a := range s.addresses {
		if a.UserID == userID {
			result = append(result, a)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(result, func(a, b entities.Address) int {
		if a.Name != b.Name {
			if a.Name < b.Name {
				return -1
			}
			return 1
		}
		if a.ID < b.ID {
			return -1
		}
		return 1
	})
	return result, nil
}

func (s *MemoryStore) GetAddress(ctx context.Context, userID, id string) (entities.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.addresses[id]
	if !ok || a.UserID != userID {
		return entities.Address{}, entities.ErrAddressNotFound
	}
	return a, nil
}

func (s *MemoryStore) SaveAddress(ctx context.Context, a entities.Address) (entities.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if existing, ok := s.addresses[a.ID]; ok && existing.UserID != a.UserID {
		return entities.Address{}, entities.ErrAddressNotFound
	}
	s.addresses[a.ID] = a
	return a, nil
}

func (s *MemoryStore) DeleteAddress(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.addresses[id]
	if !ok || a.UserID != userID {
		return entities.ErrAddressNotFound
	}
	delete(s.addresses, id)
	return nil
}

func (s *MemoryStore) BeginTx(ctx context.Context) (context.Context, trm.Transaction, error) {
	if extractMemTx(ctx) != nil {
		return ctx, nopTx{}, nil
	}
	tx := &memTx{store: s}
	return context.WithValue(ctx, memTxKey{}, tx), tx, nil
}

func (s *MemoryStore) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	ctx, tx, err := s.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := callback(ctx); err != nil {
		return err
	}
	return tx.Commit()
}

type memTxKey struct{}

func extractMemTx(ctx context.Context) *memTx {
	tx, _ := ctx.Value(memTxKey{}).(*memTx)
	return tx
}

// memTx buffers inserted orders until commit so readers never observe an
// order without its line items.
type memTx struct {
	store *MemoryStore

	mu     sync.Mutex
	staged []entities.Order
	done   bool
}

func (t *memTx) stage(o entities.Order) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.staged = append(t.staged, o)
}

func (t *memTx) attach(orderID string, items []entities.LineItem) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.staged {
		if t.staged[i].ID == orderID {
			t.staged[i].Items = append(t.staged[i].Items, items...)
			return true
		}
	}
	return false
}

func (t *memTx) Commit() error {
	t.mu.Lock()
	if t.done {
		t.mu.Unlock()
		return nil
	}
	t.done = true
	staged := t.staged
	t.staged = nil
	t.mu.Unlock()

	changes := make([]entities.OrderChange, 0, len(staged))
	t.store.mu.Lock()
	for _, o := range staged {
		t.store.orders[o.ID] = o
		changes = append(changes, entities.ChangeOf(o))
	}
	t.store.mu.Unlock()

	t.store.emit(changes...)
	return nil
}

func (t *memTx) Rollback() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.done = true
	t.staged = nil
	return nil
}

type nopTx struct{}

func (nopTx) Commit() error   { return nil }
func (nopTx) Rollback() error { return nil }

func cloneOrder(o entities.Order) entities.Order {
	o.Items = slices.Clone(o.Items)
	if o.DriverLocation != nil {
		loc := *o.DriverLocation
		o.DriverLocation = &loc
	}
	if o.Address != nil {
		addr := *o.Address
		if addr.Location != nil {
			loc := *addr.Location
			addr.Location = &loc
		}
		o.Address = &addr
	}
	return o
}
