package entities

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusCreated   Status = "CREATED"
	StatusPreparing Status = "PREPARING"
	StatusOnTheWay  Status = "ON_THE_WAY"
	StatusDelivered Status = "DELIVERED"
	StatusCanceled  Status = "CANCELED"
)

// ActiveStatuses are the statuses of an order that still needs work.
var ActiveStatuses = []Status{StatusCreated, StatusPreparing, StatusOnTheWay}

// DriverActiveStatuses are the statuses of an order a driver is working on.
var DriverActiveStatuses = []Status{StatusPreparing, StatusOnTheWay}

func (s Status) Valid() bool {
	switch s {
	case StatusCreated, StatusPreparing, StatusOnTheWay, StatusDelivered, StatusCanceled:
		return true
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCanceled
}

func (s Status) String() string {
	return string(s)
}

// CanAdvance reports whether a driver may move an order from s to next.
// Acceptance (CREATED -> PREPARING) and cancellation have their own operations.
func (s Status) CanAdvance(next Status) bool {
	switch s {
	case StatusPreparing:
		return next == StatusOnTheWay
	case StatusOnTheWay:
		return next == StatusDelivered
	}
	return false
}

type Coordinate struct {
	Lat float64
	Lng float64
}

// Valid reports whether c is a finite point within WGS84 bounds.
func (c Coordinate) Valid() bool {
	for _, v := range []float64{c.Lat, c.Lng} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

type LineItem struct {
	ProductID int
	Name      string
	Price     decimal.Decimal
	ImageURL  string
}

type DeliveryAddress struct {
	Name       string
	Street     string
	City       string
	PostalCode string
	Location   *Coordinate
}

type Order struct {
	ID       string
	UserID   string
	DriverID string

	// порядок позиций важен для чека
	Items  []LineItem
	Total  decimal.Decimal
	Status Status

	CreatedAt      time.Time
	DriverLocation *Coordinate
	Address        *DeliveryAddress
}

// Validate checks the invariants every persisted order must hold.
func (o Order) Validate() error {
	switch {
	case o.ID == "":
		return malformed("missing id")
	case o.UserID == "":
		return malformed("missing user id")
	case !o.Status.Valid():
		return malformed("unknown status %q", o.Status)
	case o.CreatedAt.IsZero():
		return malformed("missing created_at")
	case o.Status != StatusCanceled && (o.DriverID == "") != (o.Status == StatusCreated):
		return malformed("driver %q inconsistent with status %s", o.DriverID, o.Status)
	case o.DriverLocation != nil && o.DriverID == "":
		return malformed("driver location without driver")
	}
	return nil
}

// VisibleTo reports whether the session may read the order: clients see their
// own orders, drivers see orders assigned to them and orders still available.
func (o Order) VisibleTo(s Session) bool {
	switch s.Role {
	case RoleClient:
		return o.UserID == s.UserID
	case RoleDriver:
		return o.DriverID == s.UserID || (o.Status == StatusCreated && o.DriverID == "")
	}
	return false
}

// ItemsTotal returns the sum of line item prices.
func ItemsTotal(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price)
	}
	return total
}

// OrderFilter describes a store query. Results are always ordered by CreatedAt descending.
type OrderFilter struct {
	ID       string
	UserID   string
	DriverID string
	Statuses []Status
	Limit    uint64
}

// Matches reports whether the order satisfies the filter, ignoring Limit.
func (f OrderFilter) Matches(o Order) bool {
	if f.ID != "" && o.ID != f.ID {
		return false
	}
	if f.UserID != "" && o.UserID != f.UserID {
		return false
	}
	if f.DriverID != "" && o.DriverID != f.DriverID {
		return false
	}
	if len(f.Statuses) == 0 {
		return true
	}
	for _, s := range f.Statuses {
		if o.Status == s {
			return true
		}
	}
	return false
}

// OrderChange is emitted by the store after an order document was written.
type OrderChange struct {
	OrderID  string `json:"id"`
	UserID   string `json:"user_id"`
	DriverID string `json:"driver_id"`
}

func ChangeOf(o Order) OrderChange {
	return OrderChange{OrderID: o.ID, UserID: o.UserID, DriverID: o.DriverID}
}

type EventType string

const (
	EventOrderCreated   EventType = "order_created"
	EventOrderAccepted  EventType = "order_accepted"
	EventStatusAdvanced EventType = "status_advanced"
	EventOrderCanceled  EventType = "order_canceled"
)

// OrderEvent is published to downstream consumers after each committed mutation.
type OrderEvent struct {
	Type       EventType `json:"type"`
	OrderID    string    `json:"order_id"`
	UserID     string    `json:"user_id"`
	DriverID   string    `json:"driver_id,omitempty"`
	Status     Status    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
