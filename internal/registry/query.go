package registry

import (
	"fmt"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
)

type Kind string

const (
	KindAvailable     Kind = "available"
	KindDriverActive  Kind = "driver_active"
	KindClientCurrent Kind = "client_current"
	KindOrderByID     Kind = "order"
	KindClientHistory Kind = "client_history"
	KindDriverHistory Kind = "driver_history"
)

// Query identifies a live order query. Queries are comparable and equal
// queries share one feed.
type Query struct {
	Kind  Kind   `json:"kind"`
	Param string `json:"id,omitempty"`
}

func Available() Query { return Query{Kind: KindAvailable} }

func DriverActive(driverID string) Query { return Query{Kind: KindDriverActive, Param: driverID} }

func ClientCurrent(userID string) Query { return Query{Kind: KindClientCurrent, Param: userID} }

func OrderByID(orderID string) Query { return Query{Kind: KindOrderByID, Param: orderID} }

func ClientHistory(userID string) Query { return Query{Kind: KindClientHistory, Param: userID} }

func DriverHistory(driverID string) Query { return Query{Kind: KindDriverHistory, Param: driverID} }

func (q Query) String() string {
	if q.Param == "" {
		return string(q.Kind)
	}
	return fmt.Sprintf("%s(%s)", q.Kind, q.Param)
}

func (q Query) Validate() error {
	switch q.Kind {
	case KindAvailable:
		if q.Param != "" {
			return entities.Invalid("query %s takes no parameter", q.Kind)
		}
		return nil
	case KindDriverActive, KindClientCurrent, KindOrderByID, KindClientHistory, KindDriverHistory:
		if q.Param == "" {
			return entities.Invalid("query %s requires a parameter", q.Kind)
		}
		return nil
	}
	return entities.Invalid("unknown query kind %q", q.Kind)
}

// Filter is the store query behind q.
func (q Query) Filter() entities.OrderFilter {
	switch q.Kind {
	case KindAvailable:
		return entities.OrderFilter{Statuses: []entities.Status{entities.StatusCreated}}
	case KindDriverActive:
		return entities.OrderFilter{DriverID: q.Param, Statuses: entities.DriverActiveStatuses}
	case KindClientCurrent:
		return entities.OrderFilter{UserID: q.Param, Statuses: entities.ActiveStatuses, Limit: 1}
	case KindOrderByID:
		return entities.OrderFilter{ID: q.Param}
	case KindClientHistory:
		return entities.OrderFilter{UserID: q.Param}
	case KindDriverHistory:
		return entities.OrderFilter{DriverID: q.Param}
	}
	return entities.OrderFilter{}
}

// Affected reports whether a write described by change can alter the result of q.
func (q Query) Affected(change entities.OrderChange) bool {
	switch q.Kind {
	case KindAvailable:
		return true
	case KindDriverActive, KindDriverHistory:
		return change.DriverID == q.Param
	case KindClientCurrent, KindClientHistory:
		return change.UserID == q.Param
	case KindOrderByID:
		return change.OrderID == q.Param
	}
	return false
}
