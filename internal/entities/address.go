package entities

import "strings"

type Address struct {
	ID         string
	UserID     string
	Name       string
	Street     string
	City       string
	PostalCode string
	Location   *Coordinate
}

// Query is the free text sent to the geocoder.
func (a Address) Query() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{a.Street, a.City, a.PostalCode} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// ForDelivery snapshots the address onto an order.
func (a Address) ForDelivery() *DeliveryAddress {
	return &DeliveryAddress{
		Name:       a.Name,
		Street:     a.Street,
		City:       a.City,
		PostalCode: a.PostalCode,
		Location:   a.Location,
	}
}
