package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
	"github.com/shopspring/decimal"
)

var orderColumns = []string{
	"id", "user_id", "driver_id", "total", "status", "created_at",
	"driver_lat", "driver_lng",
	"address_name", "address_street", "address_city", "address_postal_code",
	"address_lat", "address_lng",
}

type Order struct {
	ID        string          `db:"id"`
	UserID    string          `db:"user_id"`
	DriverID  sql.NullString  `db:"driver_id"`
	Total     decimal.Decimal `db:"total"`
	Status    string          `db:"status"`
	CreatedAt time.Time       `db:"created_at"`

	DriverLat sql.NullFloat64 `db:"driver_lat"`
	DriverLng sql.NullFloat64 `db:"driver_lng"`

	AddressName       sql.NullString  `db:"address_name"`
	AddressStreet     sql.NullString  `db:"address_street"`
	AddressCity       sql.NullString  `db:"address_city"`
	AddressPostalCode sql.NullString  `db:"address_postal_code"`
	AddressLat        sql.NullFloat64 `db:"address_lat"`
	AddressLng        sql.NullFloat64 `db:"address_lng"`
}

type Item struct {
	OrderID   string          `db:"order_id"`
	Position  int             `db:"position"`
	ProductID int             `db:"product_id"`
	Name      string          `db:"name"`
	Price     decimal.Decimal `db:"price"`
	ImageURL  string          `db:"image_url"`
}

type User struct {
	ID           string `db:"id"`
	Email        string `db:"email"`
	DisplayName  string `db:"display_name"`
	Role         string `db:"role"`
	PasswordHash string `db:"password_hash"`
	TokenVersion int    `db:"token_version"`
}

type Address struct {
	ID         string          `db:"id"`
	UserID     string          `db:"user_id"`
	Name       string          `db:"name"`
	Street     string          `db:"street"`
	City       string          `db:"city"`
	PostalCode string          `db:"postal_code"`
	Lat        sql.NullFloat64 `db:"lat"`
	Lng        sql.NullFloat64 `db:"lng"`
}

// DecodeOrder builds an order from its stored row and line items. Rows that
// break the order invariants are reported as entities.ErrMalformedRecord.
func DecodeOrder(o Order, items []Item) (entities.Order, error) {
	order := entities.Order{
		ID:             o.ID,
		UserID:         o.UserID,
		DriverID:       nullStringToString(o.DriverID),
		Total:          o.Total,
		Status:         entities.Status(o.Status),
		CreatedAt:      o.CreatedAt,
		DriverLocation: coordinate(o.DriverLat, o.DriverLng),
	}

	if o.AddressStreet.Valid || o.AddressCity.Valid {
		order.Address = &entities.DeliveryAddress{
			Name:       nullStringToString(o.AddressName),
			Street:     nullStringToString(o.AddressStreet),
			City:       nullStringToString(o.AddressCity),
			PostalCode: nullStringToString(o.AddressPostalCode),
			Location:   coordinate(o.AddressLat, o.AddressLng),
		}
	}

	order.Items = make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		order.Items = append(order.Items, entities.LineItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			ImageURL:  it.ImageURL,
		})
	}

	if err := order.Validate(); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:           u.ID,
		Email:        u.Email,
		DisplayName:  u.DisplayName,
		Role:         entities.Role(u.Role),
		PasswordHash: u.PasswordHash,
		TokenVersion: u.TokenVersion,
	}
}

func AddressToEntity(a Address) entities.Address {
	return entities.Address{
		ID:         a.ID,
		UserID:     a.UserID,
		Name:       a.Name,
		Street:     a.Street,
		City:       a.City,
		PostalCode: a.PostalCode,
		Location:   coordinate(a.Lat, a.Lng),
	}
}

func coordinate(lat, lng sql.NullFloat64) *entities.Coordinate {
	if !lat.Valid || !lng.Valid {
		return nil
	}
	return &entities.Coordinate{Lat: lat.Float64, Lng: lng.Float64}
}

func nullCoordinate(c *entities.Coordinate) (sql.NullFloat64, sql.NullFloat64) {
	if c == nil {
		return sql.NullFloat64{}, sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: c.Lat, Valid: true}, sql.NullFloat64{Float64: c.Lng, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
