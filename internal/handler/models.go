package handler

import (
	"time"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/registry"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/routing"
)

// Coordinate географическая точка
type Coordinate struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

// LineItem позиция заказа. Цены передаются строкой с двумя знаками.
type LineItem struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Price     string `json:"price" example:"8.00"`
	ImageURL  string `json:"image_url,omitempty"`
}

// DeliveryAddress адрес доставки, сохранённый в заказе
type DeliveryAddress struct {
	Name       string      `json:"name"`
	Street     string      `json:"street"`
	City       string      `json:"city"`
	PostalCode string      `json:"postal_code,omitempty"`
	Location   *Coordinate `json:"location,omitempty"`
}

// Order заказ
type Order struct {
	ID             string           `json:"id"`
	UserID         string           `json:"user_id"`
	DriverID       string           `json:"driver_id,omitempty"`
	Items          []LineItem       `json:"items"`
	Total          string           `json:"total" example:"10.50"`
	Status         string           `json:"status" example:"CREATED"`
	CreatedAt      time.Time        `json:"created_at"`
	DriverLocation *Coordinate      `json:"driver_location,omitempty"`
	Address        *DeliveryAddress `json:"address,omitempty"`
}

type Product struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price" example:"8.00"`
	ImageURL string `json:"image_url"`
}

type Category struct {
	Name     string    `json:"name"`
	Products []Product `json:"products"`
}

type Address struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Street     string      `json:"street"`
	City       string      `json:"city"`
	PostalCode string      `json:"postal_code,omitempty"`
	Location   *Coordinate `json:"location,omitempty"`
}

// AddressRequest тело создания и замены адреса
type AddressRequest struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role" example:"client"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type SignUpRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role,omitempty" example:"client"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ProfileRequest struct {
	DisplayName string `json:"display_name" validate:"required,max=64"`
}

// CreateOrderRequest состав заказа: повторённый id означает повторённую позицию
type CreateOrderRequest struct {
	ProductIDs []int  `json:"product_ids" validate:"required,min=1"`
	AddressID  string `json:"address_id,omitempty"`
}

// StatusRequest переход заказа. Если expected не указан, используется
// единственный допустимый предыдущий статус.
type StatusRequest struct {
	Status   string `json:"status" validate:"required,oneof=ON_THE_WAY DELIVERED"`
	Expected string `json:"expected,omitempty" validate:"omitempty,oneof=PREPARING ON_THE_WAY"`
}

type SimulateRequest struct {
	From *Coordinate `json:"from,omitempty"`
}

type Route struct {
	Geometry string       `json:"geometry"`
	Points   []Coordinate `json:"points"`
	Distance float64      `json:"distance_m"`
	Duration float64      `json:"duration_s"`
}

// LiveRequest сообщение клиента в websocket
type LiveRequest struct {
	Op    string         `json:"op"`
	Query registry.Query `json:"query"`
}

// LiveSnapshot сообщение сервера в websocket
type LiveSnapshot struct {
	Query  registry.Query `json:"query"`
	Orders []Order        `json:"orders"`
	Error  string         `json:"error,omitempty"`
}

func CoordinateToJSON(c *entities.Coordinate) *Coordinate {
	if c == nil {
		return nil
	}
	return &Coordinate{Lat: c.Lat, Lng: c.Lng}
}

func CoordinateToEntity(c Coordinate) entities.Coordinate {
	return entities.Coordinate{Lat: c.Lat, Lng: c.Lng}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]LineItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = LineItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price.StringFixed(2),
			ImageURL:  it.ImageURL,
		}
	}

	var address *DeliveryAddress
	if o.Address != nil {
		address = &DeliveryAddress{
			Name:       o.Address.Name,
			Street:     o.Address.Street,
			City:       o.Address.City,
			PostalCode: o.Address.PostalCode,
			Location:   CoordinateToJSON(o.Address.Location),
		}
	}

	return Order{
		ID:             o.ID,
		UserID:         o.UserID,
		DriverID:       o.DriverID,
		Items:          items,
		Total:          o.Total.StringFixed(2),
		Status:         o.Status.String(),
		CreatedAt:      o.CreatedAt,
		DriverLocation: CoordinateToJSON(o.DriverLocation),
		Address:        address,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	out := make([]Order, len(orders))
	for i, o := range orders {
		out[i] = OrderEntityToJSON(o)
	}
	return out
}

func CategoriesEntityToJSON(categories []entities.Category) []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		products := make([]Product, len(c.Products))
		for j, p := range c.Products {
			products[j] = Product{ID: p.ID, Name: p.Name, Price: p.Price.StringFixed(2), ImageURL: p.ImageURL}
		}
		out[i] = Category{Name: c.Name, Products: products}
	}
	return out
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{
		ID:         a.ID,
		Name:       a.Name,
		Street:     a.Street,
		City:       a.City,
		PostalCode: a.PostalCode,
		Location:   CoordinateToJSON(a.Location),
	}
}

func UserEntityToJSON(u entities.User) User {
	return User{ID: u.ID, Email: u.Email, DisplayName: u.DisplayName, Role: string(u.Role)}
}

func SessionToJSON(s entities.Session) User {
	return User{ID: s.UserID, Email: s.Email, DisplayName: s.DisplayName, Role: string(s.Role)}
}

func RouteToJSON(r routing.Route) Route {
	points := make([]Coordinate, len(r.Points))
	for i, p := range r.Points {
		points[i] = Coordinate{Lat: p.Lat, Lng: p.Lng}
	}
	return Route{
		Geometry: r.Geometry,
		Points:   points,
		Distance: r.Distance,
		Duration: r.Duration.Seconds(),
	}
}

func SnapshotToJSON(s registry.Snapshot) LiveSnapshot {
	out := LiveSnapshot{Query: s.Query, Orders: OrdersEntityToJSON(s.Orders)}
	if s.Err != nil {
		out.Error = "query failed"
	}
	return out
}
