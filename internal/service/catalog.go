package service

import (
	"strings"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"

	"github.com/shopspring/decimal"
)

const imageParams = "?auto=format&fit=crop&w=800&q=80"

func product(id int, name, price, photo string) entities.Product {
	return entities.Product{
		ID:       id,
		Name:     name,
		Price:    decimal.RequireFromString(price),
		ImageURL: "https://images.unsplash.com/" + photo + imageParams,
	}
}

var menu = []entities.Category{
	{Name: "Burgers", Products: []entities.Product{
		product(1, "Classic Burger", "8.99", "photo-1571091718767-18b5b1457add"),
		product(2, "Cheeseburger", "9.99", "photo-1607013251379-e6eecfffe234"),
		product(3, "Bacon Burger", "10.99", "photo-1551984318-c8a8b13d29b8"),
	}},
	{Name: "Pizzas", Products: []entities.Product{
		product(4, "Margherita Pizza", "12.50", "photo-1594007654729-407eedc4be65"),
		product(5, "Pepperoni Pizza", "14.00", "photo-1534308983496-4fabb1a015ee"),
		product(6, "Vegetarian Pizza", "13.00", "photo-1513104890138-7c749659a591"),
	}},
	{Name: "Desserts", Products: []entities.Product{
		product(7, "Chocolate Cake", "6.50", "photo-1563729784474-d77dbb933a9e"),
		product(8, "Cheesecake", "7.00", "photo-1542826438-62a34865269f"),
		product(9, "Ice Cream Scoop", "3.00", "photo-1580915411954-155191d58226"),
	}},
	{Name: "Drinks", Products: []entities.Product{
		product(10, "Coca-Cola", "2.50", "photo-1554866585-CD94860890b7"),
		product(11, "Orange Juice", "3.00", "photo-1600271886742-f049cd451bba"),
		product(12, "Water Bottle", "1.50", "photo-1523961131990-5ea7c61b2107"),
	}},
}

// CatalogService serves the fixed read-only menu.
type CatalogService struct {
	categories []entities.Category
	byID       map[int]entities.Product
}

func NewCatalogService() *CatalogService {
	byID := make(map[int]entities.Product)
	for _, c := range menu {
		for _, p := range c.Products {
			byID[p.ID] = p
		}
	}
	return &CatalogService{categories: menu, byID: byID}
}

// Search returns the categories with products whose name contains query,
// ignoring case. Categories left empty are dropped.
func (s *CatalogService) Search(query string) []entities.Category {
	query = strings.ToLower(strings.TrimSpace(query))

	result := make([]entities.Category, 0, len(s.categories))
	for _, c := range s.categories {
		products := make([]entities.Product, 0, len(c.Products))
		for _, p := range c.Products {
			if query == "" || strings.Contains(strings.ToLower(p.Name), query) {
				products = append(products, p)
			}
		}
		if len(products) > 0 {
			result = append(result, entities.Category{Name: c.Name, Products: products})
		}
	}
	return result
}

// LineItems resolves product ids into order line items priced by the catalog.
// A repeated id is a repeated item.
func (s *CatalogService) LineItems(productIDs []int) ([]entities.LineItem, error) {
	if len(productIDs) == 0 {
		return nil, entities.Invalid("order has no items")
	}

	items := make([]entities.LineItem, 0, len(productIDs))
	for _, id := range productIDs {
		p, ok := s.byID[id]
		if !ok {
			return nil, entities.Invalid("unknown product %d", id)
		}
		items = append(items, p.LineItem())
	}
	return items, nil
}
