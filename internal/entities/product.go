package entities

import "github.com/shopspring/decimal"

type Product struct {
	ID       int
	Name     string
	Price    decimal.Decimal
	ImageURL string
}

type Category struct {
	Name     string
	Products []Product
}

func (p Product) LineItem() LineItem {
	return LineItem{ProductID: p.ID, Name: p.Name, Price: p.Price, ImageURL: p.ImageURL}
}
