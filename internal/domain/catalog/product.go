package catalog

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidProductID = errors.New("product id must be positive")
	ErrEmptyProductName = errors.New("product name cannot be empty")
	ErrNegativePrice    = errors.New("price cannot be negative")
)

// Product is a catalog entry. Engines copy it into their own state and never
// change it.
type Product struct {
	ID          int
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
}

func NewProduct(id int, name, description string, price decimal.Decimal, image string) (Product, error) {
	if id <= 0 {
		return Product{}, ErrInvalidProductID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Product{}, ErrEmptyProductName
	}
	if price.IsNegative() {
		return Product{}, ErrNegativePrice
	}
	return Product{
		ID:          id,
		Name:        name,
		Description: strings.TrimSpace(description),
		Price:       price,
		Image:       image,
	}, nil
}

func (p Product) Equal(other Product) bool {
	return p.ID == other.ID &&
		p.Name == other.Name &&
		p.Description == other.Description &&
		p.Price.Equal(other.Price) &&
		p.Image == other.Image
}
