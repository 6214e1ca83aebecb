//go:build unit || e2e

package builder

import (
	"storefront-engine/internal/domain/catalog"
	reqdto "storefront-engine/internal/handler/dto/request"

	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	ID          int
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:          1,
		Name:        "Dark Roast Espresso",
		Description: "Rich, bold, and full-bodied with notes of dark chocolate",
		Price:       decimal.RequireFromString("18.99"),
		Image:       "product-espresso.jpg",
	}
}

func (p *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *ProductBuilder) BuildDomain() catalog.Product {
	product, err := catalog.NewProduct(p.ID, p.Name, p.Description, p.Price, p.Image)
	if err != nil {
		panic(err)
	}
	return product
}

func (p *ProductBuilder) BuildAddToCartRequestDTO() reqdto.AddToCartRequest {
	return reqdto.AddToCartRequest{ProductID: p.ID}
}

// Fluent builder methods
func (p *ProductBuilder) WithID(id int) *ProductBuilder {
	p.ID = id
	return p
}

func (p *ProductBuilder) WithName(name string) *ProductBuilder {
	p.Name = name
	return p
}

func (p *ProductBuilder) WithPrice(price string) *ProductBuilder {
	p.Price = decimal.RequireFromString(price)
	return p
}

func (p *ProductBuilder) AsPourOver() *ProductBuilder {
	p.ID = 2
	p.Name = "Pour Over Blend"
	p.Description = "Smooth and balanced with hints of caramel and citrus"
	p.Price = decimal.RequireFromString("16.99")
	p.Image = "product-brew.jpg"
	return p
}

func (p *ProductBuilder) AsLatte() *ProductBuilder {
	p.ID = 3
	p.Name = "Signature Latte"
	p.Description = "Creamy and indulgent with our signature house blend"
	p.Price = decimal.RequireFromString("14.99")
	p.Image = "product-latte.jpg"
	return p
}
