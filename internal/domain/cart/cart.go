package cart

import (
	"errors"

	"storefront-engine/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

// MaxQuantity bounds a single line so totals and point awards stay in range.
const MaxQuantity = 999

var (
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrQuantityTooLarge = errors.New("quantity exceeds the per-line limit")
)

type Line struct {
	product  catalog.Product
	quantity int
}

func NewLine(product catalog.Product, quantity int) (Line, error) {
	if err := checkQuantity(quantity); err != nil {
		return Line{}, err
	}
	return Line{product: product, quantity: quantity}, nil
}

func (l Line) Product() catalog.Product { return l.product }
func (l Line) Quantity() int            { return l.quantity }

func (l Line) Subtotal() decimal.Decimal {
	return l.product.Price.Mul(decimal.NewFromInt(int64(l.quantity)))
}

// Cart keeps at most one line per product id, in order of first addition.
type Cart struct {
	lines []Line
}

// New builds a cart from possibly untrusted lines: repeated product ids are
// merged into the first occurrence, capped at MaxQuantity.
func New(lines ...Line) *Cart {
	c := &Cart{}
	for _, l := range lines {
		if l.quantity < 1 {
			continue
		}
		if i := c.indexOf(l.product.ID); i >= 0 {
			c.lines[i].quantity = min(c.lines[i].quantity+l.quantity, MaxQuantity)
			continue
		}
		l.quantity = min(l.quantity, MaxQuantity)
		c.lines = append(c.lines, l)
	}
	return c
}

// Add puts one unit of product in the cart and reports whether a line for it
// already existed. An existing line keeps its original product snapshot.
// A line already at MaxQuantity is left as is and ErrQuantityTooLarge is
// returned.
func (c *Cart) Add(product catalog.Product) (existed bool, err error) {
	if i := c.indexOf(product.ID); i >= 0 {
		if c.lines[i].quantity >= MaxQuantity {
			return true, ErrQuantityTooLarge
		}
		c.lines[i].quantity++
		return true, nil
	}
	c.lines = append(c.lines, Line{product: product, quantity: 1})
	return false, nil
}

func (c *Cart) Remove(productID int) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return true
}

// SetQuantity overwrites the quantity of an existing line. Callers route
// quantities below 1 to Remove.
func (c *Cart) SetQuantity(productID, quantity int) (bool, error) {
	if err := checkQuantity(quantity); err != nil {
		return false, err
	}
	i := c.indexOf(productID)
	if i < 0 {
		return false, nil
	}
	c.lines[i].quantity = quantity
	return true, nil
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Line(productID int) (Line, bool) {
	i := c.indexOf(productID)
	if i < 0 {
		return Line{}, false
	}
	return c.lines[i], true
}

func (c *Cart) TotalItems() int {
	total := 0
	for _, l := range c.lines {
		total += l.quantity
	}
	return total
}

func (c *Cart) TotalPrice() decimal.Decimal {
	return Total(c.lines)
}

// Total sums price × quantity over lines.
func Total(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func checkQuantity(quantity int) error {
	switch {
	case quantity < 1:
		return ErrInvalidQuantity
	case quantity > MaxQuantity:
		return ErrQuantityTooLarge
	}
	return nil
}

func (c *Cart) indexOf(productID int) int {
	for i, l := range c.lines {
		if l.product.ID == productID {
			return i
		}
	}
	return -1
}
