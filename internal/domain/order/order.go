package order

import (
	"errors"
	"time"

	"storefront-engine/internal/domain/cart"

	"github.com/shopspring/decimal"
)

const DefaultReadyWindow = 15 * time.Minute

var (
	ErrEmptyOrder    = errors.New("order requires at least one line")
	ErrEmptyOrderID  = errors.New("order id cannot be empty")
	ErrInvalidStatus = errors.New("invalid order status")
)

type Order struct {
	id               string
	lines            []cart.Line
	total            decimal.Decimal
	status           Status
	placedAt         time.Time
	estimatedReadyAt time.Time
}

// NewOrder freezes lines into a Placed order; the total is computed once here
// and never recomputed.
func NewOrder(id string, lines []cart.Line, placedAt time.Time, readyWindow time.Duration) (*Order, error) {
	if id == "" {
		return nil, ErrEmptyOrderID
	}
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	frozen := make([]cart.Line, len(lines))
	copy(frozen, lines)

	return &Order{
		id:               id,
		lines:            frozen,
		total:            cart.Total(frozen),
		status:           StatusPlaced,
		placedAt:         placedAt,
		estimatedReadyAt: placedAt.Add(readyWindow),
	}, nil
}

func ReconstructOrder(
	id string,
	lines []cart.Line,
	total decimal.Decimal,
	status Status,
	placedAt, estimatedReadyAt time.Time,
) (*Order, error) {
	if id == "" {
		return nil, ErrEmptyOrderID
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	frozen := make([]cart.Line, len(lines))
	copy(frozen, lines)

	return &Order{
		id:               id,
		lines:            frozen,
		total:            total,
		status:           status,
		placedAt:         placedAt,
		estimatedReadyAt: estimatedReadyAt,
	}, nil
}

// Advance moves the order from one status to a later one. It does nothing
// and returns false unless the order is currently in from.
func (o *Order) Advance(from, to Status) bool {
	if o.status != from || o.status.IsTerminal() {
		return false
	}
	if to.rank() <= from.rank() {
		return false
	}
	o.status = to
	return true
}

func (o *Order) Clone() *Order {
	c := *o
	c.lines = make([]cart.Line, len(o.lines))
	copy(c.lines, o.lines)
	return &c
}

func (o *Order) ID() string                  { return o.id }
func (o *Order) Total() decimal.Decimal      { return o.total }
func (o *Order) Status() Status              { return o.status }
func (o *Order) PlacedAt() time.Time         { return o.placedAt }
func (o *Order) EstimatedReadyAt() time.Time { return o.estimatedReadyAt }

func (o *Order) Lines() []cart.Line {
	out := make([]cart.Line, len(o.lines))
	copy(out, o.lines)
	return out
}

func (o *Order) TotalItems() int {
	n := 0
	for _, l := range o.lines {
		n += l.Quantity()
	}
	return n
}
