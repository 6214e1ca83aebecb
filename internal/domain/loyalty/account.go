package loyalty

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPointAmount = errors.New("point amount must not be negative")
	ErrInvalidRedemption  = errors.New("redeemed amount must be positive")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrPointsOverflow     = errors.New("point balance would overflow")
)

type Account struct {
	points int
}

// NewAccount clamps a negative balance to zero.
func NewAccount(points int) Account {
	if points < 0 {
		points = 0
	}
	return Account{points: points}
}

func (a Account) Points() int          { return a.points }
func (a Account) Tier() Tier           { return TierFor(a.points) }
func (a Account) DiscountPercent() int { return a.Tier().DiscountPercent() }

// PointsToNextTier returns how many points are missing for the next tier,
// or false at Platinum.
func (a Account) PointsToNextTier() (Tier, int, bool) {
	next, ok := a.Tier().Next()
	if !ok {
		return "", 0, false
	}
	return next, next.MinPoints() - a.points, true
}

func (a *Account) Add(amount int) error {
	if amount < 0 {
		return ErrInvalidPointAmount
	}
	if amount > math.MaxInt-a.points {
		return ErrPointsOverflow
	}
	a.points += amount
	return nil
}

func (a *Account) Redeem(amount int) error {
	if amount <= 0 {
		return ErrInvalidRedemption
	}
	if a.points < amount {
		return ErrInsufficientPoints
	}
	a.points -= amount
	return nil
}

var maxPoints = decimal.NewFromInt(math.MaxInt)

// PointsEarned converts a spend into whole points, rounding down. Awards
// that do not fit in an int are capped at math.MaxInt.
func PointsEarned(spend decimal.Decimal, perUnit int) int {
	if spend.IsNegative() || perUnit <= 0 {
		return 0
	}
	earned := spend.Mul(decimal.NewFromInt(int64(perUnit))).Floor()
	if earned.GreaterThan(maxPoints) {
		return math.MaxInt
	}
	return int(earned.IntPart())
}

// ApplyDiscount takes percent off amount, rounded to cents.
func ApplyDiscount(amount decimal.Decimal, percent int) decimal.Decimal {
	if percent <= 0 {
		return amount
	}
	if percent > 100 {
		percent = 100
	}
	factor := decimal.NewFromInt(int64(100 - percent)).Div(decimal.NewFromInt(100))
	return amount.Mul(factor).Round(2)
}
