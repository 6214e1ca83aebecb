package reservation

import (
	"errors"
	"strings"
)

const (
	MinGuests = 1
	MaxGuests = 12
)

var ErrInvalidGuestCount = errors.New("guest count must be between 1 and 12")

type Guests struct {
	value int
}

// NewGuests rejects out-of-range party sizes instead of clamping them.
func NewGuests(v int) (Guests, error) {
	if v < MinGuests || v > MaxGuests {
		return Guests{}, ErrInvalidGuestCount
	}
	return Guests{value: v}, nil
}

func (g Guests) Value() int { return g.value }

type Contact struct {
	name  string
	email string
	phone string
}

func NewContact(name, email, phone string) Contact {
	return Contact{
		name:  strings.TrimSpace(name),
		email: strings.TrimSpace(email),
		phone: strings.TrimSpace(phone),
	}
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Email() string { return c.email }
func (c Contact) Phone() string { return c.phone }

// Slot is the requested date and time as entered by the guest. Both parts
// are kept verbatim; the booking form owns their format.
type Slot struct {
	date string
	time string
}

func NewSlot(date, timeOfDay string) Slot {
	return Slot{date: strings.TrimSpace(date), time: strings.TrimSpace(timeOfDay)}
}

func (s Slot) Date() string { return s.date }
func (s Slot) Time() string { return s.time }
