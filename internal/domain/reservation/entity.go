package reservation

import (
	"errors"
)

var (
	ErrEmptyReservationID = errors.New("reservation id cannot be empty")
	ErrInvalidStatus      = errors.New("invalid reservation status")
)

type Reservation struct {
	id      string
	contact Contact
	slot    Slot
	guests  Guests
	status  Status
}

func NewReservation(id string, contact Contact, slot Slot, guests Guests) (*Reservation, error) {
	if id == "" {
		return nil, ErrEmptyReservationID
	}
	if guests.value == 0 {
		return nil, ErrInvalidGuestCount
	}
	return &Reservation{
		id:      id,
		contact: contact,
		slot:    slot,
		guests:  guests,
		status:  StatusPending,
	}, nil
}

func ReconstructReservation(
	id string,
	contact Contact,
	slot Slot,
	guests int,
	status Status,
) (*Reservation, error) {
	if id == "" {
		return nil, ErrEmptyReservationID
	}
	g, err := NewGuests(guests)
	if err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Reservation{
		id:      id,
		contact: contact,
		slot:    slot,
		guests:  g,
		status:  status,
	}, nil
}

// Confirm only applies to a pending reservation.
func (r *Reservation) Confirm() bool {
	if r.status != StatusPending {
		return false
	}
	r.status = StatusConfirmed
	return true
}

// Cancel succeeds from pending or confirmed, and is idempotent once
// cancelled. Completed reservations stay completed.
func (r *Reservation) Cancel() bool {
	switch r.status {
	case StatusPending, StatusConfirmed, StatusCancelled:
		r.status = StatusCancelled
		return true
	default:
		return false
	}
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusPending || r.status == StatusConfirmed
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

func (r *Reservation) Clone() *Reservation {
	c := *r
	return &c
}

func (r *Reservation) ID() string       { return r.id }
func (r *Reservation) Contact() Contact { return r.contact }
func (r *Reservation) Name() string     { return r.contact.name }
func (r *Reservation) Email() string    { return r.contact.email }
func (r *Reservation) Phone() string    { return r.contact.phone }
func (r *Reservation) Date() string     { return r.slot.date }
func (r *Reservation) Time() string     { return r.slot.time }
func (r *Reservation) Guests() int      { return r.guests.value }
func (r *Reservation) Status() Status   { return r.status }
