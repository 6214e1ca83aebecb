//go:build unit || e2e

package builder

import (
	"storefront-engine/internal/domain/reservation"
	reqdto "storefront-engine/internal/handler/dto/request"
	"storefront-engine/internal/usecase"
)

type ReservationBuilder struct {
	ID     string
	Name   string
	Email  string
	Phone  string
	Date   string
	Time   string
	Guests int
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:     "RES-0001",
		Name:   "Ada Lovelace",
		Email:  "ada@example.com",
		Phone:  "+44 20 7946 0000",
		Date:   "2025-03-01",
		Time:   "19:00",
		Guests: 2,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	guests, err := reservation.NewGuests(r.Guests)
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(
		r.ID,
		reservation.NewContact(r.Name, r.Email, r.Phone),
		reservation.NewSlot(r.Date, r.Time),
		guests,
	)
}

func (r *ReservationBuilder) BuildInput() usecase.ReservationInput {
	return usecase.ReservationInput{
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
		Date:   r.Date,
		Time:   r.Time,
		Guests: r.Guests,
	}
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
		Date:   r.Date,
		Time:   r.Time,
		Guests: r.Guests,
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithID(id string) *ReservationBuilder {
	r.ID = id
	return r
}

func (r *ReservationBuilder) WithName(name string) *ReservationBuilder {
	r.Name = name
	return r
}

func (r *ReservationBuilder) WithGuests(guests int) *ReservationBuilder {
	r.Guests = guests
	return r
}

func (r *ReservationBuilder) WithSlot(date, timeOfDay string) *ReservationBuilder {
	r.Date = date
	r.Time = timeOfDay
	return r
}
