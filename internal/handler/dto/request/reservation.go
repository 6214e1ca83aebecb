package request

import (
	"storefront-engine/internal/usecase"
)

// Guests is range-checked by the reservation engine, not by binding.
type CreateReservationRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Email  string `json:"email" binding:"required,email"`
	Phone  string `json:"phone" binding:"required,max=30"`
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Guests int    `json:"guests" binding:"required"`
}

func (r CreateReservationRequest) ToInput() usecase.ReservationInput {
	return usecase.ReservationInput{
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
		Date:   r.Date,
		Time:   r.Time,
		Guests: r.Guests,
	}
}
