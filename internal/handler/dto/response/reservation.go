package response

import (
	"storefront-engine/internal/domain/reservation"
)

type ReservationResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Guests int    `json:"guests"`
	Status string `json:"status"`
}

func FromReservation(r *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:     r.ID(),
		Name:   r.Name(),
		Email:  r.Email(),
		Phone:  r.Phone(),
		Date:   r.Date(),
		Time:   r.Time(),
		Guests: r.Guests(),
		Status: r.Status().String(),
	}
}

func FromReservations(list []*reservation.Reservation) []*ReservationResponse {
	res := make([]*ReservationResponse, len(list))
	for i, r := range list {
		res[i] = FromReservation(r)
	}
	return res
}
