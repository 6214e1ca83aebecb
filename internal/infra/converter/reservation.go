package converter

import (
	"storefront-engine/internal/domain/reservation"

	"github.com/jinzhu/copier"
)

// ReservationToRecord copies through the entity's getters.
func ReservationToRecord(res *reservation.Reservation) (ReservationRecord, error) {
	var rec ReservationRecord
	if err := copier.Copy(&rec, res); err != nil {
		return ReservationRecord{}, err
	}
	return rec, nil
}

func ReservationFromRecord(r ReservationRecord) (*reservation.Reservation, error) {
	return reservation.ReconstructReservation(
		r.ID,
		reservation.NewContact(r.Name, r.Email, r.Phone),
		reservation.NewSlot(r.Date, r.Time),
		r.Guests,
		reservation.Status(r.Status),
	)
}

func ReservationsToRecords(list []*reservation.Reservation) ([]ReservationRecord, error) {
	out := make([]ReservationRecord, 0, len(list))
	for _, res := range list {
		rec, err := ReservationToRecord(res)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func ReservationsFromRecords(records []ReservationRecord) ([]*reservation.Reservation, int) {
	out := make([]*reservation.Reservation, 0, len(records))
	skipped := 0
	for _, r := range records {
		res, err := ReservationFromRecord(r)
		if err != nil {
			skipped++
			continue
		}
		out = append(out, res)
	}
	return out, skipped
}
