package repository

import (
	"encoding/json"
	"log/slog"

	"storefront-engine/internal/domain/reservation"
	"storefront-engine/internal/infra/converter"
)

func NewReservationRepository(store Store, logger *slog.Logger) *KeyRepository[[]*reservation.Reservation] {
	return &KeyRepository[[]*reservation.Reservation]{
		store:  store,
		key:    KeyReservations,
		logger: logger,
		encode: func(list []*reservation.Reservation) ([]byte, error) {
			records, err := converter.ReservationsToRecords(list)
			if err != nil {
				return nil, err
			}
			return json.Marshal(records)
		},
		decode: jsonList(converter.ReservationsFromRecords),
	}
}
