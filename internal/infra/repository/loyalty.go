package repository

import (
	"log/slog"

	"storefront-engine/internal/infra/converter"
)

// NewPointsRepository stores the balance as text rather than JSON.
func NewPointsRepository(store Store, logger *slog.Logger) *KeyRepository[int] {
	return &KeyRepository[int]{
		store:  store,
		key:    KeyLoyaltyPoints,
		logger: logger,
		encode: func(points int) ([]byte, error) {
			return converter.PointsToText(points), nil
		},
		decode: func(data []byte) (int, int, error) {
			n, err := converter.PointsFromText(data)
			return n, 0, err
		},
	}
}
