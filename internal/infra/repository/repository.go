package repository

import (
	"encoding/json"
	"log/slog"

	"storefront-engine/internal/infra"
)

//go:generate mockgen -source=repository.go -destination=../../../tests/mock/repository/mock_repository.go -package=repositorymock

// Persisted keys. Each engine owns its keys exclusively.
const (
	KeyCart          = "cart"
	KeyOrders        = "orders"
	KeyLoyaltyPoints = "loyaltyPoints"
	KeyFavorites     = "favorites"
	KeyReservations  = "reservations"
	KeyReviews       = "reviews"
)

type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// KeyRepository maps one store key to a domain value. Save always writes the
// complete value.
type KeyRepository[T any] struct {
	store  Store
	key    string
	logger *slog.Logger
	encode func(T) ([]byte, error)
	decode func([]byte) (T, int, error)
}

func (r *KeyRepository[T]) Key() string {
	return r.key
}

func (r *KeyRepository[T]) Load() (T, error) {
	var zero T

	data, err := r.store.Load(r.key)
	if err != nil {
		return zero, err
	}

	v, skipped, err := r.decode(data)
	if err != nil {
		return zero, infra.WrapRepoErr(r.logger, infra.KindDecodeFailure, r.key, "failed to decode stored value", err)
	}
	if skipped > 0 {
		r.logger.Warn("Dropped invalid stored records",
			slog.String("key", r.key),
			slog.Int("skipped", skipped),
		)
	}
	return v, nil
}

func (r *KeyRepository[T]) Save(v T) error {
	data, err := r.encode(v)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindEncodeFailure, r.key, "failed to encode value", err)
	}
	return r.store.Save(r.key, data)
}

// jsonList decodes a JSON array of records and converts it element-wise.
func jsonList[R, T any](fromRecords func([]R) (T, int)) func([]byte) (T, int, error) {
	return func(data []byte) (T, int, error) {
		var records []R
		if err := json.Unmarshal(data, &records); err != nil {
			var zero T
			return zero, 0, err
		}
		v, skipped := fromRecords(records)
		return v, skipped, nil
	}
}

func jsonEncode[R, T any](toRecords func(T) R) func(T) ([]byte, error) {
	return func(v T) ([]byte, error) {
		return json.Marshal(toRecords(v))
	}
}
