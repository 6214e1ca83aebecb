package repository

import (
	"log/slog"

	"storefront-engine/internal/domain/review"
	"storefront-engine/internal/infra/converter"
)

func NewReviewRepository(store Store, logger *slog.Logger) *KeyRepository[[]*review.Review] {
	return &KeyRepository[[]*review.Review]{
		store:  store,
		key:    KeyReviews,
		logger: logger,
		encode: jsonEncode(converter.ReviewsToRecords),
		decode: jsonList(converter.ReviewsFromRecords),
	}
}
