package shared

import (
	"log/slog"

	"storefront-engine/internal/infra"
)

// Repository loads and saves the full value held under one store key.
type Repository[T any] interface {
	Load() (T, error)
	Save(v T) error
}

// Hydrate returns the stored value, or fallback when nothing usable is
// stored. It never fails: a corrupt or unreadable value counts as no prior
// state.
func Hydrate[T any](logger *slog.Logger, repo Repository[T], name string, fallback T) T {
	v, err := repo.Load()
	switch {
	case err == nil:
		logger.Debug("Hydrated state", slog.String("state", name))
		return v
	case infra.IsKind(err, infra.KindNotFound):
		return fallback
	default:
		logger.Warn("Discarding unreadable stored state",
			slog.String("state", name),
			slog.String("error", err.Error()),
		)
		return fallback
	}
}

// Persist writes v through to the store. A failed write is logged and the
// in-memory state stays authoritative.
func Persist[T any](logger *slog.Logger, repo Repository[T], name string, v T) {
	if err := repo.Save(v); err != nil {
		logger.Error("Failed to persist state",
			slog.String("state", name),
			slog.String("error", err.Error()),
		)
	}
}
