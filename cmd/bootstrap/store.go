package bootstrap

import (
	"context"
	"log/slog"

	"storefront-engine/internal/infra/repository"
	"storefront-engine/internal/infra/store"
	"storefront-engine/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		fx.Annotate(
			NewFileStore,
			fx.As(new(repository.Store)),
		),
	),
)

func NewFileStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*store.FileStore, error) {
	fs, err := store.NewFileStore(cfg.Store.Dir, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("Using file store", "dir", fs.Dir())
			return nil
		},
	})

	return fs, nil
}
