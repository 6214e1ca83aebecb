package components

import (
	"log/slog"

	"storefront-engine/internal/domain/notification"
	"storefront-engine/internal/domain/reward"
	"storefront-engine/internal/infra/catalog"
	"storefront-engine/internal/pkg/clock"
	"storefront-engine/internal/pkg/config"
	"storefront-engine/internal/pkg/schedule"
	"storefront-engine/internal/usecase"
	"storefront-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCatalogModule,
	usecaseEngineModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	schedule.NewReal,
	shared.NewUUIDGenerator,
	usecase.NewOrderTiming,
)

var usecaseCatalogModule = fx.Module("usecase/catalog",
	fx.Provide(
		NewMenu,
		fx.Annotate(
			func(m *catalog.Menu) *catalog.Menu { return m },
			fx.As(new(usecase.ProductCatalog)),
		),
		func(m *catalog.Menu) *reward.Catalog {
			return m.Rewards()
		},
	),
)

var usecaseEngineModule = fx.Module("usecase/engines",
	fx.Provide(
		usecase.NewCartUseCase,
		usecase.NewLoyaltyUseCase,
		usecase.NewReviewUseCase,
		usecase.NewFavoriteUseCase,
		NewReservationUseCase,
		NewCheckoutUseCase,
	),
)

func NewMenu(cfg config.Config, logger *slog.Logger) (*catalog.Menu, error) {
	m, err := catalog.LoadFile(cfg.Catalog.File)
	if err != nil {
		return nil, err
	}
	logger.Info("Catalog loaded",
		"products", len(m.Products()),
		"rewards", len(m.Rewards().All()),
		"file", cfg.Catalog.File,
	)
	return m, nil
}

func NewReservationUseCase(
	repo usecase.ReservationRepository,
	sink notification.Sink,
	scheduler schedule.Scheduler,
	ids shared.IDGenerator,
	cfg config.Config,
	logger *slog.Logger,
) usecase.ReservationUseCase {
	return usecase.NewReservationUseCase(repo, sink, scheduler, ids, cfg.Engine.ReservationConfirmDelay, logger)
}

func NewCheckoutUseCase(
	cart usecase.CartUseCase,
	loyalty usecase.LoyaltyUseCase,
	cfg config.Config,
	logger *slog.Logger,
) usecase.CheckoutUseCase {
	return usecase.NewCheckoutUseCase(cart, loyalty, cfg.Engine.PointsPerCurrencyUnit, logger)
}
