package components

import (
	"storefront-engine/internal/infra/repository"
	"storefront-engine/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewCartRepository,
			fx.As(new(usecase.CartRepository)),
		),
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(usecase.OrderRepository)),
		),
		fx.Annotate(
			repository.NewPointsRepository,
			fx.As(new(usecase.PointsRepository)),
		),
		fx.Annotate(
			repository.NewFavoriteRepository,
			fx.As(new(usecase.FavoriteRepository)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(usecase.ReservationRepository)),
		),
		fx.Annotate(
			repository.NewReviewRepository,
			fx.As(new(usecase.ReviewRepository)),
		),
	),
)
