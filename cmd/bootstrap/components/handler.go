package components

import (
	"log/slog"

	"storefront-engine/internal/handler"
	"storefront-engine/internal/handler/api"
	"storefront-engine/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewProductHandler,
		api.NewCartHandler,
		api.NewOrderHandler,
		api.NewLoyaltyHandler,
		api.NewReservationHandler,
		api.NewReviewHandler,
		api.NewFavoriteHandler,
		api.NewNotificationHandler,
	),
	fx.Invoke(registerRoutes),
)

type handlerParams struct {
	fx.In

	Product      *api.ProductHandler
	Cart         *api.CartHandler
	Order        *api.OrderHandler
	Loyalty      *api.LoyaltyHandler
	Reservation  *api.ReservationHandler
	Review       *api.ReviewHandler
	Favorite     *api.FavoriteHandler
	Notification *api.NotificationHandler
}

func registerRoutes(engine *gin.Engine, cfg config.Config, logger *slog.Logger, p handlerParams) {
	handler.NewRouter(engine, cfg, logger, handler.Handlers{
		Product:      p.Product,
		Cart:         p.Cart,
		Order:        p.Order,
		Loyalty:      p.Loyalty,
		Reservation:  p.Reservation,
		Review:       p.Review,
		Favorite:     p.Favorite,
		Notification: p.Notification,
	})
}
