package components

import (
	"log/slog"

	"storefront-engine/internal/domain/notification"
	"storefront-engine/internal/handler/api"
	"storefront-engine/internal/infra/notifier"
	"storefront-engine/internal/pkg/clock"
	"storefront-engine/internal/pkg/config"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewFeed,
		func(feed *notifier.Feed) api.NotificationFeed {
			return feed
		},
		NewSink,
	),
)

func NewFeed(cfg config.Config, clk clock.Clock) *notifier.Feed {
	return notifier.NewFeed(cfg.Notification.FeedSize, clk)
}

// NewSink sends every engine event to the log and to the UI feed.
func NewSink(feed *notifier.Feed, logger *slog.Logger) notification.Sink {
	return notifier.NewFanout(notifier.NewLogSink(logger), feed)
}
