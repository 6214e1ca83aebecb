package bootstrap

import (
	"storefront-engine/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	components.RepositoryModule,
	components.NotifierModule,
	components.UseCaseModule,
	components.HandlerModule,
)
