package bootstrap

import (
	"storefront-cart/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StorageModule,
	EventsModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
