package components

import (
	"storefront-cart/internal/handler"
	"storefront-cart/internal/handler/api"
	"storefront-cart/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
		api.NewHealthHandler,
		middleware.NewOwnerMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
