package bootstrap

import (
	"log/slog"

	"storefront-cart/internal/handler/middleware"
	"storefront-cart/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()
	slog.SetDefault(logger)
	return logger
}
