package components

import (
	"context"
	"log/slog"

	"storefront-cart/internal/pkg/clock"
	"storefront-cart/internal/pkg/config"
	"storefront-cart/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		newCartSessions,
		usecase.NewHealthChecker,
	),
	fx.Invoke(preloadDefaultCart),
)

func newCartSessions(cfg config.Config, repo usecase.SnapshotRepository, events usecase.EventPublisher, clk clock.Clock, logger *slog.Logger) usecase.CartSessions {
	return usecase.NewCartSessions(cfg.Cart, repo, events, clk, logger)
}

// An unreachable backend at startup is logged; the next request retries the load.
func preloadDefaultCart(lc fx.Lifecycle, sessions usecase.CartSessions, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := sessions.Preload(ctx); err != nil {
				logger.Error("failed to preload default cart", "error", err)
			}
			return nil
		},
	})
}
