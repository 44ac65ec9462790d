package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"storefront-cart/internal/infra/db"
	"storefront-cart/internal/infra/kv"
	"storefront-cart/internal/pkg/config"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewStore,
	),
)

// NewStore selects the snapshot backend. Remote backends sit behind a circuit breaker.
func NewStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (kv.Store, error) {
	var (
		store kv.Store
		err   error
	)
	switch cfg.Storage.Driver {
	case "memory":
		store = kv.NewMemoryStore()
	case "redis":
		store = kv.NewRedisStore(kv.NewRedisClient(cfg.Redis), cfg.Redis.SnapshotTTL)
	case "postgres":
		store, err = newPostgresStore(cfg)
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Storage.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Storage.Driver != "memory" {
		store = kv.NewBreakerStore(store, kv.BreakerSettings{
			Name:     "cart-snapshots-" + cfg.Storage.Driver,
			Failures: cfg.Storage.BreakerFailures,
			Cooldown: cfg.Storage.BreakerCooldown,
			Timeout:  cfg.Storage.Timeout,
		}, logger)
	}
	logger.Info("snapshot storage ready", "driver", cfg.Storage.Driver)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})
	return store, nil
}

func newPostgresStore(cfg config.Config) (kv.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Storage.Timeout*5)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	return kv.NewPostgresStore(pool, cleanup), nil
}
