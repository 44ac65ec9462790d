package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"storefront-cart/internal/infra/events"
	"storefront-cart/internal/pkg/config"
	"storefront-cart/internal/usecase"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
	fx.Invoke(
		StartCheckoutConsumer,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (usecase.EventPublisher, error) {
	switch cfg.Events.Driver {
	case "none":
		return events.NewNoopPublisher(), nil
	case "log":
		return events.NewLogPublisher(logger), nil
	case "kafka":
		publisher := events.NewKafkaPublisher(events.NewKafkaWriter(cfg.Events), cfg.Events.Topic, logger)
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return publisher.Close()
			},
		})
		logger.Info("kafka publisher ready", "brokers", cfg.Events.Brokers, "topic", cfg.Events.Topic)
		return publisher, nil
	default:
		return nil, fmt.Errorf("unknown EVENTS_DRIVER %q", cfg.Events.Driver)
	}
}

// StartCheckoutConsumer runs only when KAFKA_CHECKOUT_TOPIC is set.
func StartCheckoutConsumer(lc fx.Lifecycle, cfg config.Config, sessions usecase.CartSessions, logger *slog.Logger) {
	if cfg.Events.CheckoutTopic == "" {
		return
	}

	consumer := events.NewCheckoutConsumer(events.NewCheckoutReader(cfg.Events), sessions, logger)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("checkout consumer starting", "topic", cfg.Events.CheckoutTopic, "group", cfg.Events.ConsumerGroup)
			go func() {
				defer close(done)
				consumer.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			err := consumer.Close()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return err
		},
	})
}
