package events

import (
	"context"
	"log/slog"

	"storefront-cart/internal/usecase"
)

type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (NoopPublisher) Publish(context.Context, usecase.Event) error { return nil }

// LogPublisher writes each event as an info line.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, e usecase.Event) error {
	attrs := []any{
		slog.String("type", string(e.Type)),
		slog.String("owner", e.Owner),
		slog.String("cart_id", e.CartID),
		slog.Time("occurred_at", e.OccurredAt),
	}
	if e.ItemID != "" {
		attrs = append(attrs, slog.String("item_id", e.ItemID))
	}
	if e.Quantity > 0 {
		attrs = append(attrs, slog.Int("quantity", e.Quantity))
	}
	p.logger.InfoContext(ctx, "cart event", attrs...)
	return nil
}
