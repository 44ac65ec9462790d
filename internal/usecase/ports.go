package usecase

import (
	"context"
	"time"

	"storefront-cart/internal/domain/cart"
)

// SnapshotRepository persists one cart snapshot per key. Get returns (nil, nil) when no snapshot exists.
type SnapshotRepository interface {
	Get(ctx context.Context, key string) (*cart.Cart, error)
	Save(ctx context.Context, key string, c *cart.Cart) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

type EventType string

const (
	EventItemAdded       EventType = "cart.item.added"
	EventItemQuantitySet EventType = "cart.item.quantity_set"
	EventItemRemoved     EventType = "cart.item.removed"
	EventCartCleared     EventType = "cart.cleared"
)

type Event struct {
	Type       EventType `json:"type"`
	Owner      string    `json:"owner"`
	CartID     string    `json:"cartId"`
	ItemID     string    `json:"itemId,omitempty"`
	Quantity   int       `json:"quantity,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EventPublisher delivers applied mutations. Callers log failures and carry on.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
