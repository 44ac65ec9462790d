package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/pkg/config"
	"storefront-cart/internal/usecase"

	"github.com/segmentio/kafka-go"
)

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// checkoutMessage is the part of a completed-checkout record the cart service cares about.
type checkoutMessage struct {
	UserID string `json:"user_id"`
}

// CheckoutConsumer clears an owner's cart once their checkout completes.
type CheckoutConsumer struct {
	reader   messageReader
	sessions usecase.CartSessions
	logger   *slog.Logger
}

func NewCheckoutReader(cfg config.EventsConfig) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    cfg.CheckoutTopic,
		GroupID:  cfg.ConsumerGroup,
		MaxBytes: 10e6, // 10MB
	})
}

func NewCheckoutConsumer(reader messageReader, sessions usecase.CartSessions, logger *slog.Logger) *CheckoutConsumer {
	return &CheckoutConsumer{reader: reader, sessions: sessions, logger: logger}
}

// Run blocks until ctx is cancelled or the reader is closed.
func (c *CheckoutConsumer) Run(ctx context.Context) {
	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return
			}
			c.logger.Warn("failed to read checkout message", slog.String("error", err.Error()))
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}
		c.Handle(ctx, m)
	}
}

func (c *CheckoutConsumer) Handle(ctx context.Context, m kafka.Message) {
	var msg checkoutMessage
	if err := json.Unmarshal(m.Value, &msg); err != nil {
		c.logger.Warn("skipping unreadable checkout message", slog.Int64("offset", m.Offset), slog.String("error", err.Error()))
		return
	}
	owner := strings.TrimSpace(msg.UserID)
	if owner == "" {
		c.logger.Warn("skipping checkout message without user_id", slog.Int64("offset", m.Offset))
		return
	}
	if !cart.ValidOwner(owner) {
		c.logger.Warn("skipping checkout message with invalid user_id", slog.Int64("offset", m.Offset))
		return
	}

	store, err := c.sessions.For(ctx, owner)
	if err != nil {
		c.logger.Error("failed to open cart for checkout", slog.String("owner", owner), slog.String("error", err.Error()))
		return
	}
	res := store.Clear(ctx)
	c.logger.Info("cart cleared after checkout", slog.String("owner", owner), slog.Bool("had_cart", res.Removed))
}

func (c *CheckoutConsumer) Close() error {
	return c.reader.Close()
}
