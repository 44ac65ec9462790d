package kv

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"
)

type BreakerSettings struct {
	Name string
	// Consecutive failures before the breaker opens.
	Failures uint32
	// How long the breaker stays open before letting a trial request through.
	Cooldown time.Duration
	// Per-call deadline applied on top of the caller's context.
	Timeout time.Duration
}

// BreakerStore guards a remote Store. A miss counts as success; an open breaker fails fast
// with gobreaker.ErrOpenState.
type BreakerStore struct {
	next    Store
	cb      *gobreaker.CircuitBreaker[[]byte]
	timeout time.Duration
}

func NewBreakerStore(next Store, settings BreakerSettings, logger *slog.Logger) *BreakerStore {
	failures := settings.Failures
	if failures == 0 {
		failures = 1
	}

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        settings.Name,
		MaxRequests: 1,
		Timeout:     settings.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("storage circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &BreakerStore{next: next, cb: cb, timeout: settings.Timeout}
}

func (s *BreakerStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.execute(ctx, func(ctx context.Context) ([]byte, error) {
		return s.next.Get(ctx, key)
	})
}

func (s *BreakerStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.execute(ctx, func(ctx context.Context) ([]byte, error) {
		return nil, s.next.Set(ctx, key, value)
	})
	return err
}

func (s *BreakerStore) Delete(ctx context.Context, key string) error {
	_, err := s.execute(ctx, func(ctx context.Context) ([]byte, error) {
		return nil, s.next.Delete(ctx, key)
	})
	return err
}

// Ping bypasses the breaker so health checks see the real backend.
func (s *BreakerStore) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.next.Ping(ctx)
}

func (s *BreakerStore) Close() error {
	return s.next.Close()
}

func (s *BreakerStore) State() gobreaker.State {
	return s.cb.State()
}

func (s *BreakerStore) execute(ctx context.Context, fn func(context.Context) ([]byte, error)) ([]byte, error) {
	return s.cb.Execute(func() ([]byte, error) {
		ctx, cancel := s.withTimeout(ctx)
		defer cancel()
		return fn(ctx)
	})
}

func (s *BreakerStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
