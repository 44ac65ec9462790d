package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"storefront-cart/internal/pkg/clock"
	"storefront-cart/internal/pkg/config"

	"golang.org/x/sync/singleflight"
)

// CartSessions hands out one CartStore per owner, loading its snapshot on first access.
// Owners without a cart are evicted once the registry grows past CART_SESSION_SWEEP_AT;
// a store handed out before its eviction keeps working.
type CartSessions interface {
	For(ctx context.Context, owner string) (CartStore, error)
	// Preload loads the default owner's store; called once at startup.
	Preload(ctx context.Context) error
}

type cartSessionsImpl struct {
	mu      sync.RWMutex
	stores  map[string]*cartStoreImpl
	sweepAt int
	group   singleflight.Group

	cfg    config.CartConfig
	repo   SnapshotRepository
	events EventPublisher
	clock  clock.Clock
	logger *slog.Logger
}

func NewCartSessions(cfg config.CartConfig, repo SnapshotRepository, events EventPublisher, clk clock.Clock, logger *slog.Logger) CartSessions {
	cfg.SessionSweepAt = max(cfg.SessionSweepAt, 1)
	return &cartSessionsImpl{
		stores:  make(map[string]*cartStoreImpl),
		sweepAt: cfg.SessionSweepAt,
		cfg:     cfg,
		repo:    repo,
		events:  events,
		clock:   clk,
		logger:  logger,
	}
}

// StorageKey keeps the default owner on the bare key so a single-cart deployment keeps one entry.
func StorageKey(base, defaultOwner, owner string) string {
	if owner == "" || owner == defaultOwner {
		return base
	}
	return base + ":" + owner
}

func (s *cartSessionsImpl) For(ctx context.Context, owner string) (CartStore, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		owner = s.cfg.DefaultOwner
	}

	if store, ok := s.lookup(owner); ok {
		return store, nil
	}

	v, err, _ := s.group.Do(owner, func() (any, error) {
		if store, ok := s.lookup(owner); ok {
			return store, nil
		}

		store := newCartStore(StoreOptions{
			Owner:    owner,
			Key:      StorageKey(s.cfg.StorageKey, s.cfg.DefaultOwner, owner),
			Currency: s.cfg.Currency,
		}, s.repo, s.events, s.clock, s.logger)
		store.registry = s
		if err := store.Load(ctx); err != nil {
			return nil, err
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		// an evicted store may have come back while this one was loading
		if live, ok := s.stores[owner]; ok {
			return live, nil
		}
		s.sweepLocked()
		s.stores[owner] = store
		return store, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*cartStoreImpl), nil
}

func (s *cartSessionsImpl) Preload(ctx context.Context) error {
	_, err := s.For(ctx, s.cfg.DefaultOwner)
	return err
}

// sweepLocked evicts idle owners without a cart once the registry reaches sweepAt, then
// moves sweepAt past twice the survivors. Called with s.mu held.
func (s *cartSessionsImpl) sweepLocked() {
	if len(s.stores) < s.sweepAt {
		return
	}
	evicted := 0
	for owner, store := range s.stores {
		if store.retireIfIdle() {
			delete(s.stores, owner)
			evicted++
		}
	}
	s.sweepAt = max(s.cfg.SessionSweepAt, 2*len(s.stores))
	s.logger.Debug("cart sessions swept", slog.Int("evicted", evicted), slog.Int("live", len(s.stores)), slog.Int("next_sweep_at", s.sweepAt))
}

func (s *cartSessionsImpl) revive(owner string, store *cartStoreImpl) *cartStoreImpl {
	s.mu.Lock()
	defer s.mu.Unlock()
	if live, ok := s.stores[owner]; ok {
		return live
	}
	s.stores[owner] = store
	return store
}

func (s *cartSessionsImpl) lookup(owner string) (*cartStoreImpl, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	store, ok := s.stores[owner]
	return store, ok
}
