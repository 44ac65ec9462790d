package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/pkg/clock"
	"storefront-cart/internal/pkg/errs"

	"github.com/google/uuid"
)

type StoreState struct {
	Cart      *cart.State
	Loading   bool
	LastError string
}

// CartStore owns at most one cart. Mutations are serialised and report their outcome in a
// cart.Result; persistence failures are logged and recorded, never returned.
type CartStore interface {
	Load(ctx context.Context) error
	Add(ctx context.Context, item cart.Item) cart.Result
	SetQuantity(ctx context.Context, itemID string, quantity int) cart.Result
	Remove(ctx context.Context, itemID string) cart.Result
	Clear(ctx context.Context) cart.Result
	State() StoreState
}

type StoreOptions struct {
	Owner    string
	Key      string
	Currency string
}

// storeRegistry lets an evicted store hand its owner back to the registry.
type storeRegistry interface {
	revive(owner string, store *cartStoreImpl) *cartStoreImpl
}

type cartStoreImpl struct {
	mu         sync.Mutex
	cart       *cart.Cart
	loading    bool
	lastError  string
	generation uint64
	retired    bool
	registry   storeRegistry

	opts   StoreOptions
	repo   SnapshotRepository
	events EventPublisher
	clock  clock.Clock
	logger *slog.Logger
}

func NewCartStore(opts StoreOptions, repo SnapshotRepository, events EventPublisher, clk clock.Clock, logger *slog.Logger) CartStore {
	return newCartStore(opts, repo, events, clk, logger)
}

func newCartStore(opts StoreOptions, repo SnapshotRepository, events EventPublisher, clk clock.Clock, logger *slog.Logger) *cartStoreImpl {
	return &cartStoreImpl{
		opts:   opts,
		repo:   repo,
		events: events,
		clock:  clk,
		logger: logger.With(slog.String("owner", opts.Owner), slog.String("key", opts.Key)),
	}
}

// Load seeds the store from its snapshot. A missing or unreadable snapshot leaves the cart
// absent; only a backend failure is returned. A mutation that lands during the read wins.
func (s *cartStoreImpl) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	gen := s.generation
	s.mu.Unlock()

	loaded, err := s.repo.Get(ctx, s.opts.Key)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.lastError = err.Error()
		if errors.Is(err, errs.ErrSnapshotUnreadable) {
			s.logger.Warn("discarding unreadable cart snapshot", slog.String("error", err.Error()))
			return nil
		}
		s.logger.Error("failed to load cart snapshot", slog.String("error", err.Error()))
		return err
	}
	if s.generation != gen {
		s.logger.Warn("cart changed while loading, keeping in-memory state")
		return nil
	}

	s.cart = loaded
	s.lastError = ""
	if loaded != nil {
		s.logger.Debug("cart snapshot loaded", slog.String("cart_id", loaded.ID()), slog.Int("lines", len(loaded.Items())))
	}
	return nil
}

func (s *cartStoreImpl) Add(ctx context.Context, item cart.Item) cart.Result {
	s.mu.Lock()
	if next := s.successor(); next != nil {
		s.mu.Unlock()
		return next.Add(ctx, item)
	}
	res, event := s.add(ctx, item)
	s.mu.Unlock()

	s.publish(ctx, event)
	return res
}

func (s *cartStoreImpl) add(ctx context.Context, item cart.Item) (cart.Result, *Event) {
	if !item.InStock() {
		s.logger.Warn("cannot add item: out of stock", slog.String("item_id", item.ID()))
		return cart.Rejected(cart.ReasonOutOfStock), nil
	}

	now := s.clock.Now()
	var res cart.Result
	if s.cart == nil {
		created, err := cart.NewCart(uuid.NewString(), s.opts.Owner, s.opts.Currency, item, now)
		if err != nil {
			s.logger.Error("cannot create cart", slog.String("item_id", item.ID()), slog.String("error", err.Error()))
			return cart.Rejected(cart.ReasonOutOfStock), nil
		}
		s.cart = created
		res = cart.Result{Created: true}
	} else {
		res = s.cart.AddItem(item, now)
		if !res.IsApplied() {
			s.logger.Warn("cannot add item", slog.String("item_id", item.ID()), slog.String("reason", res.Reason.String()))
			return res, nil
		}
	}

	s.generation++
	res.Persisted = s.save(ctx)
	line, _ := s.cart.LineFor(item)
	return res, s.event(EventItemAdded, line.ID(), line.Quantity(), now)
}

func (s *cartStoreImpl) SetQuantity(ctx context.Context, itemID string, quantity int) cart.Result {
	s.mu.Lock()
	if next := s.successor(); next != nil {
		s.mu.Unlock()
		return next.SetQuantity(ctx, itemID, quantity)
	}
	res, event := s.setQuantity(ctx, itemID, quantity)
	s.mu.Unlock()

	s.publish(ctx, event)
	return res
}

func (s *cartStoreImpl) setQuantity(ctx context.Context, itemID string, quantity int) (cart.Result, *Event) {
	if s.cart == nil {
		s.logger.Warn("cannot set quantity: no cart", slog.String("item_id", itemID))
		return cart.Rejected(cart.ReasonNoCart), nil
	}

	now := s.clock.Now()
	res := s.cart.SetQuantity(itemID, quantity, now)
	if !res.IsApplied() {
		s.logger.Warn("cannot set quantity", slog.String("item_id", itemID), slog.String("reason", res.Reason.String()))
		return res, nil
	}
	if res.Clamped {
		s.logger.Info("quantity adjusted to stock bounds", slog.String("item_id", itemID), slog.Int("requested", quantity))
	}

	s.generation++
	res.Persisted = s.save(ctx)
	line, _ := s.cart.Item(itemID)
	return res, s.event(EventItemQuantitySet, itemID, line.Quantity(), now)
}

func (s *cartStoreImpl) Remove(ctx context.Context, itemID string) cart.Result {
	s.mu.Lock()
	if next := s.successor(); next != nil {
		s.mu.Unlock()
		return next.Remove(ctx, itemID)
	}
	res, event := s.remove(ctx, itemID)
	s.mu.Unlock()

	s.publish(ctx, event)
	return res
}

func (s *cartStoreImpl) remove(ctx context.Context, itemID string) (cart.Result, *Event) {
	if s.cart == nil {
		s.logger.Warn("cannot remove item: no cart", slog.String("item_id", itemID))
		return cart.Rejected(cart.ReasonNoCart), nil
	}

	now := s.clock.Now()
	res := s.cart.RemoveItem(itemID, now)
	if !res.IsApplied() {
		s.logger.Warn("cannot remove item", slog.String("item_id", itemID), slog.String("reason", res.Reason.String()))
		return res, nil
	}

	event := s.event(EventItemRemoved, itemID, 0, now)
	s.generation++
	if res.Removed {
		s.cart = nil
		res.Persisted = s.delete(ctx)
	} else {
		res.Persisted = s.save(ctx)
	}
	return res, event
}

// Clear is idempotent: the snapshot is deleted even when no cart is held.
func (s *cartStoreImpl) Clear(ctx context.Context) cart.Result {
	s.mu.Lock()
	if next := s.successor(); next != nil {
		s.mu.Unlock()
		return next.Clear(ctx)
	}
	var event *Event
	existed := s.cart != nil
	if existed {
		event = s.event(EventCartCleared, "", 0, s.clock.Now())
	}
	s.cart = nil
	s.loading = false
	s.lastError = ""
	s.generation++
	persisted := s.delete(ctx)
	s.mu.Unlock()

	s.publish(ctx, event)
	return cart.Result{Removed: existed, Persisted: persisted}
}

func (s *cartStoreImpl) State() StoreState {
	s.mu.Lock()
	if next := s.successor(); next != nil {
		s.mu.Unlock()
		return next.State()
	}
	defer s.mu.Unlock()

	st := StoreState{Loading: s.loading, LastError: s.lastError}
	if s.cart != nil {
		cs := s.cart.State()
		st.Cart = &cs
	}
	return st
}

// retireIfIdle marks the store evicted when it holds no cart, has nothing pending and no
// operation is running on it. Holders of a retired store are routed through successor.
func (s *cartStoreImpl) retireIfIdle() bool {
	if !s.mu.TryLock() {
		return false
	}
	defer s.mu.Unlock()
	if s.cart != nil || s.loading || s.lastError != "" {
		return false
	}
	s.retired = true
	return true
}

// successor returns the store that now serves this owner, or nil when s still does.
// A retired store re-registers itself if nothing replaced it. Called with s.mu held.
func (s *cartStoreImpl) successor() *cartStoreImpl {
	if !s.retired {
		return nil
	}
	next := s.registry.revive(s.opts.Owner, s)
	if next == s {
		s.retired = false
		return nil
	}
	return next
}

func (s *cartStoreImpl) save(ctx context.Context) bool {
	if err := s.repo.Save(ctx, s.opts.Key, s.cart); err != nil {
		s.logger.Error("failed to persist cart snapshot", slog.String("error", err.Error()))
		s.lastError = err.Error()
		return false
	}
	s.lastError = ""
	return true
}

func (s *cartStoreImpl) delete(ctx context.Context) bool {
	if err := s.repo.Delete(ctx, s.opts.Key); err != nil {
		s.logger.Error("failed to delete cart snapshot", slog.String("error", err.Error()))
		s.lastError = err.Error()
		return false
	}
	s.lastError = ""
	return true
}

func (s *cartStoreImpl) event(typ EventType, itemID string, quantity int, now time.Time) *Event {
	return &Event{
		Type:       typ,
		Owner:      s.opts.Owner,
		CartID:     s.cart.ID(),
		ItemID:     itemID,
		Quantity:   quantity,
		OccurredAt: now,
	}
}

func (s *cartStoreImpl) publish(ctx context.Context, event *Event) {
	if event == nil {
		return
	}
	if err := s.events.Publish(ctx, *event); err != nil {
		s.logger.Warn("failed to publish cart event", slog.String("type", string(event.Type)), slog.String("error", err.Error()))
	}
}
