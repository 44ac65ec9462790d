package cart

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyCart     = errors.New("cart must contain at least one item")
	ErrEmptyCurrency = errors.New("currency is required")
	ErrDuplicateLine = errors.New("duplicate cart line")
	ErrEmptyCartID   = errors.New("cart id is required")
	ErrItemNoStock   = errors.New("item has no stock")
)

// Cart always holds at least one line. An empty cart does not exist: callers drop it when a
// mutation reports Removed.
type Cart struct {
	id        string
	user      string
	items     []Item
	totals    Totals
	createdAt time.Time
	updatedAt time.Time
}

func NewCart(id, user, currency string, first Item, now time.Time) (*Cart, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyCartID
	}
	if strings.TrimSpace(currency) == "" {
		return nil, ErrEmptyCurrency
	}
	if !first.InStock() {
		return nil, ErrItemNoStock
	}

	first.quantity = 1
	c := &Cart{
		id:        id,
		user:      user,
		items:     []Item{first},
		totals:    newTotals(currency),
		createdAt: now,
		updatedAt: now,
	}
	c.totals = c.totals.recompute(c.items)
	return c, nil
}

// AddItem increments the matching line by one, or appends the candidate at quantity 1.
// The ceiling is the stock recorded on the existing line. A new line whose id is
// already held by another product or variant is rejected.
func (c *Cart) AddItem(candidate Item, now time.Time) Result {
	if !candidate.InStock() {
		return Rejected(ReasonOutOfStock)
	}

	if idx := c.lineIndex(candidate); idx >= 0 {
		existing := &c.items[idx]
		if existing.quantity >= existing.stock {
			return Rejected(ReasonStockLimit)
		}
		existing.quantity++
	} else {
		if c.indexByID(candidate.id) >= 0 {
			return Rejected(ReasonDuplicateLine)
		}
		candidate.quantity = 1
		c.items = append(c.items, candidate)
	}

	c.touch(now)
	return Result{}
}

// SetQuantity clamps to the line's stock first, then floors at 1. It never removes a line.
func (c *Cart) SetQuantity(itemID string, quantity int, now time.Time) Result {
	idx := c.indexByID(itemID)
	if idx < 0 {
		return Rejected(ReasonItemNotFound)
	}

	item := &c.items[idx]
	target := quantity
	if target > item.stock {
		target = item.stock
	}
	if target < 1 {
		target = 1
	}
	item.quantity = target

	c.touch(now)
	return Result{Clamped: target != quantity}
}

// RemoveItem deletes the line. Removed is set when no lines remain.
func (c *Cart) RemoveItem(itemID string, now time.Time) Result {
	idx := c.indexByID(itemID)
	if idx < 0 {
		return Rejected(ReasonItemNotFound)
	}

	c.items = append(c.items[:idx], c.items[idx+1:]...)
	c.touch(now)
	return Result{Removed: c.IsEmpty()}
}

func (c *Cart) Item(itemID string) (Item, bool) {
	idx := c.indexByID(itemID)
	if idx < 0 {
		return Item{}, false
	}
	return c.items[idx], true
}

// LineFor returns the line the candidate would merge into.
func (c *Cart) LineFor(candidate Item) (Item, bool) {
	idx := c.lineIndex(candidate)
	if idx < 0 {
		return Item{}, false
	}
	return c.items[idx], true
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) ID() string           { return c.id }
func (c *Cart) User() string         { return c.user }
func (c *Cart) Totals() Totals       { return c.totals }
func (c *Cart) CreatedAt() time.Time { return c.createdAt }
func (c *Cart) UpdatedAt() time.Time { return c.updatedAt }

func (c *Cart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) touch(now time.Time) {
	c.totals = c.totals.recompute(c.items)
	c.updatedAt = now
}

func (c *Cart) lineIndex(candidate Item) int {
	for i := range c.items {
		if c.items[i].sameLine(candidate) {
			return i
		}
	}
	return -1
}

func (c *Cart) indexByID(itemID string) int {
	for i := range c.items {
		if c.items[i].id == itemID {
			return i
		}
	}
	return -1
}
