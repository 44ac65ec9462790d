package cart

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// State is the exported, copyable form of a Cart used for persistence and responses.
type State struct {
	ID        string
	User      string
	Items     []ItemState
	Totals    TotalsState
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ItemState struct {
	ID       string
	Product  string
	Variant  string
	Quantity int
	Price    decimal.Decimal
	Stock    int
	SKU      string
	Name     string
	Image    string
}

type TotalsState struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
	Currency string
}

func (c *Cart) State() State {
	items := make([]ItemState, len(c.items))
	for i, item := range c.items {
		items[i] = item.state()
	}
	return State{
		ID:        c.id,
		User:      c.user,
		Items:     items,
		Totals:    c.totals.state(),
		CreatedAt: c.createdAt,
		UpdatedAt: c.updatedAt,
	}
}

// Restore rebuilds a Cart from persisted state. Subtotal and total are recomputed from the lines;
// discount, shipping, tax and currency are taken as stored.
func Restore(s State) (*Cart, error) {
	if s.ID == "" {
		return nil, ErrEmptyCartID
	}
	if len(s.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if s.Totals.Currency == "" {
		return nil, ErrEmptyCurrency
	}

	items := make([]Item, 0, len(s.Items))
	seen := make(map[string]struct{}, len(s.Items))
	for i, is := range s.Items {
		item, err := reconstructItem(is)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if _, dup := seen[item.id]; dup {
			return nil, fmt.Errorf("item %q: %w", item.id, ErrDuplicateLine)
		}
		seen[item.id] = struct{}{}
		items = append(items, item)
	}

	c := &Cart{
		id:    s.ID,
		user:  s.User,
		items: items,
		totals: Totals{
			discount: s.Totals.Discount,
			shipping: s.Totals.Shipping,
			tax:      s.Totals.Tax,
			currency: s.Totals.Currency,
		},
		createdAt: s.CreatedAt,
		updatedAt: s.UpdatedAt,
	}
	c.totals = c.totals.recompute(c.items)
	return c, nil
}
