package converter

import (
	"time"

	"storefront-cart/internal/domain/cart"

	"github.com/shopspring/decimal"
)

// CartDocument is the persisted snapshot layout. Field names are shared with storefront
// clients that read the same entry, so they must not change.
type CartDocument struct {
	ID        string             `json:"_id"`
	User      string             `json:"user"`
	Items     []CartItemDocument `json:"items"`
	Totals    TotalsDocument     `json:"totals"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

type CartItemDocument struct {
	ID       string          `json:"_id"`
	Product  string          `json:"product"`
	Variant  string          `json:"variant,omitempty"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Image    string          `json:"image,omitempty"`
}

type TotalsDocument struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
	Currency string          `json:"currency"`
}

func CartToDocument(c *cart.Cart) CartDocument {
	s := c.State()
	items := make([]CartItemDocument, len(s.Items))
	for i, it := range s.Items {
		items[i] = CartItemDocument{
			ID:       it.ID,
			Product:  it.Product,
			Variant:  it.Variant,
			Quantity: it.Quantity,
			Price:    it.Price,
			Stock:    it.Stock,
			SKU:      it.SKU,
			Name:     it.Name,
			Image:    it.Image,
		}
	}
	return CartDocument{
		ID:    s.ID,
		User:  s.User,
		Items: items,
		Totals: TotalsDocument{
			Subtotal: s.Totals.Subtotal,
			Discount: s.Totals.Discount,
			Shipping: s.Totals.Shipping,
			Tax:      s.Totals.Tax,
			Total:    s.Totals.Total,
			Currency: s.Totals.Currency,
		},
		CreatedAt: s.CreatedAt.UTC(),
		UpdatedAt: s.UpdatedAt.UTC(),
	}
}

func DocumentToState(d CartDocument) cart.State {
	items := make([]cart.ItemState, len(d.Items))
	for i, it := range d.Items {
		items[i] = cart.ItemState{
			ID:       it.ID,
			Product:  it.Product,
			Variant:  it.Variant,
			Quantity: it.Quantity,
			Price:    it.Price,
			Stock:    it.Stock,
			SKU:      it.SKU,
			Name:     it.Name,
			Image:    it.Image,
		}
	}
	return cart.State{
		ID:    d.ID,
		User:  d.User,
		Items: items,
		Totals: cart.TotalsState{
			Subtotal: d.Totals.Subtotal,
			Discount: d.Totals.Discount,
			Shipping: d.Totals.Shipping,
			Tax:      d.Totals.Tax,
			Total:    d.Totals.Total,
			Currency: d.Totals.Currency,
		},
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}
