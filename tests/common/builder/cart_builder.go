//go:build unit || e2e

package builder

import (
	"time"

	"storefront-cart/internal/domain/cart"
	reqdto "storefront-cart/internal/handler/dto/request"
	"storefront-cart/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

type ItemBuilder struct {
	ID      string
	Product string
	Variant string
	Name    string
	Price   decimal.Decimal
	Stock   int
	SKU     string
	Image   string
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		Product: "prod-100",
		Name:    "Cotton Kurta",
		Price:   decimal.NewFromInt(100),
		Stock:   5,
		SKU:     "KRT-100",
		Image:   "https://cdn.example.com/kurta.jpg",
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ItemBuilder) BuildDomain() (cart.Item, error) {
	return cart.NewItem(b.spec())
}

// MustBuildDomain panics on invalid input; only for fixtures known to be valid.
func (b *ItemBuilder) MustBuildDomain() cart.Item {
	item, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return item
}

func (b *ItemBuilder) BuildAddRequestDTO() reqdto.AddItemRequest {
	return reqdto.AddItemRequest{
		ID:      b.ID,
		Product: b.Product,
		Variant: b.Variant,
		Name:    b.Name,
		Price:   patch.Of(b.Price),
		Stock:   patch.Of(b.Stock),
		SKU:     b.SKU,
		Image:   b.Image,
	}
}

func (b *ItemBuilder) BuildState(quantity int) cart.ItemState {
	id := b.ID
	if id == "" {
		id = cart.LineID(b.Product, b.Variant)
	}
	return cart.ItemState{
		ID:       id,
		Product:  b.Product,
		Variant:  b.Variant,
		Quantity: quantity,
		Price:    b.Price,
		Stock:    b.Stock,
		SKU:      b.SKU,
		Name:     b.Name,
		Image:    b.Image,
	}
}

func (b *ItemBuilder) spec() cart.ItemSpec {
	return cart.ItemSpec{
		ID:      b.ID,
		Product: b.Product,
		Variant: b.Variant,
		Name:    b.Name,
		Price:   b.Price,
		Stock:   b.Stock,
		SKU:     b.SKU,
		Image:   b.Image,
	}
}

// Fluent builder methods
func (b *ItemBuilder) WithID(id string) *ItemBuilder {
	b.ID = id
	return b
}

func (b *ItemBuilder) WithProduct(product string) *ItemBuilder {
	b.Product = product
	return b
}

func (b *ItemBuilder) WithVariant(variant string) *ItemBuilder {
	b.Variant = variant
	return b
}

func (b *ItemBuilder) WithPrice(price string) *ItemBuilder {
	b.Price = decimal.RequireFromString(price)
	return b
}

func (b *ItemBuilder) WithStock(stock int) *ItemBuilder {
	b.Stock = stock
	return b
}

func (b *ItemBuilder) AsOutOfStock() *ItemBuilder {
	b.Stock = 0
	return b
}

// CartStateBuilder produces persisted cart states for repository and store tests.
type CartStateBuilder struct {
	ID        string
	User      string
	Items     []cart.ItemState
	Discount  decimal.Decimal
	Shipping  decimal.Decimal
	Tax       decimal.Decimal
	Currency  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewCartStateBuilder() *CartStateBuilder {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return &CartStateBuilder{
		ID:        "7c1f7c1e-2b8d-4b43-9a4e-1b2a3c4d5e6f",
		User:      "current-user-id",
		Items:     []cart.ItemState{NewItemBuilder().BuildState(1)},
		Discount:  decimal.Zero,
		Shipping:  decimal.Zero,
		Tax:       decimal.Zero,
		Currency:  "INR",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *CartStateBuilder) With(mutate func(*CartStateBuilder)) *CartStateBuilder {
	mutate(b)
	return b
}

func (b *CartStateBuilder) WithItems(items ...cart.ItemState) *CartStateBuilder {
	b.Items = items
	return b
}

func (b *CartStateBuilder) WithCharges(discount, shipping, tax string) *CartStateBuilder {
	b.Discount = decimal.RequireFromString(discount)
	b.Shipping = decimal.RequireFromString(shipping)
	b.Tax = decimal.RequireFromString(tax)
	return b
}

// Build leaves subtotal and total zero; Restore recomputes them.
func (b *CartStateBuilder) Build() cart.State {
	items := make([]cart.ItemState, len(b.Items))
	copy(items, b.Items)
	return cart.State{
		ID:    b.ID,
		User:  b.User,
		Items: items,
		Totals: cart.TotalsState{
			Discount: b.Discount,
			Shipping: b.Shipping,
			Tax:      b.Tax,
			Currency: b.Currency,
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *CartStateBuilder) BuildDomain() (*cart.Cart, error) {
	return cart.Restore(b.Build())
}
