package request

import (
	"strings"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

// AddItemRequest is the product candidate a storefront client puts into the cart.
type AddItemRequest struct {
	ID      string           `json:"id"`
	Product string           `json:"product" binding:"required"`
	Variant string           `json:"variant"`
	Name    string           `json:"name" binding:"required,max=200"`
	Price   *decimal.Decimal `json:"price" binding:"required"`
	Stock   *int             `json:"stock" binding:"required,gte=0"`
	SKU     string           `json:"sku" binding:"max=64"`
	Image   string           `json:"image"`
}

// Quantity below 1 is accepted here and floored by the cart.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func (r *AddItemRequest) ToDomain() (cart.Item, error) {
	return cart.NewItem(cart.ItemSpec{
		ID:      r.ID,
		Product: r.Product,
		Variant: r.Variant,
		Name:    strings.TrimSpace(r.Name),
		Price:   patch.Coalesce(r.Price, decimal.Zero),
		Stock:   patch.Coalesce(r.Stock, 0),
		SKU:     r.SKU,
		Image:   r.Image,
	})
}
