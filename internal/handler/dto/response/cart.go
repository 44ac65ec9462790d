package response

import (
	"time"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/usecase"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type CartItemResponse struct {
	ID       string          `json:"id"`
	Product  string          `json:"product"`
	Variant  string          `json:"variant,omitempty"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Stock    int             `json:"stock"`
	SKU      string          `json:"sku"`
	Image    string          `json:"image,omitempty"`
}

type TotalsResponse struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
	Currency string          `json:"currency"`
}

type CartResponse struct {
	ID        string             `json:"id"`
	User      string             `json:"user"`
	Items     []CartItemResponse `json:"items"`
	Totals    TotalsResponse     `json:"totals"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// CartStateResponse is returned by every cart endpoint. Cart is null when no cart exists.
type CartStateResponse struct {
	Cart      *CartResponse `json:"cart"`
	Loading   bool          `json:"loading"`
	LastError string        `json:"last_error,omitempty"`
}

// MutationResponse carries the outcome flags next to the resulting state.
type MutationResponse struct {
	CartStateResponse
	Created   bool `json:"created"`
	Removed   bool `json:"removed"`
	Clamped   bool `json:"clamped"`
	Persisted bool `json:"persisted"`
}

type RejectionDetail struct {
	Reason string        `json:"reason"`
	Cart   *CartResponse `json:"cart"`
}

func FromCartState(s *cart.State) (*CartResponse, error) {
	if s == nil {
		return nil, nil
	}
	var res CartResponse
	if err := copier.Copy(&res, s); err != nil {
		return nil, err
	}
	if res.Items == nil {
		res.Items = []CartItemResponse{}
	}
	return &res, nil
}

func FromStoreState(s usecase.StoreState) (*CartStateResponse, error) {
	c, err := FromCartState(s.Cart)
	if err != nil {
		return nil, err
	}
	return &CartStateResponse{Cart: c, Loading: s.Loading, LastError: s.LastError}, nil
}

func FromMutation(res cart.Result, s usecase.StoreState) (*MutationResponse, error) {
	state, err := FromStoreState(s)
	if err != nil {
		return nil, err
	}
	return &MutationResponse{
		CartStateResponse: *state,
		Created:           res.Created,
		Removed:           res.Removed,
		Clamped:           res.Clamped,
		Persisted:         res.Persisted,
	}, nil
}
