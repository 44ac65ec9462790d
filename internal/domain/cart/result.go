package cart

import "storefront-cart/internal/pkg/errs"

// Reason tells why a mutation was not applied. The zero value means it was.
type Reason string

const (
	ReasonNone         Reason = ""
	ReasonOutOfStock   Reason = "out_of_stock"
	ReasonStockLimit   Reason = "stock_limit_reached"
	ReasonNoCart       Reason = "no_cart"
	ReasonItemNotFound Reason = "item_not_found"
	// ReasonDuplicateLine means the candidate's line id belongs to a different product or variant.
	ReasonDuplicateLine Reason = "duplicate_line_id"
)

func (r Reason) String() string {
	return string(r)
}

// Result is returned by every cart mutation instead of an error.
type Result struct {
	Reason Reason
	// Created reports that this mutation created the cart.
	Created bool
	// Removed reports that the cart collapsed to absent.
	Removed bool
	// Clamped reports that the requested quantity was adjusted into [1, stock].
	Clamped bool
	// Persisted reports that the snapshot write succeeded.
	Persisted bool
}

func Rejected(reason Reason) Result {
	return Result{Reason: reason}
}

func (r Result) IsApplied() bool {
	return r.Reason == ReasonNone
}

// Err maps a rejection to its sentinel error, nil when applied.
func (r Result) Err() error {
	switch r.Reason {
	case ReasonNone:
		return nil
	case ReasonOutOfStock:
		return errs.ErrOutOfStock
	case ReasonStockLimit:
		return errs.ErrStockLimit
	case ReasonNoCart:
		return errs.ErrCartNotFound
	case ReasonItemNotFound:
		return errs.ErrCartItemNotFound
	case ReasonDuplicateLine:
		return errs.ErrLineIDConflict
	default:
		return errs.ErrDomainValidation
	}
}
