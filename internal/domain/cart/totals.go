package cart

import "github.com/shopspring/decimal"

// Totals is recomputed from the lines on every mutation. Discount, shipping and tax are
// carried forward as-is; no rule derives them from the lines.
type Totals struct {
	subtotal decimal.Decimal
	discount decimal.Decimal
	shipping decimal.Decimal
	tax      decimal.Decimal
	total    decimal.Decimal
	currency string
}

func newTotals(currency string) Totals {
	return Totals{
		subtotal: decimal.Zero,
		discount: decimal.Zero,
		shipping: decimal.Zero,
		tax:      decimal.Zero,
		total:    decimal.Zero,
		currency: currency,
	}
}

func (t Totals) recompute(items []Item) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	t.subtotal = subtotal
	t.total = subtotal.Sub(t.discount).Add(t.shipping).Add(t.tax)
	return t
}

func (t Totals) Subtotal() decimal.Decimal { return t.subtotal }
func (t Totals) Discount() decimal.Decimal { return t.discount }
func (t Totals) Shipping() decimal.Decimal { return t.shipping }
func (t Totals) Tax() decimal.Decimal      { return t.tax }
func (t Totals) Total() decimal.Decimal    { return t.total }
func (t Totals) Currency() string          { return t.currency }

func (t Totals) state() TotalsState {
	return TotalsState{
		Subtotal: t.subtotal,
		Discount: t.discount,
		Shipping: t.shipping,
		Tax:      t.tax,
		Total:    t.total,
		Currency: t.currency,
	}
}
