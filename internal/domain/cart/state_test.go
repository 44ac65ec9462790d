//go:build unit

package cart_test

import (
	"testing"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestore(t *testing.T) {
	t.Run("round trips state", func(t *testing.T) {
		c := newCart(t, builder.NewItemBuilder().MustBuildDomain())
		require.True(t, c.AddItem(builder.NewItemBuilder().WithProduct("prod-200").WithVariant("red").MustBuildDomain(), t0).IsApplied())

		restored, err := cart.Restore(c.State())
		require.NoError(t, err)

		if diff := cmp.Diff(c.State(), restored.State(), decimalCmp); diff != "" {
			t.Errorf("restored state mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("recomputes subtotal and keeps charges", func(t *testing.T) {
		state := builder.NewCartStateBuilder().
			WithItems(builder.NewItemBuilder().BuildState(3)).
			WithCharges("25", "40", "18.90").
			Build()
		state.Totals.Subtotal = decimal.NewFromInt(1)
		state.Totals.Total = decimal.NewFromInt(1)

		c, err := cart.Restore(state)
		require.NoError(t, err)

		totals := c.Totals()
		assert.True(t, decimal.NewFromInt(300).Equal(totals.Subtotal()))
		assert.True(t, decimal.RequireFromString("333.90").Equal(totals.Total()))

		// charges survive later mutations
		require.True(t, c.SetQuantity("prod-100", 1, t0).IsApplied())
		assert.True(t, decimal.NewFromInt(25).Equal(c.Totals().Discount()))
		assert.True(t, decimal.RequireFromString("133.90").Equal(c.Totals().Total()))
	})

	t.Run("state is detached from the cart", func(t *testing.T) {
		c := newCart(t, builder.NewItemBuilder().MustBuildDomain())
		state := c.State()
		state.Items[0].Quantity = 4

		got, _ := c.Item("prod-100")
		assert.Equal(t, 1, got.Quantity())
	})

	invalid := []struct {
		name   string
		mutate func(*cart.State)
		errIs  error
	}{
		{name: "no lines", mutate: func(s *cart.State) { s.Items = nil }, errIs: cart.ErrEmptyCart},
		{name: "missing id", mutate: func(s *cart.State) { s.ID = "" }, errIs: cart.ErrEmptyCartID},
		{name: "missing currency", mutate: func(s *cart.State) { s.Totals.Currency = "" }, errIs: cart.ErrEmptyCurrency},
		{name: "zero quantity", mutate: func(s *cart.State) { s.Items[0].Quantity = 0 }, errIs: cart.ErrInvalidQuantity},
		{name: "blank line id", mutate: func(s *cart.State) { s.Items[0].ID = "" }, errIs: cart.ErrEmptyItemID},
		{name: "negative price", mutate: func(s *cart.State) { s.Items[0].Price = decimal.NewFromInt(-1) }, errIs: cart.ErrNegativePrice},
		{name: "quantity above stock", mutate: func(s *cart.State) { s.Items[0].Quantity = s.Items[0].Stock + 1 }, errIs: cart.ErrOverStock},
		{name: "duplicate line", mutate: func(s *cart.State) { s.Items = append(s.Items, s.Items[0]) }, errIs: cart.ErrDuplicateLine},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			state := builder.NewCartStateBuilder().Build()
			tc.mutate(&state)

			_, err := cart.Restore(state)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}
