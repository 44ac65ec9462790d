//go:build e2e

package cart_test

import (
	"encoding/json"
	"net/http"
	"testing"

	resdto "storefront-cart/internal/handler/dto/response"
	"storefront-cart/tests/common/builder"
	"storefront-cart/tests/common/httptest"
	"storefront-cart/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	cartURL  = "/api/cart"
	itemsURL = "/api/cart/items"
)

type CartSuite struct {
	e2e.SharedSuite
}

func TestCartPostgresSuite(t *testing.T) {
	t.Parallel()
	s := new(CartSuite)
	s.Driver = "postgres"
	suite.Run(t, s)
}

func TestCartRedisSuite(t *testing.T) {
	t.Parallel()
	s := new(CartSuite)
	s.Driver = "redis"
	suite.Run(t, s)
}

func (s *CartSuite) mutate(method, url string, body any, owner string, status int) resdto.MutationResponse {
	var res resdto.MutationResponse
	rec := httptest.PerformRequest(s.T(), s.Router, method, url, body, owner)
	httptest.AssertSuccessResponse(s.T(), rec, status, &res)
	httptest.AssertHeaderPresent(s.T(), rec, "X-Request-ID")
	httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": "application/json; charset=utf-8"})
	return res
}

// =============================================================================
// TestWalkthrough - add, add, clamp, remove
// =============================================================================

func (s *CartSuite) TestWalkthrough() {
	s.Run("Normal case: quantities and totals follow each mutation", func() {
		t := s.T()
		owner := s.NewOwner()
		item := builder.NewItemBuilder().BuildAddRequestDTO()

		res := s.mutate(http.MethodPost, itemsURL, item, owner, http.StatusCreated)
		require.True(t, res.Created)
		require.True(t, res.Persisted)
		require.Len(t, res.Cart.Items, 1)
		s.Equal(1, res.Cart.Items[0].Quantity)
		s.Equal("100", res.Cart.Totals.Subtotal.String())
		s.Equal("100", res.Cart.Totals.Total.String())
		s.Equal(owner, res.Cart.User)

		res = s.mutate(http.MethodPost, itemsURL, item, owner, http.StatusOK)
		s.Equal(2, res.Cart.Items[0].Quantity)
		s.Equal("200", res.Cart.Totals.Total.String())

		res = s.mutate(http.MethodPut, itemsURL+"/prod-100", map[string]any{"quantity": 10}, owner, http.StatusOK)
		s.True(res.Clamped)
		s.Equal(5, res.Cart.Items[0].Quantity)
		s.Equal("500", res.Cart.Totals.Total.String())

		res = s.mutate(http.MethodDelete, itemsURL+"/prod-100", nil, owner, http.StatusOK)
		s.True(res.Removed)
		s.Nil(res.Cart)

		_, ok := s.RawSnapshot(owner)
		s.False(ok, "snapshot must be deleted with the last line")
	})
}

// =============================================================================
// TestPersistence - snapshot layout and reload in a fresh process
// =============================================================================

func (s *CartSuite) TestPersistence() {
	s.Run("Normal case: a restarted process serves the saved cart", func() {
		t := s.T()
		owner := s.NewOwner()

		s.mutate(http.MethodPost, itemsURL, builder.NewItemBuilder().BuildAddRequestDTO(), owner, http.StatusCreated)
		s.mutate(http.MethodPost, itemsURL, builder.NewItemBuilder().WithProduct("prod-200").WithVariant("L").WithPrice("249.50").BuildAddRequestDTO(), owner, http.StatusOK)

		raw, ok := s.RawSnapshot(owner)
		require.True(t, ok)
		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &doc))
		for _, key := range []string{"_id", "user", "items", "totals", "createdAt", "updatedAt"} {
			s.Contains(doc, key)
		}

		var before resdto.CartStateResponse
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, owner), http.StatusOK, &before)

		restarted := s.Restart()
		var after resdto.CartStateResponse
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, restarted, http.MethodGet, cartURL, nil, owner), http.StatusOK, &after)

		require.NotNil(t, after.Cart)
		opts := cmp.Options{
			cmpopts.EquateApproxTime(0),
			cmp.Comparer(func(a, b resdto.TotalsResponse) bool {
				return a.Subtotal.Equal(b.Subtotal) && a.Total.Equal(b.Total) && a.Currency == b.Currency
			}),
			cmp.Comparer(func(a, b resdto.CartItemResponse) bool {
				return a.ID == b.ID && a.Quantity == b.Quantity && a.Price.Equal(b.Price) && a.Stock == b.Stock
			}),
		}
		if diff := cmp.Diff(before.Cart, after.Cart, opts); diff != "" {
			t.Errorf("reloaded cart mismatch (-before +after):\n%s", diff)
		}
		s.Equal("349.5", after.Cart.Totals.Total.String())
		s.Equal("prod-200:L", after.Cart.Items[1].ID)
	})
}

// =============================================================================
// TestRejections - out of stock and stock limit
// =============================================================================

func (s *CartSuite) TestRejections() {
	s.Run("Error case: out of stock never creates a cart", func() {
		t := s.T()
		owner := s.NewOwner()

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, itemsURL, builder.NewItemBuilder().AsOutOfStock().BuildAddRequestDTO(), owner)
		current := httptest.AssertRejection(t, rec, http.StatusConflict, "out_of_stock")
		s.Nil(current)

		_, ok := s.RawSnapshot(owner)
		s.False(ok)
	})

	s.Run("Error case: adding past the recorded stock", func() {
		t := s.T()
		owner := s.NewOwner()
		item := builder.NewItemBuilder().WithStock(1).BuildAddRequestDTO()

		s.mutate(http.MethodPost, itemsURL, item, owner, http.StatusCreated)
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, itemsURL, item, owner)
		current := httptest.AssertRejection(t, rec, http.StatusConflict, "stock_limit_reached")
		s.NotNil(current)
	})

	s.Run("Error case: quantity change without a cart", func() {
		t := s.T()
		rec := httptest.PerformRequest(t, s.Router, http.MethodPut, itemsURL+"/prod-100", map[string]any{"quantity": 2}, s.NewOwner())
		httptest.AssertRejection(t, rec, http.StatusNotFound, "no_cart")
	})
}

// =============================================================================
// TestClear - idempotent clear and owner isolation
// =============================================================================

func (s *CartSuite) TestClear() {
	s.Run("Normal case: clear twice leaves the same absent state", func() {
		owner := s.NewOwner()
		other := s.NewOwner()

		s.mutate(http.MethodPost, itemsURL, builder.NewItemBuilder().BuildAddRequestDTO(), owner, http.StatusCreated)
		s.mutate(http.MethodPost, itemsURL, builder.NewItemBuilder().BuildAddRequestDTO(), other, http.StatusCreated)

		first := s.mutate(http.MethodDelete, cartURL, nil, owner, http.StatusOK)
		second := s.mutate(http.MethodDelete, cartURL, nil, owner, http.StatusOK)
		s.True(first.Removed)
		s.False(second.Removed)
		s.Nil(second.Cart)

		_, ok := s.RawSnapshot(owner)
		s.False(ok)
		_, ok = s.RawSnapshot(other)
		s.True(ok, "other owners keep their carts")
	})
}
