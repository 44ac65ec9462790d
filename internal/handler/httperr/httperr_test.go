//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/handler/httperr"
	"storefront-cart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "out of stock", err: cart.Rejected(cart.ReasonOutOfStock).Err(), want: http.StatusConflict},
		{name: "stock limit", err: cart.Rejected(cart.ReasonStockLimit).Err(), want: http.StatusConflict},
		{name: "line id conflict", err: cart.Rejected(cart.ReasonDuplicateLine).Err(), want: http.StatusConflict},
		{name: "no cart", err: cart.Rejected(cart.ReasonNoCart).Err(), want: http.StatusNotFound},
		{name: "item not found", err: cart.Rejected(cart.ReasonItemNotFound).Err(), want: http.StatusNotFound},
		{name: "wrapped storage failure", err: errs.Wrap(errs.Mark(errors.New("refused"), errs.ErrStorageOperationFailed), "ping"), want: http.StatusServiceUnavailable},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, httperr.StatusOf(tc.err))
		})
	}
}
