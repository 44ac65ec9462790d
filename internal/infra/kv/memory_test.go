//go:build unit

package kv_test

import (
	"context"
	"testing"

	"storefront-cart/internal/infra/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("miss returns ErrNotFound", func(t *testing.T) {
		s := kv.NewMemoryStore()
		_, err := s.Get(ctx, "ecommerce_cart")
		assert.ErrorIs(t, err, kv.ErrNotFound)
	})

	t.Run("set get delete", func(t *testing.T) {
		s := kv.NewMemoryStore()
		require.NoError(t, s.Set(ctx, "ecommerce_cart", []byte(`{"_id":"c1"}`)))

		got, err := s.Get(ctx, "ecommerce_cart")
		require.NoError(t, err)
		assert.JSONEq(t, `{"_id":"c1"}`, string(got))

		require.NoError(t, s.Delete(ctx, "ecommerce_cart"))
		_, err = s.Get(ctx, "ecommerce_cart")
		assert.ErrorIs(t, err, kv.ErrNotFound)
	})

	t.Run("delete of a missing key succeeds", func(t *testing.T) {
		assert.NoError(t, kv.NewMemoryStore().Delete(ctx, "missing"))
	})

	t.Run("values are copied in and out", func(t *testing.T) {
		s := kv.NewMemoryStore()
		in := []byte("abc")
		require.NoError(t, s.Set(ctx, "k", in))
		in[0] = 'x'

		out, err := s.Get(ctx, "k")
		require.NoError(t, err)
		out[1] = 'y'

		again, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "abc", string(again))
	})
}
