//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"storefront-cart/internal/infra"
	"storefront-cart/internal/infra/kv"
	"storefront-cart/internal/infra/repository"
	"storefront-cart/internal/pkg/errs"
	"storefront-cart/tests/common/builder"
	"storefront-cart/tests/common/testutil"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const key = "ecommerce_cart"

var decimalCmp = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

type brokenStore struct {
	kv.MemoryStore
	err error
}

func (s *brokenStore) Get(context.Context, string) ([]byte, error) { return nil, s.err }
func (s *brokenStore) Set(context.Context, string, []byte) error { return s.err }
func (s *brokenStore) Delete(context.Context, string) error { return s.err }
func (s *brokenStore) Ping(context.Context) error { return s.err }

func newRepo() (*repository.CartSnapshotRepository, *kv.MemoryStore) {
	store := kv.NewMemoryStore()
	return repository.NewCartSnapshotRepository(store, testutil.DiscardLogger()), store
}

func TestCartSnapshotRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("missing snapshot is absent", func(t *testing.T) {
		repo, _ := newRepo()
		c, err := repo.Get(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("snapshot without lines is absent", func(t *testing.T) {
		repo, store := newRepo()
		require.NoError(t, store.Set(ctx, key, []byte(`{"_id":"c1","user":"u","items":[],"totals":{"currency":"INR"}}`)))

		c, err := repo.Get(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("numeric prices from older clients decode", func(t *testing.T) {
		repo, store := newRepo()
		raw := `{"_id":"c1","user":"current-user-id","items":[{"_id":"p1","product":"p1","quantity":2,"price":99.5,"stock":4,"sku":"S","name":"N"}],
"totals":{"subtotal":0,"discount":10,"shipping":0,"tax":0,"total":0,"currency":"INR"},
"createdAt":"2025-03-01T10:00:00Z","updatedAt":"2025-03-01T10:00:00Z"}`
		require.NoError(t, store.Set(ctx, key, []byte(raw)))

		c, err := repo.Get(ctx, key)
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.True(t, decimal.NewFromInt(199).Equal(c.Totals().Subtotal()))
		assert.True(t, decimal.NewFromInt(189).Equal(c.Totals().Total()))
	})

	decodeFailures := map[string]string{
		"not json":          `{"_id":`,
		"invalid quantity":  `{"_id":"c1","items":[{"_id":"p1","product":"p1","quantity":0,"price":"1","stock":1}],"totals":{"currency":"INR"}}`,
		"missing currency":  `{"_id":"c1","items":[{"_id":"p1","product":"p1","quantity":1,"price":"1","stock":1}],"totals":{}}`,
		"duplicate line id": `{"_id":"c1","items":[{"_id":"p1","product":"p1","quantity":1,"price":"1","stock":1},{"_id":"p1","product":"p1","quantity":1,"price":"1","stock":1}],"totals":{"currency":"INR"}}`,
	}
	for name, raw := range decodeFailures {
		t.Run("decode failure: "+name, func(t *testing.T) {
			repo, store := newRepo()
			require.NoError(t, store.Set(ctx, key, []byte(raw)))

			c, err := repo.Get(ctx, key)
			assert.Nil(t, c)
			assert.True(t, infra.IsKind(err, infra.KindDecodeFailure))
			assert.ErrorIs(t, err, errs.ErrSnapshotUnreadable)
			assert.NotErrorIs(t, err, errs.ErrStorageOperationFailed)
		})
	}

	t.Run("backend failure", func(t *testing.T) {
		boom := errors.New("connection refused")
		repo := repository.NewCartSnapshotRepository(&brokenStore{err: boom}, testutil.DiscardLogger())

		_, err := repo.Get(ctx, key)
		assert.True(t, infra.IsKind(err, infra.KindStorageFailure))
		assert.ErrorIs(t, err, errs.ErrStorageOperationFailed)
		assert.ErrorIs(t, err, boom)
	})
}

func TestCartSnapshotRepository_SaveDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("save then get reconstructs the cart", func(t *testing.T) {
		repo, _ := newRepo()
		c, err := builder.NewCartStateBuilder().
			WithItems(
				builder.NewItemBuilder().BuildState(2),
				builder.NewItemBuilder().WithProduct("prod-200").WithVariant("red").WithPrice("10.25").BuildState(1),
			).
			WithCharges("5", "40", "1.80").
			BuildDomain()
		require.NoError(t, err)

		require.NoError(t, repo.Save(ctx, key, c))
		got, err := repo.Get(ctx, key)
		require.NoError(t, err)
		require.NotNil(t, got)

		if diff := cmp.Diff(c.State(), got.State(), decimalCmp); diff != "" {
			t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("persisted layout", func(t *testing.T) {
		repo, store := newRepo()
		c, err := builder.NewCartStateBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, key, c))

		raw, err := store.Get(ctx, key)
		require.NoError(t, err)
		var doc map[string]any
		require.NoError(t, json.Unmarshal(raw, &doc))

		for _, field := range []string{"_id", "user", "items", "totals", "createdAt", "updatedAt"} {
			assert.Contains(t, doc, field)
		}
		item := doc["items"].([]any)[0].(map[string]any)
		for _, field := range []string{"_id", "product", "quantity", "price", "stock", "sku", "name", "image"} {
			assert.Contains(t, item, field)
		}
		assert.NotContains(t, item, "variant")
		assert.Equal(t, "2025-03-01T10:00:00Z", doc["createdAt"])
		totals := doc["totals"].(map[string]any)
		assert.Equal(t, "100", totals["subtotal"])
		assert.Equal(t, "INR", totals["currency"])
	})

	t.Run("delete removes the entry and tolerates misses", func(t *testing.T) {
		repo, store := newRepo()
		require.NoError(t, store.Set(ctx, key, []byte("{}")))

		require.NoError(t, repo.Delete(ctx, key))
		_, err := store.Get(ctx, key)
		assert.ErrorIs(t, err, kv.ErrNotFound)
		assert.NoError(t, repo.Delete(ctx, key))
	})

	t.Run("write failures are storage failures", func(t *testing.T) {
		repo := repository.NewCartSnapshotRepository(&brokenStore{err: errors.New("READONLY")}, testutil.DiscardLogger())
		c, err := builder.NewCartStateBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, repo.Save(ctx, key, c), errs.ErrStorageOperationFailed)
		assert.ErrorIs(t, repo.Delete(ctx, key), errs.ErrStorageOperationFailed)
		assert.ErrorIs(t, repo.Ping(ctx), errs.ErrStorageOperationFailed)
	})
}
