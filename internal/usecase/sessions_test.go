//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"storefront-cart/internal/infra/kv"
	"storefront-cart/internal/infra/repository"
	"storefront-cart/internal/pkg/clock"
	"storefront-cart/internal/pkg/config"
	"storefront-cart/internal/usecase"
	"storefront-cart/tests/common/testutil"
	usecasemock "storefront-cart/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func cartConfig() config.CartConfig {
	return config.NewTestConfig().Cart
}

func TestStorageKey(t *testing.T) {
	cases := []struct {
		owner string
		want  string
	}{
		{owner: "", want: "ecommerce_cart"},
		{owner: "current-user-id", want: "ecommerce_cart"},
		{owner: "u-42", want: "ecommerce_cart:u-42"},
	}
	for _, tc := range cases {
		t.Run("owner "+tc.owner, func(t *testing.T) {
			assert.Equal(t, tc.want, usecase.StorageKey("ecommerce_cart", "current-user-id", tc.owner))
		})
	}
}

func TestCartSessions(t *testing.T) {
	ctx := context.Background()

	t.Run("one store per owner", func(t *testing.T) {
		repo := repository.NewCartSnapshotRepository(kv.NewMemoryStore(), testutil.DiscardLogger())
		sessions := usecase.NewCartSessions(cartConfig(), repo, &recordingPublisher{}, clock.NewMockClock(t0), testutil.DiscardLogger())

		a1, err := sessions.For(ctx, "u-1")
		require.NoError(t, err)
		a2, err := sessions.For(ctx, " u-1 ")
		require.NoError(t, err)
		b, err := sessions.For(ctx, "u-2")
		require.NoError(t, err)

		assert.Same(t, a1, a2)
		assert.NotSame(t, a1, b)

		require.True(t, a1.Add(ctx, item()).IsApplied())
		assert.Nil(t, b.State().Cart)
	})

	t.Run("blank owner is the default owner", func(t *testing.T) {
		repo := repository.NewCartSnapshotRepository(kv.NewMemoryStore(), testutil.DiscardLogger())
		sessions := usecase.NewCartSessions(cartConfig(), repo, &recordingPublisher{}, clock.NewMockClock(t0), testutil.DiscardLogger())
		require.NoError(t, sessions.Preload(ctx))

		def, err := sessions.For(ctx, "current-user-id")
		require.NoError(t, err)
		blank, err := sessions.For(ctx, "")
		require.NoError(t, err)
		assert.Same(t, def, blank)

		require.True(t, blank.Add(ctx, item()).IsApplied())
		c, err := repo.Get(ctx, "ecommerce_cart")
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "current-user-id", c.User())
	})

	t.Run("concurrent first access loads once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := usecasemock.NewMockSnapshotRepository(ctrl)
		repo.EXPECT().Get(gomock.Any(), "ecommerce_cart:u-9").Return(nil, nil).Times(1)

		sessions := usecase.NewCartSessions(cartConfig(), repo, &recordingPublisher{}, clock.NewMockClock(t0), testutil.DiscardLogger())

		stores := make([]usecase.CartStore, 16)
		var wg sync.WaitGroup
		for i := range stores {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s, err := sessions.For(ctx, "u-9")
				assert.NoError(t, err)
				stores[i] = s
			}()
		}
		wg.Wait()

		for _, s := range stores {
			assert.Same(t, stores[0], s)
		}
	})

	t.Run("failed load is retried on next access", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := usecasemock.NewMockSnapshotRepository(ctrl)
		gomock.InOrder(
			repo.EXPECT().Get(gomock.Any(), "ecommerce_cart:u-3").Return(nil, errors.New("storage down")),
			repo.EXPECT().Get(gomock.Any(), "ecommerce_cart:u-3").Return(nil, nil),
		)

		sessions := usecase.NewCartSessions(cartConfig(), repo, &recordingPublisher{}, clock.NewMockClock(t0), testutil.DiscardLogger())

		_, err := sessions.For(ctx, "u-3")
		require.Error(t, err)
		s, err := sessions.For(ctx, "u-3")
		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("owners without a cart are evicted once the registry fills", func(t *testing.T) {
		cfg := cartConfig()
		cfg.SessionSweepAt = 2
		repo := repository.NewCartSnapshotRepository(kv.NewMemoryStore(), testutil.DiscardLogger())
		sessions := usecase.NewCartSessions(cfg, repo, &recordingPublisher{}, clock.NewMockClock(t0), testutil.DiscardLogger())

		idle, err := sessions.For(ctx, "u-1")
		require.NoError(t, err)
		busy, err := sessions.For(ctx, "u-2")
		require.NoError(t, err)
		require.True(t, busy.Add(ctx, item()).IsApplied())

		_, err = sessions.For(ctx, "u-3")
		require.NoError(t, err)
		assert.Equal(t, 2, usecase.SessionCount(sessions))

		again, err := sessions.For(ctx, "u-1")
		require.NoError(t, err)
		assert.NotSame(t, idle, again)
		stillBusy, err := sessions.For(ctx, "u-2")
		require.NoError(t, err)
		assert.Same(t, busy, stillBusy)
		assert.Equal(t, 2, usecase.SessionCount(sessions))

		// the store handed out before eviction forwards to its replacement
		res := idle.Add(ctx, item())
		require.True(t, res.IsApplied())
		assert.True(t, res.Created)
		require.NotNil(t, again.State().Cart)
		assert.Equal(t, again.State().Cart.ID, idle.State().Cart.ID)
	})

	t.Run("an evicted store re-registers when used again", func(t *testing.T) {
		cfg := cartConfig()
		cfg.SessionSweepAt = 1
		repo := repository.NewCartSnapshotRepository(kv.NewMemoryStore(), testutil.DiscardLogger())
		sessions := usecase.NewCartSessions(cfg, repo, &recordingPublisher{}, clock.NewMockClock(t0), testutil.DiscardLogger())

		first, err := sessions.For(ctx, "u-1")
		require.NoError(t, err)
		_, err = sessions.For(ctx, "u-2")
		require.NoError(t, err)
		assert.Equal(t, 1, usecase.SessionCount(sessions))

		require.True(t, first.Add(ctx, item()).IsApplied())
		again, err := sessions.For(ctx, "u-1")
		require.NoError(t, err)
		assert.Same(t, first, again)
		assert.Equal(t, 2, usecase.SessionCount(sessions))

		// a cleared cart is dropped on the next sweep
		assert.True(t, again.Clear(ctx).Removed)
		_, err = sessions.For(ctx, "u-3")
		require.NoError(t, err)
		assert.Equal(t, 1, usecase.SessionCount(sessions))
	})
}
