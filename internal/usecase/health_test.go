//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"storefront-cart/internal/pkg/errs"
	"storefront-cart/internal/usecase"
	usecasemock "storefront-cart/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHealthChecker(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy", func(t *testing.T) {
		repo := usecasemock.NewMockSnapshotRepository(gomock.NewController(t))
		repo.EXPECT().Ping(gomock.Any()).Return(nil)

		assert.NoError(t, usecase.NewHealthChecker(repo).Check(ctx))
	})

	t.Run("unreachable storage", func(t *testing.T) {
		repo := usecasemock.NewMockSnapshotRepository(gomock.NewController(t))
		repo.EXPECT().Ping(gomock.Any()).Return(errors.New("dial tcp 127.0.0.1:6379: connect: connection refused"))

		err := usecase.NewHealthChecker(repo).Check(ctx)
		assert.True(t, errs.Is(err, errs.ErrStorageOperationFailed))
		assert.Contains(t, err.Error(), "snapshot storage unreachable")
	})
}
