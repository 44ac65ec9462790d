package usecase

import (
	"context"

	"storefront-cart/internal/pkg/errs"
)

type HealthChecker interface {
	Check(ctx context.Context) error
}

type healthCheckerImpl struct {
	repo SnapshotRepository
}

func NewHealthChecker(repo SnapshotRepository) HealthChecker {
	return &healthCheckerImpl{repo: repo}
}

func (h *healthCheckerImpl) Check(ctx context.Context) error {
	if err := h.repo.Ping(ctx); err != nil {
		return errs.Mark(errs.Wrap(err, "snapshot storage unreachable"), errs.ErrStorageOperationFailed)
	}
	return nil
}
