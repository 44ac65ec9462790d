package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/infra"
	"storefront-cart/internal/infra/kv"
	"storefront-cart/internal/infra/repository/converter"
)

type CartSnapshotRepository struct {
	store  kv.Store
	logger *slog.Logger
}

func NewCartSnapshotRepository(store kv.Store, logger *slog.Logger) *CartSnapshotRepository {
	return &CartSnapshotRepository{store: store, logger: logger}
}

// Get returns (nil, nil) for a missing snapshot and for one that holds no lines.
func (r *CartSnapshotRepository) Get(ctx context.Context, key string) (*cart.Cart, error) {
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindStorageFailure, key, "failed to read cart snapshot", err)
	}

	var doc converter.CartDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDecodeFailure, key, "failed to decode cart snapshot", err)
	}
	if len(doc.Items) == 0 {
		return nil, nil
	}

	c, err := cart.Restore(converter.DocumentToState(doc))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDecodeFailure, key, "invalid cart snapshot", err)
	}
	return c, nil
}

func (r *CartSnapshotRepository) Save(ctx context.Context, key string, c *cart.Cart) error {
	raw, err := json.Marshal(converter.CartToDocument(c))
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDecodeFailure, key, "failed to encode cart snapshot", err)
	}
	if err := r.store.Set(ctx, key, raw); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindStorageFailure, key, "failed to write cart snapshot", err)
	}
	return nil
}

func (r *CartSnapshotRepository) Delete(ctx context.Context, key string) error {
	if err := r.store.Delete(ctx, key); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindStorageFailure, key, "failed to delete cart snapshot", err)
	}
	return nil
}

func (r *CartSnapshotRepository) Ping(ctx context.Context) error {
	if err := r.store.Ping(ctx); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindStorageFailure, "", "storage ping failed", err)
	}
	return nil
}
