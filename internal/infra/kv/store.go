// Package kv provides the key-value media a cart snapshot can live in.
package kv

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("kv: key not found")

type Store interface {
	// Get returns ErrNotFound when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete succeeds for a missing key.
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}
