package kv

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of *pgxpool.Pool the store needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

const (
	selectSnapshot = `SELECT value FROM cart_snapshots WHERE key = $1`
	upsertSnapshot = `INSERT INTO cart_snapshots (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	deleteSnapshot = `DELETE FROM cart_snapshots WHERE key = $1`
)

type PostgresStore struct {
	db    DBTX
	close func()
}

// close may be nil when the pool is owned elsewhere.
func NewPostgresStore(db DBTX, close func()) *PostgresStore {
	return &PostgresStore{db: db, close: close}
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var v []byte
	err := s.db.QueryRow(ctx, selectSnapshot, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.Exec(ctx, upsertSnapshot, key, string(value))
	return err
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.Exec(ctx, deleteSnapshot, key)
	return err
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *PostgresStore) Close() error {
	if s.close != nil {
		s.close()
	}
	return nil
}
