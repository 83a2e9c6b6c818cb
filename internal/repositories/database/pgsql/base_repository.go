package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/cashclose_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Ping checks that the database is reachable.
func (r *BaseRepository) Ping(ctx context.Context) error {
	if err := r.Pool.Ping(ctx); err != nil {
		return apperrors.NewStoreUnavailableError("ping postgres", err)
	}
	return nil
}

// Close releases the pool.
func (r *BaseRepository) Close() error {
	r.Pool.Close()
	return nil
}

// storeError maps a driver error to the application's error vocabulary.
// pgx.ErrNoRows becomes ErrNotFound, anything else ErrStoreUnavailable.
func storeError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)
	}
	return apperrors.NewStoreUnavailableError(op, err)
}
