package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

type lockRepository struct {
	*DB
	logger *logger.Logger
}

// NewLockRepository constructs a SQLite-backed [LockRepository].
func NewLockRepository(db *DB, logger *logger.Logger) LockRepository {
	return &lockRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *lockRepository) Write(ctx context.Context, name string, lock models.RefreshLock, staleBefore time.Time) error {
	_, err := r.DB.ExecContext(ctx, writeLock, name, lock.HolderID, lock.AcquiredAtMs, staleBefore.UnixMilli())
	if err != nil {
		r.logger.Err(err).
			Str("func", "lockRepository.Write").
			Str("name", name).
			Str("holder_id", lock.HolderID).
			Msg("failed to write lock")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *lockRepository) Read(ctx context.Context, name string) (models.RefreshLock, error) {
	var lock models.RefreshLock
	err := r.DB.QueryRowContext(ctx, readLock, name).Scan(&lock.HolderID, &lock.AcquiredAtMs)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RefreshLock{}, ErrLockNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "lockRepository.Read").
			Str("name", name).
			Msg("failed to read lock")
		return models.RefreshLock{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return lock, nil
}

func (r *lockRepository) Release(ctx context.Context, name, holderID string) error {
	if _, err := r.DB.ExecContext(ctx, releaseLock, name, holderID); err != nil {
		r.logger.Err(err).
			Str("func", "lockRepository.Release").
			Str("name", name).
			Str("holder_id", holderID).
			Msg("failed to release lock")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
