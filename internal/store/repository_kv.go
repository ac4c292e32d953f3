package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

type kvRepository struct {
	*DB
	logger *logger.Logger
}

// NewKVRepository constructs a SQLite-backed [KVRepository].
func NewKVRepository(db *DB, logger *logger.Logger) KVRepository {
	return &kvRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *kvRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.DB.QueryRowContext(ctx, getKV, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "kvRepository.Get").
			Str("key", key).
			Msg("failed to read key")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *kvRepository) GetMany(ctx context.Context, keys ...string) (map[string]string, error) {
	result := make(map[string]string, len(keys))
	for _, key := range keys {
		value, err := r.Get(ctx, key)
		if errors.Is(err, ErrKeyNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		result[key] = value
	}

	return result, nil
}

func (r *kvRepository) Set(ctx context.Context, pairs ...KV) error {
	if len(pairs) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Err(err).Str("func", "kvRepository.Set").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	nowMs := time.Now().UnixMilli()
	for _, p := range pairs {
		if _, err = tx.ExecContext(ctx, upsertKV, p.Key, p.Value, nowMs); err != nil {
			r.logger.Err(err).
				Str("func", "kvRepository.Set").
				Str("key", p.Key).
				Msg("failed to upsert key")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		r.logger.Err(err).Str("func", "kvRepository.Set").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *kvRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.DB.ExecContext(ctx, deleteKV, key); err != nil {
		r.logger.Err(err).
			Str("func", "kvRepository.Delete").
			Str("key", key).
			Msg("failed to delete key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
