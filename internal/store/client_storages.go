package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

// ClientStorages groups the repositories that share one SQLite database.
type ClientStorages struct {
	// KV holds the token write-through copy and the fallback message keys.
	KV KVRepository

	// Locks holds the refresh lease row.
	Locks LockRepository

	// Queue holds the durable request queue.
	Queue RequestQueueRepository

	db *DB
}

// NewClientStorages opens the database named by cfg.DB.DSN, creating the
// file if needed, applies migrations and wires all repositories to it.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, cfg.Queue.MaxRequests, logger), nil
}

func newClientStorages(db *DB, maxRequests int, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		KV:    NewKVRepository(db, logger),
		Locks: NewLockRepository(db, logger),
		Queue: NewRequestQueueRepository(db, maxRequests, logger),
		db:    db,
	}
}

// Close releases the underlying database handle.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
