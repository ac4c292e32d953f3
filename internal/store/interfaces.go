package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sync-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides how a driver error should be treated.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// KV is a single key-value pair.
type KV struct {
	Key   string
	Value string
}

// KVRepository is the simple durable key-value store shared by all contexts.
// It carries the token write-through copy and the polling fallback channel.
type KVRepository interface {
	Get(ctx context.Context, key string) (string, error)
	GetMany(ctx context.Context, keys ...string) (map[string]string, error)
	// Set writes all pairs in one transaction, in order.
	Set(ctx context.Context, pairs ...KV) error
	Delete(ctx context.Context, key string) error
}

// LockRepository stores named lease rows.
type LockRepository interface {
	// Write claims name for lock.HolderID unless a different holder owns a
	// row acquired at or after staleBefore. It never reports whether the
	// claim won; callers read the row back and compare.
	Write(ctx context.Context, name string, lock models.RefreshLock, staleBefore time.Time) error
	Read(ctx context.Context, name string) (models.RefreshLock, error)
	// Release deletes the row only when it is still held by holderID.
	Release(ctx context.Context, name, holderID string) error
}

// RequestQueueRepository persists queued requests.
type RequestQueueRepository interface {
	Insert(ctx context.Context, req models.QueuedRequest) error
	Get(ctx context.Context, id string) (models.QueuedRequest, error)
	// ListDue returns up to limit non-exhausted records due at now, ordered by
	// priority then next retry time, skipping the ids in exclude.
	ListDue(ctx context.Context, now time.Time, limit int, exclude ...string) ([]models.QueuedRequest, error)
	CountDue(ctx context.Context, now time.Time) (int, error)
	UpdateRetry(ctx context.Context, req models.QueuedRequest) error
	Delete(ctx context.Context, id string) error
	DeleteOldest(ctx context.Context, n int) (int64, error)
	Clear(ctx context.Context) error
	Stats(ctx context.Context) (models.QueueStats, error)
}
