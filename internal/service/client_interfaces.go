package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sync-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/service_mock.go -package=mock

// RequestQueue is the durable queue of pending mutating requests. When its
// storage is unavailable every operation is a logged no-op returning the
// zero value, so callers can fall back to direct attempts.
type RequestQueue interface {
	// Enqueue persists a request and returns its id. priority "" means
	// normal. On a quota failure the five oldest records are evicted and the
	// insert is retried once.
	Enqueue(ctx context.Context, data models.RequestData, priority models.Priority, metadata map[string]string) (string, error)

	// GetRetryRequests returns up to limit due, non-exhausted records ordered
	// by priority then next retry time, skipping the ids in exclude.
	GetRetryRequests(ctx context.Context, limit int, exclude ...string) ([]models.QueuedRequest, error)

	// CountDue returns the number of records GetRetryRequests could return.
	CountDue(ctx context.Context) (int, error)

	// MarkSucceeded deletes the record.
	MarkSucceeded(ctx context.Context, id string) error

	// MarkFailed records a retryable failure and schedules the next attempt.
	// The record is kept, exhausted, once its retry budget is spent.
	MarkFailed(ctx context.Context, id string, cause error) error

	// MarkRejected records a terminal failure. The record is kept, exhausted,
	// for manual handling.
	MarkRejected(ctx context.Context, id string, cause error) error

	RemoveRequest(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	GetStats(ctx context.Context) (models.QueueStats, error)

	// Close detaches the queue from storage. Later calls are no-ops.
	Close() error
}

// TokenCoordinator keeps one credential pair consistent across contexts and
// elects a single refresher per cycle.
type TokenCoordinator interface {
	// UpdateToken applies a new credential pair locally, writes it through to
	// storage and broadcasts it. version 0 means "current version + 1". It
	// returns false when version is not newer than the current one.
	UpdateToken(ctx context.Context, accessToken, refreshToken string, expiresAt time.Time, version int64) bool

	// GetToken returns a copy of the current state, or nil.
	GetToken() *models.TokenState

	// RequestRefresh tries to become the refresher for this cycle. It never
	// blocks on other contexts: false means another context (or an earlier
	// call within the debounce window) is handling it.
	RequestRefresh(ctx context.Context) bool

	MarkRefreshComplete(ctx context.Context, accessToken, refreshToken string, expiresAt time.Time)
	MarkRefreshFailed(ctx context.Context, cause error)

	// RefreshWith runs one full refresh cycle with fn if the lease is won.
	// It reports whether this context performed the refresh.
	RefreshWith(ctx context.Context, fn RefreshFunc) (bool, error)

	// NeedsRefresh reports whether the access token expires within skew.
	NeedsRefresh(skew time.Duration) bool

	// OnMessage registers fn for messages received from other contexts.
	OnMessage(fn func(models.SyncMessage)) (unsubscribe func())

	TabID() string
	IsRefreshLocked(ctx context.Context) bool
	Status(ctx context.Context) models.TokenStatus

	// Destroy unsubscribes from the broadcast and releases a held lease.
	Destroy()
}

// RefreshFunc exchanges a refresh token for a new credential pair.
type RefreshFunc = func(ctx context.Context, refreshToken string) (models.TokenState, error)

// SyncManager drains the request queue on connectivity changes.
type SyncManager interface {
	// TriggerSync runs one drain and blocks until it finishes. It fails fast
	// with [ErrSyncInProgress] while another run is active, [ErrOffline]
	// without connectivity and [ErrSyncPaused] after Pause until Resume.
	// Cancelling ctx abandons in-flight requests without spending a retry.
	TriggerSync(ctx context.Context) (models.SyncResult, error)

	Pause()
	Resume()

	GetProgress() models.SyncProgress
	GetStats(ctx context.Context) (models.QueueStats, error)
	IsSyncing() bool
	IsPaused() bool

	AddListener(event models.SyncEventType, fn func(models.SyncEvent)) int
	RemoveListener(event models.SyncEventType, id int)

	// Start subscribes to network transitions; Stop unsubscribes and waits
	// for background runs to finish.
	Start(ctx context.Context)
	Stop()
}

// ClientSyncJob periodically triggers a drain so that records whose backoff
// expired are retried without waiting for a connectivity change.
type ClientSyncJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

// idGenerator produces unique ids.
type idGenerator interface {
	Generate() string
}
