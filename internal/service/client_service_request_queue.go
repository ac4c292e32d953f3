package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// evictionBatch is the number of oldest records dropped on a quota failure.
const evictionBatch = 5

type requestQueue struct {
	repo   store.RequestQueueRepository
	ids    idGenerator
	now    func() time.Time
	closed atomic.Bool

	logger *logger.Logger
}

// NewRequestQueue creates a [RequestQueue] over repo. A nil repo yields a
// queue whose operations are logged no-ops.
func NewRequestQueue(repo store.RequestQueueRepository, logger *logger.Logger) RequestQueue {
	return &requestQueue{
		repo:   repo,
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
		logger: logger.WithComponent("request-queue"),
	}
}

func (q *requestQueue) available(fn string) bool {
	if q.repo == nil || q.closed.Load() {
		q.logger.Warn().Str("func", fn).Err(ErrStorageUnavailable).Msg("queue storage unavailable, skipping")
		return false
	}
	return true
}

func (q *requestQueue) Enqueue(ctx context.Context, data models.RequestData, priority models.Priority, metadata map[string]string) (string, error) {
	if !q.available("requestQueue.Enqueue") {
		return "", nil
	}

	if strings.TrimSpace(data.Endpoint) == "" {
		return "", ErrInvalidRequest
	}
	p, err := models.ParsePriority(string(priority))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPriority, err)
	}

	now := q.now()
	req := models.QueuedRequest{
		ID:          q.ids.Generate(),
		RequestData: data,
		Priority:    p,
		MaxRetries:  p.MaxRetries(),
		CreatedAt:   now,
		NextRetryAt: now,
		Metadata:    metadata,
	}

	err = q.repo.Insert(ctx, req)
	if errors.Is(err, store.ErrQuotaExceeded) {
		evicted, evictErr := q.repo.DeleteOldest(ctx, evictionBatch)
		if evictErr != nil {
			q.logger.Err(evictErr).Str("func", "requestQueue.Enqueue").Msg("failed to evict oldest requests")
		} else {
			q.logger.Warn().
				Str("func", "requestQueue.Enqueue").
				Int64("evicted", evicted).
				Msg("queue quota exceeded, evicted oldest requests")
			err = q.repo.Insert(ctx, req)
		}
	}
	if err != nil {
		q.logger.Err(err).
			Str("func", "requestQueue.Enqueue").
			Str("endpoint", data.Endpoint).
			Msg("failed to enqueue request")
		if errors.Is(err, store.ErrQuotaExceeded) {
			return "", fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
		}
		return "", fmt.Errorf("enqueue: %w", err)
	}

	q.logger.Debug().
		Str("func", "requestQueue.Enqueue").
		Str("id", req.ID).
		Str("priority", string(p)).
		Msg("request queued")

	return req.ID, nil
}

func (q *requestQueue) GetRetryRequests(ctx context.Context, limit int, exclude ...string) ([]models.QueuedRequest, error) {
	if !q.available("requestQueue.GetRetryRequests") {
		return nil, nil
	}

	reqs, err := q.repo.ListDue(ctx, q.now(), limit, exclude...)
	if err != nil {
		return nil, fmt.Errorf("get retry requests: %w", err)
	}
	return reqs, nil
}

func (q *requestQueue) CountDue(ctx context.Context) (int, error) {
	if !q.available("requestQueue.CountDue") {
		return 0, nil
	}

	n, err := q.repo.CountDue(ctx, q.now())
	if err != nil {
		return 0, fmt.Errorf("count due requests: %w", err)
	}
	return n, nil
}

func (q *requestQueue) MarkSucceeded(ctx context.Context, id string) error {
	if !q.available("requestQueue.MarkSucceeded") {
		return nil
	}

	if err := q.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("mark succeeded: %w", err)
	}
	return nil
}

func (q *requestQueue) MarkFailed(ctx context.Context, id string, cause error) error {
	return q.settleFailure(ctx, "requestQueue.MarkFailed", id, cause, false)
}

func (q *requestQueue) MarkRejected(ctx context.Context, id string, cause error) error {
	return q.settleFailure(ctx, "requestQueue.MarkRejected", id, cause, true)
}

func (q *requestQueue) settleFailure(ctx context.Context, fn, id string, cause error, terminal bool) error {
	if !q.available(fn) {
		return nil
	}

	req, err := q.repo.Get(ctx, id)
	if errors.Is(err, store.ErrRequestNotFound) {
		q.logger.Warn().Str("func", fn).Str("id", id).Msg("request vanished before settling")
		return ErrRequestNotFound
	}
	if err != nil {
		return fmt.Errorf("load request: %w", err)
	}

	now := q.now()
	if req.RetryAttempts < req.MaxRetries {
		req.RetryAttempts++
	}
	req.LastRetryAt = &now
	if cause != nil {
		req.Error = cause.Error()
	}

	next := now.Add(retryDelay(req.RetryAttempts))
	if terminal {
		next = now
	}
	if next.After(req.NextRetryAt) {
		req.NextRetryAt = next
	}

	if terminal || req.RetryAttempts >= req.MaxRetries {
		req.Exhausted = true
		q.logger.Warn().
			Str("func", fn).
			Str("id", req.ID).
			Int("retry_attempts", req.RetryAttempts).
			Bool("rejected", terminal).
			Str("error", req.Error).
			Msg("request will not be retried automatically")
	}

	if err = q.repo.UpdateRetry(ctx, req); err != nil {
		return fmt.Errorf("update request: %w", err)
	}
	return nil
}

func (q *requestQueue) RemoveRequest(ctx context.Context, id string) error {
	if !q.available("requestQueue.RemoveRequest") {
		return nil
	}

	if _, err := q.repo.Get(ctx, id); err != nil {
		if errors.Is(err, store.ErrRequestNotFound) {
			return ErrRequestNotFound
		}
		return fmt.Errorf("remove request: %w", err)
	}
	if err := q.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove request: %w", err)
	}
	return nil
}

func (q *requestQueue) Clear(ctx context.Context) error {
	if !q.available("requestQueue.Clear") {
		return nil
	}

	if err := q.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear queue: %w", err)
	}
	q.logger.Info().Str("func", "requestQueue.Clear").Msg("queue cleared")
	return nil
}

func (q *requestQueue) GetStats(ctx context.Context) (models.QueueStats, error) {
	if !q.available("requestQueue.GetStats") {
		return emptyStats(), nil
	}

	stats, err := q.repo.Stats(ctx)
	if err != nil {
		return emptyStats(), fmt.Errorf("queue stats: %w", err)
	}
	return stats, nil
}

func (q *requestQueue) Close() error {
	q.closed.Store(true)
	return nil
}

func emptyStats() models.QueueStats {
	stats := models.QueueStats{ByPriority: make(map[models.Priority]int, len(models.Priorities))}
	for _, p := range models.Priorities {
		stats.ByPriority[p] = 0
	}
	return stats
}
