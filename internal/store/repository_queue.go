package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

var queueColumns = []string{
	"id",
	"request_data",
	"priority",
	"retry_attempts",
	"max_retries",
	"created_at_ms",
	"last_retry_at_ms",
	"next_retry_at_ms",
	"error",
	"exhausted",
	"metadata",
}

type requestQueueRepository struct {
	*DB
	maxRecords int
	logger     *logger.Logger
}

// NewRequestQueueRepository constructs a SQLite-backed
// [RequestQueueRepository]. maxRecords caps the number of stored rows;
// zero means unbounded.
func NewRequestQueueRepository(db *DB, maxRecords int, logger *logger.Logger) RequestQueueRepository {
	return &requestQueueRepository{
		DB:         db,
		maxRecords: maxRecords,
		logger:     logger,
	}
}

func (r *requestQueueRepository) Insert(ctx context.Context, req models.QueuedRequest) error {
	requestData, err := json.Marshal(req.RequestData)
	if err != nil {
		return fmt.Errorf("failed to encode request data: %w", err)
	}
	var metadata sql.NullString
	if len(req.Metadata) > 0 {
		raw, err := json.Marshal(req.Metadata)
		if err != nil {
			return fmt.Errorf("failed to encode metadata: %w", err)
		}
		metadata = sql.NullString{String: string(raw), Valid: true}
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Err(err).Str("func", "requestQueueRepository.Insert").Msg("failed to begin transaction")
		return r.wrap(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if r.maxRecords > 0 {
		var count int
		if err = tx.QueryRowContext(ctx, countQueuedRequests).Scan(&count); err != nil {
			r.logger.Err(err).Str("func", "requestQueueRepository.Insert").Msg("failed to count queued requests")
			return r.wrap(ErrScanningRow, err)
		}
		if count >= r.maxRecords {
			r.logger.Warn().
				Str("func", "requestQueueRepository.Insert").
				Int("count", count).
				Int("max_records", r.maxRecords).
				Msg("queue is full")
			return ErrQuotaExceeded
		}
	}

	_, err = tx.ExecContext(ctx, insertQueuedRequest,
		req.ID,
		string(requestData),
		string(req.Priority),
		req.Priority.Rank(),
		req.RetryAttempts,
		req.MaxRetries,
		req.CreatedAt.UnixMilli(),
		nullMillis(req.LastRetryAt),
		req.NextRetryAt.UnixMilli(),
		nullString(req.Error),
		req.Exhausted,
		metadata,
	)
	if err != nil {
		r.logger.Err(err).
			Str("func", "requestQueueRepository.Insert").
			Str("id", req.ID).
			Msg("failed to insert queued request")
		return r.wrap(ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		r.logger.Err(err).Str("func", "requestQueueRepository.Insert").Msg("failed to commit transaction")
		return r.wrap(ErrCommitingTransaction, err)
	}

	return nil
}

func (r *requestQueueRepository) Get(ctx context.Context, id string) (models.QueuedRequest, error) {
	query, args, err := sq.Select(queueColumns...).
		From("request_queue").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.QueuedRequest{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	req, err := scanQueuedRequest(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.QueuedRequest{}, ErrRequestNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "requestQueueRepository.Get").
			Str("id", id).
			Msg("failed to scan queued request")
		return models.QueuedRequest{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return req, nil
}

func (r *requestQueueRepository) ListDue(ctx context.Context, now time.Time, limit int, exclude ...string) ([]models.QueuedRequest, error) {
	builder := sq.Select(queueColumns...).
		From("request_queue").
		Where(r.dueCondition(now, exclude)).
		OrderBy("priority_rank ASC", "next_retry_at_ms ASC", "created_at_ms ASC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "requestQueueRepository.ListDue").Msg("failed to query due requests")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var result []models.QueuedRequest
	for rows.Next() {
		req, err := scanQueuedRequest(rows)
		if err != nil {
			r.logger.Err(err).Str("func", "requestQueueRepository.ListDue").Msg("failed to scan queued request")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result = append(result, req)
	}
	if err = rows.Err(); err != nil {
		r.logger.Err(err).Str("func", "requestQueueRepository.ListDue").Msg("error iterating over rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func (r *requestQueueRepository) CountDue(ctx context.Context, now time.Time) (int, error) {
	query, args, err := sq.Select("COUNT(*)").
		From("request_queue").
		Where(r.dueCondition(now, nil)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		r.logger.Err(err).Str("func", "requestQueueRepository.CountDue").Msg("failed to count due requests")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}

// dueCondition binds the exclusion list as a single JSON array so its length
// is not limited by SQLITE_MAX_VARIABLE_NUMBER.
func (r *requestQueueRepository) dueCondition(now time.Time, exclude []string) sq.And {
	cond := sq.And{
		sq.Eq{"exhausted": false},
		sq.LtOrEq{"next_retry_at_ms": now.UnixMilli()},
	}
	if len(exclude) > 0 {
		ids, _ := json.Marshal(exclude)
		cond = append(cond, sq.Expr("id NOT IN (SELECT value FROM json_each(?))", string(ids)))
	}
	return cond
}

func (r *requestQueueRepository) UpdateRetry(ctx context.Context, req models.QueuedRequest) error {
	result, err := r.DB.ExecContext(ctx, updateQueuedRequestRetry,
		req.RetryAttempts,
		nullMillis(req.LastRetryAt),
		req.NextRetryAt.UnixMilli(),
		nullString(req.Error),
		req.Exhausted,
		req.ID,
	)
	if err != nil {
		r.logger.Err(err).
			Str("func", "requestQueueRepository.UpdateRetry").
			Str("id", req.ID).
			Msg("failed to update queued request")
		return r.wrap(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRequestNotFound
	}

	return nil
}

func (r *requestQueueRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, deleteQueuedRequest, id); err != nil {
		r.logger.Err(err).
			Str("func", "requestQueueRepository.Delete").
			Str("id", id).
			Msg("failed to delete queued request")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *requestQueueRepository) DeleteOldest(ctx context.Context, n int) (int64, error) {
	if n <= 0 {
		return 0, nil
	}

	result, err := r.DB.ExecContext(ctx, deleteOldestQueuedRequests, n)
	if err != nil {
		r.logger.Err(err).
			Str("func", "requestQueueRepository.DeleteOldest").
			Int("n", n).
			Msg("failed to evict oldest queued requests")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return result.RowsAffected()
}

func (r *requestQueueRepository) Clear(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, clearQueuedRequests); err != nil {
		r.logger.Err(err).Str("func", "requestQueueRepository.Clear").Msg("failed to clear queue")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *requestQueueRepository) Stats(ctx context.Context) (models.QueueStats, error) {
	stats := models.QueueStats{ByPriority: make(map[models.Priority]int, len(models.Priorities))}
	for _, p := range models.Priorities {
		stats.ByPriority[p] = 0
	}

	rows, err := r.DB.QueryContext(ctx, queueStatsByPriority)
	if err != nil {
		r.logger.Err(err).Str("func", "requestQueueRepository.Stats").Msg("failed to query queue stats")
		return models.QueueStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var oldest, newest int64
	for rows.Next() {
		var (
			priority      string
			total, failed int
			size          int64
			minMs, maxMs  int64
		)
		if err = rows.Scan(&priority, &total, &failed, &size, &minMs, &maxMs); err != nil {
			r.logger.Err(err).Str("func", "requestQueueRepository.Stats").Msg("failed to scan queue stats")
			return models.QueueStats{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		stats.ByPriority[models.Priority(priority)] += total
		stats.TotalRequests += total
		stats.FailedRequests += failed
		stats.ApproxSizeBytes += size
		if oldest == 0 || minMs < oldest {
			oldest = minMs
		}
		if maxMs > newest {
			newest = maxMs
		}
	}
	if err = rows.Err(); err != nil {
		return models.QueueStats{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	stats.PendingRequests = stats.TotalRequests - stats.FailedRequests
	if stats.TotalRequests > 0 {
		o, n := time.UnixMilli(oldest), time.UnixMilli(newest)
		stats.OldestRequest, stats.NewestRequest = &o, &n
	}

	return stats, nil
}

// wrap joins sentinel and err, replacing sentinel with [ErrQuotaExceeded]
// when the driver reports a full database.
func (r *requestQueueRepository) wrap(sentinel, err error) error {
	if r.classify(err) == QuotaExceeded {
		return fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQueuedRequest(row rowScanner) (models.QueuedRequest, error) {
	var (
		req                   models.QueuedRequest
		requestData, priority string
		createdMs, nextMs     int64
		lastMs                sql.NullInt64
		errText, metadata     sql.NullString
	)

	err := row.Scan(
		&req.ID,
		&requestData,
		&priority,
		&req.RetryAttempts,
		&req.MaxRetries,
		&createdMs,
		&lastMs,
		&nextMs,
		&errText,
		&req.Exhausted,
		&metadata,
	)
	if err != nil {
		return models.QueuedRequest{}, err
	}

	if err = json.Unmarshal([]byte(requestData), &req.RequestData); err != nil {
		return models.QueuedRequest{}, fmt.Errorf("failed to decode request data: %w", err)
	}
	if metadata.Valid && metadata.String != "" {
		if err = json.Unmarshal([]byte(metadata.String), &req.Metadata); err != nil {
			return models.QueuedRequest{}, fmt.Errorf("failed to decode metadata: %w", err)
		}
	}

	req.Priority = models.Priority(priority)
	req.CreatedAt = time.UnixMilli(createdMs)
	req.NextRetryAt = time.UnixMilli(nextMs)
	if lastMs.Valid {
		t := time.UnixMilli(lastMs.Int64)
		req.LastRetryAt = &t
	}
	req.Error = errText.String

	return req, nil
}

func nullMillis(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixMilli(), Valid: true}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
