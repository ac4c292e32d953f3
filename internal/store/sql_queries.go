// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getKV = `SELECT value FROM kv_store WHERE key = ?;`

	upsertKV = `
		INSERT INTO kv_store (key, value, updated_at_ms)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value         = excluded.value,
			updated_at_ms = excluded.updated_at_ms;`

	deleteKV = `DELETE FROM kv_store WHERE key = ?;`

	// writeLock inserts the lease row, or overwrites it when the current row
	// is stale or already ours. The WHERE clause of the upsert makes the
	// overwrite conditional inside a single statement.
	writeLock = `
		INSERT INTO refresh_locks (name, holder_id, acquired_at_ms)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			holder_id      = excluded.holder_id,
			acquired_at_ms = excluded.acquired_at_ms
		WHERE refresh_locks.acquired_at_ms < ?
		   OR refresh_locks.holder_id = excluded.holder_id;`

	readLock = `SELECT holder_id, acquired_at_ms FROM refresh_locks WHERE name = ?;`

	releaseLock = `DELETE FROM refresh_locks WHERE name = ? AND holder_id = ?;`

	insertQueuedRequest = `
		INSERT INTO request_queue (
			id,
			request_data,
			priority,
			priority_rank,
			retry_attempts,
			max_retries,
			created_at_ms,
			last_retry_at_ms,
			next_retry_at_ms,
			error,
			exhausted,
			metadata
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	countQueuedRequests = `SELECT COUNT(*) FROM request_queue;`

	updateQueuedRequestRetry = `
		UPDATE request_queue SET
			retry_attempts   = ?,
			last_retry_at_ms = ?,
			next_retry_at_ms = ?,
			error            = ?,
			exhausted        = ?
		WHERE id = ?;`

	deleteQueuedRequest = `DELETE FROM request_queue WHERE id = ?;`

	deleteOldestQueuedRequests = `
		DELETE FROM request_queue
		WHERE id IN (
			SELECT id FROM request_queue
			ORDER BY created_at_ms ASC
			LIMIT ?
		);`

	clearQueuedRequests = `DELETE FROM request_queue;`

	queueStatsByPriority = `
		SELECT
			priority,
			COUNT(*),
			COALESCE(SUM(CASE WHEN retry_attempts > 0 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(LENGTH(request_data) + COALESCE(LENGTH(metadata), 0)), 0),
			MIN(created_at_ms),
			MAX(created_at_ms)
		FROM request_queue
		GROUP BY priority;`
)
