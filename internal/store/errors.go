package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrQuotaExceeded is returned when a queue insert is refused because the
	// configured capacity is reached or the database file is full.
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrRequestNotFound is returned when a queued request id does not exist.
	ErrRequestNotFound = errors.New("queued request was not found")

	// ErrKeyNotFound is returned when a key-value entry does not exist.
	ErrKeyNotFound = errors.New("key was not found")

	// ErrLockNotFound is returned when no lease row exists for a name.
	ErrLockNotFound = errors.New("lock was not found")
)

// Low-level database operation errors, wrapped together with the driver error.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to build a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when a transaction cannot start.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when a commit fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
