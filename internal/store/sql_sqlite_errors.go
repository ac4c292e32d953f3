package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// ErrorClassification tells the caller how to react to a failed database
// operation.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default for unrecognised errors and constraint violations.
	NonRetryable ErrorClassification = iota

	// Retryable indicates a transient condition such as a locked database.
	Retryable

	// QuotaExceeded indicates the storage medium is out of space.
	QuotaExceeded
)

// SQLiteErrorClassifier implements [ErrorClassificator] for mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It unwraps err as a
// sqlite3.Error and maps its primary result code. [ErrQuotaExceeded] is
// classified as QuotaExceeded regardless of origin.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}
	if errors.Is(err, ErrQuotaExceeded) {
		return QuotaExceeded
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return ClassifySQLiteError(sqliteErr)
	}

	return NonRetryable
}

// ClassifySQLiteError maps a sqlite3.Error to an [ErrorClassification].
//
// QuotaExceeded codes: SQLITE_FULL.
// Retryable codes: SQLITE_BUSY, SQLITE_LOCKED, SQLITE_IOERR.
// Everything else is NonRetryable.
func ClassifySQLiteError(err sqlite3.Error) ErrorClassification {
	switch err.Code {
	case sqlite3.ErrFull:
		return QuotaExceeded
	case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrIoErr:
		return Retryable
	}

	return NonRetryable
}
