package service

import "errors"

var (
	// ErrStorageUnavailable is reported when the queue has no usable
	// storage. Queue operations degrade to logged no-ops instead.
	ErrStorageUnavailable = errors.New("storage unavailable")

	ErrQuotaExceeded    = errors.New("queue quota exceeded")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrInvalidRequest   = errors.New("request has no endpoint")
	ErrRequestNotFound  = errors.New("queued request not found")
	ErrRejectedRequest  = errors.New("request rejected by server")
	ErrTransportFailure = errors.New("transport failure")

	ErrSyncInProgress = errors.New("sync already in progress")
	ErrSyncPaused     = errors.New("sync is paused")
	ErrOffline        = errors.New("network is offline")

	ErrNoRefreshToken = errors.New("no refresh token available")
)
