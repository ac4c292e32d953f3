package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrSyncInProgress:     http.StatusConflict,
	service.ErrSyncPaused:         http.StatusConflict,
	service.ErrOffline:            http.StatusServiceUnavailable,
	service.ErrInvalidPriority:    http.StatusBadRequest,
	service.ErrInvalidRequest:     http.StatusBadRequest,
	service.ErrRequestNotFound:    http.StatusNotFound,
	service.ErrQuotaExceeded:      http.StatusInsufficientStorage,
	service.ErrStorageUnavailable: http.StatusServiceUnavailable,

	ErrInvalidRequestID:  http.StatusBadRequest,
	ErrQueueUnavailable:  http.StatusServiceUnavailable,
	ErrNoAccessToken:     http.StatusBadRequest,
	ErrStaleTokenVersion: http.StatusConflict,
	utils.ErrEmptyBody:   http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
