// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-sync-keeper/internal/service"
)

// ErrUserQuit is returned by [TUI.Run] when the user leaves the monitor.
var ErrUserQuit = errors.New("user quit")

func humanizeSyncError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrSyncInProgress):
		return "Синхронизация уже выполняется"
	case errors.Is(err, service.ErrSyncPaused):
		return "Синхронизация приостановлена (r: продолжить)"
	case errors.Is(err, service.ErrOffline):
		return "Отсутствует сеть"
	case errors.Is(err, service.ErrStorageUnavailable):
		return "Локальное хранилище недоступно"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
