// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spySyncManager считает вызовы TriggerSync и возвращает заданную ошибку.
type spySyncManager struct {
	SyncManager
	calls atomic.Int64
	err   error
}

func (s *spySyncManager) TriggerSync(_ context.Context) (models.SyncResult, error) {
	s.calls.Add(1)
	return models.SyncResult{}, s.err
}

// ── NewClientSyncJob ─────────────────────────────────────────────────────────

func TestNewClientSyncJob_ReturnsInterface(t *testing.T) {
	job := NewClientSyncJob(&spySyncManager{}, logger.Nop())
	require.NotNil(t, job)
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientSyncJob_Start_TriggersSync(t *testing.T) {
	spy := &spySyncManager{}
	job := NewClientSyncJob(spy, logger.Nop())

	// Интервал 10ms: за 55ms должно быть ~5 тиков
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}

func TestClientSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySyncManager{}
	job := NewClientSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no ticks after Stop")
}

func TestClientSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewClientSyncJob(&spySyncManager{}, logger.Nop())
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewClientSyncJob(&spySyncManager{}, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_Start_DefaultInterval(t *testing.T) {
	spy := &spySyncManager{}
	job := NewClientSyncJob(spy, logger.Nop())

	// interval <= 0 → дефолт 30 секунд, за 20ms вызовов быть не должно
	job.Start(context.Background(), 0)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestClientSyncJob_Restart_StopsPrevious(t *testing.T) {
	spy := &spySyncManager{}
	job := NewClientSyncJob(spy, logger.Nop())
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	callsBefore := spy.calls.Load()
	require.Greater(t, callsBefore, int64(0))

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), callsBefore)
}

func TestClientSyncJob_ContextCancel_StopsJob(t *testing.T) {
	job := NewClientSyncJob(&spySyncManager{}, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hangs after context cancellation")
	}
}

func TestClientSyncJob_SkippedTicks_DoNotStopJob(t *testing.T) {
	for _, err := range []error{ErrOffline, ErrSyncPaused, ErrSyncInProgress, assert.AnError} {
		t.Run(err.Error(), func(t *testing.T) {
			spy := &spySyncManager{err: err}
			job := NewClientSyncJob(spy, logger.Nop())

			job.Start(context.Background(), 10*time.Millisecond)
			time.Sleep(55 * time.Millisecond)
			job.Stop()

			assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
		})
	}
}
