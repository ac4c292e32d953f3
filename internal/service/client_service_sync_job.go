package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

const defaultSyncInterval = 30 * time.Second

type clientSyncJob struct {
	syncManager SyncManager

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientSyncJob creates a clientSyncJob that calls syncManager.TriggerSync
// on a ticker. The job is idle until Start is called.
func NewClientSyncJob(syncManager SyncManager, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{
		syncManager: syncManager,
		logger:      logger.WithComponent("sync-job"),
	}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that triggers a drain every interval. If
// interval is zero or negative it defaults to 30 seconds. Ticks that find the
// manager busy, paused or offline are skipped silently.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *clientSyncJob) tick(ctx context.Context) {
	_, err := j.syncManager.TriggerSync(ctx)
	switch {
	case err == nil,
		errors.Is(err, ErrSyncInProgress),
		errors.Is(err, ErrSyncPaused),
		errors.Is(err, ErrOffline),
		errors.Is(err, context.Canceled):
	default:
		j.logger.Err(err).Str("func", "clientSyncJob.tick").Msg("periodic sync failed")
	}
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
