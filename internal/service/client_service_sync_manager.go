package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/telemetry"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

const (
	defaultBatchSize      = 3
	defaultRequestTimeout = 60 * time.Second
	settleTimeout         = 5 * time.Second
)

type syncManager struct {
	queue    RequestQueue
	executor adapter.RequestExecutor
	network  adapter.NetworkObserver
	metrics  *telemetry.SyncMetrics
	cfg      config.ClientSync
	now      func() time.Time

	mu          sync.Mutex
	progress    models.SyncProgress
	syncing     bool
	manualPause bool
	autoPause   bool
	baseCtx     context.Context
	cancel      context.CancelFunc

	listenersMu sync.Mutex
	listeners   map[models.SyncEventType]map[int]func(models.SyncEvent)
	nextID      int

	removeNetwork func()
	wg            sync.WaitGroup

	logger *logger.Logger
}

// NewSyncManager creates a [SyncManager] that replays queue records through
// executor whenever network reports connectivity.
func NewSyncManager(queue RequestQueue, executor adapter.RequestExecutor, network adapter.NetworkObserver, metrics *telemetry.SyncMetrics, cfg config.ClientSync, logger *logger.Logger) SyncManager {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	return &syncManager{
		queue:     queue,
		executor:  executor,
		network:   network,
		metrics:   metrics,
		cfg:       cfg,
		now:       time.Now,
		progress:  models.SyncProgress{Status: models.SyncIdle},
		baseCtx:   context.Background(),
		listeners: make(map[models.SyncEventType]map[int]func(models.SyncEvent)),
		logger:    logger.WithComponent("sync-manager"),
	}
}

func (m *syncManager) Start(ctx context.Context) {
	m.mu.Lock()
	m.baseCtx, m.cancel = context.WithCancel(ctx)
	m.autoPause = !m.network.IsOnline()
	m.mu.Unlock()

	m.removeNetwork = m.network.AddListener(m.onNetworkChange)

	if m.network.IsOnline() {
		m.triggerInBackground("startup")
	}
}

func (m *syncManager) Stop() {
	if m.removeNetwork != nil {
		m.removeNetwork()
	}

	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
	}
	m.mu.Unlock()

	m.wg.Wait()
}

func (m *syncManager) TriggerSync(ctx context.Context) (models.SyncResult, error) {
	m.mu.Lock()
	switch {
	case m.syncing:
		m.mu.Unlock()
		return models.SyncResult{}, ErrSyncInProgress
	case !m.network.IsOnline():
		m.mu.Unlock()
		return models.SyncResult{}, ErrOffline
	case m.manualPause:
		m.mu.Unlock()
		return models.SyncResult{}, ErrSyncPaused
	}
	started := m.now()
	m.syncing = true
	m.progress = models.SyncProgress{
		Status:    models.SyncSyncing,
		StartedAt: started,
		UpdatedAt: started,
	}
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.syncing = false
		m.mu.Unlock()
	}()

	runCtx := ctx
	if m.cfg.RunTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, m.cfg.RunTimeout)
		defer cancel()
	}

	total, err := m.queue.CountDue(runCtx)
	if err != nil {
		return m.finish(ctx, started, err, false)
	}

	m.mu.Lock()
	m.progress.Total = total
	m.mu.Unlock()

	m.logger.Info().Str("func", "syncManager.TriggerSync").Int("total", total).Msg("sync started")
	m.emit(models.SyncEvent{Type: models.EventStarted, Progress: m.GetProgress()})

	stopped, runErr := m.drain(runCtx)
	return m.finish(ctx, started, runErr, stopped)
}

// drain replays due records batch by batch. Records that stay queued after
// an attempt are excluded from later batches so each is tried at most once
// per run. It reports whether the loop stopped on pause or connectivity loss.
func (m *syncManager) drain(ctx context.Context) (bool, error) {
	var retained []string

	for {
		if m.shouldStop() {
			return true, nil
		}
		if err := ctx.Err(); err != nil {
			return false, fmt.Errorf("sync run: %w", err)
		}

		batch, err := m.queue.GetRetryRequests(ctx, m.cfg.BatchSize, retained...)
		if err != nil {
			return false, err
		}
		if len(batch) == 0 {
			return false, nil
		}

		kept := make([]bool, len(batch))
		g := new(errgroup.Group)
		g.SetLimit(m.cfg.BatchSize)
		for i, req := range batch {
			g.Go(func() error {
				kept[i] = m.replay(ctx, req)
				return nil
			})
		}
		_ = g.Wait()

		for i, req := range batch {
			if kept[i] {
				retained = append(retained, req.ID)
			}
		}
	}
}

// replay executes one record and settles it. Failures never leave replay.
// It reports whether the record may still be in the queue afterwards.
func (m *syncManager) replay(ctx context.Context, req models.QueuedRequest) bool {
	reqCtx, cancel := context.WithTimeout(utils.WithQueuedRequestID(ctx, req.ID), m.cfg.RequestTimeout)
	execErr := m.executor.Execute(reqCtx, req)
	cancel()

	// The run itself was cancelled: the attempt is abandoned and costs nothing.
	if execErr != nil && ctx.Err() != nil {
		m.logger.Info().
			Err(execErr).
			Str("func", "syncManager.replay").
			Str("id", req.ID).
			Msg("run cancelled, request left queued")
		return true
	}

	settleCtx, settleCancel := context.WithTimeout(context.WithoutCancel(ctx), settleTimeout)
	defer settleCancel()

	var (
		settleErr error
		outcome   string
	)
	mapped := mapExecuteError(execErr)
	switch {
	case mapped == nil:
		outcome = telemetry.OutcomeSynced
		settleErr = m.queue.MarkSucceeded(settleCtx, req.ID)
	case errors.Is(mapped, ErrRejectedRequest):
		outcome = telemetry.OutcomeRejected
		settleErr = m.queue.MarkRejected(settleCtx, req.ID, mapped)
	default:
		outcome = telemetry.OutcomeRetry
		settleErr = m.queue.MarkFailed(settleCtx, req.ID, mapped)
	}

	log := m.logger.Debug()
	if mapped != nil {
		log = m.logger.Warn().Err(mapped)
	}
	log.Str("func", "syncManager.replay").
		Str("id", req.ID).
		Str("outcome", outcome).
		Msg("request settled")

	if settleErr != nil {
		m.logger.Err(settleErr).
			Str("func", "syncManager.replay").
			Str("id", req.ID).
			Msg("failed to settle request")
	}
	m.metrics.RecordSettled(ctx, outcome)

	m.mu.Lock()
	if mapped == nil {
		m.progress.Synced++
	} else {
		m.progress.Failed++
	}
	if done := m.progress.Synced + m.progress.Failed; done > m.progress.Total {
		m.progress.Total = done
	}
	m.progress.UpdatedAt = m.now()
	snapshot := m.progress
	m.mu.Unlock()

	m.emit(models.SyncEvent{Type: models.EventProgress, Progress: snapshot})
	return mapped != nil || settleErr != nil
}

func (m *syncManager) finish(ctx context.Context, started time.Time, runErr error, stopped bool) (models.SyncResult, error) {
	completed := m.now()

	m.mu.Lock()
	p := &m.progress
	if runErr != nil || stopped {
		p.Skipped = max(p.Total-p.Synced-p.Failed, 0)
	}
	switch {
	case runErr != nil:
		p.Status = models.SyncError
	case stopped:
		p.Status = models.SyncPaused
	default:
		p.Status = models.SyncComplete
	}
	p.UpdatedAt = completed
	p.CompletedAt = &completed
	snapshot := *p
	m.mu.Unlock()

	result := models.SyncResult{
		Success:  runErr == nil && snapshot.Failed == 0,
		Synced:   snapshot.Synced,
		Failed:   snapshot.Failed,
		Skipped:  snapshot.Skipped,
		Duration: completed.Sub(started),
	}

	statsCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), settleTimeout)
	defer cancel()
	m.metrics.RecordRun(statsCtx, result.Duration, string(snapshot.Status))
	if stats, err := m.queue.GetStats(statsCtx); err == nil {
		m.metrics.RecordQueueDepth(statsCtx, int64(stats.TotalRequests))
	}

	if runErr != nil {
		result.Error = runErr.Error()
		m.logger.Err(runErr).Str("func", "syncManager.finish").Msg("sync run failed")
		m.emit(models.SyncEvent{Type: models.EventError, Progress: snapshot, Result: &result, Err: runErr})
		return result, runErr
	}

	m.logger.Info().
		Str("func", "syncManager.finish").
		Str("status", string(snapshot.Status)).
		Int("synced", result.Synced).
		Int("failed", result.Failed).
		Int("skipped", result.Skipped).
		Dur("duration", result.Duration).
		Msg("sync finished")
	m.emit(models.SyncEvent{Type: models.EventCompleted, Progress: snapshot, Result: &result})
	return result, nil
}

func (m *syncManager) shouldStop() bool {
	m.mu.Lock()
	paused := m.manualPause || m.autoPause
	m.mu.Unlock()
	return paused || !m.network.IsOnline()
}

func (m *syncManager) Pause() {
	m.mu.Lock()
	if m.manualPause {
		m.mu.Unlock()
		return
	}
	m.manualPause = true
	if !m.syncing {
		m.progress.Status = models.SyncPaused
	}
	snapshot := m.progress
	m.mu.Unlock()

	m.logger.Info().Str("func", "syncManager.Pause").Msg("sync paused")
	m.emit(models.SyncEvent{Type: models.EventPaused, Progress: snapshot})
}

func (m *syncManager) Resume() {
	m.mu.Lock()
	if !m.manualPause {
		m.mu.Unlock()
		return
	}
	m.manualPause = false
	if !m.syncing && m.progress.Status == models.SyncPaused {
		m.progress.Status = models.SyncIdle
	}
	snapshot := m.progress
	m.mu.Unlock()

	m.logger.Info().Str("func", "syncManager.Resume").Msg("sync resumed")
	m.emit(models.SyncEvent{Type: models.EventResumed, Progress: snapshot})

	if m.network.IsOnline() {
		m.triggerInBackground("resume")
	}
}

func (m *syncManager) onNetworkChange(status models.NetworkStatus) {
	m.mu.Lock()
	switch status {
	case models.NetworkOffline:
		if m.autoPause {
			m.mu.Unlock()
			return
		}
		m.autoPause = true
		snapshot := m.progress
		manual := m.manualPause
		m.mu.Unlock()

		m.logger.Info().Str("func", "syncManager.onNetworkChange").Msg("network offline, sync paused")
		if !manual {
			m.emit(models.SyncEvent{Type: models.EventPaused, Progress: snapshot})
		}
	case models.NetworkOnline:
		m.autoPause = false
		manual := m.manualPause
		snapshot := m.progress
		m.mu.Unlock()

		if manual {
			m.logger.Info().Str("func", "syncManager.onNetworkChange").Msg("network online, sync stays paused")
			return
		}
		m.logger.Info().Str("func", "syncManager.onNetworkChange").Msg("network online, starting sync")
		m.emit(models.SyncEvent{Type: models.EventResumed, Progress: snapshot})
		m.triggerInBackground("online")
	default:
		m.mu.Unlock()
	}
}

func (m *syncManager) triggerInBackground(reason string) {
	m.mu.Lock()
	ctx := m.baseCtx
	m.mu.Unlock()

	m.wg.Go(func() {
		_, err := m.TriggerSync(ctx)
		switch {
		case err == nil,
			errors.Is(err, ErrSyncInProgress),
			errors.Is(err, ErrSyncPaused),
			errors.Is(err, ErrOffline):
		default:
			m.logger.Err(err).
				Str("func", "syncManager.triggerInBackground").
				Str("reason", reason).
				Msg("background sync failed")
		}
	})
}

func (m *syncManager) GetProgress() models.SyncProgress {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.progress
}

func (m *syncManager) GetStats(ctx context.Context) (models.QueueStats, error) {
	return m.queue.GetStats(ctx)
}

func (m *syncManager) IsSyncing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.syncing
}

func (m *syncManager) IsPaused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.manualPause || m.autoPause
}

func (m *syncManager) AddListener(event models.SyncEventType, fn func(models.SyncEvent)) int {
	m.listenersMu.Lock()
	defer m.listenersMu.Unlock()

	m.nextID++
	if m.listeners[event] == nil {
		m.listeners[event] = make(map[int]func(models.SyncEvent))
	}
	m.listeners[event][m.nextID] = fn
	return m.nextID
}

func (m *syncManager) RemoveListener(event models.SyncEventType, id int) {
	m.listenersMu.Lock()
	defer m.listenersMu.Unlock()
	delete(m.listeners[event], id)
}

func (m *syncManager) emit(ev models.SyncEvent) {
	m.listenersMu.Lock()
	fns := make([]func(models.SyncEvent), 0, len(m.listeners[ev.Type]))
	for _, fn := range m.listeners[ev.Type] {
		fns = append(fns, fn)
	}
	m.listenersMu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
