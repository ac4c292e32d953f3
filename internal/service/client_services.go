package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/internal/telemetry"
)

// ClientServices groups the service layer of one context.
type ClientServices struct {
	Queue       RequestQueue
	Coordinator TokenCoordinator
	SyncManager SyncManager
	SyncJob     ClientSyncJob
}

// ClientDependencies are the collaborators the service layer is built from.
// Storages may be nil when the database cannot be opened; the queue then
// degrades to no-ops and the lease is enforced in-process only.
type ClientDependencies struct {
	Storages    *store.ClientStorages
	Broadcaster adapter.Broadcaster
	Executor    adapter.RequestExecutor
	Network     adapter.NetworkObserver
	Metrics     *telemetry.SyncMetrics
}

// NewClientServices wires the queue, the token coordinator and the sync
// manager. The executor, when it needs a bearer token, should read it from
// the returned Coordinator.
func NewClientServices(ctx context.Context, deps ClientDependencies, cfg config.ClientSync, logger *logger.Logger) (*ClientServices, error) {
	var (
		queueRepo store.RequestQueueRepository
		kv        store.KVRepository
		locks     store.LockRepository
	)
	if deps.Storages != nil {
		queueRepo = deps.Storages.Queue
		kv = deps.Storages.KV
		locks = deps.Storages.Locks
	}

	coordinator, err := NewTokenCoordinator(ctx, deps.Broadcaster, kv, locks, logger)
	if err != nil {
		return nil, fmt.Errorf("create token coordinator: %w", err)
	}

	queue := NewRequestQueue(queueRepo, logger)
	syncManager := NewSyncManager(queue, deps.Executor, deps.Network, deps.Metrics, cfg, logger)

	return &ClientServices{
		Queue:       queue,
		Coordinator: coordinator,
		SyncManager: syncManager,
		SyncJob:     NewClientSyncJob(syncManager, logger),
	}, nil
}
