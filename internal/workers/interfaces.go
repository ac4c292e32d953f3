// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block until ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// NetworkChecker probes connectivity once and publishes the result to its
// listeners.
type NetworkChecker interface {
	Check(ctx context.Context) models.NetworkStatus
}

// TokenRefresher is the part of the token coordinator used by the refresh
// worker.
type TokenRefresher interface {
	NeedsRefresh(skew time.Duration) bool
	RefreshWith(ctx context.Context, fn service.RefreshFunc) (bool, error)
}
