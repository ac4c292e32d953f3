package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

type tokenRefreshWorker struct {
	coordinator TokenRefresher
	auth        adapter.AuthAdapter
	interval    time.Duration
	skew        time.Duration
	logger      *logger.Logger
}

// NewTokenRefreshWorker returns a worker that refreshes the shared
// credential pair through auth when it is about to expire. Several contexts
// may run it at once; the coordinator lets only one of them call auth.
func NewTokenRefreshWorker(coordinator TokenRefresher, auth adapter.AuthAdapter, interval, skew time.Duration, logger *logger.Logger) Worker {
	return &tokenRefreshWorker{
		coordinator: coordinator,
		auth:        auth,
		interval:    interval,
		skew:        skew,
		logger:      logger.WithComponent("token-refresh-worker"),
	}
}

func (w *tokenRefreshWorker) Run(ctx context.Context) {
	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			w.tick(ctx)
		}
	}
}

func (w *tokenRefreshWorker) tick(ctx context.Context) {
	if !w.coordinator.NeedsRefresh(w.skew) {
		return
	}

	refreshed, err := w.coordinator.RefreshWith(ctx, w.auth.Refresh)
	if err != nil {
		w.logger.Err(err).Str("func", "tokenRefreshWorker.tick").Msg("token refresh failed")
		return
	}
	if refreshed {
		w.logger.Info().Str("func", "tokenRefreshWorker.tick").Msg("token refreshed")
	}
}
