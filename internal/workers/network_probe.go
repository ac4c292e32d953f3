package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

type networkProbeWorker struct {
	checker  NetworkChecker
	interval time.Duration
	logger   *logger.Logger
}

// NewNetworkProbeWorker returns a worker that calls checker.Check right away
// and then every interval.
func NewNetworkProbeWorker(checker NetworkChecker, interval time.Duration, logger *logger.Logger) Worker {
	return &networkProbeWorker{
		checker:  checker,
		interval: interval,
		logger:   logger.WithComponent("network-probe-worker"),
	}
}

func (w *networkProbeWorker) Run(ctx context.Context) {
	w.logger.Info().Str("func", "networkProbeWorker.Run").Dur("interval", w.interval).Msg("started")

	w.checker.Check(ctx)

	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Str("func", "networkProbeWorker.Run").Msg("stopped")
			return
		case <-t.C:
			w.checker.Check(ctx)
		}
	}
}
