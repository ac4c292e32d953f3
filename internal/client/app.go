package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/handler"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/server"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/internal/telemetry"
	"github.com/MKhiriev/go-sync-keeper/internal/tui"
	"github.com/MKhiriev/go-sync-keeper/internal/workers"
	"github.com/MKhiriev/go-sync-keeper/models"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	services    *service.ClientServices
	storages    *store.ClientStorages
	broadcaster adapter.Broadcaster
	meters      *sdkmetric.MeterProvider
	workers     *workers.Workers
	server      server.Server
	ui          *tui.TUI

	syncInterval time.Duration
	logger       *logger.Logger
}

// Options tune how NewApp assembles the runtime.
type Options struct {
	BuildInfo models.AppBuildInfo

	// Headless disables the terminal monitor. It is forced on when stdout is
	// not a terminal.
	Headless bool
}

// NewApp builds every component of the agent. A database that cannot be
// opened is not fatal: the queue degrades to no-ops and the coordinator uses
// the in-process broadcast.
func NewApp(ctx context.Context, cfg *config.ClientConfig, opts Options, log *logger.Logger) (*App, error) {
	app := &App{syncInterval: cfg.Workers.SyncInterval, logger: log}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Str("func", "NewApp").Msg("local storage unavailable, queue disabled")
		storages = nil
	}
	app.storages = storages

	var kv store.KVRepository
	if storages != nil {
		kv = storages.KV
	}
	app.broadcaster, err = adapter.NewBroadcaster(ctx, cfg.Broadcast, kv, log)
	if errors.Is(err, adapter.ErrNoBroadcastTransport) {
		log.Warn().Str("func", "NewApp").Msg("no shared broadcast transport, coordinating in-process only")
		app.broadcaster, err = adapter.NewMemoryHub(), nil
	}
	if err != nil {
		return nil, app.closeOnError(fmt.Errorf("create broadcaster: %w", err))
	}

	var metricsHandler http.Handler
	app.meters, metricsHandler, err = telemetry.NewMeterProvider(opts.BuildInfo.BuildVersion)
	if err != nil {
		return nil, app.closeOnError(fmt.Errorf("create meter provider: %w", err))
	}
	syncMetrics, err := telemetry.NewSyncMetrics(app.meters)
	if err != nil {
		return nil, app.closeOnError(fmt.Errorf("create sync metrics: %w", err))
	}

	probe, err := adapter.NewNetworkProbe(cfg.Adapter, log)
	if err != nil {
		return nil, app.closeOnError(fmt.Errorf("create network probe: %w", err))
	}

	tokens := &coordinatorTokens{}
	executor, err := adapter.NewHTTPExecutor(cfg.Adapter, tokens, log)
	if err != nil {
		return nil, app.closeOnError(fmt.Errorf("create request executor: %w", err))
	}
	auth, err := adapter.NewHTTPAuthAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, app.closeOnError(fmt.Errorf("create auth adapter: %w", err))
	}

	app.services, err = service.NewClientServices(ctx, service.ClientDependencies{
		Storages:    storages,
		Broadcaster: app.broadcaster,
		Executor:    executor,
		Network:     probe,
		Metrics:     syncMetrics,
	}, cfg.Sync, log)
	if err != nil {
		return nil, app.closeOnError(fmt.Errorf("create client services: %w", err))
	}
	tokens.bind(app.services.Coordinator)

	app.workers = workers.NewWorkers(
		workers.NewNetworkProbeWorker(probe, cfg.Workers.ProbeInterval, log),
		workers.NewTokenRefreshWorker(app.services.Coordinator, auth, cfg.Workers.RefreshInterval, cfg.Workers.RefreshSkew, log),
	)

	handlers, err := handler.NewHandlers(app.services, metricsHandler, opts.BuildInfo, cfg.Server, log)
	switch {
	case handler.IsDisabled(err):
		log.Info().Str("func", "NewApp").Msg("control API disabled")
	case err != nil:
		return nil, app.closeOnError(fmt.Errorf("create handlers: %w", err))
	default:
		if app.server, err = server.NewServer(handlers, cfg.Server, log); err != nil {
			return nil, app.closeOnError(fmt.Errorf("create server: %w", err))
		}
	}

	if !opts.Headless && isatty.IsTerminal(os.Stdout.Fd()) {
		if app.ui, err = tui.New(app.services, opts.BuildInfo, log); err != nil {
			return nil, app.closeOnError(fmt.Errorf("create ui: %w", err))
		}
	}

	return app, nil
}

// Run starts the sync manager, the periodic sync job, the workers and the
// control API, then blocks until ctx is done or the monitor is closed.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.services.SyncManager.Start(ctx)
	defer a.services.SyncManager.Stop()

	a.services.SyncJob.Start(ctx, a.syncInterval)
	defer a.services.SyncJob.Stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.workers.Run(gctx)
		return nil
	})

	if a.server != nil {
		g.Go(func() error {
			return a.server.RunServer(gctx)
		})
	}

	g.Go(func() error {
		if a.ui == nil {
			<-gctx.Done()
			return nil
		}
		defer cancel()

		err := a.ui.Run(gctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	})

	a.logger.Info().Str("func", "*App.Run").Str("tab_id", a.services.Coordinator.TabID()).Msg("client started")

	err := g.Wait()
	a.logger.Info().Str("func", "*App.Run").Msg("client stopped")
	return err
}

func (a *App) close() {
	if a.services != nil {
		a.services.Coordinator.Destroy()
		if err := a.services.Queue.Close(); err != nil {
			a.logger.Err(err).Str("func", "*App.close").Msg("error closing queue")
		}
	}

	if a.broadcaster != nil {
		if err := a.broadcaster.Close(); err != nil {
			a.logger.Err(err).Str("func", "*App.close").Msg("error closing broadcaster")
		}
	}

	if a.meters != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.meters.Shutdown(ctx); err != nil {
			a.logger.Err(err).Str("func", "*App.close").Msg("error shutting down meter provider")
		}
	}

	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "*App.close").Msg("error closing storages")
	}
}

func (a *App) closeOnError(err error) error {
	a.close()
	return err
}
