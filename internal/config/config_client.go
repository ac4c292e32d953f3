package config

import (
	"fmt"
	"time"
)

// ClientApp holds application-level settings.
type ClientApp struct {
	Version  string
	Headless bool
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite connection string shared by all contexts.
	DSN string
}

// ClientQueue contains request queue limits.
type ClientQueue struct {
	MaxRequests int
}

// ClientStorage groups storage backend settings.
type ClientStorage struct {
	DB    ClientDB
	Queue ClientQueue
}

// ClientAdapter holds network settings used by the outbound transport.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	HealthPath     string
	RefreshPath    string
}

// ClientBroadcast holds cross-context messaging settings.
type ClientBroadcast struct {
	RedisURL     string
	Channel      string
	PollInterval time.Duration
}

// ClientSync holds drain tuning.
type ClientSync struct {
	BatchSize      int
	RequestTimeout time.Duration
	RunTimeout     time.Duration
}

// ClientWorkers contains background worker settings.
type ClientWorkers struct {
	SyncInterval    time.Duration
	ProbeInterval   time.Duration
	RefreshInterval time.Duration
	RefreshSkew     time.Duration
}

// ClientServer holds the local control API settings.
type ClientServer struct {
	HTTPAddress string
}

// ClientConfig is the runtime configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App       ClientApp
	Storage   ClientStorage
	Adapter   ClientAdapter
	Broadcast ClientBroadcast
	Sync      ClientSync
	Workers   ClientWorkers
	Server    ClientServer
}

// GetClientConfig builds and validates the runtime config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{Version: cfg.App.Version, Headless: cfg.App.Headless},
		Storage: ClientStorage{
			DB:    ClientDB{DSN: cfg.Storage.DB.DSN},
			Queue: ClientQueue{MaxRequests: cfg.Storage.Queue.MaxRequests},
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			HealthPath:     cfg.Adapter.HealthPath,
			RefreshPath:    cfg.Adapter.RefreshPath,
		},
		Broadcast: ClientBroadcast{
			RedisURL:     cfg.Broadcast.RedisURL,
			Channel:      cfg.Broadcast.Channel,
			PollInterval: cfg.Broadcast.PollInterval,
		},
		Sync: ClientSync{
			BatchSize:      cfg.Sync.BatchSize,
			RequestTimeout: cfg.Sync.RequestTimeout,
			RunTimeout:     cfg.Sync.RunTimeout,
		},
		Workers: ClientWorkers{
			SyncInterval:    cfg.Workers.SyncInterval,
			ProbeInterval:   cfg.Workers.ProbeInterval,
			RefreshInterval: cfg.Workers.RefreshInterval,
			RefreshSkew:     cfg.Workers.RefreshSkew,
		},
		Server: ClientServer{HTTPAddress: cfg.Server.HTTPAddress},
	}
}
