// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging environment variables, command-line flags, an optional JSON file
// and defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the SQLite location shared by every context and the
	// request queue capacity.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds settings of the outbound HTTP transport used to replay
	// queued requests, probe connectivity and refresh credentials.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Broadcast holds the cross-context messaging settings.
	Broadcast Broadcast `envPrefix:"BROADCAST_"`

	// Sync holds drain tuning for the sync manager.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds intervals of background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// Server holds the local control API listen address.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running agent.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Headless disables the terminal monitor.
	// Env: APP_HEADLESS
	Headless bool `env:"HEADLESS"`
}

// Storage groups persistence settings.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`

	// Queue holds request queue limits.
	Queue Queue `envPrefix:"QUEUE_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path or URI. Every context of the same
	// application must point at the same file.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Queue holds request queue limits.
type Queue struct {
	// MaxRequests is the number of records the queue may hold before an
	// enqueue is treated as a quota failure. Zero means unlimited.
	// Env: STORAGE_QUEUE_MAX_REQUESTS
	MaxRequests int `env:"MAX_REQUESTS"`
}

// Adapter holds configuration for the outbound HTTP transport.
type Adapter struct {
	// HTTPAddress is the base URL of the remote API (e.g. "api.example.com:443"
	// or "https://api.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds connectivity checks and token refresh calls.
	// Replays use ClientSync.RequestTimeout instead.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// HealthPath is probed by the network observer.
	// Env: ADAPTER_HEALTH_PATH
	HealthPath string `env:"HEALTH_PATH"`

	// RefreshPath is the credential refresh endpoint.
	// Env: ADAPTER_REFRESH_PATH
	RefreshPath string `env:"REFRESH_PATH"`
}

// Broadcast holds cross-context messaging settings.
type Broadcast struct {
	// RedisURL enables the live pub/sub transport when non-empty
	// (e.g. "redis://localhost:6379/0").
	// Env: BROADCAST_REDIS_URL
	RedisURL string `env:"REDIS_URL"`

	// Channel is the pub/sub channel name.
	// Env: BROADCAST_CHANNEL
	Channel string `env:"CHANNEL"`

	// PollInterval is the polling period of the durable fallback transport.
	// Env: BROADCAST_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// Sync holds drain tuning.
type Sync struct {
	// BatchSize is the number of due records fetched and executed together.
	// Env: SYNC_BATCH_SIZE
	BatchSize int `env:"BATCH_SIZE"`

	// RequestTimeout bounds a single replayed request.
	// Env: SYNC_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RunTimeout bounds a whole drain run.
	// Env: SYNC_RUN_TIMEOUT
	RunTimeout time.Duration `env:"RUN_TIMEOUT"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// SyncInterval is the period of the retry sweep that drains records
	// whose backoff elapsed without a connectivity transition.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// ProbeInterval is the period of the connectivity probe.
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// RefreshInterval is how often the access token expiry is checked.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// RefreshSkew is how long before expiry a refresh is attempted.
	// Env: WORKERS_REFRESH_SKEW
	RefreshSkew time.Duration `env:"REFRESH_SKEW"`
}

// Server holds the local control API settings.
type Server struct {
	// HTTPAddress is the listen address of the control API. Empty disables it.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// GetStructuredConfig loads and merges the configuration from all sources.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
