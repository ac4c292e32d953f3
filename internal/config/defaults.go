// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied when no source sets a value.
const (
	DefaultDSN              = "sync-keeper.db"
	DefaultRequestTimeout   = 15 * time.Second
	DefaultHealthPath       = "/api/health"
	DefaultRefreshPath      = "/api/auth/refresh"
	DefaultChannel          = "sync-keeper:tabs"
	DefaultPollInterval     = time.Second
	DefaultBatchSize        = 3
	DefaultSyncRequestLimit = 60 * time.Second
	DefaultRunTimeout       = 10 * time.Minute
	DefaultSyncInterval     = 30 * time.Second
	DefaultProbeInterval    = 5 * time.Second
	DefaultRefreshInterval  = 15 * time.Second
	DefaultRefreshSkew      = time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
			HealthPath:     DefaultHealthPath,
			RefreshPath:    DefaultRefreshPath,
		},
		Broadcast: Broadcast{
			Channel:      DefaultChannel,
			PollInterval: DefaultPollInterval,
		},
		Sync: Sync{
			BatchSize:      DefaultBatchSize,
			RequestTimeout: DefaultSyncRequestLimit,
			RunTimeout:     DefaultRunTimeout,
		},
		Workers: Workers{
			SyncInterval:    DefaultSyncInterval,
			ProbeInterval:   DefaultProbeInterval,
			RefreshInterval: DefaultRefreshInterval,
			RefreshSkew:     DefaultRefreshSkew,
		},
	}
}
