// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks invariants of the merged [StructuredConfig] that hold for
// every consumer. Group completeness is checked by [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.Queue.MaxRequests < 0 {
		return ErrInvalidStorageConfigs
	}
	if cfg.Sync.BatchSize < 0 {
		return ErrInvalidSyncConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Broadcast.RedisURL == "" && cfg.Broadcast.PollInterval <= 0 {
		return ErrInvalidBroadcastConfigs
	}
	if cfg.Sync.BatchSize <= 0 || cfg.Sync.RequestTimeout <= 0 {
		return ErrInvalidSyncConfigs
	}
	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.ProbeInterval <= 0 || cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}
