// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG":                     "/path/to/config.json",
		"APP_VERSION":                "1.4.0",
		"STORAGE_DB_DATABASE_URI":    "/var/lib/keeper/tabs.db",
		"STORAGE_QUEUE_MAX_REQUESTS": "500",
		"ADAPTER_ADDRESS":            "https://api.example.com",
		"ADAPTER_REQUEST_TIMEOUT":    "20s",
		"ADAPTER_HEALTH_PATH":        "/healthz",
		"ADAPTER_REFRESH_PATH":       "/oauth/refresh",
		"BROADCAST_REDIS_URL":        "redis://localhost:6379/1",
		"BROADCAST_CHANNEL":          "tabs",
		"BROADCAST_POLL_INTERVAL":    "2s",
		"SYNC_BATCH_SIZE":            "3",
		"SYNC_REQUEST_TIMEOUT":       "1m",
		"SYNC_RUN_TIMEOUT":           "5m",
		"WORKERS_SYNC_INTERVAL":      "30s",
		"WORKERS_PROBE_INTERVAL":     "5s",
		"WORKERS_REFRESH_INTERVAL":   "10s",
		"WORKERS_REFRESH_SKEW":       "2m",
		"SERVER_ADDRESS":             "localhost:7070",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.4.0", cfg.App.Version)
	assert.Equal(t, "/var/lib/keeper/tabs.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 500, cfg.Storage.Queue.MaxRequests)
	assert.Equal(t, "https://api.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/healthz", cfg.Adapter.HealthPath)
	assert.Equal(t, "/oauth/refresh", cfg.Adapter.RefreshPath)
	assert.Equal(t, "redis://localhost:6379/1", cfg.Broadcast.RedisURL)
	assert.Equal(t, "tabs", cfg.Broadcast.Channel)
	assert.Equal(t, 2*time.Second, cfg.Broadcast.PollInterval)
	assert.Equal(t, 3, cfg.Sync.BatchSize)
	assert.Equal(t, time.Minute, cfg.Sync.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Sync.RunTimeout)
	assert.Equal(t, 30*time.Second, cfg.Workers.SyncInterval)
	assert.Equal(t, 5*time.Second, cfg.Workers.ProbeInterval)
	assert.Equal(t, 10*time.Second, cfg.Workers.RefreshInterval)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshSkew)
	assert.Equal(t, "localhost:7070", cfg.Server.HTTPAddress)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SYNC_REQUEST_TIMEOUT", "invalid_duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidInt(t *testing.T) {
	t.Setenv("SYNC_BATCH_SIZE", "three")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
}
