// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "127.0.0.1:7070",
		"-d", "tabs.db",
		"-config", "/etc/keeper.json",
		"-server", "https://api.example.com",
		"-request-timeout", "10s",
		"-redis", "redis://localhost:6379",
		"-poll-interval", "500ms",
		"-batch-size", "2",
		"-max-requests", "100",
		"-sync-interval", "45s",
		"-probe-interval", "3s",
		"-headless",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:7070", cfg.Server.HTTPAddress)
	assert.Equal(t, "tabs.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/keeper.json", cfg.JSONFilePath)
	assert.Equal(t, "https://api.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "redis://localhost:6379", cfg.Broadcast.RedisURL)
	assert.Equal(t, 500*time.Millisecond, cfg.Broadcast.PollInterval)
	assert.Equal(t, 2, cfg.Sync.BatchSize)
	assert.Equal(t, 100, cfg.Storage.Queue.MaxRequests)
	assert.Equal(t, 45*time.Second, cfg.Workers.SyncInterval)
	assert.Equal(t, 3*time.Second, cfg.Workers.ProbeInterval)
	assert.True(t, cfg.App.Headless)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: "localhost:8080"},
		{name: "ip", input: "10.0.0.1:9000", want: "10.0.0.1:9000"},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:abc", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "bad host", input: "example:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	var a NetAddress
	assert.Equal(t, "", a.String())
}
