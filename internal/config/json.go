// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON decoding, using
// [Duration] so durations may be written as "15s".
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		Headless bool   `json:"headless"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		Queue struct {
			MaxRequests int `json:"max_requests"`
		} `json:"queue,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		HealthPath     string   `json:"health_path"`
		RefreshPath    string   `json:"refresh_path"`
	} `json:"adapter,omitempty"`

	Broadcast struct {
		RedisURL     string   `json:"redis_url"`
		Channel      string   `json:"channel"`
		PollInterval Duration `json:"poll_interval"`
	} `json:"broadcast,omitempty"`

	Sync struct {
		BatchSize      int      `json:"batch_size"`
		RequestTimeout Duration `json:"request_timeout"`
		RunTimeout     Duration `json:"run_timeout"`
	} `json:"sync,omitempty"`

	Workers struct {
		SyncInterval    Duration `json:"sync_interval"`
		ProbeInterval   Duration `json:"probe_interval"`
		RefreshInterval Duration `json:"refresh_interval"`
		RefreshSkew     Duration `json:"refresh_skew"`
	} `json:"workers,omitempty"`

	Server struct {
		HTTPAddress string `json:"http_address"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			Headless: jsonCfg.App.Headless,
		},
		Storage: Storage{
			DB:    DB{DSN: jsonCfg.Storage.DB.DSN},
			Queue: Queue{MaxRequests: jsonCfg.Storage.Queue.MaxRequests},
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			HealthPath:     jsonCfg.Adapter.HealthPath,
			RefreshPath:    jsonCfg.Adapter.RefreshPath,
		},
		Broadcast: Broadcast{
			RedisURL:     jsonCfg.Broadcast.RedisURL,
			Channel:      jsonCfg.Broadcast.Channel,
			PollInterval: time.Duration(jsonCfg.Broadcast.PollInterval),
		},
		Sync: Sync{
			BatchSize:      jsonCfg.Sync.BatchSize,
			RequestTimeout: time.Duration(jsonCfg.Sync.RequestTimeout),
			RunTimeout:     time.Duration(jsonCfg.Sync.RunTimeout),
		},
		Workers: Workers{
			SyncInterval:    time.Duration(jsonCfg.Workers.SyncInterval),
			ProbeInterval:   time.Duration(jsonCfg.Workers.ProbeInterval),
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
			RefreshSkew:     time.Duration(jsonCfg.Workers.RefreshSkew),
		},
		Server: Server{
			HTTPAddress: jsonCfg.Server.HTTPAddress,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
