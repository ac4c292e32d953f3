// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line arguments into a partial config.
//
// Flags:
//
//	-a control API address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-server remote API base address
//	-request-timeout outbound request timeout (e.g. "15s")
//	-redis redis URL enabling the live broadcast transport
//	-poll-interval fallback broadcast polling interval
//	-batch-size drain batch size
//	-max-requests queue capacity
//	-sync-interval retry sweep interval
//	-probe-interval connectivity probe interval
//	-headless run without the terminal monitor
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("sync-keeper", flag.ContinueOnError)

	var controlAddress NetAddress
	var databaseDSN, jsonConfigPath, serverAddress, redisURL string
	var requestTimeout, pollInterval, syncInterval, probeInterval time.Duration
	var batchSize, maxRequests int
	var headless bool

	fs.Var(&controlAddress, "a", "Control API address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&serverAddress, "server", "", "Remote API address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&redisURL, "redis", "", "Redis URL for live broadcast")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Fallback broadcast poll interval")
	fs.IntVar(&batchSize, "batch-size", 0, "Drain batch size")
	fs.IntVar(&maxRequests, "max-requests", 0, "Queue capacity")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Retry sweep interval")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe interval")
	fs.BoolVar(&headless, "headless", false, "Run without the terminal monitor")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{Headless: headless},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Queue: Queue{MaxRequests: maxRequests},
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Broadcast: Broadcast{
			RedisURL:     redisURL,
			PollInterval: pollInterval,
		},
		Sync: Sync{
			BatchSize: batchSize,
		},
		Workers: Workers{
			SyncInterval:  syncInterval,
			ProbeInterval: probeInterval,
		},
		Server: Server{
			HTTPAddress: controlAddress.String(),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost".
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
