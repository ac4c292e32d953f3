// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer abstractions used by the
// service layer.
//
// [Broadcaster] carries coordination messages between contexts, with a
// Redis pub/sub implementation, an in-process [MemoryHub] and a polling
// fallback over the shared key-value store. [RequestExecutor] replays queued
// requests over HTTP, [AuthAdapter] performs the token refresh call and
// [NetworkObserver] reports connectivity.
//
// HTTP failures are returned as [*StatusError] values wrapping the sentinel
// errors in errors.go, so callers can use [errors.Is] for the category and
// StatusCode for the exact status.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-sync-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Broadcaster delivers [models.SyncMessage] values to every subscribed
// context, including the publisher itself. Receivers filter their own
// messages by OriginID.
type Broadcaster interface {
	Publish(ctx context.Context, msg models.SyncMessage) error

	// Subscribe registers handler and returns a function that removes it.
	// Handlers for one subscription are called sequentially, in publish
	// order, on a goroutine owned by the broadcaster.
	Subscribe(ctx context.Context, handler func(models.SyncMessage)) (unsubscribe func(), err error)

	Close() error
}

// RequestExecutor performs a single queued request. A nil error means the
// request was accepted by the remote side.
type RequestExecutor interface {
	Execute(ctx context.Context, req models.QueuedRequest) error
}

// AuthAdapter talks to the remote authentication service.
type AuthAdapter interface {
	// Refresh exchanges refreshToken for a new credential pair. The returned
	// state has no Version; the coordinator assigns one.
	Refresh(ctx context.Context, refreshToken string) (models.TokenState, error)
}

// NetworkObserver reports connectivity and notifies listeners on transitions.
type NetworkObserver interface {
	IsOnline() bool
	AddListener(fn func(models.NetworkStatus)) (remove func())
}

// TokenSource supplies the current access token for outbound requests.
type TokenSource interface {
	GetToken() *models.TokenState
}
