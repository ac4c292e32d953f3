// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TokenState is the credential pair replicated to every context.
//
// Version is the only ordering key between replicas: an incoming state is
// accepted only when its Version is strictly greater than the local one.
// UpdatedAt is informational and never used for conflict resolution because
// wall clocks of different contexts may drift.
type TokenState struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	Version      int64     `json:"version"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Newer reports whether s should replace current.
func (s TokenState) Newer(current *TokenState) bool {
	if current == nil {
		return true
	}
	return s.Version > current.Version
}

// ExpiresWithin reports whether the access token expires in less than d
// from now. A zero ExpiresAt is treated as "unknown" and never expires.
func (s TokenState) ExpiresWithin(now time.Time, d time.Duration) bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	return s.ExpiresAt.Sub(now) < d
}

// TokenStatus is the secret-free projection of a [TokenState] exposed over
// the local control API.
type TokenStatus struct {
	Present   bool      `json:"present"`
	Version   int64     `json:"version"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	TabID     string    `json:"tab_id"`
	Locked    bool      `json:"refresh_locked"`
}

// RefreshLock is the durable lease record guarding the refresh call.
type RefreshLock struct {
	HolderID     string `json:"holder_id"`
	AcquiredAtMs int64  `json:"acquired_at_ms"`
}

// Stale reports whether the lease is older than ttl at now.
func (l RefreshLock) Stale(now time.Time, ttl time.Duration) bool {
	return now.UnixMilli()-l.AcquiredAtMs > ttl.Milliseconds()
}

// TokenUpdateRequest hands a credential pair obtained outside the agent (for
// example after an interactive login) to the coordinator. The access token may
// instead be sent as a bearer token. Version 0 means "next version".
type TokenUpdateRequest struct {
	AccessToken  string     `json:"access_token,omitempty"`
	RefreshToken string     `json:"refresh_token"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	Version      int64      `json:"version,omitempty"`
}
