// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncStatus is the state of the sync manager.
type SyncStatus string

const (
	SyncIdle     SyncStatus = "idle"
	SyncSyncing  SyncStatus = "syncing"
	SyncPaused   SyncStatus = "paused"
	SyncError    SyncStatus = "error"
	SyncComplete SyncStatus = "complete"
)

// SyncProgress is the per-run progress record. It is recomputed on every
// settled request and reset at the start of each run.
type SyncProgress struct {
	Total       int        `json:"total"`
	Synced      int        `json:"synced"`
	Failed      int        `json:"failed"`
	Skipped     int        `json:"skipped"`
	Status      SyncStatus `json:"status"`
	StartedAt   time.Time  `json:"started_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Percent returns (synced+failed)/total*100, or 0 for an empty run.
func (p SyncProgress) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	pct := float64(p.Synced+p.Failed) / float64(p.Total) * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

// SyncResult is returned when a run settles.
type SyncResult struct {
	Success  bool          `json:"success"`
	Synced   int           `json:"synced"`
	Failed   int           `json:"failed"`
	Skipped  int           `json:"skipped"`
	Duration time.Duration `json:"duration"`
	Error    string        `json:"error,omitempty"`
}

// SyncEventType names the events emitted by the sync manager.
type SyncEventType string

const (
	EventStarted   SyncEventType = "started"
	EventProgress  SyncEventType = "progress"
	EventCompleted SyncEventType = "completed"
	EventError     SyncEventType = "error"
	EventPaused    SyncEventType = "paused"
	EventResumed   SyncEventType = "resumed"
)

// SyncEvent is delivered to sync manager listeners.
type SyncEvent struct {
	Type     SyncEventType
	Progress SyncProgress
	Result   *SyncResult
	Err      error
}

// NetworkStatus is a connectivity transition.
type NetworkStatus string

const (
	NetworkOnline  NetworkStatus = "online"
	NetworkOffline NetworkStatus = "offline"
)

// SyncProgressResponse is returned by the local control API.
type SyncProgressResponse struct {
	Progress SyncProgress `json:"progress"`
	Percent  float64      `json:"percent"`
	Syncing  bool         `json:"syncing"`
	Paused   bool         `json:"paused"`
}
