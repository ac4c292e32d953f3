// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Priority of a queued request. Lower rank drains first.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// Priorities lists all priorities in drain order.
var Priorities = []Priority{PriorityHigh, PriorityNormal, PriorityLow}

// ParsePriority converts s into a Priority. An empty string yields
// [PriorityNormal].
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityHigh, PriorityNormal, PriorityLow:
		return Priority(s), nil
	case "":
		return PriorityNormal, nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

// Rank is the sort key persisted alongside the priority.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityLow:
		return 2
	default:
		return 1
	}
}

// MaxRetries is the retry budget for the priority.
func (p Priority) MaxRetries() int {
	switch p {
	case PriorityHigh:
		return 10
	case PriorityLow:
		return 3
	default:
		return 7
	}
}

// RequestData is the opaque description of a mutating call. The queue never
// interprets it; the executor does.
type RequestData struct {
	Method   string            `json:"method"`
	Endpoint string            `json:"endpoint"`
	Headers  map[string]string `json:"headers,omitempty"`
	Body     json.RawMessage   `json:"body,omitempty"`
}

// QueuedRequest is a persisted pending request with retry metadata.
type QueuedRequest struct {
	ID            string            `json:"id"`
	RequestData   RequestData       `json:"request_data"`
	Priority      Priority          `json:"priority"`
	RetryAttempts int               `json:"retry_attempts"`
	MaxRetries    int               `json:"max_retries"`
	CreatedAt     time.Time         `json:"created_at"`
	LastRetryAt   *time.Time        `json:"last_retry_at,omitempty"`
	NextRetryAt   time.Time         `json:"next_retry_at"`
	Error         string            `json:"error,omitempty"`
	Exhausted     bool              `json:"exhausted"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// QueueStats summarises the queue contents.
type QueueStats struct {
	TotalRequests   int              `json:"total_requests"`
	ByPriority      map[Priority]int `json:"by_priority"`
	FailedRequests  int              `json:"failed_requests"`
	PendingRequests int              `json:"pending_requests"`
	ApproxSizeBytes int64            `json:"approx_size_bytes"`
	OldestRequest   *time.Time       `json:"oldest_request,omitempty"`
	NewestRequest   *time.Time       `json:"newest_request,omitempty"`
}

// EnqueueRequest is the body accepted by the local control API.
type EnqueueRequest struct {
	RequestData RequestData       `json:"request_data"`
	Priority    string            `json:"priority"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// EnqueueResponse is returned by the local control API.
type EnqueueResponse struct {
	ID     string `json:"id"`
	Queued bool   `json:"queued"`
}
