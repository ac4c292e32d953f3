// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// SyncMessageType enumerates the events exchanged between contexts.
type SyncMessageType string

const (
	MessageTokenUpdate     SyncMessageType = "token_update"
	MessageRefreshStart    SyncMessageType = "refresh_start"
	MessageRefreshComplete SyncMessageType = "refresh_complete"
	MessageRefreshError    SyncMessageType = "refresh_error"
	MessageSyncRequest     SyncMessageType = "sync_request"
)

// Valid reports whether t is one of the known message types.
func (t SyncMessageType) Valid() bool {
	switch t {
	case MessageTokenUpdate, MessageRefreshStart, MessageRefreshComplete,
		MessageRefreshError, MessageSyncRequest:
		return true
	}
	return false
}

// SyncMessage is a transient cross-context event. It is never persisted past
// delivery except by the polling fallback, which keeps only the latest one.
type SyncMessage struct {
	Type      SyncMessageType `json:"type"`
	OriginID  string          `json:"origin_id"`
	Timestamp int64           `json:"timestamp"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// RefreshErrorPayload is carried by refresh_error messages.
type RefreshErrorPayload struct {
	Error string `json:"error"`
}

// TokenPayload decodes the message payload as a [TokenState]. It returns
// false when the payload is empty or malformed.
func (m SyncMessage) TokenPayload() (TokenState, bool) {
	if len(m.Payload) == 0 {
		return TokenState{}, false
	}
	var st TokenState
	if err := json.Unmarshal(m.Payload, &st); err != nil {
		return TokenState{}, false
	}
	return st, true
}
