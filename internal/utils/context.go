// Package utils provides general-purpose helpers shared by the adapters,
// services and handlers: context keys, id generation, JWT inspection, JSON
// response writing and HTTP client construction.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// QueuedRequestIDCtxKey carries the id of the queued request being replayed.
// The HTTP executor forwards it as an idempotency key so that a server can
// discard duplicates produced by at-least-once delivery.
var QueuedRequestIDCtxKey = contextKey("queuedRequestID")

// WithQueuedRequestID returns a copy of ctx carrying id.
func WithQueuedRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, QueuedRequestIDCtxKey, id)
}

// GetQueuedRequestIDFromContext retrieves the queued request id.
//
// Returns ok == false when the value is missing, empty or has an unexpected
// type.
func GetQueuedRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(QueuedRequestIDCtxKey).(string)
	return id, ok && id != ""
}
