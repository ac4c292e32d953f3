// Package server runs the local control API.
//
// It owns the HTTP listener lifecycle: startup, serving until the context is
// cancelled, and graceful shutdown with a bounded drain period.
package server
