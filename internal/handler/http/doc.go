// Package http implements the local control API of the sync agent.
//
// It exposes route wiring, request handlers, and middleware. Operators and
// the embedding application use it to trigger or pause queue drains, inspect
// progress and queue statistics, enqueue requests, hand over credentials and
// read the secret-free token status. Request tracing and access logging are
// handled here before requests are delegated to the service layer.
package http
