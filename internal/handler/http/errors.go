// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidRequestID is returned when a path id is not a UUID.
	ErrInvalidRequestID = errors.New("invalid request id")

	// ErrQueueUnavailable is returned when the request could not be queued
	// because durable storage is unavailable.
	ErrQueueUnavailable = errors.New("request queue is unavailable")

	ErrNoAccessToken     = errors.New("no access token provided")
	ErrStaleTokenVersion = errors.New("token version is not newer than the current one")
)
