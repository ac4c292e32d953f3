package service

import (
	"time"

	"github.com/cenkalti/backoff/v5"
)

const (
	baseRetryDelay = time.Second
	maxRetryDelay  = 300 * time.Second
)

// retryDelay returns the wait before the next attempt after attempts
// failures: 1s, 2s, 4s and so on, capped at 300s. No jitter is applied.
func retryDelay(attempts int) time.Duration {
	if attempts <= 0 {
		return 0
	}

	b := &backoff.ExponentialBackOff{
		InitialInterval:     baseRetryDelay,
		RandomizationFactor: 0,
		Multiplier:          2,
		MaxInterval:         maxRetryDelay,
	}
	b.Reset()

	// the interval saturates long before 32 doublings
	attempts = min(attempts, 32)

	var d time.Duration
	for range attempts {
		d = b.NextBackOff()
	}
	return d
}
