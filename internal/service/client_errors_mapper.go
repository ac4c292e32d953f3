// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"net/http"
)

// statusCoder is implemented by transport errors that carry an HTTP status.
type statusCoder interface {
	StatusCode() int
}

// mapExecuteError classifies a failed replay. A 4xx status is terminal and
// becomes [ErrRejectedRequest]; everything else, including timeouts and
// 5xx, is retryable and becomes [ErrTransportFailure].
func mapExecuteError(err error) error {
	if err == nil {
		return nil
	}

	var sc statusCoder
	if errors.As(err, &sc) {
		code := sc.StatusCode()
		if code >= http.StatusBadRequest && code < http.StatusInternalServerError {
			return fmt.Errorf("%w: %w", ErrRejectedRequest, err)
		}
	}

	return fmt.Errorf("%w: %w", ErrTransportFailure, err)
}
