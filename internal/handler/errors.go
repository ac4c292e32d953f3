// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the control API
// address is empty. Callers treat it as "control API disabled".
var errNoHandlersAreCreated = errors.New("no handlers are created")

// IsDisabled reports whether err means that no handler was configured.
func IsDisabled(err error) bool {
	return errors.Is(err, errNoHandlersAreCreated)
}
