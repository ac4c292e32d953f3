// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync agent runtime.
//
// It wires storage, the cross-context broadcast, client services, background
// workers, the local control API and the terminal monitor into a single
// process lifecycle with ordered shutdown.
package client
