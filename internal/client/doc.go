// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

// Package client implements the client application runtime.
//
// It wires the local store, cloud adapter, and background synchronization
// into a single process lifecycle: first-run restore, an initial full sync,
// the periodic sync job, and a final flush on shutdown.
package client
