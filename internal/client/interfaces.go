// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

package client

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// RestoreConfirmer asks the user whether the local store should be replaced
// with the cloud copy. It is only consulted on a first run where the device
// is empty and the cloud holds data.
type RestoreConfirmer func() bool
