// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

package service

import "errors"

var (
	// ErrUnknownKey marks a write to a key outside the registry in
	// models/keys.go.
	ErrUnknownKey = errors.New("unknown local storage key")

	// ErrNoCloudData marks a restore attempt for a user with no data
	// record in the cloud.
	ErrNoCloudData = errors.New("no cloud data to restore")

	// ErrEngineClosed marks a call on an engine that was already closed.
	ErrEngineClosed = errors.New("sync engine closed")
)
