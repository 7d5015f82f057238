// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

// Package adapter provides the transport layer for talking to the habitsync
// cloud store.
//
// The primary abstraction is [CloudAdapter], which decouples the sync engine
// from the wire protocol. The package ships an HTTP/REST implementation
// ([NewHTTPCloudAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] when a user has no cloud record yet).
package adapter
