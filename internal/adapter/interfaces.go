// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

package adapter

import (
	"context"

	"github.com/mlezhnev/habitsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cloud_adapter_mock.go -package=mock

// CloudAdapter defines transport-agnostic communication with the cloud
// store. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// The cloud store holds exactly one data record and one settings record per
// user; both push operations are idempotent upserts.
type CloudAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	// An empty token means signed out.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter, or an
	// empty string if none has been set.
	Token() string

	// PullData fetches the per-user data record. Returns a wrapped
	// [ErrNotFound] when the user has no data record in the cloud yet.
	PullData(ctx context.Context, userID string) (models.DataRecord, error)

	// PullSettings fetches the per-user settings record. Returns a wrapped
	// [ErrNotFound] when the user has no settings record yet.
	PullSettings(ctx context.Context, userID string) (models.SettingsRecord, error)

	// PushData upserts the user's data record. Pushing the same record
	// twice leaves the stored state identical to pushing it once.
	PushData(ctx context.Context, record models.DataRecord) error

	// PushSettings upserts the user's settings record with the same
	// idempotency guarantee as PushData.
	PushSettings(ctx context.Context, record models.SettingsRecord) error

	// CheckEntitlement asks the subscription service whether userID may use
	// cloud sync. Only an explicit positive answer reports true; any error
	// is returned to the caller, which is expected to fail closed.
	CheckEntitlement(ctx context.Context, userID string) (bool, error)
}
