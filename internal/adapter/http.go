// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/mlezhnev/habitsync/internal/config"
	"github.com/mlezhnev/habitsync/internal/logger"
	"github.com/mlezhnev/habitsync/models"
)

const (
	routeSyncData    = "/api/sync/data"
	routeSyncSetting = "/api/sync/settings"
	routeEntitlement = "/api/account/entitlement"

	headerDeviceID = "X-Device-ID"
)

type httpCloudAdapter struct {
	client *resty.Client

	token    string
	deviceID string

	logger *logger.Logger
}

// NewHTTPCloudAdapter constructs an HTTP/REST implementation of
// [CloudAdapter]. It normalises and validates the base URL from
// adapterCfg.CloudAddress and configures the underlying resty client with
// the resolved base URL and request timeout. deviceID is attached to every
// request so the cloud side can tell concurrent devices apart in its logs.
//
// Returns an error if adapterCfg.CloudAddress is empty or cannot be parsed
// as a valid URL.
func NewHTTPCloudAdapter(adapterCfg config.ClientAdapter, deviceID string, logger *logger.Logger) (CloudAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.CloudAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter cloud address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpCloudAdapter{client: client, deviceID: deviceID, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [CloudAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpCloudAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [CloudAdapter].
func (h *httpCloudAdapter) Token() string {
	return h.token
}

func (h *httpCloudAdapter) request(ctx context.Context) *resty.Request {
	// ForceContentType makes SetResult decode the body as JSON even when the
	// server answers with a non-JSON Content-Type; a 200 that silently skips
	// unmarshalling would surface as an empty record with a nil error.
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		ForceContentType("application/json").
		SetHeader(headerDeviceID, h.deviceID)
	if h.token != "" {
		req.SetHeader("Authorization", "Bearer "+h.token)
	}
	return req
}

// PullData implements [CloudAdapter]. It GETs the per-user data record from
// GET /api/sync/data. A 404 response is mapped to a wrapped [ErrNotFound],
// which callers treat as "no cloud record yet", not as a failure.
func (h *httpCloudAdapter) PullData(ctx context.Context, userID string) (models.DataRecord, error) {
	var record models.DataRecord

	resp, err := h.request(ctx).
		SetQueryParam("user_id", userID).
		SetResult(&record).
		Get(routeSyncData)
	if err != nil {
		return models.DataRecord{}, fmt.Errorf("pull data request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DataRecord{}, err
	}

	return record, nil
}

// PullSettings implements [CloudAdapter]. Same contract as PullData for the
// settings record.
func (h *httpCloudAdapter) PullSettings(ctx context.Context, userID string) (models.SettingsRecord, error) {
	var record models.SettingsRecord

	resp, err := h.request(ctx).
		SetQueryParam("user_id", userID).
		SetResult(&record).
		Get(routeSyncSetting)
	if err != nil {
		return models.SettingsRecord{}, fmt.Errorf("pull settings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SettingsRecord{}, err
	}

	return record, nil
}

// PushData implements [CloudAdapter]. It PUTs the full data record to
// PUT /api/sync/data; the cloud store upserts by record.UserID, so repeating
// the same push is harmless.
func (h *httpCloudAdapter) PushData(ctx context.Context, record models.DataRecord) error {
	resp, err := h.request(ctx).
		SetBody(record).
		Put(routeSyncData)
	if err != nil {
		return fmt.Errorf("push data request: %w", err)
	}

	return mapHTTPError(resp)
}

// PushSettings implements [CloudAdapter]. Upserts the settings record.
func (h *httpCloudAdapter) PushSettings(ctx context.Context, record models.SettingsRecord) error {
	resp, err := h.request(ctx).
		SetBody(record).
		Put(routeSyncSetting)
	if err != nil {
		return fmt.Errorf("push settings request: %w", err)
	}

	return mapHTTPError(resp)
}

// entitlementResponse is the subscription service's answer shape.
type entitlementResponse struct {
	Entitled bool `json:"entitled"`
}

// CheckEntitlement implements [CloudAdapter]. Anything other than a 2xx
// response with an explicit `"entitled": true` body reports false.
func (h *httpCloudAdapter) CheckEntitlement(ctx context.Context, userID string) (bool, error) {
	var result entitlementResponse

	resp, err := h.request(ctx).
		SetQueryParam("user_id", userID).
		SetResult(&result).
		Get(routeEntitlement)
	if err != nil {
		return false, fmt.Errorf("entitlement request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return result.Entitled, nil
}
