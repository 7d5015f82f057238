// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// statusErrors maps cloud API status codes to the package sentinels so
// callers can branch with errors.Is instead of inspecting responses.
var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError converts a non-2xx cloud response into a wrapped sentinel,
// carrying the trimmed response body as detail.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	detail := strings.TrimSpace(string(resp.Body()))
	if detail == "" {
		detail = http.StatusText(code)
	}

	if sentinel, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}

	return fmt.Errorf("cloud api status %d: %s", code, detail)
}
