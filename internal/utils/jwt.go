// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired marks a bearer token whose exp claim is in the past.
	ErrTokenExpired = errors.New("auth token expired")
	// ErrTokenInvalid marks a bearer token that cannot be parsed or is
	// missing required claims.
	ErrTokenInvalid = errors.New("auth token invalid")
)

// ExtractUserID parses the bearer token and returns its subject claim, the
// user id the cloud store and the entitlement service are keyed by.
//
// The signature is NOT verified here: the client does not hold the signing
// key, and the server re-validates the token on every request. The local
// parse only establishes which user's records to address and whether the
// token has already expired.
func ExtractUserID(tokenString string) (string, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", fmt.Errorf("%w: empty token", ErrTokenInvalid)
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return "", fmt.Errorf("%w: bad exp claim: %v", ErrTokenInvalid, err)
	}
	if exp != nil && exp.Before(time.Now()) {
		return "", ErrTokenExpired
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", fmt.Errorf("%w: missing subject claim", ErrTokenInvalid)
	}

	return sub, nil
}
