// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

package config

import "errors"

// ErrConfigValidation marks a configuration that failed validation after all
// layers were merged.
var ErrConfigValidation = errors.New("invalid configuration")
