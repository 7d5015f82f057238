// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

// Package config assembles the habitsync client configuration from multiple
// layers: command-line flags, environment variables, an optional JSON file,
// and built-in defaults. Layers are merged with mergo (first non-zero value
// wins) and validated before use.
package config
