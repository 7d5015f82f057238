// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

package config

// validate checks the merged [StructuredConfig] before it is used at
// startup. Cross-field rules live here; view-specific rules (client) live on
// the view types.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.DebounceWindow < 0 || cfg.Workers.SyncInterval < 0 {
		return ErrConfigValidation
	}

	return nil
}
