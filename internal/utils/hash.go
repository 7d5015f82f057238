// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Lezhnev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Fingerprint computes a deterministic content hash of v for change
// detection.
//
// v is marshalled to JSON, decoded into generic values, and re-marshalled
// before hashing. The round-trip normalises object key order (encoding/json
// sorts map keys), so two values with identical content produce identical
// fingerprints even when their raw JSON was written with keys in a different
// order.
//
// The result is a hex-encoded SHA-256 digest. It is used only to suppress
// redundant pushes, never for conflict detection.
func Fingerprint(v any) (string, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("fingerprint marshal: %w", err)
	}

	var generic any
	if err = json.Unmarshal(encoded, &generic); err != nil {
		return "", fmt.Errorf("fingerprint normalize: %w", err)
	}

	canonical, err := json.Marshal(generic)
	if err != nil {
		return "", fmt.Errorf("fingerprint canonical marshal: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// Changed reports whether the current fingerprint differs from the last
// pushed one. An empty last fingerprint always counts as changed.
func Changed(current, last string) bool {
	return last == "" || current != last
}
