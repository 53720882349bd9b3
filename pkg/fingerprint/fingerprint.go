// Copyright 2025-2026 The statica authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/statica/statica/pkg/resource"
)

// hasher implements the content fingerprinter.
type hasher struct{}

// New returns a new content fingerprinter.
func New() *hasher {
	return &hasher{}
}

// Fingerprint returns the entity tag of the given content as a quoted
// hexadecimal SHA-256 digest.
func (h *hasher) Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return `"` + hex.EncodeToString(sum[:]) + `"`
}

var _ resource.Fingerprinter = (*hasher)(nil)
