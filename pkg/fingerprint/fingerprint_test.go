// Copyright 2025-2026 The statica authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fingerprint

import (
	"strings"
	"testing"
)

func TestFingerprintNew(t *testing.T) {
	if got := New(); got == nil {
		t.Errorf("New() got %v, want fingerprinter instance", got)
	}
}

func TestFingerprintFingerprint(t *testing.T) {
	h := New()

	tag := h.Fingerprint([]byte("content"))
	if tag == "" {
		t.Fatal("invalid tag: got empty string")
	}
	if !strings.HasPrefix(tag, `"`) || !strings.HasSuffix(tag, `"`) {
		t.Errorf("tag not quoted: got %q", tag)
	}

	if again := h.Fingerprint([]byte("content")); again != tag {
		t.Errorf("tag not deterministic: got %q and %q", tag, again)
	}

	if other := h.Fingerprint([]byte("other content")); other == tag {
		t.Errorf("tag not unique: got %q", other)
	}
}

func TestFingerprintFingerprint_EmptyContent(t *testing.T) {
	h := New()

	if tag := h.Fingerprint(nil); tag != h.Fingerprint([]byte{}) {
		t.Errorf("invalid tag: got %q", tag)
	}
}
