// Copyright 2025-2026 The statica authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package mediatype

import (
	"strings"
	"testing"
)

func TestMediaTypeNew(t *testing.T) {
	if got := New(); got == nil {
		t.Errorf("New() got %v, want resolver instance", got)
	}
}

func TestMediaTypeResolve(t *testing.T) {
	tests := []struct {
		name string
		file string
		want string
	}{
		{
			name: "image",
			file: "logo.png",
			want: "image/png",
		},
		{
			name: "text",
			file: "index.html",
			want: "text/html",
		},
		{
			name: "unknown extension",
			file: "data.unknown",
			want: "application/octet-stream",
		},
		{
			name: "missing extension",
			file: "data",
			want: "application/octet-stream",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			if got := r.Resolve(tt.file); !strings.HasPrefix(got, tt.want) {
				t.Errorf("resolver.Resolve() got %q, want prefix %q", got, tt.want)
			}
		})
	}
}
