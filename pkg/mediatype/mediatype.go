// Copyright 2025-2026 The statica authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package mediatype

import (
	"mime"
	"path/filepath"

	"github.com/statica/statica/pkg/resource"
)

// resolver implements the extension based media type resolver.
type resolver struct{}

const (
	// defaultMediaType is the label for unknown or missing extensions.
	defaultMediaType string = "application/octet-stream"
)

// New returns a new extension based media type resolver.
func New() *resolver {
	return &resolver{}
}

// Resolve returns the media type label for the given file name.
func (r *resolver) Resolve(name string) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return defaultMediaType
}

var _ resource.MediaTypeResolver = (*resolver)(nil)
