// Copyright 2025-2026 The statica authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package resource

import (
	"errors"
)

// Entry implements a resource entry.
type Entry struct {
	// MediaType is the media type label of the resource content.
	MediaType string
	// Data is the resource content. It is shared with the store and must
	// not be modified.
	Data []byte
	// Tag is the entity tag of the resource content.
	Tag string
}

// Store is the interface of the resource store.
type Store interface {
	// Register registers a resource from a file. The file is read
	// immediately and the resource is reloaded automatically when the file
	// changes on disk. A previous resource with the same name is replaced.
	Register(name string, path string) error
	// Unregister unregisters a resource and returns its file path.
	Unregister(name string) (string, bool)
	// ReloadAll reloads all stale resources.
	ReloadAll() error
	// Get returns the resource with the given name, reloading it first if
	// its file changed on disk.
	Get(name string) (*Entry, error)
}

// Fingerprinter is the interface of the entity tag calculator.
type Fingerprinter interface {
	// Fingerprint returns the entity tag of the given content. Identical
	// content always produces an identical tag.
	Fingerprint(data []byte) string
}

// MediaTypeResolver is the interface of the media type resolver.
type MediaTypeResolver interface {
	// Resolve returns the media type label for the given file name.
	Resolve(name string) string
}

// ErrNotFound is returned when the requested resource is not registered.
var ErrNotFound = errors.New("resource not found")
