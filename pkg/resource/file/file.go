// Copyright 2025-2026 The statica authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package file

import (
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/statica/statica/pkg/resource"
)

// fileStore implements the file backed resource store.
type fileStore struct {
	resources     map[string]*cachedResource
	fingerprinter resource.Fingerprinter
	resolver      resource.MediaTypeResolver
	mu            sync.Mutex
	osReadFile    func(name string) ([]byte, error)
	osStat        func(name string) (fs.FileInfo, error)
}

// cachedResource implements a store entry.
type cachedResource struct {
	path      string
	mediaType string
	data      []byte
	tag       string
	modTime   *time.Time
}

// fileOsReadFile redirects to os.ReadFile.
func fileOsReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// fileOsStat redirects to os.Stat.
func fileOsStat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// New returns a new file backed resource store.
func New(fingerprinter resource.Fingerprinter, resolver resource.MediaTypeResolver) *fileStore {
	return &fileStore{
		resources:     make(map[string]*cachedResource),
		fingerprinter: fingerprinter,
		resolver:      resolver,
		osReadFile:    fileOsReadFile,
		osStat:        fileOsStat,
	}
}

// Register registers a resource from a file.
func (s *fileStore) Register(name string, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, err := s.osStat(path)
	if err != nil {
		return fmt.Errorf("stat file %s: %w", path, err)
	}
	var modTime *time.Time
	if t := info.ModTime(); !t.IsZero() {
		modTime = &t
	}

	data, err := s.osReadFile(path)
	if err != nil {
		return fmt.Errorf("read file %s: %w", path, err)
	}

	s.resources[name] = &cachedResource{
		path:      path,
		mediaType: s.resolver.Resolve(path),
		data:      data,
		tag:       s.fingerprinter.Fingerprint(data),
		modTime:   modTime,
	}

	return nil
}

// Unregister unregisters a resource and returns its file path.
func (s *fileStore) Unregister(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.resources[name]
	if !ok {
		return "", false
	}
	delete(s.resources, name)

	return r.path, true
}

// ReloadAll reloads all stale resources.
func (s *fileStore) ReloadAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.resources {
		if err := s.refresh(r); err != nil {
			return err
		}
	}

	return nil
}

// Get returns the resource with the given name.
func (s *fileStore) Get(name string) (*resource.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.resources[name]
	if !ok {
		return nil, fmt.Errorf("resource %s: %w", name, resource.ErrNotFound)
	}

	if err := s.refresh(r); err != nil {
		return nil, err
	}

	return &resource.Entry{
		MediaType: r.mediaType,
		Data:      r.data,
		Tag:       r.tag,
	}, nil
}

// refresh reloads the resource content if its file changed on disk. An
// unknown last modification time forces a reload. The entry is left
// untouched if the reload fails.
func (s *fileStore) refresh(r *cachedResource) error {
	info, err := s.osStat(r.path)
	if err != nil {
		return fmt.Errorf("stat file %s: %w", r.path, err)
	}

	var reload bool
	var modTime *time.Time
	current := info.ModTime()
	switch {
	case r.modTime == nil:
		reload = true
		if !current.IsZero() {
			modTime = &current
		}
	case current.IsZero():
		reload = true
	default:
		reload = current.After(*r.modTime)
		modTime = &current
	}
	if !reload {
		return nil
	}

	data, err := s.osReadFile(r.path)
	if err != nil {
		return fmt.Errorf("read file %s: %w", r.path, err)
	}

	r.data = data
	r.tag = s.fingerprinter.Fingerprint(data)
	r.modTime = modTime

	return nil
}

var _ resource.Store = (*fileStore)(nil)
