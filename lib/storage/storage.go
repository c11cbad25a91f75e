// Copyright 2023 Silvio Böhler
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package storage persists simulation inputs as versioned YAML files.
//
// Each object lives in its own directory under <root>/<kind>/<name>/,
// with one file per saved version. Versions are named
// <name>_<timestamp>.yaml, so the lexically greatest file is the most
// recent one. Saving never overwrites, it always adds a version.
package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v2"
)

// Kind groups stored objects by type.
type Kind string

const (
	Accounts   Kind = "accounts"
	Portfolios Kind = "portfolios"
	Scenarios  Kind = "scenarios"
)

const versionLayout = "20060102_150405"

// Store reads and writes versioned YAML files under a root directory.
type Store struct {
	Root string

	// Now stamps new versions. Overridable for tests.
	Now func() time.Time
}

// New creates a store rooted at the given directory.
func New(root string) *Store {
	return &Store{Root: root, Now: time.Now}
}

// Save writes a new version of the named object.
func (s *Store) Save(kind Kind, name string, v any) error {
	var (
		fs   = FSName(name)
		dir  = filepath.Join(s.Root, string(kind), fs)
		file = fmt.Sprintf("%s_%s.yaml", fs, s.Now().Format(versionLayout))
	)
	if fs == "" {
		return fmt.Errorf("cannot save %s with empty name %q", kind, name)
	}
	bs, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s %q: %w", kind, name, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	if err := atomic.WriteFile(filepath.Join(dir, file), bytes.NewReader(bs)); err != nil {
		return fmt.Errorf("writing %s %q: %w", kind, name, err)
	}
	return nil
}

// Load decodes the latest version of the named object into v. Unknown
// YAML fields are an error.
func (s *Store) Load(kind Kind, name string, v any) error {
	path, err := s.latest(kind, name)
	if err != nil {
		return err
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s %q: %w", kind, name, err)
	}
	if err := yaml.UnmarshalStrict(bs, v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

// List returns the names of all stored objects of a kind, sorted.
func (s *Store) List(kind Kind) ([]string, error) {
	es, err := os.ReadDir(filepath.Join(s.Root, string(kind)))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", kind, err)
	}
	var res []string
	for _, e := range es {
		if e.IsDir() {
			res = append(res, e.Name())
		}
	}
	sort.Strings(res)
	return res, nil
}

// Versions returns the version timestamps of the named object, oldest
// first.
func (s *Store) Versions(kind Kind, name string) ([]time.Time, error) {
	files, err := s.versionFiles(kind, name)
	if err != nil {
		return nil, err
	}
	prefix := FSName(name) + "_"
	var res []time.Time
	for _, f := range files {
		v := strings.TrimSuffix(strings.TrimPrefix(filepath.Base(f), prefix), ".yaml")
		t, err := time.Parse(versionLayout, v)
		if err != nil {
			continue
		}
		res = append(res, t)
	}
	return res, nil
}

func (s *Store) latest(kind Kind, name string) (string, error) {
	files, err := s.versionFiles(kind, name)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no versions of %s %q", kind, name)
	}
	return files[len(files)-1], nil
}

func (s *Store) versionFiles(kind Kind, name string) ([]string, error) {
	var (
		fs  = FSName(name)
		dir = filepath.Join(s.Root, string(kind), fs)
	)
	es, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("no %s named %q", kind, name)
	}
	if err != nil {
		return nil, fmt.Errorf("listing versions of %s %q: %w", kind, name, err)
	}
	var res []string
	for _, e := range es {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".yaml") {
			res = append(res, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(res)
	return res, nil
}

// FSName derives a filesystem-safe name: lowercased, spaces replaced by
// underscores, anything else outside [a-z0-9_-] dropped.
func FSName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r == ' ':
			b.WriteRune('_')
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}
