// Copyright easylive1989, 2026. All rights reserved.

// Package secrets resolves service credentials from environment variables,
// with a directory of plain-text key files as fallback. Each file in the
// directory is one secret: the filename is the key name and the trimmed
// file contents are the value.
//
// Supported key files: notion-secret, medium-token, medium-user-id,
// github-token, openai-api-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Store holds the secrets loaded from a directory.
type Store struct {
	values map[string]string
}

// Load reads all files in dir into a Store. A missing directory or missing
// files are not errors; the Store is simply empty. Unreadable files produce
// a warning on stderr but do not abort.
func Load(dir string) (*Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return &Store{values: map[string]string{}}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	values := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			values[name] = value
		}
	}

	return &Store{values: values}, nil
}

// Resolve returns the credential named by envVar if set, falling back to
// the secret file fileKey. An error means the caller must not proceed to
// any network call.
func (s *Store) Resolve(envVar, fileKey string) (string, error) {
	if v := strings.TrimSpace(os.Getenv(envVar)); v != "" {
		return v, nil
	}
	if v, ok := s.values[fileKey]; ok {
		return v, nil
	}
	return "", fmt.Errorf("missing credential: set the %s environment variable or create .secrets/%s", envVar, fileKey)
}

// Keys returns the sorted names of the loaded secrets.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
