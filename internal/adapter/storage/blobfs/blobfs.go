// Package blobfs stores content payloads as files under a root directory.
package blobfs

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store implements ports.BlobStore on the local filesystem. Locators are
// relative paths of the form <random>/<sanitized name>, so a locator never
// escapes the root.
type Store struct {
	root string
}

// NewStore creates the root directory if needed.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating blob root: %w", err)
	}
	return &Store{root: root}, nil
}

func (s *Store) Put(_ context.Context, name string, data []byte) (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating blob id: %w", err)
	}
	locator := filepath.Join(hex.EncodeToString(buf), sanitize(name))

	path := filepath.Join(s.root, locator)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating blob dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing blob: %w", err)
	}
	return locator, nil
}

func (s *Store) Get(_ context.Context, locator string) ([]byte, error) {
	path, err := s.resolve(locator)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading blob %s: %w", locator, err)
	}
	return data, nil
}

func (s *Store) Delete(_ context.Context, locator string) error {
	path, err := s.resolve(locator)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting blob %s: %w", locator, err)
	}
	return nil
}

// resolve joins the locator onto the root and refuses traversal outside it.
func (s *Store) resolve(locator string) (string, error) {
	path := filepath.Join(s.root, filepath.Clean("/"+locator))
	if !strings.HasPrefix(path, s.root+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid locator %q", locator)
	}
	return path, nil
}

// sanitize keeps only the base name and replaces path separators.
func sanitize(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		return "blob"
	}
	return base
}
