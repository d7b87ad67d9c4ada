// Package storage keeps generated export files on local disk and signs the
// tokens that gate their download.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ExportStorage persists generated export files in a single flat directory.
// Filenames carry the export type and job ID, so path nesting is never needed
// and any directory component in a name is stripped.
type ExportStorage struct {
	dir string
}

// NewExportStorage ensures the directory exists and returns a handle.
func NewExportStorage(dir string) (*ExportStorage, error) {
	if dir == "" {
		dir = "./exports"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create exports directory: %w", err)
	}
	return &ExportStorage{dir: dir}, nil
}

// Save writes a rendered export and returns the stored name.
func (s *ExportStorage) Save(name string, data []byte) (string, error) {
	name = filepath.Base(name)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write export %s: %w", name, err)
	}
	return name, nil
}

// Open returns a read-only handle for a stored export.
func (s *ExportStorage) Open(name string) (*os.File, error) {
	file, err := os.Open(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil {
		return nil, fmt.Errorf("open export %s: %w", name, err)
	}
	return file, nil
}

// Delete removes a stored export if present.
func (s *ExportStorage) Delete(name string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete export %s: %w", name, err)
	}
	return nil
}

// CleanupOlderThan removes exports older than the TTL and returns their names.
func (s *ExportStorage) CleanupOlderThan(ttl time.Duration) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("scan exports directory: %w", err)
	}
	cutoff := time.Now().Add(-ttl)
	deleted := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat export %s: %w", entry.Name(), err)
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("delete export %s: %w", entry.Name(), err)
		}
		deleted = append(deleted, entry.Name())
	}
	return deleted, nil
}
