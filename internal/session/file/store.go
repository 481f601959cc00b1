// Package file implements the session record store on a single JSON file,
// the portal's only durable state.
package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arogyapath/portal/internal/domain"
)

// Store persists the session record at a fixed path.
type Store struct {
	path string
}

// NewStore creates a file-backed record store. The parent directory is
// created on first save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted record. An absent file yields (nil, nil); a
// file that cannot be read or decoded yields an error the caller treats
// as absence.
func (s *Store) Load() (*domain.Identity, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session record: %w", err)
	}

	var id domain.Identity
	if err := json.Unmarshal(b, &id); err != nil {
		return nil, fmt.Errorf("decode session record: %w", err)
	}
	return &id, nil
}

// Save replaces the record atomically: the new record is written to a
// temporary file in the same directory and renamed over the old one, so a
// reader never observes a partial write.
func (s *Store) Save(id *domain.Identity) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create session record dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*.json")
	if err != nil {
		return fmt.Errorf("create temp session record: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := json.NewEncoder(tmp).Encode(id); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("encode session record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp session record: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace session record: %w", err)
	}
	return nil
}

// Clear removes the record. A missing file is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session record: %w", err)
	}
	return nil
}
