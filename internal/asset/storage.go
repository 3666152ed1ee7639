package asset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/karripar/personal-project-s25/internal/domain"
)

// Store is a flat filesystem directory of stored files. Names are
// validated against path traversal before any disk access.
type Store struct {
	root string
}

func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root %s: %w", root, err)
	}
	return &Store{root: root}, nil
}

// Sub returns a store rooted at a subdirectory, creating it if needed.
func (s *Store) Sub(name string) (*Store, error) {
	return NewStore(filepath.Join(s.root, name))
}

func (s *Store) Path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return "", fmt.Errorf("%w: invalid storage name %q", domain.ErrInvalidInput, name)
	}
	return filepath.Join(s.root, name), nil
}

func (s *Store) Save(name string, r io.Reader) (int64, error) {
	path, err := s.Path(name)
	if err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", name, err)
	}
	defer f.Close()

	n, err := io.Copy(f, r)
	if err != nil {
		os.Remove(path)
		return 0, fmt.Errorf("write %s: %w", name, err)
	}
	return n, nil
}

func (s *Store) Exists(name string) (bool, error) {
	path, err := s.Path(name)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Remove deletes a stored file. A missing file maps to ErrNotFound so
// callers can distinguish it from filesystem failures.
func (s *Store) Remove(name string) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: file %s", domain.ErrNotFound, name)
		}
		return fmt.Errorf("remove %s: %w", name, err)
	}
	return nil
}
