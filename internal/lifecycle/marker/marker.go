// Package marker implements the file-backed install marker: a single
// secret key stored next to the agent's own state files in its working
// directory. Existence of the file is the install signal.
package marker

import (
	"os"
	"path/filepath"
)

// FileName is the marker file kept in the agent working directory.
const FileName = ".agent_key"

// Store reads and writes the marker at a fixed path.
type Store struct {
	path string
}

func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, FileName)}
}

// Path returns the marker file location.
func (s *Store) Path() string { return s.path }

// Load returns the stored secret key. A missing marker surfaces as
// os.ErrNotExist so callers can distinguish "not installed".
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Save writes the key, replacing any previous one. The file holds the
// raw secret, so it is not group or world readable.
func (s *Store) Save(key string) error {
	return os.WriteFile(s.path, []byte(key), 0o600)
}

func (s *Store) Delete() error {
	return os.Remove(s.path)
}
