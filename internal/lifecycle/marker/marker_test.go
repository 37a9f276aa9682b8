package marker

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadDelete(t *testing.T) {
	s := NewStore(t.TempDir())

	if _, err := s.Load(); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("load before save = %v, want os.ErrNotExist", err)
	}

	if err := s.Save("abc123"); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "abc123" {
		t.Fatalf("loaded key = %q, want abc123", got)
	}

	if err := s.Delete(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Load(); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("load after delete = %v, want os.ErrNotExist", err)
	}
}

func TestSaveOverwritesPreviousKey(t *testing.T) {
	s := NewStore(t.TempDir())

	if err := s.Save("k1"); err != nil {
		t.Fatalf("save k1: %v", err)
	}
	if err := s.Save("k2"); err != nil {
		t.Fatalf("save k2: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "k2" {
		t.Fatalf("loaded key = %q, want k2 (rotation, not accumulation)", got)
	}
}

func TestMarkerFileIsOwnerOnly(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	if err := s.Save("abc123"); err != nil {
		t.Fatalf("save: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("marker mode = %o, want 600", perm)
	}
}
