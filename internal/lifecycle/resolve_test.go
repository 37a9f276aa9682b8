package lifecycle

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveLauncherFromPath(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "fake-launcher")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write fake launcher: %v", err)
	}
	t.Setenv("PATH", dir)

	got, err := ResolveLauncher("fake-launcher")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != bin {
		t.Fatalf("resolved = %q, want %q", got, bin)
	}
	if !filepath.IsAbs(got) {
		t.Fatalf("resolved path %q is not absolute", got)
	}
}

func TestResolveLauncherMissingIsPreconditionError(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := ResolveLauncher("no-such-launcher")
	var pre *PreconditionError
	if !errors.As(err, &pre) {
		t.Fatalf("resolve error = %v, want PreconditionError", err)
	}
	if pre.Dependency != "no-such-launcher" {
		t.Fatalf("dependency = %q, want the missing binary named", pre.Dependency)
	}
}

func TestResolveLauncherAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "launcher")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write launcher: %v", err)
	}

	got, err := ResolveLauncher(bin)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != bin {
		t.Fatalf("resolved = %q, want %q", got, bin)
	}

	if _, err := ResolveLauncher(filepath.Join(dir, "gone")); err == nil {
		t.Fatal("resolve of a missing absolute path should fail")
	}
}
