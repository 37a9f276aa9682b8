//go:build linux

// Package systemd adapts the lifecycle.Supervisor port to systemctl and
// journalctl shell-outs. Commands are fire-and-check: combined output is
// folded into the error on failure, nothing else is parsed.
package systemd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Service manages units under UnitDir (the systemd system directory
// unless overridden for tests or unusual hosts).
type Service struct {
	UnitDir string
}

func New() *Service {
	return &Service{UnitDir: "/etc/systemd/system"}
}

// Apply publishes the definition atomically: written to a temp file in
// the unit directory, then renamed over the unit path so systemd never
// observes a half-written unit.
func (s *Service) Apply(ctx context.Context, unit string, definition []byte) error {
	tmp, err := os.CreateTemp(s.UnitDir, unit+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp unit file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(definition); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write unit file: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("chmod unit file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close unit file: %w", err)
	}

	if err := os.Rename(tmpName, filepath.Join(s.UnitDir, unit)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("publish unit file: %w", err)
	}
	return nil
}

func (s *Service) Remove(ctx context.Context, unit string) error {
	err := os.Remove(filepath.Join(s.UnitDir, unit))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove unit file: %w", err)
	}
	return nil
}

func (s *Service) Reload(ctx context.Context) error {
	return systemctl(ctx, "daemon-reload")
}

func (s *Service) Enable(ctx context.Context, unit string) error {
	return systemctl(ctx, "enable", unit)
}

func (s *Service) Disable(ctx context.Context, unit string) error {
	return systemctl(ctx, "disable", unit)
}

func (s *Service) Start(ctx context.Context, unit string) error {
	return systemctl(ctx, "start", unit)
}

func (s *Service) Stop(ctx context.Context, unit string) error {
	return systemctl(ctx, "stop", unit)
}

func (s *Service) Restart(ctx context.Context, unit string) error {
	return systemctl(ctx, "restart", unit)
}

// Status streams systemctl's own report to out and returns its exit
// code. systemctl encodes unit state in the code (3 = inactive), so a
// non-zero code is a result, not an error.
func (s *Service) Status(ctx context.Context, unit string, out io.Writer) (int, error) {
	cmd := exec.CommandContext(ctx, "systemctl", "status", unit, "--no-pager")
	cmd.Stdout = out
	cmd.Stderr = out

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return 1, fmt.Errorf("systemctl status: %w", err)
	}
	return 0, nil
}

// FollowLogs tails the unit's journal until ctx is cancelled. The
// journalctl process dies with the context; that is the normal exit.
func (s *Service) FollowLogs(ctx context.Context, unit string, out io.Writer) error {
	cmd := exec.CommandContext(ctx, "journalctl", "--unit", unit, "--follow", "--no-pager")
	cmd.Stdout = out
	cmd.Stderr = out

	err := cmd.Run()
	if ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("journalctl --follow: %w", err)
	}
	return nil
}

func systemctl(ctx context.Context, args ...string) error {
	out, err := exec.CommandContext(ctx, "systemctl", args...).CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return fmt.Errorf("systemctl %s: %w", strings.Join(args, " "), err)
		}
		return fmt.Errorf("systemctl %s: %s: %w", strings.Join(args, " "), msg, err)
	}
	return nil
}
