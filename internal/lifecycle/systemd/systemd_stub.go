//go:build !linux

package systemd

import (
	"context"
	"fmt"
	"io"
	"runtime"
)

// Service is the non-linux stub. The agent is deployed on linux hosts
// only; every call reports the platform gap.
type Service struct {
	UnitDir string
}

func New() *Service {
	return &Service{}
}

func errUnsupported() error {
	return fmt.Errorf("systemd is not available on %s; the agent requires a linux host", runtime.GOOS)
}

func (s *Service) Apply(ctx context.Context, unit string, definition []byte) error {
	return errUnsupported()
}
func (s *Service) Remove(ctx context.Context, unit string) error  { return errUnsupported() }
func (s *Service) Reload(ctx context.Context) error               { return errUnsupported() }
func (s *Service) Enable(ctx context.Context, unit string) error  { return errUnsupported() }
func (s *Service) Disable(ctx context.Context, unit string) error { return errUnsupported() }
func (s *Service) Start(ctx context.Context, unit string) error   { return errUnsupported() }
func (s *Service) Stop(ctx context.Context, unit string) error    { return errUnsupported() }
func (s *Service) Restart(ctx context.Context, unit string) error { return errUnsupported() }

func (s *Service) Status(ctx context.Context, unit string, out io.Writer) (int, error) {
	return 1, errUnsupported()
}

func (s *Service) FollowLogs(ctx context.Context, unit string, out io.Writer) error {
	return errUnsupported()
}
