package lifecycle

import (
	"context"
	"io"
)

// Supervisor is the narrow surface the controller needs from the host's
// service manager. Production uses the systemd adapter; tests inject a
// recording fake. Every call addresses the single fixed unit name and is
// treated as fire-and-check: the controller never inspects supervisor
// state beyond the returned error.
type Supervisor interface {
	// Apply publishes a unit definition atomically into the
	// supervisor's configuration directory.
	Apply(ctx context.Context, unit string, definition []byte) error

	// Remove deletes the unit definition. A definition that is already
	// absent is not an error.
	Remove(ctx context.Context, unit string) error

	// Reload asks the supervisor to re-read its configuration.
	Reload(ctx context.Context) error

	Enable(ctx context.Context, unit string) error
	Disable(ctx context.Context, unit string) error
	Start(ctx context.Context, unit string) error
	Stop(ctx context.Context, unit string) error
	Restart(ctx context.Context, unit string) error

	// Status writes the supervisor's status report for the unit to out
	// verbatim and returns the supervisor's own exit code.
	Status(ctx context.Context, unit string, out io.Writer) (int, error)

	// FollowLogs streams the unit's log output to out until ctx is
	// cancelled. Cancellation is the normal way out and is not an error.
	FollowLogs(ctx context.Context, unit string, out io.Writer) error
}

// KeyStore persists the install marker: the single secret key whose
// existence records that install has completed. Load reports a missing
// marker as os.ErrNotExist.
type KeyStore interface {
	Load() (string, error)
	Save(key string) error
	Delete() error
}
