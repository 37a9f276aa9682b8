package lifecycle

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInstalled is returned by every verb except install when no
	// install marker exists. No supervisor call is made in that case.
	ErrNotInstalled = errors.New(`agent is not installed - run "gridagent install <secret-key>" first`)

	// ErrNothingToUninstall reports uninstall without a prior install.
	// Callers treat it as a clean no-op, not a failure.
	ErrNothingToUninstall = errors.New("agent is not installed - nothing to uninstall")

	// ErrEmptyKey rejects an install with a blank secret key.
	ErrEmptyKey = errors.New("secret key must not be empty")
)

// PreconditionError reports a missing external dependency that the
// operator must provide before install can proceed.
type PreconditionError struct {
	Dependency string
	Hint       string
}

func (e *PreconditionError) Error() string {
	if e.Hint == "" {
		return fmt.Sprintf("required dependency %q not found", e.Dependency)
	}
	return fmt.Sprintf("required dependency %q not found (%s)", e.Dependency, e.Hint)
}

// StepError names the supervisor step that failed. Steps already applied
// before the failure are left in place; install is simply re-runnable.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string { return e.Step + ": " + e.Err.Error() }
func (e *StepError) Unwrap() error { return e.Err }
