// Package lifecycle drives the agent's registration with the host's
// service supervisor: install publishes and starts a unit for the agent,
// the remaining verbs delegate to the supervisor, and every verb but
// install is guarded by the persisted install marker.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Controller executes lifecycle verbs against an injected supervisor and
// key store. It is a short-lived, single-invocation object: no internal
// state survives a call.
type Controller struct {
	unit string
	sup  Supervisor
	keys KeyStore
}

func NewController(sup Supervisor, keys KeyStore) *Controller {
	return &Controller{unit: UnitName, sup: sup, keys: keys}
}

// InstallSpec carries the inputs install derives the unit from. Launcher
// must already be resolved to an absolute path.
type InstallSpec struct {
	SecretKey  string
	WorkDir    string
	Launcher   string
	Entrypoint string
	BaseURL    string
}

// Install persists the secret key and registers, enables and starts the
// agent unit. Re-running with a different key rotates the stored key in
// place. The first failing supervisor step aborts the sequence; already
// applied steps are left as-is and install can simply be re-run.
func (c *Controller) Install(ctx context.Context, spec InstallSpec) error {
	if strings.TrimSpace(spec.SecretKey) == "" {
		return ErrEmptyKey
	}

	if err := c.keys.Save(spec.SecretKey); err != nil {
		return fmt.Errorf("persist secret key: %w", err)
	}

	def := Definition{
		WorkDir:    spec.WorkDir,
		Launcher:   spec.Launcher,
		Entrypoint: spec.Entrypoint,
		SecretKey:  spec.SecretKey,
		BaseURL:    spec.BaseURL,
	}

	if err := c.sup.Apply(ctx, c.unit, def.Render()); err != nil {
		return &StepError{Step: "publish unit definition", Err: err}
	}
	if err := c.sup.Reload(ctx); err != nil {
		return &StepError{Step: "reload supervisor", Err: err}
	}
	if err := c.sup.Enable(ctx, c.unit); err != nil {
		return &StepError{Step: "enable unit", Err: err}
	}
	if err := c.sup.Start(ctx, c.unit); err != nil {
		return &StepError{Step: "start unit", Err: err}
	}
	return nil
}

func (c *Controller) Start(ctx context.Context) error {
	if err := c.requireInstalled(); err != nil {
		return err
	}
	if err := c.sup.Start(ctx, c.unit); err != nil {
		return &StepError{Step: "start unit", Err: err}
	}
	return nil
}

func (c *Controller) Stop(ctx context.Context) error {
	if err := c.requireInstalled(); err != nil {
		return err
	}
	if err := c.sup.Stop(ctx, c.unit); err != nil {
		return &StepError{Step: "stop unit", Err: err}
	}
	return nil
}

func (c *Controller) Restart(ctx context.Context) error {
	if err := c.requireInstalled(); err != nil {
		return err
	}
	if err := c.sup.Restart(ctx, c.unit); err != nil {
		return &StepError{Step: "restart unit", Err: err}
	}
	return nil
}

// Status surfaces the supervisor's status report verbatim on out and
// returns the supervisor's exit code so the caller can mirror it.
func (c *Controller) Status(ctx context.Context, out io.Writer) (int, error) {
	if err := c.requireInstalled(); err != nil {
		return 1, err
	}
	return c.sup.Status(ctx, c.unit, out)
}

// FollowLogs streams the unit's log output to out until ctx is
// cancelled. It never touches the unit's run state.
func (c *Controller) FollowLogs(ctx context.Context, out io.Writer) error {
	if err := c.requireInstalled(); err != nil {
		return err
	}
	return c.sup.FollowLogs(ctx, c.unit, out)
}

// Uninstall converges the host to a clean state: stop and disable are
// best-effort, then the unit definition is removed, the supervisor
// reloaded, and the install marker deleted last. Because the marker goes
// last, a partial failure leaves uninstall safely re-runnable.
func (c *Controller) Uninstall(ctx context.Context) error {
	if _, err := c.keys.Load(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNothingToUninstall
		}
		return fmt.Errorf("read install marker: %w", err)
	}

	// Unit may already be stopped or disabled by external tooling.
	_ = c.sup.Stop(ctx, c.unit)
	_ = c.sup.Disable(ctx, c.unit)

	if err := c.sup.Remove(ctx, c.unit); err != nil {
		return &StepError{Step: "remove unit definition", Err: err}
	}
	if err := c.sup.Reload(ctx); err != nil {
		return &StepError{Step: "reload supervisor", Err: err}
	}
	if err := c.keys.Delete(); err != nil {
		return fmt.Errorf("delete install marker: %w", err)
	}
	return nil
}

func (c *Controller) requireInstalled() error {
	if _, err := c.keys.Load(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNotInstalled
		}
		return fmt.Errorf("read install marker: %w", err)
	}
	return nil
}
