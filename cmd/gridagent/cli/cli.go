// Package cli holds the gridagent verb commands. Each verb builds the
// lifecycle controller from the production collaborators (systemd
// adapter, file-backed key store) and reports the result.
package cli

import (
	"fmt"
	"os"

	"gridagent/config"
	"gridagent/internal/lifecycle"
	"gridagent/internal/lifecycle/marker"
	"gridagent/internal/lifecycle/systemd"
)

// env bundles the controller with the inputs verbs need around it.
type env struct {
	ctrl    *lifecycle.Controller
	cfg     config.Config
	workDir string
}

func loadEnv() (env, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return env{}, fmt.Errorf("resolve working directory: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return env{}, err
	}

	sup := systemd.New()
	if cfg.UnitDir != "" {
		sup.UnitDir = cfg.UnitDir
	}

	return env{
		ctrl:    lifecycle.NewController(sup, marker.NewStore(workDir)),
		cfg:     cfg,
		workDir: workDir,
	}, nil
}

// ExitCodeError asks main to exit with a specific code without printing
// anything further; the command has already produced its output.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
