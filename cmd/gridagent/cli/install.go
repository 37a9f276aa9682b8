package cli

import (
	"fmt"
	"strings"

	"gridagent/cmd/gridagent/ui"
	"gridagent/internal/lifecycle"
	"gridagent/internal/lifecycle/marker"

	"github.com/spf13/cobra"
)

func InstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install <secret-key>",
		Short: "Register the agent with systemd, enable it at boot, and start it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secretKey := args[0]
			if strings.TrimSpace(secretKey) == "" {
				return lifecycle.ErrEmptyKey
			}

			e, err := loadEnv()
			if err != nil {
				return err
			}

			launcher, err := lifecycle.ResolveLauncher(e.cfg.Launcher)
			if err != nil {
				return err
			}

			fmt.Println(ui.InfoMsg("installing agent service"))
			if err := e.ctrl.Install(cmd.Context(), lifecycle.InstallSpec{
				SecretKey:  secretKey,
				WorkDir:    e.workDir,
				Launcher:   launcher,
				Entrypoint: e.cfg.Entrypoint,
				BaseURL:    e.cfg.APIBaseURL,
			}); err != nil {
				return fmt.Errorf("install agent: %w", err)
			}

			fmt.Println(ui.SuccessMsg("agent installed and running"))
			fmt.Print(ui.KeyValues("  ",
				ui.KV("unit", lifecycle.UnitName),
				ui.KV("working directory", e.workDir),
				ui.KV("launcher", launcher),
				ui.KV("key file", marker.FileName),
			))
			return nil
		},
	}
}
