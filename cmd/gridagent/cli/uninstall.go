package cli

import (
	"errors"
	"fmt"

	"gridagent/cmd/gridagent/ui"
	"gridagent/internal/lifecycle"

	"github.com/spf13/cobra"
)

func UninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Stop the agent, remove its unit, and delete the install marker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}

			err = e.ctrl.Uninstall(cmd.Context())
			if errors.Is(err, lifecycle.ErrNothingToUninstall) {
				fmt.Println(ui.WarnMsg("%s", err))
				return nil
			}
			if err != nil {
				return fmt.Errorf("uninstall agent: %w", err)
			}

			fmt.Println(ui.SuccessMsg("agent uninstalled"))
			return nil
		},
	}
}
