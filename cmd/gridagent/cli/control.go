package cli

import (
	"fmt"

	"gridagent/cmd/gridagent/ui"

	"github.com/spf13/cobra"
)

func StartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the agent service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			if err := e.ctrl.Start(cmd.Context()); err != nil {
				return err
			}
			fmt.Println(ui.SuccessMsg("agent started"))
			return nil
		},
	}
}

func StopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the agent service (it stays registered and enabled)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			if err := e.ctrl.Stop(cmd.Context()); err != nil {
				return err
			}
			fmt.Println(ui.SuccessMsg("agent stopped"))
			return nil
		},
	}
}

func RestartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restart",
		Short: "Restart the agent service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			if err := e.ctrl.Restart(cmd.Context()); err != nil {
				return err
			}
			fmt.Println(ui.SuccessMsg("agent restarted"))
			return nil
		},
	}
}
