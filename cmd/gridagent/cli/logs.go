package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func LogsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logs",
		Short: "Follow the agent's log output until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			// Blocks until the signal context is cancelled.
			return e.ctrl.FollowLogs(cmd.Context(), os.Stdout)
		},
	}
}
