package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"gridagent/cmd/gridagent/cli"
	"gridagent/cmd/gridagent/ui"
	"gridagent/internal/logging"
	"gridagent/internal/support/buildinfo"

	"github.com/spf13/cobra"
)

func main() {
	var debug bool

	if err := logging.Configure(logging.LevelWarn, os.Stderr); err != nil {
		_, _ = os.Stderr.WriteString("configure logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	ui.ConfigureColor()

	// SIGINT/SIGTERM cancel the command context; logs relies on this to
	// end its follow without touching the unit's run state.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := &cobra.Command{
		Use:           "gridagent",
		Short:         "Lifecycle manager for the grid compute agent",
		Version:       buildinfo.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := logging.LevelWarn
			if debug {
				level = logging.LevelDebug
			}
			return logging.Configure(level, os.Stderr)
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	root.AddCommand(
		cli.InstallCmd(),
		cli.StartCmd(),
		cli.StopCmd(),
		cli.RestartCmd(),
		cli.StatusCmd(),
		cli.LogsCmd(),
		cli.UninstallCmd(),
	)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return
	}

	var exitErr *cli.ExitCodeError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	if strings.HasPrefix(err.Error(), "unknown command") {
		fmt.Fprint(os.Stderr, root.UsageString())
	}
	os.Exit(1)
}
