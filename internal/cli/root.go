package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configFlag holds the --config override, shared by all commands.
var configFlag string

// rootCmd is the base command for moonwatch.
var rootCmd = &cobra.Command{
	Use:   "moonwatch",
	Short: "SSH fleet monitoring with Telegram reports",
	Long: `Moonwatch polls a fleet of Linux hosts over SSH for CPU, RAM, disk
and network usage, and delivers formatted status reports to a Telegram chat.

Run 'moonwatch init' to create a configuration, then 'moonwatch run' to
start the monitoring daemon.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"Path to config file (default: moonwatch.yaml, ~/.config/moonwatch/, /etc/moonwatch/)")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
