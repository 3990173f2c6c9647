package cli

import (
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	reportSendFlag    bool
	reportDailyFlag   bool
	initForceFlag     bool
	watchIntervalFlag string
)

// runCmd starts the monitoring daemon
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the monitoring daemon",
	Long: `Start the long-running monitoring loop.

Polls every configured host on the reporting interval and sends a live
status report to Telegram after each cycle. A daily summary goes out at
midnight in the configured timezone. Stop with Ctrl-C.

Examples:
  moonwatch run
  moonwatch run --config /etc/moonwatch/moonwatch.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDaemon(configFlag)
	},
}

// reportCmd polls the fleet once and prints or sends the report
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Poll the fleet once and print the report",
	Long: `Run a single polling cycle and print the resulting report to stdout.

Bandwidth figures show zero on a one-shot run: interval usage needs two
counter samples a minute or more apart, which only the daemon accumulates.

Examples:
  moonwatch report
  moonwatch report --send
  moonwatch report --daily`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(configFlag, reportSendFlag, reportDailyFlag)
	},
}

// watchCmd opens the live terminal dashboard
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live terminal dashboard of fleet status",
	Long: `Open an interactive dashboard that re-polls the fleet periodically
and renders host status in a table. Press q to quit.

Examples:
  moonwatch watch
  moonwatch watch --interval 30s`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(configFlag, watchIntervalFlag)
	},
}

// initCmd creates a new moonwatch.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create moonwatch.yaml configuration",
	Long: `Initialize a new moonwatch configuration file.

Walks through Telegram credentials and host connection details with
interactive prompts and writes moonwatch.yaml to the current directory.

Examples:
  moonwatch init
  moonwatch init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(initForceFlag)
	},
}

func init() {
	reportCmd.Flags().BoolVar(&reportSendFlag, "send", false, "Deliver the report to Telegram instead of only printing it")
	reportCmd.Flags().BoolVar(&reportDailyFlag, "daily", false, "Render the daily report format instead of the live status")
	initCmd.Flags().BoolVar(&initForceFlag, "force", false, "Overwrite an existing config without asking")
	watchCmd.Flags().StringVar(&watchIntervalFlag, "interval", "15s", "Dashboard refresh interval (e.g. 10s, 1m)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(initCmd)
}
