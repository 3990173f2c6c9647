// Package cli implements the moonwatch command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to a workflow function for the actual work:
//
//	moonwatch run      - Start the monitoring daemon
//	moonwatch report   - Poll once and print (or send) the report
//	moonwatch watch    - Interactive terminal dashboard
//	moonwatch init     - Create moonwatch.yaml interactively
//	moonwatch version  - Print build information
//
// # Flag Handling
//
// The global --config flag is defined on the root command and available to
// all subcommands; it overrides the default search order (current
// directory, ~/.config/moonwatch/, /etc/moonwatch/). Command-specific
// flags like --send and --daily live on their individual commands.
//
// # Failure Policy
//
// Configuration problems are fatal and surface before any monitoring
// starts. Once the daemon loop is running, per-host and delivery failures
// only log; the loop itself never exits on them.
package cli
