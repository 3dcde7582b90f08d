// Axscale calibrates the axis ranges of Linux joystick devices.
//
// It watches a joystick's raw event stream to find the true extremes of
// every absolute axis, stores them in a small mapping file, and writes
// them back into the kernel driver on demand. A live monitor view shows
// each axis moving inside its driver-reported range.
//
// Usage:
//
//	axscale <command> [flags]
//
// See 'axscale --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/refi64/axscale/internal/calibrate"
	"github.com/refi64/axscale/internal/logging"
	"github.com/refi64/axscale/internal/version"
)

func main() {
	// Initialize logging from environment variable (silent by default)
	// Set AXSCALE_LOG_LEVEL=debug to see detailed logs
	if err := logging.InitializeFromEnv(); err != nil {
		// Ignore error, GetLogger will create fallback logger
		_ = err
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := calibrate.TroubleshootingHint(err); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
		logging.Sync()
		os.Exit(1)
	}
	logging.Sync()
}

var rootCmd = &cobra.Command{
	Use:   "axscale",
	Short: "Joystick Axis Calibration Utility",
	Long: `Calibrate the axis ranges of Linux joystick devices.

Cheap or well-worn joysticks often reach only part of the range their
driver advertises. Axscale records the extremes each axis actually
hits, saves them to a mapping file, and loads them back into the
kernel driver so applications see the full range.`,
	Version: version.Version,
	Example: `  # Find your joystick's event node
  axscale devices

  # Record axis extremes (move the stick fully, then press Ctrl-C)
  axscale detect /dev/input/event3 joystick.map

  # Apply a recorded mapping after a reboot or replug
  axscale load /dev/input/event3 joystick.map

  # Watch axes move inside their current ranges
  axscale monitor /dev/input/event3`,
	// Error printing happens once, in main, so the troubleshooting hint
	// can ride along.
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("a command is required (see 'axscale --help')")
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("axscale %s (commit: %s)\n", version.Version, version.Commit)
	},
}
