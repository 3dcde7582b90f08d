package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/refi64/axscale/internal/calibrate"
	"github.com/refi64/axscale/internal/config"
	"github.com/refi64/axscale/internal/device"
	"github.com/refi64/axscale/internal/logging"
	"github.com/refi64/axscale/internal/monitor"
)

func init() {
	// Add subcommands directly to root
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(monitorCmd)
}

// detectCmd captures axis extremes into a mapping file
var detectCmd = &cobra.Command{
	Use:   "detect <device> <mapping-file>",
	Short: "Record a device's axis extremes into a mapping file",
	Long: `Watch a joystick device and record the extreme position reached by
every absolute axis, then write the result as a mapping file.

Move all sticks and pads through their full range while the capture
runs. Press Ctrl-C to finish; the mapping file is written from
whatever was seen up to that point.`,
	Example: `  # Calibrate the first event device
  axscale detect /dev/input/event0 joystick.map

  # Keep the mapping next to the registry
  axscale detect /dev/input/event3 ~/.config/axscale/wingman.map`,
	Args: cobra.ExactArgs(2),
	RunE: runDetect,
}

func runDetect(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true

	devicePath, mapPath := args[0], args[1]

	dev, err := device.Open(devicePath)
	if err != nil {
		return err
	}
	defer dev.Close()

	if err := calibrate.Detect(dev, mapPath); err != nil {
		return err
	}

	recordCapture(dev, mapPath)
	fmt.Printf("Saved axis bounds to %s\n", mapPath)
	return nil
}

// loadCmd applies a previously captured mapping file
var loadCmd = &cobra.Command{
	Use:   "load <device> <mapping-file>",
	Short: "Apply a mapping file's axis bounds to a device",
	Long: `Read a mapping file written by 'axscale detect' and write its axis
bounds back into the kernel driver for the device.

The driver forgets applied bounds when the device is unplugged or the
machine reboots, so this is typically run from a udev rule or a login
script.`,
	Example: `  # Apply a saved calibration
  axscale load /dev/input/event3 joystick.map`,
	Args: cobra.ExactArgs(2),
	RunE: runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true

	devicePath, mapPath := args[0], args[1]

	dev, err := device.Open(devicePath)
	if err != nil {
		return err
	}
	defer dev.Close()

	skipped, err := calibrate.Load(dev, mapPath)
	if err != nil {
		return err
	}
	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "warning: skipped %d line(s) in %s that are not axis records\n",
			skipped, mapPath)
	}

	recordApply(dev, mapPath)
	fmt.Printf("Applied axis bounds from %s\n", mapPath)
	return nil
}

// devicesCmd lists the available input device nodes
var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List input devices and their identities",
	Long: `List the event device nodes under /dev/input with their names and
bus:vendor:product identities.

Devices marked with * have a mapping recorded in the axscale registry.`,
	Example: `  # Find which event node belongs to the joystick
  axscale devices`,
	Args: cobra.NoArgs,
	RunE: runDevices,
}

func runDevices(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true

	infos, err := device.List()
	if err != nil {
		return err
	}

	if len(infos) == 0 {
		fmt.Println("No input devices found.")
		fmt.Println("\nTroubleshooting:")
		fmt.Println("  - Check that the joystick is plugged in")
		fmt.Println("  - Confirm /dev/input/event* nodes exist")
		fmt.Println("  - Make sure your user can read them (usually the 'input' group)")
		return nil
	}

	reg := loadRegistryQuietly()

	fmt.Printf("Found %d input device(s):\n\n", len(infos))
	for _, info := range infos {
		marker := " "
		if reg != nil && info.ID != "" {
			if d := reg.GetDevice(info.ID); d != nil && d.MapFile != "" {
				marker = "*"
			}
		}
		name := info.Name
		if name == "" {
			name = "(unknown)"
		}
		id := info.ID
		if id == "" {
			id = "not readable"
		}
		fmt.Printf("%s %-20s %-32s [%s]\n", marker, info.Path, name, id)
	}

	fmt.Println("\nDevices marked * have a recorded mapping; apply one with 'axscale load'.")
	return nil
}

// monitorCmd shows live axis positions in a TUI
var monitorCmd = &cobra.Command{
	Use:   "monitor <device>",
	Short: "Watch a device's axes move in real time",
	Long: `Show a live view of a device's absolute axes. Each axis is drawn as a
bar inside its driver-reported range, next to the raw value and the
bounds seen during the session.

Run it after 'axscale load' to confirm a full stick sweep drives each
bar across its whole width. Press q to quit.`,
	Example: `  # Watch the joystick after calibrating it
  axscale monitor /dev/input/event3`,
	Args: cobra.ExactArgs(1),
	RunE: runMonitor,
}

func runMonitor(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("monitor needs an interactive terminal")
	}

	dev, err := device.Open(args[0])
	if err != nil {
		return err
	}
	defer dev.Close()

	p := tea.NewProgram(monitor.New(dev))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("monitor error: %w", err)
	}

	if m, ok := final.(monitor.Model); ok && m.Err() != nil {
		return fmt.Errorf("device stream ended: %w", m.Err())
	}
	return nil
}

// loadRegistryQuietly returns the device registry, or nil when it
// cannot be read. Commands never fail because of the registry; the
// mapping file on disk stays the source of truth.
func loadRegistryQuietly() *config.Registry {
	reg, err := config.LoadRegistry()
	if err != nil {
		logging.Warn("Could not load device registry", zap.Error(err))
		return nil
	}
	return reg
}

// recordCapture remembers which mapping file was captured from the
// device.
func recordCapture(dev *device.Device, mapPath string) {
	reg := loadRegistryQuietly()
	if reg == nil {
		return
	}
	reg.RecordCapture(dev.ID(), dev.Name(), dev.Path(), absPath(mapPath))
	if err := reg.Save(); err != nil {
		logging.Warn("Could not update device registry", zap.Error(err))
	}
}

// recordApply remembers that the mapping file was applied to the
// device.
func recordApply(dev *device.Device, mapPath string) {
	reg := loadRegistryQuietly()
	if reg == nil {
		return
	}
	reg.RecordApply(dev.ID(), dev.Name(), dev.Path(), absPath(mapPath))
	if err := reg.Save(); err != nil {
		logging.Warn("Could not update device registry", zap.Error(err))
	}
}

// absPath resolves the mapping file path for the registry so the entry
// stays usable from other working directories.
func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
