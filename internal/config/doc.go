// Package config manages the axscale device registry.
//
// The registry is a YAML file recording, per input device identity,
// which mapping file holds its calibration and when bounds were last
// captured or applied. Identities are bustype:vendor:product strings,
// so an entry keeps matching its device across replugs even when the
// /dev/input node path changes.
//
// # Registry File Location
//
// The registry is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/axscale/devices.yaml or $HOME/.config/axscale/devices.yaml
//   - macOS: $HOME/.config/axscale/devices.yaml
//   - Windows: %LOCALAPPDATA%\axscale\devices.yaml
//
// # Usage Example
//
//	// Load the global registry
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Note a fresh capture for a device
//	registry.RecordCapture("0003:054c:09cc", "Wireless Controller",
//	    "/dev/input/event7", "/home/u/pad.map")
//
//	// Save changes atomically
//	if err := registry.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across
// goroutines. File operations are protected by a mutex to ensure atomic
// writes.
package config
