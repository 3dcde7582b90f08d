// Package device wraps Linux evdev character devices for axis
// calibration.
//
// A Device exposes three things on top of an opened event node:
//
//   - The capability and identity snapshot taken at open time: which
//     absolute axes exist, their driver-reported ranges, and the
//     bustype:vendor:product identity.
//   - A translated event stream. Raw kernel events collapse into three
//     kinds: absolute axis samples, dropped-buffer markers, and
//     everything else. The stream runs on its own goroutine and closes
//     when reading stops; Err then reports why.
//   - Bounds updates. SetAxisBounds rewrites one axis's minimum and
//     maximum inside the kernel driver via the EVIOCSABS ioctl, so the
//     new range outlives this process and is visible to every client of
//     the node. Fuzz, flat and resolution are left as the driver
//     reported them.
//
// List enumerates the nodes under /dev/input for device pickers and
// diagnostics.
package device
