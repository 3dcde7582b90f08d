// Package axis maintains per-axis calibration bounds for the absolute
// axes of joystick-class input devices.
//
// The central type is Table, a fixed-size table of bounds covering the
// contiguous Linux axis codes ABS_X through ABS_RZ. A Table is seeded
// from a device's capabilities, folds raw samples into per-axis
// minimum/maximum bounds, applies those bounds back to a device, and
// round-trips through the plain-text mapping file format.
//
// # Mapping File Format
//
// A mapping file holds one record per calibrated axis, in ascending
// axis order:
//
//	axis 0: min = 118, max = 65419
//	axis 1: min = 130, max = 65471
//	axis 5: min = 0, max = 255
//
// Reading is tolerant: lines that do not match the record grammar are
// counted and skipped, never fatal. Writing emits only axes marked
// present.
//
// # Usage Example
//
//	table := axis.NewTable()
//	table.Seed(dev)
//
//	// Fold samples as they arrive.
//	if err := table.Observe(code, value); err != nil {
//	    // Only non-present axes fail; treat as an internal fault.
//	}
//
//	// Persist and later re-apply.
//	err = table.WriteTo(file)
//	skipped, err := table.ReadFrom(file)
//	err = table.Apply(dev)
//
// # Error Handling
//
// Apply distinguishes two failures:
//   - *ConsistencyError: the mapping names an axis the device lacks.
//     The pass aborts; bounds already applied are not rolled back.
//   - Sink errors: the device rejected a bounds update. Wrapped with
//     the failing axis code.
//
// # Thread Safety
//
// A Table serves one capture or apply pass at a time. Nothing in this
// package is safe for concurrent use.
package axis
