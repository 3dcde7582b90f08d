// Package calibrate implements the two calibration operations: capturing
// axis bounds from a live device and applying a saved mapping back.
//
// # Capture (Detect)
//
// Detect seeds a bounds table from the device's absolute-axis
// capabilities, opens the destination mapping file, and then waits on
// the device's event stream. Every absolute axis sample widens the
// observed minimum/maximum for its axis. The wait is unbounded; the
// user ends it with Ctrl-C, at which point the table is written out.
//
// A failure to open the mapping file is fatal before any waiting
// begins. A sample for an axis the device never declared aborts the
// capture as an internal fault rather than being folded in.
//
// # Apply (Load)
//
// Load parses a mapping file tolerantly, skipping lines that do not
// match the record grammar, and pushes the recorded bounds into the
// device in ascending axis order. A mapping that names an axis the
// device lacks aborts the pass; bounds already applied stay applied.
//
// # Error Handling
//
// Both operations return *Error values categorized by FaultType, so
// callers can distinguish open failures, mid-operation I/O failures,
// mapping/device mismatches, and broken internal invariants.
package calibrate
