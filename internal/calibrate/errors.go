package calibrate

import (
	"fmt"
	"strings"
)

// FaultType represents the category of failure that ended an operation.
type FaultType int

const (
	// FaultOpen indicates the device node or mapping file could not be
	// opened.
	FaultOpen FaultType = iota
	// FaultIO indicates a read or write failed mid-operation. These are
	// not treated as transient and are never retried.
	FaultIO
	// FaultConsistency indicates the mapping names an axis the device
	// does not expose.
	FaultConsistency
	// FaultInternal indicates a broken invariant inside the calibrator,
	// such as a sample arriving for an axis never marked present.
	FaultInternal
)

// String returns a human-readable name for the fault type.
func (ft FaultType) String() string {
	switch ft {
	case FaultOpen:
		return "open failure"
	case FaultIO:
		return "I/O failure"
	case FaultConsistency:
		return "consistency fault"
	case FaultInternal:
		return "internal error"
	default:
		return fmt.Sprintf("FaultType(%d)", int(ft))
	}
}

// Error is a calibration failure carrying its fault category and cause.
type Error struct {
	Type    FaultType // category of failure
	Message string    // human-readable description
	Err     error     // underlying error, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewOpenError creates an open failure.
func NewOpenError(message string, err error) *Error {
	return &Error{Type: FaultOpen, Message: message, Err: err}
}

// NewIOError creates an I/O failure.
func NewIOError(message string, err error) *Error {
	return &Error{Type: FaultIO, Message: message, Err: err}
}

// NewConsistencyError creates a consistency fault.
func NewConsistencyError(message string, err error) *Error {
	return &Error{Type: FaultConsistency, Message: message, Err: err}
}

// NewInternalError creates an internal invariant failure.
func NewInternalError(message string) *Error {
	return &Error{Type: FaultInternal, Message: message}
}

// IsOpenError checks if an error is an open failure.
func IsOpenError(err error) bool {
	if calErr, ok := err.(*Error); ok {
		return calErr.Type == FaultOpen
	}
	return false
}

// IsIOError checks if an error is an I/O failure.
func IsIOError(err error) bool {
	if calErr, ok := err.(*Error); ok {
		return calErr.Type == FaultIO
	}
	return false
}

// IsConsistencyError checks if an error is a consistency fault.
func IsConsistencyError(err error) bool {
	if calErr, ok := err.(*Error); ok {
		return calErr.Type == FaultConsistency
	}
	return false
}

// IsInternalError checks if an error is an internal invariant failure.
func IsInternalError(err error) bool {
	if calErr, ok := err.(*Error); ok {
		return calErr.Type == FaultInternal
	}
	return false
}

// TroubleshootingHint returns user-friendly advice for an error, or ""
// when there is nothing useful to add.
func TroubleshootingHint(err error) string {
	calErr, ok := err.(*Error)
	if !ok {
		return ""
	}

	switch calErr.Type {
	case FaultOpen:
		return strings.Join([]string{
			"Troubleshooting:",
			"  - Check that the device is plugged in and the path is correct",
			"  - Opening /dev/input nodes usually needs membership in the 'input' group or root",
			"  - Run 'axscale devices' to list the available nodes",
		}, "\n")

	case FaultConsistency:
		return strings.Join([]string{
			"Troubleshooting:",
			"  - The mapping file was probably captured from a different device",
			"  - Re-run 'axscale detect' against this device to build a fresh mapping",
		}, "\n")

	case FaultIO:
		return strings.Join([]string{
			"Troubleshooting:",
			"  - The device may have been unplugged mid-operation",
			"  - Check 'axscale devices' and retry against the current node",
		}, "\n")

	default:
		return ""
	}
}
