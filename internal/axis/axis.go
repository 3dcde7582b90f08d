package axis

import (
	"fmt"
	"math"
)

// Absolute axis codes tracked by a Table. These mirror the Linux input
// codes ABS_X through ABS_RZ, the six analog channels a joystick-class
// device reports.
const (
	FirstAxis uint16 = 0x00 // ABS_X
	LastAxis  uint16 = 0x05 // ABS_RZ

	axisCount = int(LastAxis-FirstAxis) + 1
)

// SentinelMin seeds the minimum bound of a freshly tracked axis. It sits
// at the top of the 16-bit domain joystick axes report in, so the first
// observed sample always replaces it.
const SentinelMin uint32 = math.MaxUint16

// Range holds the calibration bounds observed for a single absolute axis.
//
// When Present is false the bounds are meaningless and must never be
// written out or applied. A Present range with Min greater than Max is
// one that never observed a sample, with the seed values still in place.
type Range struct {
	Present bool
	Min     uint32
	Max     uint32
}

// CapabilitySource reports which absolute axes a device exposes.
type CapabilitySource interface {
	HasAxis(code uint16) bool
}

// BoundsSink accepts calibrated bounds for the axes it exposes.
type BoundsSink interface {
	CapabilitySource
	SetAxisBounds(code uint16, min, max uint32) error
}

// ConsistencyError reports a mapping entry for an axis the target device
// does not expose.
type ConsistencyError struct {
	Axis uint16
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("axis %d exists in mapping but not in device", e.Axis)
}
