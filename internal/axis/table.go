package axis

import "fmt"

// Table tracks calibration bounds for the contiguous span of absolute
// axis codes from FirstAxis through LastAxis. A Table serves a single
// capture or apply pass and is not safe for concurrent use.
type Table struct {
	ranges [axisCount]Range
}

// NewTable returns an empty table with no axes marked present.
func NewTable() *Table {
	return &Table{}
}

// at returns the tracked range for code, or nil when code falls outside
// the tracked span.
func (t *Table) at(code uint16) *Range {
	if code < FirstAxis || code > LastAxis {
		return nil
	}
	return &t.ranges[code-FirstAxis]
}

// Get returns the range tracked for the given axis code. The second
// return is false when the code falls outside the tracked span.
func (t *Table) Get(code uint16) (Range, bool) {
	r := t.at(code)
	if r == nil {
		return Range{}, false
	}
	return *r, true
}

// Seed marks every axis the capability source reports as present and
// installs the seed bounds, so the first sample observed for an axis
// becomes both its minimum and maximum candidate.
func (t *Table) Seed(src CapabilitySource) {
	for code := FirstAxis; code <= LastAxis; code++ {
		if !src.HasAxis(code) {
			continue
		}
		*t.at(code) = Range{Present: true, Min: SentinelMin, Max: 0}
	}
}

// Observe folds one raw sample into the bounds of the given axis. The
// axis must be inside the tracked span and marked present; the device
// promised at seed time that only present axes emit events, so a
// violation here is a broken invariant the caller must escalate rather
// than ignore.
func (t *Table) Observe(code uint16, value uint32) error {
	r := t.at(code)
	if r == nil || !r.Present {
		return fmt.Errorf("axis %d is not marked present", code)
	}
	if value > r.Max {
		r.Max = value
	}
	if value < r.Min {
		r.Min = value
	}
	return nil
}

// Apply pushes the bounds of every present axis into the sink, in
// ascending axis order. An axis the sink does not expose aborts the pass
// with a *ConsistencyError; axes applied before the failing one keep
// their new bounds.
func (t *Table) Apply(sink BoundsSink) error {
	for code := FirstAxis; code <= LastAxis; code++ {
		r := t.at(code)
		if !r.Present {
			continue
		}
		if !sink.HasAxis(code) {
			return &ConsistencyError{Axis: code}
		}
		if err := sink.SetAxisBounds(code, r.Min, r.Max); err != nil {
			return fmt.Errorf("setting bounds for axis %d: %w", code, err)
		}
	}
	return nil
}
