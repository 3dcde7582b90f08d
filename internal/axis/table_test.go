package axis

import (
	"errors"
	"testing"
)

// fakeCaps reports the axes listed as present.
type fakeCaps map[uint16]bool

func (f fakeCaps) HasAxis(code uint16) bool { return f[code] }

// recordingSink records SetAxisBounds calls in order.
type recordingSink struct {
	fakeCaps
	calls  []uint16
	bounds map[uint16][2]uint32
	fail   error
}

func newRecordingSink(codes ...uint16) *recordingSink {
	caps := fakeCaps{}
	for _, code := range codes {
		caps[code] = true
	}
	return &recordingSink{fakeCaps: caps, bounds: map[uint16][2]uint32{}}
}

func (s *recordingSink) SetAxisBounds(code uint16, min, max uint32) error {
	if s.fail != nil {
		return s.fail
	}
	s.calls = append(s.calls, code)
	s.bounds[code] = [2]uint32{min, max}
	return nil
}

func TestTableSeed(t *testing.T) {
	table := NewTable()
	table.Seed(fakeCaps{0: true, 3: true})

	for code := FirstAxis; code <= LastAxis; code++ {
		r, ok := table.Get(code)
		if !ok {
			t.Fatalf("Get(%d) reported out of range", code)
		}

		wantPresent := code == 0 || code == 3
		if r.Present != wantPresent {
			t.Errorf("axis %d Present = %v, want %v", code, r.Present, wantPresent)
		}

		if wantPresent && (r.Min != SentinelMin || r.Max != 0) {
			t.Errorf("axis %d seeded bounds = %d/%d, want %d/0", code, r.Min, r.Max, SentinelMin)
		}
	}
}

func TestTableObserveBounds(t *testing.T) {
	tests := []struct {
		name    string
		samples []uint32
		wantMin uint32
		wantMax uint32
	}{
		{
			name:    "min and max from mixed samples",
			samples: []uint32{10, 200, 5},
			wantMin: 5,
			wantMax: 200,
		},
		{
			name:    "single sample collapses the range",
			samples: []uint32{50},
			wantMin: 50,
			wantMax: 50,
		},
		{
			name:    "ascending sweep",
			samples: []uint32{1, 2, 3, 4},
			wantMin: 1,
			wantMax: 4,
		},
		{
			name:    "sample at the top of the domain",
			samples: []uint32{65535},
			wantMin: 65535,
			wantMax: 65535,
		},
		{
			name:    "sample at zero",
			samples: []uint32{0},
			wantMin: 0,
			wantMax: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable()
			table.Seed(fakeCaps{2: true})

			for _, v := range tt.samples {
				if err := table.Observe(2, v); err != nil {
					t.Fatalf("Observe(2, %d) error = %v", 2, err)
				}
			}

			r, _ := table.Get(2)
			if r.Min != tt.wantMin || r.Max != tt.wantMax {
				t.Errorf("bounds = %d/%d, want %d/%d", r.Min, r.Max, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestTableObserveNotPresent(t *testing.T) {
	table := NewTable()
	table.Seed(fakeCaps{0: true})

	if err := table.Observe(1, 42); err == nil {
		t.Error("Observe() on a non-present axis should fail")
	}

	if err := table.Observe(LastAxis+1, 42); err == nil {
		t.Error("Observe() outside the tracked span should fail")
	}

	// The present axis must be untouched by the failed observations.
	r, _ := table.Get(0)
	if r.Min != SentinelMin || r.Max != 0 {
		t.Errorf("axis 0 bounds = %d/%d, want seed values", r.Min, r.Max)
	}
}

func TestTableObserveNoSamples(t *testing.T) {
	table := NewTable()
	table.Seed(fakeCaps{0: true})

	// An axis that never emitted keeps its seed bounds, recognizable by
	// Min greater than Max.
	r, _ := table.Get(0)
	if r.Min <= r.Max {
		t.Errorf("unsampled axis bounds = %d/%d, want Min > Max", r.Min, r.Max)
	}
}

func TestTableApply(t *testing.T) {
	table := NewTable()
	table.Seed(fakeCaps{0: true, 1: true, 4: true})
	mustObserve(t, table, 0, 10, 200, 5)
	mustObserve(t, table, 1, 50)
	mustObserve(t, table, 4, 7, 90)

	sink := newRecordingSink(0, 1, 4)
	if err := table.Apply(sink); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	wantCalls := []uint16{0, 1, 4}
	if len(sink.calls) != len(wantCalls) {
		t.Fatalf("Apply() made %d calls, want %d", len(sink.calls), len(wantCalls))
	}
	for i, code := range wantCalls {
		if sink.calls[i] != code {
			t.Errorf("call %d targeted axis %d, want %d", i, sink.calls[i], code)
		}
	}

	if got := sink.bounds[0]; got != [2]uint32{5, 200} {
		t.Errorf("axis 0 bounds = %v, want [5 200]", got)
	}
	if got := sink.bounds[1]; got != [2]uint32{50, 50} {
		t.Errorf("axis 1 bounds = %v, want [50 50]", got)
	}
}

func TestTableApplyMissingAxis(t *testing.T) {
	table := NewTable()
	table.Seed(fakeCaps{0: true, 2: true, 3: true})
	mustObserve(t, table, 0, 1, 9)
	mustObserve(t, table, 2, 1, 9)
	mustObserve(t, table, 3, 1, 9)

	// The sink lacks axis 2, so the pass must stop there.
	sink := newRecordingSink(0, 3)
	err := table.Apply(sink)
	if err == nil {
		t.Fatal("Apply() should fail when the sink lacks a mapped axis")
	}

	var consErr *ConsistencyError
	if !errors.As(err, &consErr) {
		t.Fatalf("Apply() error = %v, want *ConsistencyError", err)
	}
	if consErr.Axis != 2 {
		t.Errorf("ConsistencyError.Axis = %d, want 2", consErr.Axis)
	}

	// Axis 0 was applied before the fault and stays applied; axis 3 was
	// never reached.
	if len(sink.calls) != 1 || sink.calls[0] != 0 {
		t.Errorf("calls before abort = %v, want [0]", sink.calls)
	}
}

func TestTableApplySinkError(t *testing.T) {
	table := NewTable()
	table.Seed(fakeCaps{1: true})
	mustObserve(t, table, 1, 3, 8)

	sink := newRecordingSink(1)
	sink.fail = errors.New("device gone")

	err := table.Apply(sink)
	if err == nil {
		t.Fatal("Apply() should surface sink errors")
	}
	if !errors.Is(err, sink.fail) {
		t.Errorf("Apply() error = %v, want wrapped %v", err, sink.fail)
	}
}

func TestTableApplyIdempotent(t *testing.T) {
	table := NewTable()
	table.Seed(fakeCaps{0: true})
	mustObserve(t, table, 0, 12, 300)

	sink := newRecordingSink(0)
	for i := 0; i < 2; i++ {
		if err := table.Apply(sink); err != nil {
			t.Fatalf("Apply() pass %d error = %v", i+1, err)
		}
		if got := sink.bounds[0]; got != [2]uint32{12, 300} {
			t.Errorf("pass %d bounds = %v, want [12 300]", i+1, got)
		}
	}
}

func TestTableGet(t *testing.T) {
	table := NewTable()

	if _, ok := table.Get(LastAxis); !ok {
		t.Error("Get(LastAxis) should be in range")
	}
	if _, ok := table.Get(LastAxis + 1); ok {
		t.Error("Get(LastAxis+1) should be out of range")
	}
}

func mustObserve(t *testing.T, table *Table, code uint16, values ...uint32) {
	t.Helper()
	for _, v := range values {
		if err := table.Observe(code, v); err != nil {
			t.Fatalf("Observe(%d, %d) error = %v", code, v, err)
		}
	}
}
