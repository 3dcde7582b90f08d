package calibrate

import (
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/refi64/axscale/internal/axis"
	"github.com/refi64/axscale/internal/device"
)

// fakeDevice feeds a scripted event stream to the calibrator.
type fakeDevice struct {
	axes   map[uint16]bool
	events chan device.Event
	err    error
}

func newFakeDevice(axes ...uint16) *fakeDevice {
	m := map[uint16]bool{}
	for _, code := range axes {
		m[code] = true
	}
	// Unbuffered, so each test send completes only once the calibrator
	// has taken the event.
	return &fakeDevice{axes: m, events: make(chan device.Event)}
}

func (d *fakeDevice) HasAxis(code uint16) bool    { return d.axes[code] }
func (d *fakeDevice) Events() <-chan device.Event { return d.events }
func (d *fakeDevice) Err() error                  { return d.err }

func (d *fakeDevice) sendAbs(code uint16, value int32) {
	d.events <- device.Event{Kind: device.EventAbsolute, Axis: code, Value: value}
}

// applySink records bounds applied to it.
type applySink struct {
	axes   map[uint16]bool
	bounds map[uint16][2]uint32
}

func newApplySink(axes ...uint16) *applySink {
	m := map[uint16]bool{}
	for _, code := range axes {
		m[code] = true
	}
	return &applySink{axes: m, bounds: map[uint16][2]uint32{}}
}

func (s *applySink) HasAxis(code uint16) bool { return s.axes[code] }

func (s *applySink) SetAxisBounds(code uint16, min, max uint32) error {
	s.bounds[code] = [2]uint32{min, max}
	return nil
}

func TestCaptureFoldsSamples(t *testing.T) {
	dev := newFakeDevice(0, 1)
	table := axis.NewTable()
	table.Seed(dev)

	interrupt := make(chan os.Signal, 1)
	done := make(chan error, 1)
	go func() { done <- capture(table, dev, interrupt) }()

	dev.sendAbs(0, 10)
	dev.sendAbs(0, 200)
	dev.sendAbs(0, 5)
	dev.sendAbs(1, 50)

	// Noise the capture must ignore: a dropped-buffer marker, button
	// chatter, and an absolute sample outside the tracked span.
	dev.events <- device.Event{Kind: device.EventDropped}
	dev.events <- device.Event{Kind: device.EventOther}
	dev.sendAbs(40, 7)

	interrupt <- syscall.SIGINT
	if err := <-done; err != nil {
		t.Fatalf("capture() error = %v", err)
	}

	r0, _ := table.Get(0)
	if r0.Min != 5 || r0.Max != 200 {
		t.Errorf("axis 0 bounds = %d/%d, want 5/200", r0.Min, r0.Max)
	}

	r1, _ := table.Get(1)
	if r1.Min != 50 || r1.Max != 50 {
		t.Errorf("axis 1 bounds = %d/%d, want 50/50", r1.Min, r1.Max)
	}
}

func TestCaptureStreamFailure(t *testing.T) {
	dev := newFakeDevice(0)
	dev.err = errors.New("device unplugged")
	table := axis.NewTable()
	table.Seed(dev)

	interrupt := make(chan os.Signal, 1)
	done := make(chan error, 1)
	go func() { done <- capture(table, dev, interrupt) }()

	close(dev.events)

	err := <-done
	if !IsIOError(err) {
		t.Fatalf("capture() error = %v, want an I/O failure", err)
	}
	if !errors.Is(err, dev.err) {
		t.Errorf("capture() error should wrap the stream error, got %v", err)
	}
	if !strings.Contains(err.Error(), "reading next event") {
		t.Errorf("capture() error = %q, want mention of reading next event", err)
	}
}

func TestCaptureUndeclaredAxis(t *testing.T) {
	// Axis 1 is inside the tracked span but the device never declared
	// it, so a sample for it is a broken invariant, not data.
	dev := newFakeDevice(0)
	table := axis.NewTable()
	table.Seed(dev)

	interrupt := make(chan os.Signal, 1)
	done := make(chan error, 1)
	go func() { done <- capture(table, dev, interrupt) }()

	dev.sendAbs(1, 3)

	err := <-done
	if !IsInternalError(err) {
		t.Fatalf("capture() error = %v, want an internal error", err)
	}
	if !strings.Contains(err.Error(), "axis 1 is marked as non-present but sent events") {
		t.Errorf("capture() error = %q, want the non-present axis message", err)
	}
}

func TestDetect(t *testing.T) {
	// Keep SIGINT non-fatal for the test process even in the window
	// before Detect installs its own handler.
	guard := make(chan os.Signal, 1)
	signal.Notify(guard, os.Interrupt)
	defer signal.Stop(guard)

	dev := newFakeDevice(0, 1)
	mapPath := filepath.Join(t.TempDir(), "pad.map")

	done := make(chan error, 1)
	go func() { done <- Detect(dev, mapPath) }()

	dev.sendAbs(0, 10)
	dev.sendAbs(0, 200)
	dev.sendAbs(0, 5)
	dev.sendAbs(1, 50)

	// Every sample has been taken; end the capture the way a user would.
	if err := syscall.Kill(syscall.Getpid(), syscall.SIGINT); err != nil {
		t.Fatalf("sending SIGINT: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Detect() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Detect() did not return after the interrupt")
	}

	data, err := os.ReadFile(mapPath)
	if err != nil {
		t.Fatalf("reading mapping file: %v", err)
	}

	want := "axis 0: min = 5, max = 200\n" +
		"axis 1: min = 50, max = 50\n"
	if string(data) != want {
		t.Errorf("mapping file:\n%q\nwant:\n%q", data, want)
	}
}

func TestDetectOpenFailure(t *testing.T) {
	dev := newFakeDevice(0)
	mapPath := filepath.Join(t.TempDir(), "no-such-dir", "pad.map")

	err := Detect(dev, mapPath)
	if !IsOpenError(err) {
		t.Fatalf("Detect() error = %v, want an open failure", err)
	}
}

func TestLoad(t *testing.T) {
	mapPath := filepath.Join(t.TempDir(), "pad.map")
	content := "axis 0: min = 5, max = 200\n" +
		"axis 1: min = 50, max = 50\n"
	if err := os.WriteFile(mapPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing mapping file: %v", err)
	}

	sink := newApplySink(0, 1)
	skipped, err := Load(sink, mapPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if skipped != 0 {
		t.Errorf("Load() skipped = %d, want 0", skipped)
	}

	if got := sink.bounds[0]; got != [2]uint32{5, 200} {
		t.Errorf("axis 0 bounds = %v, want [5 200]", got)
	}
	if got := sink.bounds[1]; got != [2]uint32{50, 50} {
		t.Errorf("axis 1 bounds = %v, want [50 50]", got)
	}
}

func TestLoadSkipsMalformed(t *testing.T) {
	mapPath := filepath.Join(t.TempDir(), "pad.map")
	content := "axis 0: min = 5, max = 200\n" +
		"not a record\n" +
		"axis 1: min = 50, max = 50\n"
	if err := os.WriteFile(mapPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing mapping file: %v", err)
	}

	sink := newApplySink(0, 1)
	skipped, err := Load(sink, mapPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if skipped != 1 {
		t.Errorf("Load() skipped = %d, want 1", skipped)
	}
	if len(sink.bounds) != 2 {
		t.Errorf("Load() applied %d axes, want 2", len(sink.bounds))
	}
}

func TestLoadConsistencyFault(t *testing.T) {
	mapPath := filepath.Join(t.TempDir(), "pad.map")
	content := "axis 0: min = 5, max = 200\n" +
		"axis 2: min = 1, max = 9\n"
	if err := os.WriteFile(mapPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing mapping file: %v", err)
	}

	// The sink lacks axis 2.
	sink := newApplySink(0)
	_, err := Load(sink, mapPath)
	if !IsConsistencyError(err) {
		t.Fatalf("Load() error = %v, want a consistency fault", err)
	}

	var consErr *axis.ConsistencyError
	if !errors.As(err, &consErr) || consErr.Axis != 2 {
		t.Errorf("Load() error should carry the failing axis, got %v", err)
	}

	// Axis 0 was applied before the fault and must stay applied.
	if got := sink.bounds[0]; got != [2]uint32{5, 200} {
		t.Errorf("axis 0 bounds after fault = %v, want [5 200]", got)
	}
}

func TestLoadOpenFailure(t *testing.T) {
	sink := newApplySink(0)
	_, err := Load(sink, filepath.Join(t.TempDir(), "absent.map"))
	if !IsOpenError(err) {
		t.Fatalf("Load() error = %v, want an open failure", err)
	}
}
