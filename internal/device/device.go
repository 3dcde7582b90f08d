package device

import (
	"fmt"
	"sync"

	"github.com/holoplot/go-evdev"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/refi64/axscale/internal/logging"
)

// eventBuffer is the channel depth between the kernel reader goroutine
// and the consumer. The kernel keeps its own per-client queue, so this
// only needs to absorb short consumer stalls.
const eventBuffer = 16

// EventKind classifies the events a Device forwards from the kernel.
type EventKind uint8

const (
	// EventOther is anything that is not an absolute axis sample, such
	// as button chatter or ordinary sync reports.
	EventOther EventKind = iota
	// EventAbsolute is one sample for one absolute axis.
	EventAbsolute
	// EventDropped marks a kernel buffer overrun. Samples were lost and
	// the stream resynchronized.
	EventDropped
)

// Event is one translated input event.
type Event struct {
	Kind  EventKind
	Axis  uint16
	Value int32
}

// AxisInfo describes one absolute axis as reported by the driver.
type AxisInfo struct {
	Value int32
	Min   int32
	Max   int32
}

// Device is one opened evdev character device. It carries two
// descriptors: the evdev handle for reading events and metadata, and a
// raw descriptor reserved for calibration ioctls.
//
// The event stream starts on the first Events call and runs on its own
// goroutine; everything else must stay on one goroutine.
type Device struct {
	path string
	dev  *evdev.InputDevice
	ctl  int

	name string
	id   evdev.InputID
	abs  map[evdev.EvCode]evdev.AbsInfo

	events    chan Event
	done      chan struct{}
	pumpOnce  sync.Once
	closeOnce sync.Once

	// err is written by the pump before the events channel closes and
	// must only be read after the close is observed.
	err error
}

// Open opens the device node at path and snapshots its identity and
// absolute-axis capabilities. The node is opened read-write, matching
// what a later bounds update needs.
func Open(path string) (*Device, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening device %s: %w", path, err)
	}

	ctl, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		dev.Close()
		return nil, fmt.Errorf("opening control descriptor for %s: %w", path, err)
	}

	d := &Device{
		path:   path,
		dev:    dev,
		ctl:    ctl,
		abs:    map[evdev.EvCode]evdev.AbsInfo{},
		events: make(chan Event, eventBuffer),
		done:   make(chan struct{}),
	}

	if name, err := dev.Name(); err == nil {
		d.name = name
	}
	if id, err := dev.InputID(); err == nil {
		d.id = id
	}
	if infos, err := dev.AbsInfos(); err == nil {
		d.abs = infos
	}

	logging.Debug("Opened input device",
		zap.String("path", path),
		zap.String("name", d.name),
		zap.String("id", formatID(d.id)),
		zap.Int("abs_axes", len(d.abs)))

	return d, nil
}

// Name returns the device-reported name, or "" when unavailable.
func (d *Device) Name() string { return d.name }

// Path returns the device node path this device was opened from.
func (d *Device) Path() string { return d.path }

// ID returns the device identity in bustype:vendor:product form, for
// example "0003:054c:09cc".
func (d *Device) ID() string { return formatID(d.id) }

// HasAxis reports whether the device exposed the absolute axis at open
// time.
func (d *Device) HasAxis(code uint16) bool {
	_, ok := d.abs[evdev.EvCode(code)]
	return ok
}

// Axis returns the driver-reported state for one absolute axis. The
// bounds reflect any updates applied through this Device.
func (d *Device) Axis(code uint16) (AxisInfo, bool) {
	info, ok := d.abs[evdev.EvCode(code)]
	if !ok {
		return AxisInfo{}, false
	}
	return AxisInfo{Value: info.Value, Min: info.Minimum, Max: info.Maximum}, true
}

// SetAxisBounds rewrites the minimum and maximum of one absolute axis
// inside the kernel driver. The fuzz, flat and resolution the driver
// reported are preserved.
func (d *Device) SetAxisBounds(code uint16, min, max uint32) error {
	info, ok := d.abs[evdev.EvCode(code)]
	if !ok {
		return fmt.Errorf("device %s does not expose axis %d", d.path, code)
	}

	raw := absInfo{
		Value:      info.Value,
		Minimum:    int32(min),
		Maximum:    int32(max),
		Fuzz:       info.Fuzz,
		Flat:       info.Flat,
		Resolution: info.Resolution,
	}
	if err := setAbsInfo(d.ctl, code, &raw); err != nil {
		return fmt.Errorf("updating bounds of axis %d on %s: %w", code, d.path, err)
	}

	info.Minimum = int32(min)
	info.Maximum = int32(max)
	d.abs[evdev.EvCode(code)] = info

	logging.Debug("Applied axis bounds",
		zap.String("path", d.path),
		zap.Uint16("axis", code),
		zap.Uint32("min", min),
		zap.Uint32("max", max))

	return nil
}

// Events returns the device's translated event stream. The reader
// goroutine starts on the first call; the channel closes when reading
// stops, after which Err reports the cause.
func (d *Device) Events() <-chan Event {
	d.pumpOnce.Do(func() { go d.pump() })
	return d.events
}

// Err returns the error that ended the event stream. Valid only after
// the Events channel has closed.
func (d *Device) Err() error { return d.err }

func (d *Device) pump() {
	defer close(d.events)
	for {
		raw, err := d.dev.ReadOne()
		if err != nil {
			d.err = err
			return
		}
		select {
		case d.events <- translate(raw):
		case <-d.done:
			return
		}
	}
}

// translate maps a raw kernel event onto the stream's event kinds.
func translate(raw *evdev.InputEvent) Event {
	switch {
	case raw.Type == evdev.EV_ABS:
		return Event{Kind: EventAbsolute, Axis: uint16(raw.Code), Value: raw.Value}
	case raw.Type == evdev.EV_SYN && raw.Code == evdev.SYN_DROPPED:
		return Event{Kind: EventDropped}
	default:
		return Event{Kind: EventOther}
	}
}

// Close releases both descriptors and stops the event stream. Safe to
// call more than once.
func (d *Device) Close() error {
	var closeErr error
	d.closeOnce.Do(func() {
		close(d.done)
		d.dev.Close()
		if err := unix.Close(d.ctl); err != nil {
			closeErr = fmt.Errorf("closing control descriptor for %s: %w", d.path, err)
		}
		logging.Debug("Closed input device", zap.String("path", d.path))
	})
	return closeErr
}

// formatID renders an input identity as bustype:vendor:product hex.
func formatID(id evdev.InputID) string {
	return fmt.Sprintf("%04x:%04x:%04x", id.BusType, id.Vendor, id.Product)
}
