package calibrate

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/refi64/axscale/internal/axis"
	"github.com/refi64/axscale/internal/device"
	"github.com/refi64/axscale/internal/logging"
)

// EventDevice is the calibrator's view of a capture device: which
// absolute axes it exposes, plus its live event stream.
type EventDevice interface {
	axis.CapabilitySource
	Events() <-chan device.Event
	Err() error
}

// Detect captures axis bounds from dev into the mapping file at mapPath.
//
// It seeds a table from the device's capabilities, opens the mapping
// file, then folds absolute axis samples until the user interrupts with
// Ctrl-C. There is no timeout: the capture waits as long as the user
// needs. On interrupt the observed bounds are written out, one line per
// present axis.
func Detect(dev EventDevice, mapPath string) error {
	table := axis.NewTable()
	table.Seed(dev)

	f, err := os.Create(mapPath)
	if err != nil {
		return NewOpenError(fmt.Sprintf("opening %s", mapPath), err)
	}
	defer f.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	fmt.Println("Please slowly move all joysticks in a full circle at least once")
	fmt.Println("Press Ctrl-C when complete")

	logging.Info("Capture started", zap.String("map_file", mapPath))

	if err := capture(table, dev, interrupt); err != nil {
		return err
	}

	if err := table.WriteTo(f); err != nil {
		return NewIOError(fmt.Sprintf("writing mapping to %s", mapPath), err)
	}

	logging.Info("Capture finished", zap.String("map_file", mapPath))
	return nil
}

// capture folds absolute axis samples into the table until an interrupt
// arrives. A closed event stream is fatal; dropped-buffer markers and
// non-axis events are not.
func capture(table *axis.Table, dev EventDevice, interrupt <-chan os.Signal) error {
	events := dev.Events()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return NewIOError("reading next event", dev.Err())
			}
			if ev.Kind != device.EventAbsolute {
				// Dropped samples lose nothing that matters for basic
				// calibration.
				continue
			}
			if ev.Axis < axis.FirstAxis || ev.Axis > axis.LastAxis {
				continue
			}
			if err := table.Observe(ev.Axis, uint32(ev.Value)); err != nil {
				return NewInternalError(fmt.Sprintf(
					"axis %d is marked as non-present but sent events", ev.Axis))
			}

		case <-interrupt:
			return nil
		}
	}
}

// Load applies the mapping file at mapPath to the sink, returning the
// number of lines skipped as malformed. Axes named by the mapping must
// exist on the device; axes the mapping does not name keep their current
// bounds.
func Load(sink axis.BoundsSink, mapPath string) (int, error) {
	f, err := os.Open(mapPath)
	if err != nil {
		return 0, NewOpenError(fmt.Sprintf("opening %s", mapPath), err)
	}
	defer f.Close()

	table := axis.NewTable()
	skipped, err := table.ReadFrom(f)
	if err != nil {
		return skipped, NewIOError(fmt.Sprintf("reading mapping from %s", mapPath), err)
	}
	if skipped > 0 {
		logging.Warn("Mapping file contains lines that are not records",
			zap.String("map_file", mapPath),
			zap.Int("skipped", skipped))
	}

	if err := table.Apply(sink); err != nil {
		var consErr *axis.ConsistencyError
		if errors.As(err, &consErr) {
			return skipped, NewConsistencyError("applying mapping to device", err)
		}
		return skipped, NewIOError("applying mapping to device", err)
	}

	logging.Info("Mapping applied", zap.String("map_file", mapPath))
	return skipped, nil
}
