package device

import (
	"fmt"

	"github.com/holoplot/go-evdev"
)

// Info identifies one input device node without holding it open.
type Info struct {
	Path string
	Name string
	ID   string // bustype:vendor:product, "" when the node could not be queried
}

// List enumerates the event device nodes under /dev/input. Nodes that
// cannot be opened for an identity query still appear, with an empty ID.
func List() ([]Info, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, fmt.Errorf("listing input devices: %w", err)
	}

	devices := make([]Info, 0, len(paths))
	for _, p := range paths {
		info := Info{Path: p.Path, Name: p.Name}
		if dev, err := evdev.Open(p.Path); err == nil {
			if id, err := dev.InputID(); err == nil {
				info.ID = formatID(id)
			}
			dev.Close()
		}
		devices = append(devices, info)
	}

	return devices, nil
}
