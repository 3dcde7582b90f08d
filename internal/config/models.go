package config

import "time"

// Registry represents the entire device registry file.
// It records which mapping file calibrates which input device, so the
// right file can be re-applied after a reboot or replug.
type Registry struct {
	Version int                `yaml:"version"`
	Devices map[string]*Device `yaml:"devices,omitempty"` // Keyed by bustype:vendor:product identity
}

// Device records the calibration state for a single input device
// identity. The identity survives replugging; the node path may not.
type Device struct {
	Name       string    `yaml:"name,omitempty"`       // Device-reported name
	LastPath   string    `yaml:"last_path,omitempty"`  // Node path the device last appeared at
	MapFile    string    `yaml:"map_file,omitempty"`   // Mapping file holding its bounds
	Calibrated time.Time `yaml:"calibrated,omitempty"` // Last successful capture
	Applied    time.Time `yaml:"applied,omitempty"`    // Last successful apply
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: 1,
		Devices: make(map[string]*Device),
	}
}

// GetDevice retrieves a device entry by identity.
// Returns nil if the device was never recorded.
func (r *Registry) GetDevice(id string) *Device {
	return r.Devices[id]
}

// EnsureDevice ensures a device entry exists in the registry.
// Returns the entry (existing or newly created).
func (r *Registry) EnsureDevice(id string) *Device {
	if r.Devices == nil {
		r.Devices = make(map[string]*Device)
	}

	if device, exists := r.Devices[id]; exists {
		return device
	}

	device := &Device{}
	r.Devices[id] = device
	return device
}

// RecordCapture notes a successful bounds capture for a device.
func (r *Registry) RecordCapture(id, name, path, mapFile string) {
	device := r.EnsureDevice(id)
	device.Name = name
	device.LastPath = path
	device.MapFile = mapFile
	device.Calibrated = time.Now()
}

// RecordApply notes a successful mapping apply for a device.
func (r *Registry) RecordApply(id, name, path, mapFile string) {
	device := r.EnsureDevice(id)
	device.Name = name
	device.LastPath = path
	device.MapFile = mapFile
	device.Applied = time.Now()
}
