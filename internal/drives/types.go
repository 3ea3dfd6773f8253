// Package drives provides block device discovery and mount-state lookup.
// This module defines the core types used throughout the drives package.
package drives

// Default capacities used when a caller leaves a limit at zero.
const (
	DefaultMaxMounts  = 256
	DefaultMaxDevices = 256
	DefaultPathMax    = 4096
)

// NoPreferred is the DeviceList.Preferred value when no candidate carried the
// target signature.
const NoPreferred = -1

// MountEntry is one active device to mount point binding from the mount registry.
type MountEntry struct {
	Device     string // Canonical device path (symlinks resolved)
	MountPoint string // Directory the device is mounted on
}

// MountTable is a point-in-time snapshot of the mount registry.
// It is not kept live; load a new one to observe changes.
type MountTable struct {
	Entries []MountEntry
}

// RawMount is a registry record before any filtering or resolution.
type RawMount struct {
	Device     string
	MountPoint string
}

// MountOptions controls how a MountTable is built.
type MountOptions struct {
	MaxEntries int // Stored entries cap (DefaultMaxMounts when zero)
	LinkDepth  int // Symlink levels followed per device (1 when zero)
	PathMax    int // Resolved path length bound (DefaultPathMax when zero)
}

// DeviceList is the result of one enumeration. Devices are in enumeration order.
type DeviceList struct {
	Devices   []string
	Preferred int // Index into Devices, or NoPreferred
}

// PreferredDevice returns the device the enumerator would select by default.
func (l DeviceList) PreferredDevice() (string, bool) {
	if l.Preferred < 0 || l.Preferred >= len(l.Devices) {
		return "", false
	}
	return l.Devices[l.Preferred], true
}

// IndexOf returns the position of device in the list, or -1.
func (l DeviceList) IndexOf(device string) int {
	for i, d := range l.Devices {
		if d == device {
			return i
		}
	}
	return -1
}

// EnumerateOptions are the per-call switches of Enumerator.Enumerate.
type EnumerateOptions struct {
	SkipMounted    bool // Drop candidates that are currently mounted
	ListPartitions bool // Read the partition table instead of globbing device files
	MaxItems       int  // Result cap (DefaultMaxDevices when zero)
}
