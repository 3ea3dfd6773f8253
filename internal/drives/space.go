// Package drives provides block device discovery and mount-state lookup.
// This module handles capacity queries for devices and mounted filesystems.
package drives

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/disk"
	"golang.org/x/sys/unix"
)

// DeviceSize returns the capacity of a block device in bytes. Regular files
// (disk images) report their length.
func DeviceSize(device string) (uint64, error) {
	file, err := os.OpenFile(device, os.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", device, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", device, err)
	}
	if info.Mode().IsRegular() {
		return uint64(info.Size()), nil
	}
	if info.Mode()&os.ModeDevice == 0 || info.Mode()&os.ModeCharDevice != 0 {
		return 0, fmt.Errorf("%s is not a block device", device)
	}

	size, err := unix.IoctlGetInt(int(file.Fd()), unix.BLKGETSIZE64)
	if err != nil {
		return 0, fmt.Errorf("failed to get size of %s: %w", device, err)
	}
	return uint64(size), nil
}

// SpaceUsage is the capacity and usage of a mounted filesystem.
type SpaceUsage struct {
	Total uint64
	Used  uint64
	Free  uint64
}

// UsageFunc reports filesystem usage for a mount point.
type UsageFunc func(mountPoint string) (SpaceUsage, error)

// MountUsage queries the filesystem mounted at mountPoint.
func MountUsage(mountPoint string) (SpaceUsage, error) {
	stat, err := disk.Usage(mountPoint)
	if err != nil {
		return SpaceUsage{}, fmt.Errorf("failed to get filesystem stats for %s: %w", mountPoint, err)
	}
	return SpaceUsage{Total: stat.Total, Used: stat.Used, Free: stat.Free}, nil
}
