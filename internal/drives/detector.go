// Package drives provides block device discovery and mount-state lookup.
// This module handles candidate device enumeration and preferred-device selection.
package drives

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"wbfsmgr/internal/logger"
)

// Enumeration defaults for Linux.
const (
	DefaultPartitionsPath = "/proc/partitions"
	DefaultDevDir         = "/dev"
)

// DefaultGlobPrefixes are the device-file name prefixes scanned in glob mode:
// ATA-style then SCSI-style disks.
var DefaultGlobPrefixes = []string{"hd", "sd"}

// Enumerator lists candidate block devices. The zero value reads the Linux
// defaults, consults /proc/mounts and looks for the WBFS signature.
type Enumerator struct {
	PartitionsPath string      // DefaultPartitionsPath when empty
	DevDir         string      // DefaultDevDir when empty
	GlobPrefixes   []string    // DefaultGlobPrefixes when nil
	Mounts         MountSource // ProcMounts{} when nil
	MountOptions   MountOptions
	Probe          Prober // NewMagicProbe(WBFSMagic) when nil
}

// Enumerate builds a fresh DeviceList. Only unreadable inputs fail the call:
// the partition table in partition mode, and the mount registry when mounted
// devices must be skipped.
func (e *Enumerator) Enumerate(opts EnumerateOptions) (DeviceList, error) {
	empty := DeviceList{Preferred: NoPreferred}

	var mounts *MountTable
	if opts.SkipMounted {
		table, err := LoadMountTable(e.mountSource(), e.MountOptions)
		if err != nil {
			return empty, err
		}
		mounts = table
	}

	var candidates []string
	if opts.ListPartitions {
		names, err := readPartitionNames(e.partitionsPath())
		if err != nil {
			return empty, err
		}
		for _, name := range names {
			candidates = append(candidates, filepath.Join(e.devDir(), name))
		}
	} else {
		candidates = e.globDevices()
	}

	maxItems := opts.MaxItems
	if maxItems <= 0 {
		maxItems = DefaultMaxDevices
	}

	devices := make([]string, 0, min(len(candidates), maxItems))
	for _, device := range candidates {
		if len(devices) >= maxItems {
			break
		}
		if mountPoint, ok := mounts.Lookup(device); ok {
			logger.Debug("skipping mounted device", "device", device, "mount_point", mountPoint)
			continue
		}
		devices = append(devices, device)
	}

	list := DeviceList{Devices: devices, Preferred: e.findPreferred(devices)}
	logger.Debug("devices enumerated",
		"partitions", opts.ListPartitions,
		"candidates", len(candidates),
		"devices", len(devices),
		"preferred", list.Preferred)
	return list, nil
}

// findPreferred returns the index of the first device the probe accepts.
func (e *Enumerator) findPreferred(devices []string) int {
	probe := e.Probe
	if probe == nil {
		probe = NewMagicProbe(WBFSMagic)
	}

	for i, device := range devices {
		ok, err := probe.Probe(device)
		if err != nil {
			logger.Debug("signature probe failed", "device", device, "error", err)
			continue
		}
		if ok {
			return i
		}
	}
	return NoPreferred
}

// globDevices expands each prefix under DevDir, keeping prefix order.
func (e *Enumerator) globDevices() []string {
	prefixes := e.GlobPrefixes
	if prefixes == nil {
		prefixes = DefaultGlobPrefixes
	}

	var devices []string
	for _, prefix := range prefixes {
		matches, err := filepath.Glob(filepath.Join(e.devDir(), prefix+"*"))
		if err != nil {
			// only ErrBadPattern; a prefix with glob metacharacters is a config mistake
			logger.Warn("bad device glob prefix", "prefix", prefix, "error", err)
			continue
		}
		devices = append(devices, matches...)
	}
	return devices
}

// readPartitionNames parses a /proc/partitions formatted table:
//
//	major minor  #blocks  name
//
//	   8        0  488386584 sda
//	   8        1  488385536 sda1
//
// The header line is skipped, as are blank lines, short rows and rows with a
// block count of 0 or 1 (extended partition containers).
func readPartitionNames(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "read partitions", Path: path, Err: err}
	}
	defer file.Close()

	var names []string
	scanner := bufio.NewScanner(file)
	header := true
	for scanner.Scan() {
		if header {
			header = false
			continue
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 {
			continue
		}
		if blocks := fields[2]; blocks == "0" || blocks == "1" {
			continue
		}
		names = append(names, fields[3])
	}
	if err := scanner.Err(); err != nil {
		return nil, &IOError{Op: "read partitions", Path: path, Err: err}
	}

	return names, nil
}

func (e *Enumerator) partitionsPath() string {
	if e.PartitionsPath == "" {
		return DefaultPartitionsPath
	}
	return e.PartitionsPath
}

func (e *Enumerator) devDir() string {
	if e.DevDir == "" {
		return DefaultDevDir
	}
	return e.DevDir
}

func (e *Enumerator) mountSource() MountSource {
	if e.Mounts == nil {
		return ProcMounts{}
	}
	return e.Mounts
}

// IsIOError reports whether err is a whole-call discovery failure.
func IsIOError(err error) bool {
	return errors.Is(err, ErrIO)
}
