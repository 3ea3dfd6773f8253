// Package drives provides block device discovery and mount-state lookup.
// This module handles reading the mount registry and answering mount queries.
package drives

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"

	"wbfsmgr/internal/logger"
)

// DefaultMountsPath is the line-oriented mount registry on Linux.
const DefaultMountsPath = "/proc/mounts"

// MountSource yields raw registry records in registry order.
type MountSource interface {
	ReadMounts() ([]RawMount, error)
}

// ProcMounts reads a /proc/mounts formatted file.
type ProcMounts struct {
	Path string // DefaultMountsPath when empty
}

// ReadMounts parses the registry line by line. Lines with fewer than two
// fields are ignored; extra fields (type, options, dump, pass) are dropped.
func (p ProcMounts) ReadMounts() ([]RawMount, error) {
	path := p.Path
	if path == "" {
		path = DefaultMountsPath
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "read mounts", Path: path, Err: err}
	}
	defer file.Close()

	var mounts []RawMount
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		mounts = append(mounts, RawMount{
			Device:     unescapeMountField(fields[0]),
			MountPoint: unescapeMountField(fields[1]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, &IOError{Op: "read mounts", Path: path, Err: err}
	}

	return mounts, nil
}

// unescapeMountField decodes the \ooo octal escapes the kernel uses for
// spaces, tabs, newlines and backslashes in registry fields.
func unescapeMountField(field string) string {
	if !strings.Contains(field, `\`) {
		return field
	}

	var b strings.Builder
	b.Grow(len(field))
	for i := 0; i < len(field); i++ {
		if field[i] == '\\' && i+3 < len(field) && isOctal(field[i+1:i+4]) {
			v, _ := strconv.ParseUint(field[i+1:i+4], 8, 8)
			b.WriteByte(byte(v))
			i += 3
			continue
		}
		b.WriteByte(field[i])
	}
	return b.String()
}

func isOctal(s string) bool {
	if len(s) != 3 || s[0] > '3' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '7' {
			return false
		}
	}
	return true
}

// PartitionStats is the structured registry variant backed by gopsutil.
type PartitionStats struct {
	// Partitions defaults to disk.Partitions. Tests substitute a fixed list.
	Partitions func(all bool) ([]disk.PartitionStat, error)
}

// ReadMounts returns every mounted filesystem, pseudo filesystems included, so
// the same filtering applies as for ProcMounts.
func (p PartitionStats) ReadMounts() ([]RawMount, error) {
	partitions := p.Partitions
	if partitions == nil {
		partitions = disk.Partitions
	}

	stats, err := partitions(true)
	if err != nil {
		return nil, &IOError{Op: "read partitions stats", Err: err}
	}

	mounts := make([]RawMount, 0, len(stats))
	for _, s := range stats {
		mounts = append(mounts, RawMount{Device: s.Device, MountPoint: s.Mountpoint})
	}
	return mounts, nil
}

// LoadMountTable builds a fresh MountTable from src. Pseudo mounts (device not
// an absolute path) and devices that cannot be resolved are left out; only a
// failure to read the registry itself is returned.
func LoadMountTable(src MountSource, opts MountOptions) (*MountTable, error) {
	raw, err := src.ReadMounts()
	if err != nil {
		return nil, err
	}

	maxEntries := opts.MaxEntries
	if maxEntries <= 0 {
		maxEntries = DefaultMaxMounts
	}
	resolver := Resolver{MaxDepth: opts.LinkDepth, PathMax: opts.PathMax}

	table := &MountTable{Entries: make([]MountEntry, 0, min(len(raw), maxEntries))}
	for _, m := range raw {
		if len(table.Entries) >= maxEntries {
			break
		}

		// pseudo mounts: proc, sysfs, tmpfs ...
		if !strings.HasPrefix(m.Device, "/") {
			continue
		}

		device, err := resolver.Resolve(m.Device)
		if err != nil {
			logger.Debug("mount entry skipped", "device", m.Device, "mount_point", m.MountPoint, "error", err)
			continue
		}

		table.Entries = append(table.Entries, MountEntry{Device: device, MountPoint: m.MountPoint})
	}

	logger.Debug("mount table loaded", "records", len(raw), "entries", len(table.Entries))
	return table, nil
}

// Lookup reports where device is mounted. An absolute stored device matches
// any queried device that starts with it, so a recorded /dev/sda1 also claims
// /dev/sda10. Other stored devices must match exactly. First match wins.
func (mt *MountTable) Lookup(device string) (string, bool) {
	if mt == nil {
		return "", false
	}

	for _, entry := range mt.Entries {
		if strings.HasPrefix(entry.Device, "/") {
			if strings.HasPrefix(device, entry.Device) {
				return entry.MountPoint, true
			}
		} else if device == entry.Device {
			return entry.MountPoint, true
		}
	}
	return "", false
}

// IsMounted loads a fresh table from src and looks device up in it.
func IsMounted(src MountSource, device string, opts MountOptions) (string, bool, error) {
	table, err := LoadMountTable(src, opts)
	if err != nil {
		return "", false, err
	}

	mountPoint, ok := table.Lookup(device)
	return mountPoint, ok, nil
}
