package output

import (
	"github.com/dustin/go-humanize"

	"wbfsmgr/internal/browse"
	"wbfsmgr/internal/drives"
)

// DeviceRow is one enumerated device as shown by "wbfsmgr devices".
type DeviceRow struct {
	Device    string `json:"device" yaml:"device"`
	Preferred bool   `json:"preferred" yaml:"preferred"`
	Size      uint64 `json:"size,omitempty" yaml:"size,omitempty"`
}

// DeviceTable is the devices command result.
type DeviceTable []DeviceRow

// NewDeviceTable converts a device list; sizeOf may be nil or return 0 when
// the size is unknown.
func NewDeviceTable(list drives.DeviceList, sizeOf func(device string) uint64) DeviceTable {
	rows := make(DeviceTable, 0, len(list.Devices))
	for i, device := range list.Devices {
		row := DeviceRow{Device: device, Preferred: i == list.Preferred}
		if sizeOf != nil {
			row.Size = sizeOf(device)
		}
		rows = append(rows, row)
	}
	return rows
}

func (t DeviceTable) Headers() []string {
	return []string{"Device", "Size", "WBFS"}
}

func (t DeviceTable) Rows() [][]string {
	rows := make([][]string, 0, len(t))
	for _, d := range t {
		size := "-"
		if d.Size > 0 {
			size = humanize.IBytes(d.Size)
		}
		wbfs := ""
		if d.Preferred {
			wbfs = "*"
		}
		rows = append(rows, []string{d.Device, size, wbfs})
	}
	return rows
}

// MountRow is one mount table entry.
type MountRow struct {
	Device     string `json:"device" yaml:"device"`
	MountPoint string `json:"mount_point" yaml:"mount_point"`
	Total      uint64 `json:"total,omitempty" yaml:"total,omitempty"`
	Used       uint64 `json:"used,omitempty" yaml:"used,omitempty"`
}

// MountTable is the mounts command result.
type MountTable []MountRow

// NewMountTable converts a loaded mount table. usage may be nil; entries
// whose usage cannot be read are shown without it.
func NewMountTable(table *drives.MountTable, usage drives.UsageFunc) MountTable {
	rows := make(MountTable, 0, len(table.Entries))
	for _, e := range table.Entries {
		row := MountRow{Device: e.Device, MountPoint: e.MountPoint}
		if usage != nil {
			if u, err := usage(e.MountPoint); err == nil {
				row.Total, row.Used = u.Total, u.Used
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func (t MountTable) Headers() []string {
	return []string{"Device", "Mount Point", "Size", "Used"}
}

func (t MountTable) Rows() [][]string {
	rows := make([][]string, 0, len(t))
	for _, m := range t {
		size, used := "-", "-"
		if m.Total > 0 {
			size, used = humanize.IBytes(m.Total), humanize.IBytes(m.Used)
		}
		rows = append(rows, []string{m.Device, m.MountPoint, size, used})
	}
	return rows
}

// EntryTable is the ls command result.
type EntryTable []browse.Entry

func (t EntryTable) Headers() []string {
	return []string{"Name", "Type", "Size"}
}

func (t EntryTable) Rows() [][]string {
	rows := make([][]string, 0, len(t))
	for _, e := range t {
		rows = append(rows, []string{e.DisplayName(), e.Kind.String(), e.SizeString()})
	}
	return rows
}
