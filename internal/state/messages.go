package state

import (
	"wbfsmgr/internal/browse"
	"wbfsmgr/internal/drives"
)

// DevicesLoadedMsg carries the result of a background device enumeration.
type DevicesLoadedMsg struct {
	List drives.DeviceList
	Err  error
}

// DirectoryLoadedMsg carries a background directory listing.
type DirectoryLoadedMsg struct {
	Dir     string
	Entries []browse.Entry
	Err     error
}

// MountStatusMsg reports whether a device picked by the user is mounted.
type MountStatusMsg struct {
	Index      int
	Device     string
	MountPoint string
	Mounted    bool
	Err        error
}
