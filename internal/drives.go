package internal

import (
	"github.com/dustin/go-humanize"

	"wbfsmgr/internal/browse"
	"wbfsmgr/internal/drives"
	"wbfsmgr/internal/state"

	tea "github.com/charmbracelet/bubbletea"
)

// The commands below capture everything they need from the App when they are
// created; the returned functions run on Bubble Tea's goroutines and never
// touch the App.

// LoadDevices enumerates devices in the background.
func LoadDevices(app *state.App) tea.Cmd {
	enumerator := app.Config().Devices.Enumerator()
	opts := app.Config().Devices.EnumerateOptions()
	return func() tea.Msg {
		list, err := enumerator.Enumerate(opts)
		return state.DevicesLoadedMsg{List: list, Err: err}
	}
}

// LoadDirectory lists dir with the browser settings in effect now.
func LoadDirectory(app *state.App, dir string) tea.Cmd {
	opts := app.ListOptions()
	return func() tea.Msg {
		entries, err := browse.List(dir, opts)
		return state.DirectoryLoadedMsg{Dir: dir, Entries: entries, Err: err}
	}
}

// CheckMounted asks whether the device at index is mounted before it is
// selected.
func CheckMounted(app *state.App, index int, device string) tea.Cmd {
	src := app.Config().Devices.MountSourceReader()
	opts := app.Config().Devices.MountOptions()
	return func() tea.Msg {
		mountPoint, mounted, err := drives.IsMounted(src, device, opts)
		return state.MountStatusMsg{
			Index:      index,
			Device:     device,
			MountPoint: mountPoint,
			Mounted:    mounted,
			Err:        err,
		}
	}
}

// deviceSize renders a device's capacity for the selector, or "" if unknown.
func deviceSize(device string) string {
	size, err := drives.DeviceSize(device)
	if err != nil || size == 0 {
		return ""
	}
	return humanize.IBytes(size)
}
