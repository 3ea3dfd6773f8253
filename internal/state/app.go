// Package state holds the application context shared by the CLI and the TUI.
//
// App replaces process-wide globals: it owns the loaded configuration, the
// latest device list snapshot with the current selection, and the file
// browser's directory. Loading (Load*) never mutates the App; results are
// stored with the matching Apply* call so that the TUI can load in background
// commands and apply in its update loop.
package state

import (
	"fmt"
	"os"
	"path/filepath"

	"wbfsmgr/internal/browse"
	"wbfsmgr/internal/config"
	"wbfsmgr/internal/drives"
	"wbfsmgr/internal/logger"
)

// NoSelection is the Current index when no device is selected.
const NoSelection = -1

// App is the application context. It is not safe for concurrent mutation.
type App struct {
	cfg        *config.Config
	enumerator *drives.Enumerator

	devices drives.DeviceList
	current int

	dir        string
	showHidden bool
	entries    []browse.Entry
}

// NewApp creates a context for cfg. The browser starts in the configured
// directory, or the working directory when none is set.
func NewApp(cfg *config.Config) (*App, error) {
	dir := cfg.Browser.StartDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	return &App{
		cfg:        cfg,
		enumerator: cfg.Devices.Enumerator(),
		devices:    drives.DeviceList{Preferred: drives.NoPreferred},
		current:    NoSelection,
		dir:        abs,
		showHidden: cfg.Browser.ShowHidden,
	}, nil
}

// Config returns the configuration the App was created with.
func (a *App) Config() *config.Config {
	return a.cfg
}

// LoadDevices enumerates devices using the configured switches.
func (a *App) LoadDevices() (drives.DeviceList, error) {
	return a.enumerator.Enumerate(a.cfg.Devices.EnumerateOptions())
}

// ApplyDevices stores a new device list. The current selection survives when
// the same device is still listed; otherwise the preferred device is selected.
func (a *App) ApplyDevices(list drives.DeviceList) {
	previous, hadSelection := a.CurrentDevice()

	a.devices = list
	a.current = list.Preferred
	if hadSelection {
		if i := list.IndexOf(previous); i >= 0 {
			a.current = i
		}
	}

	logger.Debug("device list updated", "devices", len(list.Devices), "current", a.current)
}

// ReloadDevices loads and applies a fresh device list. On failure the
// previous list is kept.
func (a *App) ReloadDevices() error {
	list, err := a.LoadDevices()
	if err != nil {
		return err
	}
	a.ApplyDevices(list)
	return nil
}

// Devices returns the current device list snapshot.
func (a *App) Devices() drives.DeviceList {
	return a.devices
}

// Current returns the selected index, or NoSelection.
func (a *App) Current() int {
	return a.current
}

// CurrentDevice returns the selected device.
func (a *App) CurrentDevice() (string, bool) {
	if a.current < 0 || a.current >= len(a.devices.Devices) {
		return "", false
	}
	return a.devices.Devices[a.current], true
}

// Select makes the device at index current.
func (a *App) Select(index int) error {
	if index < 0 || index >= len(a.devices.Devices) {
		return fmt.Errorf("device index %d out of range (have %d devices)", index, len(a.devices.Devices))
	}
	a.current = index
	return nil
}

// MountedAt reports where device is mounted, reading a fresh mount table.
func (a *App) MountedAt(device string) (string, bool, error) {
	return drives.IsMounted(a.cfg.Devices.MountSourceReader(), device, a.cfg.Devices.MountOptions())
}

// Dir returns the browser's current directory.
func (a *App) Dir() string {
	return a.dir
}

// Entries returns the last applied listing.
func (a *App) Entries() []browse.Entry {
	return a.entries
}

// ShowHidden reports whether dot-files are listed.
func (a *App) ShowHidden() bool {
	return a.showHidden
}

// ToggleHidden flips dot-file visibility and returns the new setting. The
// listing must be reloaded to reflect it.
func (a *App) ToggleHidden() bool {
	a.showHidden = !a.showHidden
	return a.showHidden
}

// Target returns the directory reached by entering name from the current
// directory. ".." goes to the parent.
func (a *App) Target(name string) string {
	if name == ".." {
		return filepath.Dir(a.dir)
	}
	return filepath.Join(a.dir, name)
}

// ListOptions returns the browser settings in effect now.
func (a *App) ListOptions() browse.Options {
	opts := a.cfg.Browser.ListOptions()
	opts.ShowHidden = a.showHidden
	return opts
}

// LoadDirectory lists dir with the browser settings.
func (a *App) LoadDirectory(dir string) ([]browse.Entry, error) {
	return browse.List(dir, a.ListOptions())
}

// ApplyDirectory makes dir the current directory with the given listing.
func (a *App) ApplyDirectory(dir string, entries []browse.Entry) {
	a.dir = dir
	a.entries = entries
}

// ChangeDir enters name (or ".."). On failure the current directory and
// listing are kept.
func (a *App) ChangeDir(name string) error {
	target := a.Target(name)
	entries, err := a.LoadDirectory(target)
	if err != nil {
		return err
	}
	a.ApplyDirectory(target, entries)
	return nil
}

// Refresh reloads the current directory.
func (a *App) Refresh() error {
	return a.ChangeDir(".")
}
