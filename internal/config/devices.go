package config

import (
	"wbfsmgr/internal/browse"
	"wbfsmgr/internal/drives"
)

// MountSourceReader returns the registry reader selected by mount_source.
func (d DevicesConfig) MountSourceReader() drives.MountSource {
	if d.MountSource == MountSourceGopsutil {
		return drives.PartitionStats{}
	}
	return drives.ProcMounts{Path: d.MountsPath}
}

// MountOptions returns the table limits for mount lookups.
func (d DevicesConfig) MountOptions() drives.MountOptions {
	return drives.MountOptions{
		MaxEntries: d.MaxMounts,
		LinkDepth:  d.LinkDepth,
		PathMax:    d.PathMax,
	}
}

// Enumerator builds a device enumerator from the settings.
func (d DevicesConfig) Enumerator() *drives.Enumerator {
	return &drives.Enumerator{
		PartitionsPath: d.PartitionsPath,
		DevDir:         d.DevDir,
		GlobPrefixes:   d.GlobPrefixes,
		Mounts:         d.MountSourceReader(),
		MountOptions:   d.MountOptions(),
		Probe:          drives.NewMagicProbe([]byte(d.Signature)),
	}
}

// EnumerateOptions returns the per-call switches for Enumerate.
func (d DevicesConfig) EnumerateOptions() drives.EnumerateOptions {
	return drives.EnumerateOptions{
		SkipMounted:    d.SkipMounted,
		ListPartitions: d.ListPartitions,
		MaxItems:       d.MaxDevices,
	}
}

// ListOptions returns the directory listing options.
func (b BrowserConfig) ListOptions() browse.Options {
	return browse.Options{
		Extension:  b.Extension,
		ShowHidden: b.ShowHidden,
		MaxItems:   b.MaxEntries,
	}
}
