package config

import (
	"errors"
	"fmt"
	"strings"

	"wbfsmgr/internal/logger"
)

// Validate checks cfg for values the rest of the program cannot work with.
// All problems are reported together.
func Validate(cfg *Config) error {
	var errs []error

	d := cfg.Devices
	switch d.MountSource {
	case MountSourceProc, MountSourceGopsutil:
	default:
		errs = append(errs, fmt.Errorf("devices.mount_source: unknown source %q (want %s or %s)",
			d.MountSource, MountSourceProc, MountSourceGopsutil))
	}
	for name, value := range map[string]int{
		"devices.max_devices": d.MaxDevices,
		"devices.max_mounts":  d.MaxMounts,
		"devices.link_depth":  d.LinkDepth,
		"devices.path_max":    d.PathMax,
		"browser.max_entries": cfg.Browser.MaxEntries,
	} {
		if value < 0 {
			errs = append(errs, fmt.Errorf("%s: must not be negative, got %d", name, value))
		}
	}
	if d.Signature == "" {
		errs = append(errs, errors.New("devices.signature: must not be empty"))
	}
	for _, prefix := range d.GlobPrefixes {
		if prefix == "" || strings.ContainsAny(prefix, `/*?[\`) {
			errs = append(errs, fmt.Errorf("devices.glob_prefixes: invalid prefix %q", prefix))
		}
	}

	if _, ok := logger.ParseLevel(cfg.Logging.Level); !ok {
		errs = append(errs, fmt.Errorf("logging.level: unknown level %q", cfg.Logging.Level))
	}
	switch strings.ToLower(cfg.Logging.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format: unknown format %q (want text or json)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}
