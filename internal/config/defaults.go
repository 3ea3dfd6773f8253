package config

import (
	"github.com/spf13/viper"

	"wbfsmgr/internal/drives"
)

// Mount registry readers accepted in devices.mount_source.
const (
	MountSourceProc     = "proc"
	MountSourceGopsutil = "gopsutil"
)

// DefaultExtension is the browser's file filter out of the box.
const DefaultExtension = "iso"

// GetDefaultConfig returns a configuration with every default applied.
func GetDefaultConfig() *Config {
	cfg := &Config{
		Devices: DevicesConfig{
			SkipMounted:    true,
			ListPartitions: true,
		},
		Browser: BrowserConfig{
			Extension: DefaultExtension,
		},
	}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills in zero values. Booleans and the browser extension are
// left alone because their zero value is a valid choice; their defaults come
// from GetDefaultConfig.
func ApplyDefaults(cfg *Config) {
	applyDevicesDefaults(&cfg.Devices)
	applyBrowserDefaults(&cfg.Browser)
	applyLoggingDefaults(&cfg.Logging)
}

func applyDevicesDefaults(cfg *DevicesConfig) {
	if cfg.MountSource == "" {
		cfg.MountSource = MountSourceProc
	}
	if cfg.MountsPath == "" {
		cfg.MountsPath = drives.DefaultMountsPath
	}
	if cfg.PartitionsPath == "" {
		cfg.PartitionsPath = drives.DefaultPartitionsPath
	}
	if cfg.DevDir == "" {
		cfg.DevDir = drives.DefaultDevDir
	}
	if len(cfg.GlobPrefixes) == 0 {
		cfg.GlobPrefixes = append([]string(nil), drives.DefaultGlobPrefixes...)
	}
	if cfg.MaxDevices == 0 {
		cfg.MaxDevices = drives.DefaultMaxDevices
	}
	if cfg.MaxMounts == 0 {
		cfg.MaxMounts = drives.DefaultMaxMounts
	}
	if cfg.LinkDepth == 0 {
		cfg.LinkDepth = 1
	}
	if cfg.PathMax == 0 {
		cfg.PathMax = drives.DefaultPathMax
	}
	if cfg.Signature == "" {
		cfg.Signature = string(drives.WBFSMagic)
	}
}

func applyBrowserDefaults(cfg *BrowserConfig) {
	if cfg.MaxEntries == 0 {
		cfg.MaxEntries = 4096
	}
}

func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stderr"
	}
}

// setViperDefaults registers every key of cfg with v.
func setViperDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("devices.skip_mounted", cfg.Devices.SkipMounted)
	v.SetDefault("devices.list_partitions", cfg.Devices.ListPartitions)
	v.SetDefault("devices.mount_source", cfg.Devices.MountSource)
	v.SetDefault("devices.mounts_path", cfg.Devices.MountsPath)
	v.SetDefault("devices.partitions_path", cfg.Devices.PartitionsPath)
	v.SetDefault("devices.dev_dir", cfg.Devices.DevDir)
	v.SetDefault("devices.glob_prefixes", cfg.Devices.GlobPrefixes)
	v.SetDefault("devices.max_devices", cfg.Devices.MaxDevices)
	v.SetDefault("devices.max_mounts", cfg.Devices.MaxMounts)
	v.SetDefault("devices.link_depth", cfg.Devices.LinkDepth)
	v.SetDefault("devices.path_max", cfg.Devices.PathMax)
	v.SetDefault("devices.signature", cfg.Devices.Signature)

	v.SetDefault("browser.extension", cfg.Browser.Extension)
	v.SetDefault("browser.show_hidden", cfg.Browser.ShowHidden)
	v.SetDefault("browser.max_entries", cfg.Browser.MaxEntries)
	v.SetDefault("browser.start_dir", cfg.Browser.StartDir)

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.output", cfg.Logging.Output)
}
