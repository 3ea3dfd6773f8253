// Package config provides configuration management for wbfsmgr.
//
// This module handles:
//   - Loading settings from defaults, an optional YAML file and WBFSMGR_* variables
//   - Validating device discovery, browser and logging settings
//   - Saving the effective configuration back to disk
//
// The configuration lives at $XDG_CONFIG_HOME/wbfsmgr/config.yaml, falling back
// to ~/.config/wbfsmgr/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the complete application configuration.
type Config struct {
	Devices DevicesConfig `mapstructure:"devices" json:"devices" yaml:"devices"`
	Browser BrowserConfig `mapstructure:"browser" json:"browser" yaml:"browser"`
	Logging LoggingConfig `mapstructure:"logging" json:"logging" yaml:"logging"`
}

// DevicesConfig controls block device enumeration and mount detection.
type DevicesConfig struct {
	// SkipMounted drops devices that are currently mounted from the device list.
	SkipMounted bool `mapstructure:"skip_mounted" json:"skip_mounted" yaml:"skip_mounted"`

	// ListPartitions reads the partition table instead of globbing device files.
	ListPartitions bool `mapstructure:"list_partitions" json:"list_partitions" yaml:"list_partitions"`

	// MountSource selects the mount registry reader: "proc" or "gopsutil".
	MountSource string `mapstructure:"mount_source" json:"mount_source" yaml:"mount_source"`

	MountsPath     string   `mapstructure:"mounts_path" json:"mounts_path" yaml:"mounts_path"`
	PartitionsPath string   `mapstructure:"partitions_path" json:"partitions_path" yaml:"partitions_path"`
	DevDir         string   `mapstructure:"dev_dir" json:"dev_dir" yaml:"dev_dir"`
	GlobPrefixes   []string `mapstructure:"glob_prefixes" json:"glob_prefixes" yaml:"glob_prefixes"`

	MaxDevices int `mapstructure:"max_devices" json:"max_devices" yaml:"max_devices"`
	MaxMounts  int `mapstructure:"max_mounts" json:"max_mounts" yaml:"max_mounts"`

	// LinkDepth is how many symlink levels are followed per mounted device.
	LinkDepth int `mapstructure:"link_depth" json:"link_depth" yaml:"link_depth"`
	PathMax   int `mapstructure:"path_max" json:"path_max" yaml:"path_max"`

	// Signature is the byte string expected at the start of a preferred device.
	Signature string `mapstructure:"signature" json:"signature" yaml:"signature"`
}

// BrowserConfig controls the image file browser.
type BrowserConfig struct {
	// Extension filters files by name suffix; empty shows every file.
	Extension  string `mapstructure:"extension" json:"extension" yaml:"extension"`
	ShowHidden bool   `mapstructure:"show_hidden" json:"show_hidden" yaml:"show_hidden"`
	MaxEntries int    `mapstructure:"max_entries" json:"max_entries" yaml:"max_entries"`

	// StartDir is the first directory shown; empty means the working directory.
	StartDir string `mapstructure:"start_dir" json:"start_dir" yaml:"start_dir"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level  string `mapstructure:"level" json:"level" yaml:"level"`
	Format string `mapstructure:"format" json:"format" yaml:"format"`
	Output string `mapstructure:"output" json:"output" yaml:"output"`
}

// Load loads configuration from file, environment, and defaults.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (WBFSMGR_*)
//  2. Configuration file
//  3. Default values
//
// An empty configPath uses the default location. A missing file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setupViper(v, configPath)

	if _, err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Save writes cfg as YAML to path. The file is replaced atomically.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp config file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename config file: %w", err)
	}

	return nil
}

// setupViper configures viper with defaults, environment variables and the
// config file location.
func setupViper(v *viper.Viper, configPath string) {
	// Every key needs a default so that AutomaticEnv can override it even
	// when no config file sets it. Example: WBFSMGR_DEVICES_SKIP_MOUNTED=false
	setViperDefaults(v, GetDefaultConfig())

	v.SetEnvPrefix("WBFSMGR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(getConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
}

// readConfigFile reads the configuration file if it exists.
// Returns (fileFound, error) where fileFound indicates if a config file was found.
func readConfigFile(v *viper.Viper) (bool, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return false, nil
		}
		// explicit config file that does not exist
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read config file: %w", err)
	}

	return true, nil
}

// getConfigDir returns $XDG_CONFIG_HOME/wbfsmgr or ~/.config/wbfsmgr.
func getConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "wbfsmgr")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(home, ".config", "wbfsmgr")
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}
