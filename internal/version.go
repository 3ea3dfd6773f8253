// Package internal provides version information for the wbfsmgr application.
//
// This module centralizes the version-related constants and provides formatted strings
// for consistent display across the TUI and the CLI. Release builds override the
// version through the commands package (set with -ldflags); AppVersion is the
// fallback used by development builds.
package internal

// Application metadata constants.
const (
	// AppName is the official name of the application
	AppName = "wbfsmgr"

	// AppVersion follows semantic versioning (major.minor.patch)
	AppVersion = "0.3.0"

	// AppAuthor contains author information
	AppAuthor = "the wbfsmgr authors"

	// AppDesc is the tagline/description used in UI and documentation
	AppDesc = "WBFS Device & Disc Image Manager"
)

// version is the version shown in the UI. It starts as AppVersion and is
// replaced by SetVersion when the binary carries a build version.
var version = AppVersion

// SetVersion overrides the displayed version. Empty and "dev" are ignored.
func SetVersion(v string) {
	if v == "" || v == "dev" {
		return
	}
	version = v
}

// GetVersionString returns just the version number for programmatic use.
// Example: "0.3.0"
func GetVersionString() string {
	return version
}

// GetFullVersionString returns the application name with version for display.
// Example: "wbfsmgr v0.3.0"
func GetFullVersionString() string {
	return AppName + " v" + version
}

// GetSubtitle returns a compact version and author string for UI headers.
// Example: "v0.3.0 by the wbfsmgr authors"
func GetSubtitle() string {
	return "v" + version + " by " + AppAuthor
}

// GetAboutText returns the standard about text for the about screen.
// Example: "wbfsmgr v0.3.0 - WBFS Device & Disc Image Manager"
func GetAboutText() string {
	return GetFullVersionString() + " - " + AppDesc
}
