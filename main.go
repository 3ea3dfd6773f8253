// Package main is the entry point for wbfsmgr.
//
// All work happens in the commands package: without arguments wbfsmgr starts
// the interactive interface, with a subcommand it runs that command and exits.
package main

import (
	"errors"
	"fmt"
	"os"

	"wbfsmgr/internal/commands"
)

// Build-time variables injected via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.Version = version
	commands.Commit = commit
	commands.Date = date

	if err := commands.Execute(); err != nil {
		// "mounted" already reported the mount point
		if !errors.Is(err, commands.ErrDeviceMounted) {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		}
		os.Exit(1)
	}
}
