package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wbfsmgr/internal/drives"
)

// ErrDeviceMounted is returned by "mounted" when the device is mounted, so
// scripts can test the exit status.
var ErrDeviceMounted = errors.New("device is mounted")

var mountedQuiet bool

var mountedCmd = &cobra.Command{
	Use:   "mounted <device>",
	Short: "Check whether a device is mounted",
	Long: `Check whether a device is mounted.

The device path is canonicalized (symlinks such as /dev/disk/by-id/...
are followed) before it is compared with the mount table. The command
exits with status 1 when the device is mounted.

Examples:
  wbfsmgr mounted /dev/sdb1
  wbfsmgr mounted -q /dev/disk/by-label/GAMES && echo free`,
	Args: cobra.ExactArgs(1),
	RunE: runMounted,
}

func init() {
	mountedCmd.Flags().BoolVarP(&mountedQuiet, "quiet", "q", false, "Print nothing; report through the exit status")
}

func runMounted(cmd *cobra.Command, args []string) error {
	device := args[0]
	opts := cfg.Devices.MountOptions()

	// compare the canonical name, as stored in the mount table
	query := device
	if resolved, err := (drives.Resolver{MaxDepth: opts.LinkDepth, PathMax: opts.PathMax}).Resolve(device); err == nil {
		query = resolved
	}

	mountPoint, mounted, err := drives.IsMounted(cfg.Devices.MountSourceReader(), query, opts)
	if err != nil {
		return err
	}

	if !mounted {
		if !mountedQuiet {
			fmt.Fprintf(out(cmd), "%s is not mounted\n", device)
		}
		return nil
	}

	if !mountedQuiet {
		fmt.Fprintf(out(cmd), "%s is mounted at %s\n", device, mountPoint)
	}
	return fmt.Errorf("%s: %w", device, ErrDeviceMounted)
}
