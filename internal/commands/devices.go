package commands

import (
	"github.com/spf13/cobra"

	"wbfsmgr/internal/drives"
	"wbfsmgr/internal/logger"
	"wbfsmgr/internal/output"
)

var (
	devicesOutput      string
	devicesJSON        bool
	devicesSkipMounted bool
	devicesPartitions  bool
	devicesGlob        bool
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List candidate WBFS devices",
	Long: `List block devices that can hold a WBFS filesystem.

Devices come from the kernel partition table, or from matching /dev
entries with --glob. The device carrying the WBFS signature is marked
with "*".

Examples:
  # List devices using the configured defaults
  wbfsmgr devices

  # Include mounted devices
  wbfsmgr devices --skip-mounted=false

  # Scan /dev instead of the partition table, as JSON
  wbfsmgr devices --glob --json`,
	RunE: runDevices,
}

func init() {
	devicesCmd.Flags().BoolVar(&devicesSkipMounted, "skip-mounted", true, "Leave out devices that are currently mounted")
	devicesCmd.Flags().BoolVar(&devicesPartitions, "partitions", false, "Enumerate from the kernel partition table")
	devicesCmd.Flags().BoolVar(&devicesGlob, "glob", false, "Enumerate by matching device names in /dev")
	devicesCmd.MarkFlagsMutuallyExclusive("partitions", "glob")
	formatFlag(devicesCmd, &devicesOutput, &devicesJSON)
}

func runDevices(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(outputFormat(devicesOutput, devicesJSON))
	if err != nil {
		return err
	}

	opts := cfg.Devices.EnumerateOptions()
	if cmd.Flags().Changed("skip-mounted") {
		opts.SkipMounted = devicesSkipMounted
	}
	switch {
	case devicesPartitions:
		opts.ListPartitions = true
	case devicesGlob:
		opts.ListPartitions = false
	}

	list, err := cfg.Devices.Enumerator().Enumerate(opts)
	if err != nil {
		return err
	}

	return output.Print(out(cmd), format, output.NewDeviceTable(list, sizeOrZero))
}

// sizeOrZero returns the device capacity, or 0 when it cannot be read.
func sizeOrZero(device string) uint64 {
	size, err := drives.DeviceSize(device)
	if err != nil {
		logger.Debug("device size unavailable", "device", device, "error", err)
		return 0
	}
	return size
}
