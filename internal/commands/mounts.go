package commands

import (
	"github.com/spf13/cobra"

	"wbfsmgr/internal/drives"
	"wbfsmgr/internal/output"
)

var (
	mountsOutput string
	mountsJSON   bool
)

var mountsCmd = &cobra.Command{
	Use:   "mounts",
	Short: "Show the mount table",
	Long: `Show the mount table as wbfsmgr sees it.

Device paths are canonicalized and the table is capped at
devices.max_mounts entries, exactly as used for mount checks.
Size and usage come from the mounted filesystem.

Examples:
  wbfsmgr mounts
  wbfsmgr mounts -o yaml`,
	Args: cobra.NoArgs,
	RunE: runMounts,
}

func init() {
	formatFlag(mountsCmd, &mountsOutput, &mountsJSON)
}

func runMounts(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(outputFormat(mountsOutput, mountsJSON))
	if err != nil {
		return err
	}

	table, err := drives.LoadMountTable(cfg.Devices.MountSourceReader(), cfg.Devices.MountOptions())
	if err != nil {
		return err
	}

	return output.Print(out(cmd), format, output.NewMountTable(table, drives.MountUsage))
}
