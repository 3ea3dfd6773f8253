package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"wbfsmgr/internal/browse"
	"wbfsmgr/internal/output"
)

var (
	lsOutput string
	lsJSON   bool
	lsExt    string
	lsAll    bool
)

var lsCmd = &cobra.Command{
	Use:   "ls [dir]",
	Short: "List disc images in a directory",
	Long: `List a directory the way the file browser shows it.

Directories come first, then files, each group in byte order. Only
files ending in the configured extension (browser.extension, "iso"
by default) are listed; pass --ext "" to list every file.

Examples:
  wbfsmgr ls ~/games
  wbfsmgr ls --ext wbfs --all /mnt/usb
  wbfsmgr ls --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLs,
}

func init() {
	lsCmd.Flags().StringVar(&lsExt, "ext", "", "Only list files with this suffix (default from browser.extension)")
	lsCmd.Flags().BoolVarP(&lsAll, "all", "a", false, "Include entries whose names start with a dot")
	formatFlag(lsCmd, &lsOutput, &lsJSON)
}

func runLs(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(outputFormat(lsOutput, lsJSON))
	if err != nil {
		return err
	}

	dir := cfg.Browser.StartDir
	if len(args) == 1 {
		dir = args[0]
	}
	if dir == "" {
		if dir, err = os.Getwd(); err != nil {
			return err
		}
	}
	if dir, err = filepath.Abs(dir); err != nil {
		return err
	}

	opts := cfg.Browser.ListOptions()
	if cmd.Flags().Changed("ext") {
		opts.Extension = lsExt
	}
	if cmd.Flags().Changed("all") {
		opts.ShowHidden = lsAll
	}

	entries, err := browse.List(dir, opts)
	if err != nil {
		return err
	}

	return output.Print(out(cmd), format, output.EntryTable(entries))
}
