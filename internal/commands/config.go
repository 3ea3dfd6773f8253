package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wbfsmgr/internal/config"
	"wbfsmgr/internal/output"
)

var (
	configShowOutput string
	configInitForce  bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Long: `Display the effective configuration: defaults, then the config
file, then WBFSMGR_* environment variables.

By default outputs YAML format. Use --output to change format.

Examples:
  wbfsmgr config show
  wbfsmgr config show --output json
  WBFSMGR_BROWSER_EXTENSION=wbfs wbfsmgr config show`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the default settings",
	Long: `Write the default configuration to the config file
($XDG_CONFIG_HOME/wbfsmgr/config.yaml, or the path given by --config).

An existing file is kept unless --force is given.`,
	Args: cobra.NoArgs,
	// the file may not exist yet, or may be the one being replaced
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE:              runConfigInit,
}

func init() {
	configShowCmd.Flags().StringVarP(&configShowOutput, "output", "o", "yaml", "Output format (yaml|json)")
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "Overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(configShowOutput)
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(out(cmd), cfg)
	default:
		return output.PrintYAML(out(cmd), cfg)
	}
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = config.GetDefaultConfigPath()
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	if err := config.Save(config.GetDefaultConfig(), path); err != nil {
		return err
	}

	fmt.Fprintf(out(cmd), "Configuration file created at: %s\n", path)
	return nil
}
