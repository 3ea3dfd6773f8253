// Package commands implements the wbfsmgr command line.
//
// Running wbfsmgr without a subcommand starts the interactive TUI; the
// subcommands expose the same discovery operations for scripts.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"wbfsmgr/internal/config"
	"wbfsmgr/internal/logger"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Global flags.
	cfgFile  string
	logLevel string

	// cfg is loaded once per invocation by the persistent pre-run hook.
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "wbfsmgr",
	Short: "wbfsmgr - WBFS device and disc image manager",
	Long: `wbfsmgr finds block devices that hold (or can hold) a WBFS filesystem,
warns about devices that are mounted, and browses local directories
for disc images.

Run without arguments to start the interactive interface.
Use "wbfsmgr [command] --help" for more information about a command.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// GetRootCmd returns the root command for testing purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/wbfsmgr/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level (DEBUG|INFO|WARN|ERROR)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(mountedCmd)
	rootCmd.AddCommand(mountsCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(configCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// loadConfig reads the configuration and sets up logging for every command.
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		if _, ok := logger.ParseLevel(logLevel); !ok {
			return fmt.Errorf("invalid log level %q", logLevel)
		}
		loaded.Logging.Level = logLevel
	}

	if err := logger.Init(logger.Config{
		Level:  loaded.Logging.Level,
		Format: loaded.Logging.Format,
		Output: loaded.Logging.Output,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg = loaded
	logger.Debug("configuration loaded", "source", configSource(cfgFile))
	return nil
}

// configSource describes where the configuration came from.
func configSource(configFile string) string {
	if configFile != "" {
		return configFile
	}
	if _, err := os.Stat(config.GetDefaultConfigPath()); err == nil {
		return config.GetDefaultConfigPath()
	}
	return "defaults"
}

// formatFlag registers the --output/-o flag and its --json shorthand.
func formatFlag(cmd *cobra.Command, format *string, asJSON *bool) {
	cmd.Flags().StringVarP(format, "output", "o", "table", "Output format (table|json|yaml)")
	cmd.Flags().BoolVar(asJSON, "json", false, "Shorthand for --output json")
	cmd.MarkFlagsMutuallyExclusive("output", "json")
}

// outputFormat resolves the value of formatFlag.
func outputFormat(format string, asJSON bool) string {
	if asJSON {
		return "json"
	}
	return format
}

// out returns the writer command results go to.
func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
