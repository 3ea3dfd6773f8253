package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"wbfsmgr/internal"
	"wbfsmgr/internal/logger"
	"wbfsmgr/internal/state"
)

// runTUI starts the interactive interface.
func runTUI(cmd *cobra.Command, args []string) error {
	// the alternate screen owns the terminal, so console logging goes to a file
	switch strings.ToLower(cfg.Logging.Output) {
	case "stdout", "stderr":
		if err := logger.Init(logger.Config{Output: logFilePath()}); err != nil {
			return err
		}
	}

	app, err := state.NewApp(cfg)
	if err != nil {
		return err
	}

	internal.SetVersion(Version)
	logger.Info("starting interface", "version", internal.GetVersionString(), "dir", app.Dir())

	p := tea.NewProgram(internal.InitialModel(app), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interface failed: %w", err)
	}
	return nil
}

// logFilePath returns ~/.cache/wbfsmgr/wbfsmgr.log, or a file in the
// temporary directory when the cache directory cannot be created.
func logFilePath() string {
	if cacheDir, err := os.UserCacheDir(); err == nil {
		logDir := filepath.Join(cacheDir, "wbfsmgr")
		if err := os.MkdirAll(logDir, 0755); err == nil {
			return filepath.Join(logDir, "wbfsmgr.log")
		}
	}
	return filepath.Join(os.TempDir(), "wbfsmgr.log")
}
