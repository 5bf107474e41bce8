package cmd

import (
	"fmt"
	"os"

	"github.com/remindapp/remindapp/internal/config"
	"github.com/remindapp/remindapp/internal/logging"
	"github.com/remindapp/remindapp/internal/reminder"
	"github.com/remindapp/remindapp/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	logFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "remindapp",
	Short: "Set a one-off reminder from the terminal",
	Long: `remindapp is a single-screen terminal UI: type a reminder message,
pick a date and a time, and set it.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file")
}

func initConfig() {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadConfigFile(cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if logFile != "" {
		cfg.LogFile = logFile
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("starting", zap.String("config", cfg.Path))

	model := ui.NewModel(cfg, reminder.SystemClock{}, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Reload the config file while running
	if cfg.WatchConfig && cfg.Path != "" {
		watcher, err := config.NewWatcher(cfg.Path, func(path string) {
			c, err := config.LoadConfigFile(path)
			if err == nil && logFile != "" {
				c.LogFile = logFile
			}
			p.Send(ui.ConfigReloadedMsg{Config: c, Err: err})
		}, func(err error) {
			logger.Warn("config watcher error", zap.Error(err))
		})
		if err != nil {
			logger.Warn("cannot watch config", zap.String("path", cfg.Path), zap.Error(err))
		} else {
			defer watcher.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}
