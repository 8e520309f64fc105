// Package cmd содержит дерево команд frontkit.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"web/frontkit/internal/clock"
	"web/frontkit/internal/config"
	"web/frontkit/internal/observability"
)

// versionInfo заполняется пакетом main при запуске.
var versionInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

// SetVersionInfo вызывается пакетом main, чтобы передать информацию о версии.
func SetVersionInfo(version, commit, buildDate string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.BuildDate = buildDate
}

// app хранит состояние, общее для всех подкоманд.
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
	clock  clock.Clock
}

// NewRootCmd собирает корневую команду со всеми подкомандами.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{clock: clock.Real()})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "frontkit",
		Short:         "Viewport, rate limiting and landmark helpers for front-end pages",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "frontkit.yaml", "path to the configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newClassifyCmd(a),
		newLandmarksCmd(a),
		newPreloadCmd(a),
		newWatchCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) init() error {
	bootstrap := zap.NewNop()
	cfg, err := config.LoadConfig(a.cfgFile, bootstrap)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	level := cfg.LogLevel
	if a.verbose {
		level = "debug"
	}
	logger, err := observability.NewLogger(level)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.String("path", a.cfgFile),
		zap.Bool("inclusive", cfg.Viewport.Inclusive),
		zap.Duration("default_delay", cfg.RateLimiter.DefaultDelay))
	return nil
}

// Execute запускает корневую команду.
func Execute() error {
	return NewRootCmd().Execute()
}
