package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/mathsprint/internal/config"
	"github.com/abhisek/mathsprint/internal/store"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mathsprint",
		Short: "Timed mental-arithmetic drill",
		Long:  "MathSprint: sixty-second arithmetic sprints in your terminal, with a per-configuration leaderboard.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "Path to config file (overrides MATHSPRINT_CONFIG env var)")
	root.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHSPRINT_DB env var)")
	root.PersistentFlags().String("store", "", "Record store backend: sqlite, redis or memory")
	root.PersistentFlags().String("redis-addr", "", "Redis address for the redis backend")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	root.AddCommand(newHistoryCmd())
	root.AddCommand(newResetCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves settings in priority order: flags, MATHSPRINT_* env
// vars, the config file, then defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve config path: %w", err)
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}

	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.Store.Path = v
	}
	if v, _ := cmd.Flags().GetString("store"); v != "" {
		cfg.Store.Backend = v
	}
	if v, _ := cmd.Flags().GetString("redis-addr"); v != "" {
		cfg.Store.Redis.Addr = v
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger builds a JSON logger writing to the configured log file. The
// terminal belongs to the TUI, so nothing is logged to stdout or stderr.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	path := cfg.Logging.File
	if path == "" {
		p, err := store.DataPath("mathsprint.log")
		if err != nil {
			return nil, fmt.Errorf("resolve log path: %w", err)
		}
		path = p
	} else if err := store.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	lvl, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}
	return logger, nil
}
