package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/maze/internal/config"
	"github.com/pdrpinto/maze/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

// settings is the resolved configuration for the running command.
var settings = config.Default()

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Generate weighted grid worlds and search a route through them",
	Long: "maze builds random worlds of walls and extra-cost cells and runs a\n" +
		"step-by-step best-first search from the top-left to the bottom-right corner.",
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&rootFlags.configPath, "config", "", "Path to a YAML or JSON config file")
	f.StringVar(&rootFlags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	f.StringVar(&rootFlags.logFormat, "log-format", "", "Log format: text or json")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.Version = version
}

func loadSettings(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if rootFlags.configPath != "" {
		loaded, err := config.LoadFromPath(rootFlags.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if rootFlags.logLevel != "" {
		cfg.Log.Level = rootFlags.logLevel
	}
	if rootFlags.logFormat != "" {
		cfg.Log.Format = rootFlags.logFormat
	}
	applyWorldFlags(cmd, &cfg)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logging.Init(level, cfg.Log.Format, cmd.ErrOrStderr())

	settings = cfg
	return nil
}
