package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pagecraft/gridkit"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gridkit",
	Short: "gridkit - responsive grid layout toolbox",
	Long: `gridkit resolves responsive layout props (span, offset, order, flex
attributes) against the three-breakpoint grid model used by the page
designer, and emits either utility class strings or resolved style
fragments.

Props files are YAML documents where each field is a scalar or a
per-breakpoint mapping, e.g.:

    span:
      mobile: 24
      tablet: 12
      desktop: 8
    offset: 0`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		gridkit.SetLogger(logger)

		if configPath != "" {
			loaded, err := gridkit.LoadConfig(configPath)
			if err != nil {
				return err
			}
			return gridkit.Configure(loaded)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to grid.toml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(classesCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(breakpointsCmd)
	rootCmd.AddCommand(validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
