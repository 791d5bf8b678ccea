package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"what-if-engine/internal/assumptions"
	"what-if-engine/internal/config"
	"what-if-engine/internal/scenario"
)

var (
	// Global flags
	verbose         bool
	assumptionsFile string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "whatif",
	Short: "What-if scenario calculator",
	Long: `whatif evaluates "what-if" life scenarios (finance, health, productivity,
career) from a single input and a fixed table of assumptions.

Run "whatif serve" to expose the catalog and interactive sessions over HTTP,
or "whatif eval" to evaluate one scenario from the command line.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if assumptionsFile != "" {
			cfg.Scenarios.AssumptionsFile = assumptionsFile
		}

		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
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
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&assumptionsFile, "assumptions", "", "YAML file overriding the built-in assumptions table")

	rootCmd.AddCommand(serveCmd, scenariosCmd, categoriesCmd, evalCmd)
}

// newRegistry builds the scenario registry from the loaded configuration.
func newRegistry() (*scenario.Registry, error) {
	table, err := assumptions.Load(cfg.Scenarios.AssumptionsFile)
	if err != nil {
		return nil, fmt.Errorf("load assumptions: %w", err)
	}
	logger.Debug("Assumptions loaded",
		zap.String("version", table.Version),
		zap.String("file", cfg.Scenarios.AssumptionsFile),
	)
	return scenario.NewRegistry(table, scenario.WithBoundaryPolicy(cfg.Scenarios.BoundaryPolicy))
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
