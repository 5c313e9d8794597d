// Package cmd provides the root command and CLI setup for alsgen.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mouse-blink/alsgen/internal/adapter"
	"github.com/mouse-blink/alsgen/internal/controller"
	"github.com/mouse-blink/alsgen/internal/domain"
	"github.com/mouse-blink/alsgen/internal/logging"
	m "github.com/mouse-blink/alsgen/internal/model"
)

var fsAdapter adapter.FSAdapter
var configStore adapter.ConfigStore
var generator domain.Generator
var workflow domain.Workflow
var ui controller.UI
var logger *zap.Logger

func init() {
	var err error

	logger, err = logging.New()
	if err != nil {
		logger = zap.NewNop()
	}

	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalFSAdapter()
	configStore = adapter.NewConfigStore()
	generator = domain.NewGenerator()
	workflow = domain.NewWorkflow(fsAdapter, ui, generator, logger)
}

var configFlag string
var verboseFlag bool
var opsFlag []string
var predicateFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "alsgen",
		Short: "Generate crash-consistency checks for a filesystem model",
		Long: `Alsgen writes an Alloy specification that checks a filesystem model's
crash-consistency predicate for every ordered pair of mutating operations.

The document contains:
  - the model imports followed by the auxiliary definitions file
  - one check that every operation has a declared kind
  - one check per ordered pair of kinds, in row-major order`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logging.SetVerbose(verboseFlag)
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "YAML configuration file (defaults are used when empty)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringSliceVar(&opsFlag, "ops", nil, "operation kinds, in order (overrides the configuration)")
	cmd.PersistentFlags().StringVar(&predicateFlag, "predicate", "", "consistency predicate asserted by every permutation check")
	addGenerateFlags(cmd, opts)

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration file and applies flag overrides. An
// explicitly empty --ops replaces the kinds too, so validation rejects it.
func loadConfig(cmd *cobra.Command) (m.Config, error) {
	cfg, err := configStore.Load(m.Path(configFlag))
	if err != nil {
		return m.Config{}, err
	}

	if cmd.Flags().Changed("ops") {
		cfg.OperationKinds = parseOperationKinds(opsFlag)
	}

	if predicateFlag != "" {
		cfg.Predicate = predicateFlag
	}

	return cfg, nil
}

func parseOperationKinds(names []string) []m.OperationKind {
	kinds := make([]m.OperationKind, 0, len(names))
	for _, name := range names {
		kinds = append(kinds, m.OperationKind(name))
	}

	return kinds
}
