// Package cmd provides the root command and CLI setup for bufsafe.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mouse-blink/bufsafe/internal/adapter"
	"github.com/mouse-blink/bufsafe/internal/config"
	"github.com/mouse-blink/bufsafe/internal/controller"
	"github.com/mouse-blink/bufsafe/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var workflow domain.Workflow
var logger *zap.Logger
var cfg *config.Config

var configFlag string
var verboseFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bufsafe",
		Short: "Synthetic buffer-safety corpus generator",
		Long: `bufsafe generates small C functions that each contain one conditionally
guarded buffer write, surrounded by decoy reads and writes, and tags every
line with its buffer-safety relevance.

The output corpus is training and evaluation data for line-level
buffer overflow classifiers:
  bufsafe generate ./out -n 1000 -m meta.json   write a corpus
  bufsafe preview --seed 7                      print one instance
  bufsafe stats meta.json                       summarize a corpus`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", config.DefaultPath, "path to a YAML config file")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")

	return cmd
}

// setup loads configuration and wires the logger and workflow unless a test
// already injected them.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	cfg = loaded

	if logger == nil {
		logger, err = newLogger(cfg, verboseFlag)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	if workflow == nil {
		workflow = newWorkflow(cmd, cfg, logger)
	}

	return nil
}

func newLogger(c *config.Config, verbose bool) (*zap.Logger, error) {
	level, err := c.LogLevel()
	if err != nil {
		return nil, err
	}

	if verbose {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}

func newWorkflow(cmd *cobra.Command, c *config.Config, log *zap.Logger) domain.Workflow {
	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
	store := adapter.NewLocalInstanceStore(c.Output.HashBytes, c.Output.Extension)

	return domain.NewWorkflow(
		store,
		adapter.NewMetadataStore(),
		ui,
		domain.NewGenerator,
		c.GeneratorOptions(false),
		log,
	)
}

// currentConfig returns the loaded config, or defaults when a subcommand runs
// without the root's pre-run hook.
func currentConfig() *config.Config {
	if cfg == nil {
		return config.DefaultConfig()
	}

	return cfg
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
