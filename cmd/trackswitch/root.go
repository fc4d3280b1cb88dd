// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/trackswitch/builder"
	"github.com/katalvlaran/trackswitch/config"
	"github.com/katalvlaran/trackswitch/input"
	"github.com/katalvlaran/trackswitch/runner"
)

// newRootCmd assembles the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "trackswitch",
		Short: "Route a mine cart through a switch network with the fewest throws",
		Long: `trackswitch reads track systems (switches, their tracks and rest positions)
and prints, for each, a route from the entry switch to an exit that throws the
fewest switches. Thrown switches are marked in parentheses:

  X(N)   diverging switch X thrown toward N
  (P)X   converging switch X thrown to accept the cart from P`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "trackswitch.yaml", "Config file (YAML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newSolveCmd(a), newGenerateCmd(a))

	return root
}

// loadConfig reads the config file, validates it and builds the logger.
func (a *app) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	zc, err := cfg.ZapConfig(a.verbose)
	if err != nil {
		return nil, err
	}
	if a.logger, err = zc.Build(); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, nil
}

// openOutput returns the writer for path, or fallback when path is empty.
func openOutput(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output: %w", err)
	}

	return f, f.Close, nil
}

func newSolveCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve every track system in a file (default: config input, cymbal.in)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()

			path := cfg.Input
			if len(args) == 1 {
				path = args[0]
			}
			if cmd.Flags().Changed("output") {
				cfg.Output = output
			}

			in, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open input: %w", err)
			}
			defer in.Close()

			out, closeOut, err := openOutput(cfg.Output, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.logger.Debug("Starting", zap.String("input", path), zap.Int("max_switches", cfg.MaxSwitches))
			r := runner.New(
				runner.WithLogger(a.logger),
				runner.WithMaxSwitches(cfg.MaxSwitches),
				runner.WithValidation(cfg.CheckStructure),
			)
			if _, err = r.Run(ctx, in, out); err != nil {
				_ = closeOut()
				return err
			}

			return closeOut()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the report to a file instead of stdout")

	return cmd
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		systems, switches, fanOut int
		seed                      int64
		extra, backward           float64
		output                    string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write random well-formed track systems in the input format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.loadConfig(); err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()
			if fanOut < 1 {
				return fmt.Errorf("%w: fan-out=%d", config.ErrInvalid, fanOut)
			}

			sys, err := builder.RandomSystems(systems, switches,
				builder.WithSeed(seed),
				builder.WithFanOut(fanOut),
				builder.WithExtraTracks(extra),
				builder.WithBackwardRest(backward))
			if err != nil {
				return err
			}

			out, closeOut, err := openOutput(output, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err = input.NewEncoder(out).Encode(sys); err != nil {
				_ = closeOut()
				return err
			}
			a.logger.Info("Generated track systems",
				zap.Int("systems", systems), zap.Int("switches", switches), zap.Int64("seed", seed))

			return closeOut()
		},
	}
	cmd.Flags().IntVar(&systems, "systems", 5, "Number of track systems")
	cmd.Flags().IntVar(&switches, "switches", 20, "Switches per system")
	cmd.Flags().Int64Var(&seed, "seed", 1, "RNG seed")
	cmd.Flags().IntVar(&fanOut, "fan-out", 2, "Maximum tracks leaving a switch")
	cmd.Flags().Float64Var(&extra, "extra", 0.3, "Probability of each optional track")
	cmd.Flags().Float64Var(&backward, "backward", 0.9, "Probability a converging switch rests backward")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}
