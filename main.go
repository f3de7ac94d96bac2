package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sawwave/nybblelife/utils"
)

var (
	configPath string

	flagWidth       int
	flagHeight      int
	flagGenerations int
	flagWorkers     int
	flagSeed        int64
	flagDensity     float64
	flagPrint       bool
	flagFrameRate   time.Duration
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nybblelife",
		Short:         "Conway's Game of Life on a nybble-packed board, 16 cells per word",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a JSON config file")
	root.PersistentFlags().IntVar(&flagWidth, "width", 0, "board width in cells")
	root.PersistentFlags().IntVar(&flagHeight, "height", 0, "board height in cells")
	root.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "row-sweep workers (0 = one per CPU)")
	root.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "random seed for the initial board")
	root.PersistentFlags().Float64Var(&flagDensity, "density", 0, "initial live-cell density in [0,1]")

	run := &cobra.Command{
		Use:   "run",
		Short: "Seed a board, advance it N generations, report wall-clock time",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return runBenchmark(cfg)
		},
	}
	run.Flags().IntVar(&flagGenerations, "generations", 0, "number of generations to advance")
	run.Flags().BoolVar(&flagPrint, "print", false, "render the board before and after the run")

	watch := &cobra.Command{
		Use:   "watch",
		Short: "Animate the board in the terminal until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return runWatch(cfg)
		},
	}
	watch.Flags().DurationVar(&flagFrameRate, "frame-rate", 0, "delay between frames")

	root.AddCommand(run, watch)
	return root
}

// resolveConfig layers defaults, the optional config file, and any flags
// the user actually set, then validates the result once.
func resolveConfig(cmd *cobra.Command) (utils.Config, error) {
	cfg := utils.DefaultConfig()
	if configPath != "" {
		loaded, err := utils.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Height = flagHeight
	}
	if flags.Changed("generations") {
		cfg.Generations = flagGenerations
	}
	if flags.Changed("workers") {
		cfg.Workers = flagWorkers
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("density") {
		cfg.RandomDensity = flagDensity
	}
	if flags.Changed("print") {
		cfg.Print = flagPrint
	}
	if flags.Changed("frame-rate") {
		cfg.FrameRate = flagFrameRate
	}

	return cfg, cfg.Validate()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
