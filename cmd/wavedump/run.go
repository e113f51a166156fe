package main

import (
	"github.com/fatih/color"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"wavedump"
	"wavedump/parts"
)

var (
	flagConfig  string
	flagOut     string
	flagSteps   int
	flagProfile bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate the demo design and write a VCD trace",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	runCmd.Flags().StringVar(&flagConfig, "config", "", "TOML config file (default "+defaultConfigFile+" if present)")
	runCmd.Flags().StringVarP(&flagOut, "out", "o", "", "trace file path")
	runCmd.Flags().IntVar(&flagSteps, "steps", 0, "number of simulation steps")
	runCmd.Flags().BoolVar(&flagProfile, "profile", false, "write a CPU profile to the current directory")
}

func run() error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	if flagOut != "" {
		cfg.Trace.Path = flagOut
	}
	if flagSteps > 0 {
		cfg.Run.Steps = flagSteps
	}
	if flagProfile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	top := wavedump.NewModule("top")
	sim := wavedump.NewSimulator(top)

	clk := parts.Toggle(sim, top, "clk")
	counter := top.NewChild("counter")
	parts.Counter(sim, counter, "count", 4)
	logic := top.NewChild("logic")
	q := parts.Register(sim, logic, "q", clk)
	parts.Xor(sim, logic, "edge", clk, q)

	if err := top.Build(); err != nil {
		return err
	}
	d, err := wavedump.New(sim, wavedump.Config{
		Path:      cfg.Trace.Path,
		Timescale: cfg.Trace.Timescale,
	})
	if err != nil {
		return err
	}
	if err := sim.Run(cfg.Run.Steps); err != nil {
		return err
	}
	if err := sim.Finish(); err != nil {
		return err
	}
	color.Green("wrote %s: %d signals, %d steps", cfg.Trace.Path, d.Tracked(), cfg.Run.Steps)
	return nil
}
