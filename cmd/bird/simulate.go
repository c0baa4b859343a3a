package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bird/internal/sim"
)

var (
	flagTicks   int
	flagFrameMs float64
	flagRestart bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game headless with an autopilot",
	Long: `Run the simulation without a terminal. An autopilot starts the game and
flaps whenever the bird is below the next gap. Every frame lasts --frame-ms,
so the same seed always prints the same summary.

Examples:
  bird simulate --seed 42
  bird simulate --seed 42 --ticks 100000 --restart
  bird simulate --difficulty hard --frame-ms 16`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 10000, "Number of ticks to simulate")
	simulateCmd.Flags().Float64Var(&flagFrameMs, "frame-ms", 16, "Milliseconds per tick")
	simulateCmd.Flags().BoolVar(&flagRestart, "restart", false, "Start a new run after each crash")
}

func runSimulate(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	exitOnError("loading config", err)

	logger, closeLog, err := newLogger(os.Stderr)
	exitOnError("setting up logging", err)
	defer closeLog()

	report, err := sim.Run(sim.Options{
		Game:    gameCfg,
		Seed:    flagSeed,
		Ticks:   flagTicks,
		FrameMs: flagFrameMs,
		Restart: flagRestart,
		Logger:  logger,
	})
	if err != nil {
		closeLog()
		exitOnError("simulating", err)
	}

	fmt.Println(report)
}
