package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bird/internal/registry"
)

var flagFrontend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in this terminal.

Controls:
  Space/Up/W   - Flap
  P/Enter      - Play (from the title or end screen)
  R            - Play again (after a crash)
  Q/Esc        - Quit (from the title or end screen)
  Ctrl+C       - Exit immediately

Difficulty options:
  easy   - Wider gaps and slower physics
  normal - The default tuning
  hard   - Narrower gaps and faster physics

Examples:
  bird play
  bird play --frontend tcell
  bird play --difficulty hard
  bird play --seed 42 --config ./my-bird.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "tea", "Frontend to play on (see 'bird frontends')")
}

func runPlay(_ *cobra.Command, _ []string) {
	if !registry.Exists(flagFrontend) {
		fmt.Fprintf(os.Stderr, "Error: unknown frontend %q\n", flagFrontend)
		fmt.Fprintln(os.Stderr, "Run 'bird frontends' to see available frontends.")
		os.Exit(1)
	}

	gameCfg, err := loadGameConfig()
	exitOnError("loading config", err)

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < gameCfg.Screen.Width || h < gameCfg.Screen.Height {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the game area is %dx%d and will be clipped\n",
				w, h, gameCfg.Screen.Width, gameCfg.Screen.Height)
		}
	}

	// The terminal belongs to the UI, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard)
	exitOnError("setting up logging", err)
	defer closeLog()

	frontend, err := registry.Create(flagFrontend)
	exitOnError("creating frontend", err)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	logger.Debug("starting", "frontend", frontend.ID(), "seed", flagSeed, "difficulty", gameCfg.Difficulty.Preset)

	runErr := frontend.Run(ctx, registry.Options{
		Runtime: runtimeConfig(),
		Game:    gameCfg,
		Logger:  logger,
	})
	if runErr != nil {
		closeLog()
		exitOnError("running game", runErr)
	}
}
