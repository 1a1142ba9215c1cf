package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Blockfall",
	Long: `Start a game in the terminal.

Controls:
  Left/H/A        - Move left
  Right/L/D       - Move right
  Down/J/S        - Move down (never locks)
  Up/K/W/X        - Rotate clockwise
  P               - Pause
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Examples:
  blockfall play
  blockfall play --seed 42
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	// The TUI owns the terminal; logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rcfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.TickRate,
		Seed:     flagSeed,
	}

	game, err := registry.Create(blockfall.GameID, registry.Options{Config: cfg, Logger: logger})
	if err != nil {
		fail("creating game: %v", err)
	}

	if err := tui.Run(game, rcfg, tui.Options{ShowHelp: cfg.Render.ShowHelp, Logger: logger}); err != nil {
		logger.Error("game exited", "error", err)
		closeLog()
		fail("running game: %v", err)
	}
}
