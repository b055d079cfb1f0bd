package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  ←/→ or A/D   - Move
  ↓ or S       - Stop
  Space        - Fire (start on the menu)
  Enter        - Start
  Tab          - Run history (on the menu)
  Esc          - Back to menu, quit from the menu
  Ctrl+S       - Screenshot to ~/.arcade/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 lives, slower march and fire
  normal - Default settings
  hard   - 2 lives, faster march and fire, more enemy bullets
  fixed  - No speed-up between levels

Examples:
  invaders play
  invaders play --difficulty easy
  invaders play --config ./my-invaders.yaml
  invaders play --log-file invaders.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name stored with runs (default: current user)")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, preset, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs only go to --log-file
	logger, closeLog, err := newLogger(io.Discard, "invaders")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = seedOrNow()

	player := flagPlayer
	if player == "" {
		if u, userErr := user.Current(); userErr == nil {
			player = u.Username
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	logger.Info("starting game",
		"player", player,
		"seed", cfg.Seed,
		"difficulty", preset,
		"progression", !config.IsFixedPreset(preset),
	)

	session := invaders.New(gameCfg, cfg.Seed)
	runErr := tui.Run(session, store, cfg, tui.Options{Player: player, Logger: logger})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
