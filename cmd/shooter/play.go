package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  W/A/S/D, arrows  - Thrust and turn (arena) / move and strafe (arena3d)
  Space, F         - Fire
  1-4              - Pistol, shotgun, machine gun, sniper (arena)
  E/C, PgUp/PgDn   - Fly up and down (arena3d)
  Mouse, H/J/K/L   - Look around (arena3d)
  P                - Pause
  Enter, R         - Restart after game over
  Q, Ctrl+C        - Quit

Difficulty options:
  easy   - Start below normal difficulty
  normal - Standard start
  hard   - Start above normal difficulty
  fixed  - No progression, stays at the starting difficulty

Examples:
  shooter play arena
  shooter play arena3d --difficulty easy
  shooter play arena --config ./my-arena.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom mode config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'shooter list' to see available modes.")
		os.Exit(1)
	}

	preset, err := parsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	setConfigPath(gameID, flagConfig)

	game, err := newGame(gameID, preset, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(game, runtimeConfig(), modelOptions(store, logger))
	closeStore(store)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
