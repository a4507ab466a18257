package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	// Importing the modes registers them.
	"github.com/vovakirdan/tui-shooter/internal/games/arena"
	"github.com/vovakirdan/tui-shooter/internal/games/arena3d"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// newLogger builds the CLI logger from --log-level and --log-file.
// Without a log file, logs are discarded so they never tear the TUI.
// The returned close func releases the file.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "shooter",
	})
	return logger, closeFn, nil
}

// runtimeConfig sizes the simulation to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the leaderboard. Failure is reported and play goes on
// without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}

// modelOptions wires the leaderboard without leaking a typed nil into the
// interface.
func modelOptions(store *storage.Store, logger *log.Logger) tui.ModelOptions {
	opts := tui.ModelOptions{Logger: logger}
	if store != nil {
		opts.Board = store
	}
	return opts
}

// scoreSource is modelOptions' counterpart for the scoreboard.
func scoreSource(store *storage.Store) tui.ScoreSource {
	if store == nil {
		return nil
	}
	return store
}

// parsePreset validates --difficulty.
func parsePreset(s string) (config.DifficultyPreset, error) {
	p, ok := config.ParsePreset(s)
	if !ok {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
	return p, nil
}

// setConfigPath points a mode at a custom YAML file.
func setConfigPath(gameID, path string) {
	switch gameID {
	case "arena":
		arena.SetConfigPath(path)
	case "arena3d":
		arena3d.SetConfigPath(path)
	}
}

// newGame creates a mode with its high-score file, logger and preset.
func newGame(gameID string, preset config.DifficultyPreset, logger *log.Logger) (registry.Game, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return nil, err
	}
	logger = logger.With("game", gameID)
	registry.Configure(game, registry.Options{
		Keeper: highScoreKeeper(gameID, logger),
		Logger: logger,
		Preset: string(preset),
	})
	return game, nil
}

// highScoreKeeper opens the mode's high-score file under --highscore-dir.
// An unresolvable path is logged and play continues without persistence.
func highScoreKeeper(gameID string, logger *log.Logger) core.ScoreKeeper {
	k, err := storage.NewHighScoreFile(storage.HighScorePath(flagHighScoreDir, gameID))
	if err != nil {
		logger.Warn("high score disabled", "error", err)
		return core.NopScoreKeeper{}
	}
	return k
}
