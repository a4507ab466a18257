// Package registry maps mode IDs to game factories. Modes register from
// init(), so importing a mode package is enough to make it playable.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Game is one shooter mode. Implementations hold pure simulation state and
// never import Bubble Tea; the terminal front end owns input, timing and
// drawing to the terminal.
type Game interface {
	// ID is the stable key used by the CLI, the leaderboard and the
	// high-score file name.
	ID() string
	Title() string

	// Reset starts a fresh run. It is also how a game restarts after
	// game over when driven externally.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	State() core.GameState

	// Close persists the high score and ends the session.
	Close()
}

// Options carries the services a game may use beyond its RuntimeConfig.
type Options struct {
	Keeper core.ScoreKeeper
	Logger *log.Logger
	// Preset names a difficulty preset for this instance only.
	Preset string
}

type scoreKeeping interface {
	SetScoreKeeper(k core.ScoreKeeper)
}

type logging interface {
	SetLogger(l *log.Logger)
}

type presetting interface {
	SetPreset(name string)
}

// Configure hands opts to g for every service g knows how to use.
// Nil and empty fields are skipped.
func Configure(g Game, opts Options) {
	if sk, ok := g.(scoreKeeping); ok && opts.Keeper != nil {
		sk.SetScoreKeeper(opts.Keeper)
	}
	if lg, ok := g.(logging); ok && opts.Logger != nil {
		lg.SetLogger(opts.Logger)
	}
	if ps, ok := g.(presetting); ok && opts.Preset != "" {
		ps.SetPreset(opts.Preset)
	}
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory. It is meant for init() and panics on a
// duplicate ID. The title is read from one throwaway instance.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
