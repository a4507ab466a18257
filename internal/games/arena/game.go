// Package arena implements the top-down 2D arena shooter: a generated
// obstacle map, a player with unlockable weapons, enemies with distinct
// behaviors, pickups and level progression.
package arena

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// Session states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config's own difficulty.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// Game implements the 2D arena session.
type Game struct {
	world      *World
	player     *Player
	enemies    []*Enemy
	shots      []*Projectile // fired by the player
	enemyShots []*Projectile
	pickups    []*Pickup

	state           string
	score           int
	highScore       int
	tick            int
	now             time.Duration
	lastPickupSpawn time.Duration
	runID           string
	saved           bool // high score persisted for this run

	runtime    core.RuntimeConfig
	cfg        config.ArenaConfig
	preset     config.DifficultyPreset // overrides the CLI preset
	fixedCfg   *config.ArenaConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	keeper core.ScoreKeeper
	log    *log.Logger
}

// New creates a 2D arena that loads its config from the CLI-selected path.
func New() *Game {
	return &Game{
		keeper: core.NopScoreKeeper{},
		log:    log.New(io.Discard),
	}
}

// NewWithConfig creates a 2D arena that always uses cfg.
func NewWithConfig(cfg config.ArenaConfig) *Game {
	g := New()
	g.fixedCfg = &cfg
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "arena"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Arena"
}

// SetScoreKeeper sets where the high score is loaded from and saved to.
func (g *Game) SetScoreKeeper(k core.ScoreKeeper) {
	g.keeper = k
}

// SetPreset sets a difficulty preset for this instance only. Unknown names
// are ignored.
func (g *Game) SetPreset(name string) {
	if p, ok := config.ParsePreset(name); ok {
		g.preset = p
	}
}

// SetLogger sets the session logger.
func (g *Game) SetLogger(l *log.Logger) {
	g.log = l
}

// Reset initializes or resets the game state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.start(runtime.Seed)
}

func (g *Game) loadConfig() config.ArenaConfig {
	if g.fixedCfg != nil {
		return *g.fixedCfg
	}

	cfg, err := config.LoadArena(configPath)
	if err != nil {
		g.log.Warn("falling back to default arena config", "err", err)
		cfg = config.DefaultArenaConfig()
	}

	// Apply difficulty preset if set
	preset := g.preset
	if preset == "" {
		preset = difficultyPreset
	}
	if preset != "" {
		config.ApplyArenaPreset(&cfg, preset)
	}
	return cfg
}

// start builds a fresh run: new map, player, enemies and run ID.
func (g *Game) start(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	bounds := core.NewRect(0, 0, g.cfg.World.Width, g.cfg.World.Height)
	g.world = GenerateMap(g.rng, bounds, g.cfg.Map)
	g.player = NewPlayer(g.world, g.rng, g.cfg.Player, g.cfg.Pickups)

	g.state = StatePlaying
	g.score = 0
	g.tick = 0
	g.now = 0
	g.lastPickupSpawn = 0
	g.saved = false
	g.shots = nil
	g.enemyShots = nil
	g.pickups = nil
	g.enemies = make([]*Enemy, 0, g.cfg.Enemies.InitialCount)
	for i := 0; i < g.cfg.Enemies.InitialCount; i++ {
		g.spawnEnemy()
	}

	if id, err := uuid.NewRandomFromReader(g.rng); err == nil {
		g.runID = id.String()
	}
	g.highScore = g.keeper.Load()

	g.log.Debug("arena run started", "run", g.runID, "obstacles", len(g.world.Obstacles), "high", g.highScore)
}

// restart begins a new run on a new map. The seed is drawn from the
// current RNG so a seeded session stays reproducible.
func (g *Game) restart() {
	g.log.Info("arena restart", "previous_score", g.score)
	g.start(g.rng.Int63())
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state == StateGameOver {
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else {
			g.state = StatePaused
		}
	}
	if g.state == StatePaused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.now = time.Duration(g.tick) * time.Second / time.Duration(g.runtime.TickRate)

	g.spawnTimedPickup()
	g.updatePlayer(in)
	g.updateProjectiles()
	g.updatePickups()
	g.updateEnemies()
	g.resolveHits()
	g.resolvePlayerDamage()
	if g.state == StatePlaying {
		g.checkLevelUp()
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		Level:     g.difficulty.Level(),
		RunID:     g.runID,
		GameOver:  g.state == StateGameOver,
		Paused:    g.state == StatePaused,
	}
}

// Close persists the high score if the current run has not done so yet.
func (g *Game) Close() {
	if g.world == nil {
		return
	}
	g.persistHighScore()
}

func (g *Game) persistHighScore() {
	if g.saved {
		return
	}
	g.saved = true
	best := max(g.highScore, g.score)
	g.keeper.Save(best)
	g.log.Debug("high score saved", "score", best)
}

// Register the game with the registry
func init() {
	registry.Register("arena", func() registry.Game {
		return New()
	})
}
