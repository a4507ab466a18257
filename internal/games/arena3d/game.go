// Package arena3d implements the first-person 3D arena: a camera moving
// through a walled level, bullets flying in 3D and enemies that close in
// and strike at short range.
package arena3d

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-shooter/internal/behavior"
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

// bulletTrail is the number of past bullet positions kept for rendering.
const bulletTrail = 4

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

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

// Game implements the 3D arena session.
type Game struct {
	camera  *Camera
	weapon  *Weapon
	walls   []Wall
	enemies []*Enemy
	bullets []*Bullet

	health    float64
	maxHealth float64
	shield    float64
	maxShield float64

	state     string
	score     int
	highScore int
	tick      int
	now       time.Duration
	runID     string
	saved     bool

	runtime    core.RuntimeConfig
	cfg        config.Arena3DConfig
	preset     config.DifficultyPreset // overrides the CLI preset
	fixedCfg   *config.Arena3DConfig
	params     behavior.Params
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	keeper core.ScoreKeeper
	log    *log.Logger
}

// New creates a 3D arena that loads its config from the CLI-selected path.
func New() *Game {
	return &Game{
		keeper: core.NopScoreKeeper{},
		log:    log.New(io.Discard),
	}
}

// NewWithConfig creates a 3D arena that always uses cfg.
func NewWithConfig(cfg config.Arena3DConfig) *Game {
	g := New()
	g.fixedCfg = &cfg
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "arena3d"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Arena 3D"
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
	g.params = behavior.Params{
		FlankDistance: g.cfg.Enemies.FlankDistance,
		FlankRange:    g.cfg.Enemies.FlankRange,
		AmbushRange:   g.cfg.Enemies.AmbushRange,
	}
	g.walls = GenerateLevel(g.cfg.World)
	g.start(runtime.Seed)
}

func (g *Game) loadConfig() config.Arena3DConfig {
	if g.fixedCfg != nil {
		return *g.fixedCfg
	}

	cfg, err := config.LoadArena3D(configPath)
	if err != nil {
		g.log.Warn("falling back to default arena3d config", "err", err)
		cfg = config.DefaultArena3DConfig()
	}
	preset := g.preset
	if preset == "" {
		preset = difficultyPreset
	}
	if preset != "" {
		config.ApplyArena3DPreset(&cfg, preset)
	}
	return cfg
}

func (g *Game) start(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	start := core.V3(0, g.cfg.World.FloorY+g.cfg.Camera.StartHeight, 0)
	g.camera = NewCamera(start, g.cfg.Camera)
	g.weapon = NewWeapon(g.cfg.Weapon)

	g.health = g.cfg.Player.MaxHealth
	g.maxHealth = g.cfg.Player.MaxHealth
	g.shield = 0
	g.maxShield = g.cfg.Player.MaxShield

	g.state = StatePlaying
	g.score = 0
	g.tick = 0
	g.now = 0
	g.saved = false
	g.bullets = nil
	g.enemies = make([]*Enemy, 0, g.cfg.Enemies.InitialCount)
	for i := 0; i < g.cfg.Enemies.InitialCount; i++ {
		g.spawnEnemy()
	}

	if id, err := uuid.NewRandomFromReader(g.rng); err == nil {
		g.runID = id.String()
	}
	g.highScore = g.keeper.Load()

	g.log.Debug("arena3d run started", "run", g.runID, "walls", len(g.walls), "high", g.highScore)
}

func (g *Game) restart() {
	g.log.Info("arena3d restart", "previous_score", g.score)
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

	g.updateCamera(in)
	g.updateBullets()
	g.updateEnemies()
	if g.state == StatePlaying {
		g.resolveHits()
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
	if g.camera == nil {
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

func init() {
	registry.Register("arena3d", func() registry.Game {
		return New()
	})
}
