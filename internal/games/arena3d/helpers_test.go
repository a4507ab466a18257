package arena3d

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/behavior"
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

type recordingKeeper struct {
	stored int
	saves  []int
}

func (k *recordingKeeper) Load() int { return k.stored }

func (k *recordingKeeper) Save(score int) {
	k.saves = append(k.saves, score)
	k.stored = score
}

// quietConfig starts the level without enemies.
func quietConfig() config.Arena3DConfig {
	cfg := config.DefaultArena3DConfig()
	cfg.Enemies.InitialCount = 0
	return cfg
}

func newQuietGame(t *testing.T) (*Game, *recordingKeeper) {
	t.Helper()
	return newGame(t, quietConfig())
}

func newGame(t *testing.T, cfg config.Arena3DConfig) (*Game, *recordingKeeper) {
	t.Helper()
	keeper := &recordingKeeper{}
	g := NewWithConfig(cfg)
	g.SetScoreKeeper(keeper)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	return g, keeper
}

// idleEnemy returns a chaser standing on the floor that neither moves nor
// attacks.
func idleEnemy(x, z, health float64) *Enemy {
	return &Enemy{
		Pos:            core.V3(x, -0.5, z),
		Radius:         0.5,
		Height:         1.8,
		Health:         health,
		MaxHealth:      health,
		AttackCooldown: time.Second,
		Behavior:       behavior.Chaser,
	}
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func testParams() behavior.Params {
	cfg := config.DefaultArena3DConfig().Enemies
	return behavior.Params{FlankDistance: cfg.FlankDistance, FlankRange: cfg.FlankRange, AmbushRange: cfg.AmbushRange}
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}
