package arena

import (
	"math/rand"
	"testing"

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

// quietConfig has no initial enemies and no random drops so tests control
// every entity in the arena.
func quietConfig() config.ArenaConfig {
	cfg := config.DefaultArenaConfig()
	cfg.Enemies.InitialCount = 0
	cfg.Pickups.DropChance = 0
	return cfg
}

// newQuietGame returns a started game on an empty map with the player at
// the world center.
func newQuietGame(t *testing.T, cfg config.ArenaConfig) (*Game, *recordingKeeper) {
	t.Helper()
	keeper := &recordingKeeper{}
	g := NewWithConfig(cfg)
	g.SetScoreKeeper(keeper)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	g.world.Obstacles = nil
	g.player.Pos = g.world.Bounds.Center()
	return g, keeper
}

// idleEnemy returns an enemy that neither moves nor shoots.
func idleEnemy(pos core.Vec2, health float64) *Enemy {
	return &Enemy{
		Pos:          pos,
		Radius:       25,
		Health:       health,
		MaxHealth:    health,
		Behavior:     behavior.Chaser,
		ShotCooldown: 1 << 62,
	}
}

func emptyWorld() *World {
	return &World{Bounds: core.NewRect(0, 0, 1200, 900)}
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}
