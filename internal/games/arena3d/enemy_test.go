package arena3d

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-shooter/internal/behavior"
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestSpawnEnemy(t *testing.T) {
	cfg := config.DefaultArena3DConfig()
	walls := GenerateLevel(cfg.World)
	rng := testRNG()

	for _, difficulty := range []float64{1, 3} {
		for i := 0; i < 50; i++ {
			e := SpawnEnemy(walls, rng, cfg.World, cfg.Enemies, difficulty)

			dist := e.Pos.XZ().Len()
			assert.GreaterOrEqual(t, dist, 10.0-eps)
			assert.LessOrEqual(t, dist, 25.0+eps)
			assert.Equal(t, -0.5, e.Pos.Y)
			assert.InDelta(t, 0.05*difficulty, e.Speed, eps)
			assert.LessOrEqual(t, e.Aggression, 1.0)
			assert.GreaterOrEqual(t, e.Aggression, math.Min(1, 0.3*difficulty))
			assert.Equal(t, 3.0, e.Health)
			assert.Zero(t, e.lastAttack)
		}
	}
}

func TestSpawnEnemyTerminatesWhenNothingIsClear(t *testing.T) {
	cfg := config.DefaultArena3DConfig()
	cfg.Enemies.Radius = 100

	e := SpawnEnemy(GenerateLevel(cfg.World), testRNG(), cfg.World, cfg.Enemies, 1)
	assert.NotNil(t, e)
	assert.LessOrEqual(t, e.Pos.XZ().Len(), 25.0+eps)
}

func TestEnemyUpdateMovement(t *testing.T) {
	player := core.V3(0, 0, 0)

	tests := []struct {
		name     string
		behavior behavior.Behavior
		start    core.Vec2 // XZ
		check    func(t *testing.T, e *Enemy)
	}{
		{"chaser closes in", behavior.Chaser, core.V2(0, 10), func(t *testing.T, e *Enemy) {
			assert.InDelta(t, 9.95, e.Pos.Z, eps)
			assert.InDelta(t, 0, e.Pos.X, eps)
		}},
		{"ambusher waits nearby", behavior.Ambusher, core.V2(0, 6), func(t *testing.T, e *Enemy) {
			assert.Equal(t, 6.0, e.Pos.Z)
		}},
		{"ambusher advances from afar", behavior.Ambusher, core.V2(0, 12), func(t *testing.T, e *Enemy) {
			assert.InDelta(t, 11.95, e.Pos.Z, eps)
		}},
		{"flanker circles when close", behavior.Flanker, core.V2(0, 6), func(t *testing.T, e *Enemy) {
			assert.Greater(t, e.Pos.X, 0.0)
		}},
		{"flanker chases from afar", behavior.Flanker, core.V2(0, 20), func(t *testing.T, e *Enemy) {
			assert.InDelta(t, 0, e.Pos.X, eps)
			assert.InDelta(t, 19.95, e.Pos.Z, eps)
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := idleEnemy(tc.start.X, tc.start.Y, 3)
			e.Behavior = tc.behavior
			e.Speed = 0.05

			e.Update(player, nil, 0, testRNG(), testParams(), 3)
			tc.check(t, e)
			assert.Equal(t, -0.5, e.Pos.Y, "enemies stay on the floor")
		})
	}
}

func TestEnemyFacesPlayer(t *testing.T) {
	e := idleEnemy(10, 0, 3)
	e.Update(core.V3(0, 0, 0), nil, 0, testRNG(), testParams(), 3)
	assert.InDelta(t, 90, e.Yaw, 1e-6, "player to the -X side")
}

func TestEnemyBlockedByWall(t *testing.T) {
	walls := []Wall{NewWall(core.V3(-5, -1, 9.5), core.V3(5, -1, 9.5), 6)}
	e := idleEnemy(0, 10, 3)
	e.Speed = 0.05

	e.Update(core.V3(0, 0, 0), walls, 0, testRNG(), testParams(), 3)
	assert.Equal(t, 10.0, e.Pos.Z)
}

func TestEnemyAttack(t *testing.T) {
	t.Run("cooldown gates attacks", func(t *testing.T) {
		e := idleEnemy(0, 2, 3)
		e.Aggression = 1
		rng := testRNG()

		assert.False(t, e.Update(core.V3(0, 0, 0), nil, time.Second, rng, testParams(), 3))
		assert.True(t, e.Update(core.V3(0, 0, 0), nil, time.Second+time.Millisecond, rng, testParams(), 3))
		assert.False(t, e.Update(core.V3(0, 0, 0), nil, 1500*time.Millisecond, rng, testParams(), 3))
	})

	t.Run("late spawn attacks without waiting a cooldown", func(t *testing.T) {
		cfg := config.DefaultArena3DConfig()
		e := SpawnEnemy(nil, testRNG(), cfg.World, cfg.Enemies, 1)
		e.Pos = core.V3(0, -0.5, 2)
		e.Aggression = 1
		e.Behavior = behavior.Chaser

		assert.True(t, e.Update(core.V3(0, 0, 0), nil, 10*time.Second, testRNG(), testParams(), 3))
	})

	t.Run("out of range", func(t *testing.T) {
		e := idleEnemy(0, 5, 3)
		e.Aggression = 1
		assert.False(t, e.Update(core.V3(0, 0, 0), nil, 5*time.Second, testRNG(), testParams(), 3))
	})

	t.Run("holding ambusher never attacks", func(t *testing.T) {
		e := idleEnemy(0, 1, 3)
		e.Behavior = behavior.Ambusher
		e.Aggression = 1
		assert.False(t, e.Update(core.V3(0, 0, 0), nil, 5*time.Second, testRNG(), testParams(), 3))
	})
}

func TestEnemyHit(t *testing.T) {
	e := idleEnemy(0, 0, 3)
	assert.False(t, e.Hit(1))
	assert.False(t, e.Hit(1))
	assert.True(t, e.Hit(1))
	assert.False(t, e.Alive())
}
