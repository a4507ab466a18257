package arena

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestGenerateMapWithinBounds(t *testing.T) {
	cfg := config.DefaultArenaConfig().Map
	bounds := core.NewRect(0, 0, 1200, 900)

	for seed := int64(1); seed <= 50; seed++ {
		w := GenerateMap(rand.New(rand.NewSource(seed)), bounds, cfg)

		require.LessOrEqual(t, len(w.Obstacles), cfg.MaxObstacles)
		for _, o := range w.Obstacles {
			assert.GreaterOrEqual(t, o.X, 0.0)
			assert.GreaterOrEqual(t, o.Y, 0.0)
			assert.LessOrEqual(t, o.Right(), bounds.Right()+1e-9)
			assert.LessOrEqual(t, o.Bottom(), bounds.Bottom()+1e-9)
			assert.GreaterOrEqual(t, o.W, cfg.MinSize)
			assert.LessOrEqual(t, o.W, cfg.MaxSize)
		}
	}
}

func TestGenerateMapDeterministic(t *testing.T) {
	cfg := config.DefaultArenaConfig().Map
	bounds := core.NewRect(0, 0, 1200, 900)

	a := GenerateMap(rand.New(rand.NewSource(99)), bounds, cfg)
	b := GenerateMap(rand.New(rand.NewSource(99)), bounds, cfg)
	assert.Equal(t, a.Obstacles, b.Obstacles)
}

func TestGenerateMapReservesCenterCell(t *testing.T) {
	// A single-cell grid only has the reserved center cell, so every
	// obstacle exhausts its retries and is skipped.
	cfg := config.DefaultArenaConfig().Map
	w := GenerateMap(testRNG(), core.NewRect(0, 0, 200, 200), cfg)
	assert.Empty(t, w.Obstacles)
}

func TestGenerateMapOneObstaclePerCell(t *testing.T) {
	// With MinSize equal to the grid size every obstacle sits exactly on
	// its cell origin, so distinct origins mean distinct cells.
	cfg := config.MapConfig{MinObstacles: 30, MaxObstacles: 30, MinSize: 200, MaxSize: 200, GridSize: 200, Attempts: 10}
	bounds := core.NewRect(0, 0, 1200, 800)
	w := GenerateMap(testRNG(), bounds, cfg)

	seen := map[core.Vec2]bool{}
	for _, o := range w.Obstacles {
		origin := core.V2(o.X, o.Y)
		assert.False(t, seen[origin], "two obstacles in cell %v", origin)
		seen[origin] = true
		assert.False(t, o.Contains(bounds.Center()), "center cell must stay empty")
	}
	assert.LessOrEqual(t, len(w.Obstacles), 6*4-1)
}

func TestGenerateMapKeepsSpawnCellClear(t *testing.T) {
	// MaxSize exceeds the grid, so obstacles regularly spill into
	// neighbouring cells; none may reach the spawn cell.
	cfg := config.DefaultArenaConfig().Map
	bounds := core.NewRect(0, 0, 1200, 800)
	spawnCell := core.NewRect(600, 400, cfg.GridSize, cfg.GridSize)

	for seed := int64(1); seed <= 100; seed++ {
		w := GenerateMap(rand.New(rand.NewSource(seed)), bounds, cfg)
		for _, o := range w.Obstacles {
			require.False(t, o.Intersects(spawnCell), "seed %d: obstacle %+v overlaps the spawn cell", seed, o)
		}
	}
}

func TestWorldBlocked(t *testing.T) {
	w := &World{Bounds: core.NewRect(0, 0, 100, 100), Obstacles: []core.Rect{core.NewRect(40, 40, 20, 20)}}

	assert.True(t, w.Blocked(core.V2(35, 50), 5))
	assert.False(t, w.Blocked(core.V2(34, 50), 5))
	assert.True(t, w.Inside(core.V2(100, 100)))
	assert.False(t, w.Inside(core.V2(100.1, 50)))
}
