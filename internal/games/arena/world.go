package arena

import (
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// World is the static arena: its bounds and the obstacles placed in it.
// Obstacles never change after generation.
type World struct {
	Bounds    core.Rect
	Obstacles []core.Rect
}

// Blocked reports whether a circle at pos touches any obstacle.
func (w *World) Blocked(pos core.Vec2, radius float64) bool {
	for _, o := range w.Obstacles {
		if core.CircleRectCollides(pos, radius, o) {
			return true
		}
	}
	return false
}

// Inside reports whether pos lies within the world bounds, edges included.
func (w *World) Inside(pos core.Vec2) bool {
	b := w.Bounds
	return pos.X >= b.X && pos.X <= b.Right() && pos.Y >= b.Y && pos.Y <= b.Bottom()
}

// RandomPoint returns a uniform point at least margin away from every edge.
func (w *World) RandomPoint(rng *rand.Rand, margin float64) core.Vec2 {
	b := w.Bounds
	return core.Vec2{
		X: b.X + margin + rng.Float64()*(b.W-2*margin),
		Y: b.Y + margin + rng.Float64()*(b.H-2*margin),
	}
}

// GenerateMap places obstacles on a grid so that no two obstacles share a
// cell and nothing overlaps the cell holding the world center, which is
// kept for the player.
// An obstacle that finds no free cell within the retry budget is skipped.
func GenerateMap(rng *rand.Rand, bounds core.Rect, cfg config.MapConfig) *World {
	w := &World{Bounds: bounds}

	grid := cfg.GridSize
	if grid <= 0 {
		return w
	}
	cols := int(bounds.W / grid)
	rows := int(bounds.H / grid)
	if cols <= 0 || rows <= 0 {
		return w
	}

	type cell struct{ col, row int }
	used := make(map[cell]bool)
	center := bounds.Center()
	spawn := cell{int((center.X - bounds.X) / grid), int((center.Y - bounds.Y) / grid)}
	used[spawn] = true
	// Obstacles may spill out of their own cell but never into the spawn cell.
	spawnRect := core.NewRect(bounds.X+float64(spawn.col)*grid, bounds.Y+float64(spawn.row)*grid, grid, grid)

	count := randIntRange(rng, cfg.MinObstacles, cfg.MaxObstacles)
	for i := 0; i < count; i++ {
		for attempt := 0; attempt < cfg.Attempts; attempt++ {
			c := cell{rng.Intn(cols), rng.Intn(rows)}
			if used[c] {
				continue
			}

			width := randFloatRange(rng, cfg.MinSize, cfg.MaxSize)
			height := randFloatRange(rng, cfg.MinSize, cfg.MaxSize)
			x := bounds.X + float64(c.col)*grid + rng.Float64()*(grid-cfg.MinSize)
			y := bounds.Y + float64(c.row)*grid + rng.Float64()*(grid-cfg.MinSize)
			x = core.Clamp(x, bounds.X, bounds.Right()-width)
			y = core.Clamp(y, bounds.Y, bounds.Bottom()-height)

			o := core.NewRect(x, y, width, height)
			if o.Intersects(spawnRect) {
				continue
			}
			w.Obstacles = append(w.Obstacles, o)
			used[c] = true
			break
		}
	}
	return w
}

// findClear samples positions until one is clear of obstacles. After
// attempts failures the last sample is returned anyway.
func (w *World) findClear(attempts int, radius float64, sample func(attempt int) core.Vec2) core.Vec2 {
	pos := sample(0)
	for attempt := 0; attempt < attempts && w.Blocked(pos, radius); attempt++ {
		pos = sample(attempt + 1)
	}
	return pos
}

func randIntRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

func randFloatRange(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
