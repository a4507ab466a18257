package arena3d

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// roomHalf is the half-width of the central room around the spawn point.
const roomHalf = 5.0

// obstacleWalls are free-standing walls placed around the central room,
// given as XZ start and end points.
var obstacleWalls = [][2]core.Vec2{
	{{X: -10, Y: -10}, {X: -5, Y: -10}},
	{{X: 10, Y: 10}, {X: 15, Y: 10}},
	{{X: -15, Y: 10}, {X: -15, Y: 15}},
	{{X: 15, Y: -15}, {X: 15, Y: -10}},
}

// GenerateLevel builds the fixed 3D layout: the four outer walls, a central
// room with a doorway in each side, and a few free-standing walls.
func GenerateLevel(cfg config.World3DConfig) []Wall {
	half := cfg.Size / 2
	floor := cfg.FloorY
	h := cfg.WallHeight
	at := func(x, z float64) core.Vec3 { return core.V3(x, floor, z) }

	walls := []Wall{
		NewWall(at(-half, -half), at(half, -half), h),
		NewWall(at(half, -half), at(half, half), h),
		NewWall(at(half, half), at(-half, half), h),
		NewWall(at(-half, half), at(-half, -half), h),
	}

	// Each side of the room is split around a centered doorway.
	corners := [4][2]core.Vec3{
		{at(-roomHalf, -roomHalf), at(roomHalf, -roomHalf)},
		{at(-roomHalf, roomHalf), at(roomHalf, roomHalf)},
		{at(-roomHalf, -roomHalf), at(-roomHalf, roomHalf)},
		{at(roomHalf, -roomHalf), at(roomHalf, roomHalf)},
	}
	for _, side := range corners {
		walls = append(walls, splitWall(side[0], side[1], cfg.Doorway, h)...)
	}

	for _, ow := range obstacleWalls {
		walls = append(walls, NewWall(at(ow[0].X, ow[0].Y), at(ow[1].X, ow[1].Y), h))
	}
	return walls
}

// splitWall returns the wall from a to b with a gap of the given width cut
// out of its middle. A gap that does not fit leaves the wall whole.
func splitWall(a, b core.Vec3, gap, height float64) []Wall {
	length := b.Sub(a).Len()
	if gap <= 0 || gap >= length {
		return []Wall{NewWall(a, b, height)}
	}
	dir := b.Sub(a).Normalize()
	mid := a.Add(b).Scale(0.5)
	return []Wall{
		NewWall(a, mid.Sub(dir.Scale(gap/2)), height),
		NewWall(mid.Add(dir.Scale(gap/2)), b, height),
	}
}
