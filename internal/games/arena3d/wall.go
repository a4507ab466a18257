package arena3d

import "github.com/vovakirdan/tui-shooter/internal/core"

// Wall is a vertical segment standing on the floor. Collision ignores the
// vertical axis.
type Wall struct {
	Start  core.Vec3
	End    core.Vec3
	Height float64
	Normal core.Vec3
}

// NewWall builds a wall from start to end with its normal derived from the
// XZ direction.
func NewWall(start, end core.Vec3, height float64) Wall {
	dir := end.Sub(start)
	return Wall{
		Start:  start,
		End:    end,
		Height: height,
		Normal: core.V3(-dir.Z, 0, dir.X).Normalize(),
	}
}

// CollidesWithPoint reports whether a circle of radius r around p touches
// the wall on the XZ plane.
func (w Wall) CollidesWithPoint(p core.Vec3, r float64) bool {
	return core.SegmentCollides(p, r, w.Start, w.End)
}

// Length is the wall's horizontal extent.
func (w Wall) Length() float64 {
	return w.End.XZ().Dist(w.Start.XZ())
}

func collidesAny(walls []Wall, p core.Vec3, r float64) bool {
	for _, w := range walls {
		if w.CollidesWithPoint(p, r) {
			return true
		}
	}
	return false
}
