package arena3d

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Camera is the first-person player: a position plus yaw and pitch in
// degrees. Yaw 0 looks down -Z and grows counter-clockwise seen from above.
type Camera struct {
	Pos   core.Vec3
	Yaw   float64
	Pitch float64

	forward core.Vec3
	right   core.Vec3
	up      core.Vec3

	cfg config.CameraConfig
}

// NewCamera places a camera at pos looking down -Z.
func NewCamera(pos core.Vec3, cfg config.CameraConfig) *Camera {
	c := &Camera{Pos: pos, cfg: cfg}
	c.updateVectors()
	return c
}

func (c *Camera) updateVectors() {
	yaw, pitch := core.Radians(c.Yaw), core.Radians(c.Pitch)
	c.forward = core.V3(
		-math.Sin(yaw)*math.Cos(pitch),
		math.Sin(pitch),
		-math.Cos(yaw)*math.Cos(pitch),
	)
	c.right = c.forward.Cross(core.V3(0, 1, 0)).Normalize()
	c.up = c.right.Cross(c.forward).Normalize()
}

// Forward returns the unit view direction.
func (c *Camera) Forward() core.Vec3 { return c.forward }

// Right returns the unit strafe direction.
func (c *Camera) Right() core.Vec3 { return c.right }

// Up returns the camera-relative up direction.
func (c *Camera) Up() core.Vec3 { return c.up }

// Look turns the camera by pointer deltas. Moving the pointer right turns
// right; moving it down looks down.
func (c *Camera) Look(dx, dy float64) {
	c.turn(-dx*c.cfg.LookSensitivity, -dy*c.cfg.LookSensitivity)
}

// LookKeys applies the discrete look actions.
func (c *Camera) LookKeys(in core.InputFrame) {
	step := c.cfg.KeyLookStep
	var yaw, pitch float64
	if in.Has(core.ActionLookLeft) {
		yaw += step
	}
	if in.Has(core.ActionLookRight) {
		yaw -= step
	}
	if in.Has(core.ActionLookUp) {
		pitch += step
	}
	if in.Has(core.ActionLookDown) {
		pitch -= step
	}
	if yaw != 0 || pitch != 0 {
		c.turn(yaw, pitch)
	}
}

func (c *Camera) turn(yaw, pitch float64) {
	c.Yaw = math.Mod(c.Yaw+yaw, 360)
	if c.Yaw < 0 {
		c.Yaw += 360
	}
	c.Pitch = core.Clamp(c.Pitch+pitch, -c.cfg.MaxPitch, c.cfg.MaxPitch)
	c.updateVectors()
}

// Move walks, strafes and flies according to the input, then clamps to the
// arena volume. The horizontal part of the move is dropped if it would put
// the camera inside a wall.
func (c *Camera) Move(in core.InputFrame, walls []Wall, world config.World3DConfig) {
	speed := c.cfg.Speed
	next := c.Pos

	if in.Has(core.ActionUp) {
		next = next.Add(c.forward.Scale(speed))
	}
	if in.Has(core.ActionDown) {
		next = next.Sub(c.forward.Scale(speed))
	}
	if in.Has(core.ActionLeft) {
		next = next.Sub(c.right.Scale(speed))
	}
	if in.Has(core.ActionRight) {
		next = next.Add(c.right.Scale(speed))
	}
	if in.Has(core.ActionAscend) {
		next.Y += speed
	}
	if in.Has(core.ActionDescend) {
		next.Y -= speed
	}

	half := world.Size / 2
	next.X = core.Clamp(next.X, -half, half)
	next.Z = core.Clamp(next.Z, -half, half)
	next.Y = core.Clamp(next.Y, world.FloorY+c.cfg.EdgeClearance, world.CeilingY-c.cfg.EdgeClearance)

	if next.X != c.Pos.X || next.Z != c.Pos.Z {
		if collidesAny(walls, next, c.cfg.Radius) {
			next.X, next.Z = c.Pos.X, c.Pos.Z
		}
	}
	c.Pos = next
}
