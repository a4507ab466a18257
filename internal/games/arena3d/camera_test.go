package arena3d

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

const eps = 1e-9

func newTestCamera(pos core.Vec3) *Camera {
	return NewCamera(pos, config.DefaultArena3DConfig().Camera)
}

func assertVec3(t *testing.T, want, got core.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-6, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-6, "y")
	assert.InDelta(t, want.Z, got.Z, 1e-6, "z")
}

func TestCameraInitialVectors(t *testing.T) {
	c := newTestCamera(core.V3(0, 0, 0))
	assertVec3(t, core.V3(0, 0, -1), c.Forward())
	assertVec3(t, core.V3(1, 0, 0), c.Right())
	assertVec3(t, core.V3(0, 1, 0), c.Up())
}

func TestCameraLook(t *testing.T) {
	t.Run("pointer right turns right", func(t *testing.T) {
		c := newTestCamera(core.V3(0, 0, 0))
		c.Look(10, 0)
		assert.InDelta(t, 358, c.Yaw, eps)
		assert.Greater(t, c.Forward().X, 0.0)
	})

	t.Run("pitch is clamped", func(t *testing.T) {
		c := newTestCamera(core.V3(0, 0, 0))
		c.Look(0, -1000)
		assert.Equal(t, 89.0, c.Pitch)
		c.Look(0, 5000)
		assert.Equal(t, -89.0, c.Pitch)
	})

	t.Run("look keys", func(t *testing.T) {
		c := newTestCamera(core.V3(0, 0, 0))
		c.LookKeys(press(core.ActionLookLeft, core.ActionLookUp))
		assert.InDelta(t, 3, c.Yaw, eps)
		assert.InDelta(t, 3, c.Pitch, eps)
	})

	t.Run("yaw 90 faces -X", func(t *testing.T) {
		c := newTestCamera(core.V3(0, 0, 0))
		c.LookKeys(press(core.ActionLookLeft))
		for i := 0; i < 29; i++ {
			c.LookKeys(press(core.ActionLookLeft))
		}
		assert.InDelta(t, 90, c.Yaw, 1e-6)
		assertVec3(t, core.V3(-1, 0, 0), c.Forward())
		assertVec3(t, core.V3(0, 0, -1), c.Right())
	})
}

func TestCameraMove(t *testing.T) {
	world := config.DefaultArena3DConfig().World

	tests := []struct {
		name  string
		start core.Vec3
		in    core.InputFrame
		want  core.Vec3
	}{
		{"forward", core.V3(0, 0, 0), press(core.ActionUp), core.V3(0, 0, -0.2)},
		{"backward", core.V3(0, 0, 0), press(core.ActionDown), core.V3(0, 0, 0.2)},
		{"strafe right", core.V3(0, 0, 0), press(core.ActionRight), core.V3(0.2, 0, 0)},
		{"strafe left", core.V3(0, 0, 0), press(core.ActionLeft), core.V3(-0.2, 0, 0)},
		{"ascend", core.V3(0, 0, 0), press(core.ActionAscend), core.V3(0, 0.2, 0)},
		{"ceiling clamp", core.V3(0, 4.4, 0), press(core.ActionAscend), core.V3(0, 4.5, 0)},
		{"floor clamp", core.V3(0, -0.4, 0), press(core.ActionDescend), core.V3(0, -0.5, 0)},
		{"world edge clamp", core.V3(0, 0, -24.9), press(core.ActionUp), core.V3(0, 0, -25)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestCamera(tc.start)
			c.Move(tc.in, nil, world)
			assertVec3(t, tc.want, c.Pos)
		})
	}
}

func TestCameraMoveBlockedByWall(t *testing.T) {
	world := config.DefaultArena3DConfig().World
	walls := []Wall{NewWall(core.V3(-5, -1, -0.6), core.V3(5, -1, -0.6), 6)}

	c := newTestCamera(core.V3(0, 0, 0))
	c.Move(press(core.ActionUp, core.ActionAscend), walls, world)

	assert.Equal(t, 0.0, c.Pos.Z, "horizontal move into the wall is dropped")
	assert.InDelta(t, 0.2, c.Pos.Y, eps, "vertical move still applies")
}
