package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircleRectCollides(t *testing.T) {
	r := NewRect(100, 100, 50, 50)

	tests := []struct {
		name     string
		center   Vec2
		radius   float64
		expected bool
	}{
		{"center inside", V2(120, 120), 1, true},
		{"edge exactly at radius", V2(90, 120), 10, true},
		{"just beyond radius", V2(89.999, 120), 10, false},
		{"touching corner", V2(97, 96), 5, true},
		{"diagonal miss near corner", V2(95, 95), 5, false},
		{"below bottom edge", V2(125, 161), 10, false},
		{"overlapping bottom edge", V2(125, 159), 10, true},
		{"zero radius on edge", V2(150, 125), 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CircleRectCollides(tc.center, tc.radius, r))
		})
	}
}

func TestCircleOverlaps(t *testing.T) {
	assert.True(t, CircleOverlaps(V2(0, 0), 20, V2(30, 0), 15))
	assert.False(t, CircleOverlaps(V2(0, 0), 20, V2(35, 0), 15), "touching circles do not overlap")
}

func TestPointSegmentDistance(t *testing.T) {
	a := V3(0, 0, 0)
	b := V3(10, 0, 0)

	tests := []struct {
		name string
		p    Vec3
		a, b Vec3
		want float64
	}{
		{"perpendicular to middle", V3(5, 0, 3), a, b, 3},
		{"height is ignored", V3(5, 42, 3), a, b, 3},
		{"before start clamps to a", V3(-3, 0, 4), a, b, 5},
		{"past end clamps to b", V3(13, 0, 4), a, b, 5},
		{"on the segment", V3(7, 0, 0), a, b, 0},
		{"degenerate segment", V3(3, 0, 4), a, a, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, PointSegmentDistance(tc.p, tc.a, tc.b), 1e-9)
		})
	}
}

func TestSegmentCollides(t *testing.T) {
	a, b := V3(-5, 0, 5), V3(5, 0, 5)
	assert.True(t, SegmentCollides(V3(0, 0, 4.5), 0.5, a, b), "distance equal to radius collides")
	assert.False(t, SegmentCollides(V3(0, 0, 4.4), 0.5, a, b))
}

func TestVectorHelpers(t *testing.T) {
	t.Run("normalize zero is safe", func(t *testing.T) {
		assert.Equal(t, Vec2{}, Vec2{}.Normalize())
		assert.Equal(t, Vec3{}, Vec3{}.Normalize())
	})

	t.Run("normalize length", func(t *testing.T) {
		assert.InDelta(t, 1, V2(3, 4).Normalize().Len(), 1e-12)
		assert.InDelta(t, 1, V3(1, 2, 2).Normalize().Len(), 1e-12)
	})

	t.Run("from angle", func(t *testing.T) {
		v := FromAngle(90)
		assert.InDelta(t, 0, v.X, 1e-12)
		assert.InDelta(t, 1, v.Y, 1e-12)
	})

	t.Run("angle to", func(t *testing.T) {
		assert.InDelta(t, 180, V2(10, 0).AngleTo(V2(0, 0)), 1e-9)
		assert.InDelta(t, -90, V2(0, 10).AngleTo(V2(0, 0)), 1e-9)
	})

	t.Run("cross follows right hand rule", func(t *testing.T) {
		assert.Equal(t, V3(0, 0, 1), V3(1, 0, 0).Cross(V3(0, 1, 0)))
	})

	t.Run("perp is a quarter turn", func(t *testing.T) {
		p := V2(1, 0).Perp()
		assert.InDelta(t, 90, p.Angle(), 1e-9)
		assert.InDelta(t, 0, p.Dot(V2(1, 0)), 1e-12)
	})

	t.Run("clamp to rect", func(t *testing.T) {
		r := NewRect(0, 0, 100, 50)
		assert.Equal(t, V2(100, 0), V2(140, -3).ClampTo(r))
	})

	t.Run("degrees round trip", func(t *testing.T) {
		assert.InDelta(t, 45, Degrees(Radians(45)), 1e-12)
		assert.InDelta(t, math.Pi, Radians(180), 1e-12)
	})
}

func TestHasher(t *testing.T) {
	digest := func(f float64, s string) uint64 {
		h := NewHasher()
		h.Int(1, 2)
		h.Float(f)
		h.String(s)
		return h.Sum64()
	}

	assert.Equal(t, digest(0.5, "x"), digest(0.5, "x"))
	assert.NotEqual(t, digest(0.5, "x"), digest(0.25, "x"))
	assert.NotEqual(t, digest(0.5, "x"), digest(0.5, "y"))
}
