package core

import "math"

// Vec2 is a point or direction in the 2D arena plane.
// Y grows downwards, matching screen coordinates.
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{X: x, Y: y}.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle returns the unit vector pointing at angle degrees.
func FromAngle(deg float64) Vec2 {
	rad := Radians(deg)
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

func (v Vec2) Add(o Vec2) Vec2        { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2        { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2   { return Vec2{v.X * k, v.Y * k} }
func (v Vec2) Dot(o Vec2) float64     { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Len() float64           { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64    { return v.Sub(o).Len() }
func (v Vec2) Perp() Vec2             { return Vec2{-v.Y, v.X} }
func (v Vec2) Angle() float64         { return Degrees(math.Atan2(v.Y, v.X)) }
func (v Vec2) AngleTo(o Vec2) float64 { return o.Sub(v).Angle() }

// Normalize returns the unit vector in the direction of v.
// The zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// ClampTo keeps v inside r.
func (v Vec2) ClampTo(r Rect) Vec2 {
	return Vec2{Clamp(v.X, r.X, r.Right()), Clamp(v.Y, r.Y, r.Bottom())}
}

// Vec3 is a point or direction in the 3D arena. Y is up.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is shorthand for Vec3{X: x, Y: y, Z: z}.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Len() float64         { return math.Sqrt(v.Dot(v)) }
func (v Vec3) Dist(o Vec3) float64  { return v.Sub(o).Len() }

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Normalize returns the unit vector in the direction of v.
// The zero vector normalizes to itself.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// XZ projects v onto the ground plane, mapping Z to the 2D Y axis.
func (v Vec3) XZ() Vec2 {
	return Vec2{X: v.X, Y: v.Z}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
