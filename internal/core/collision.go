package core

// CircleRectCollides reports whether a circle touches or overlaps an
// axis-aligned rectangle. A circle whose nearest-point distance equals the
// radius collides; a center inside the rectangle always collides.
func CircleRectCollides(center Vec2, radius float64, r Rect) bool {
	nearest := Vec2{
		X: Clamp(center.X, r.X, r.Right()),
		Y: Clamp(center.Y, r.Y, r.Bottom()),
	}
	d := center.Sub(nearest)
	return d.Dot(d) <= radius*radius
}

// CircleOverlaps reports whether two circles overlap strictly.
func CircleOverlaps(a Vec2, ra float64, b Vec2, rb float64) bool {
	return a.Dist(b) < ra+rb
}

// PointSegmentDistance returns the distance from p to the segment ab measured
// on the XZ ground plane. Heights are ignored. A zero-length segment yields
// the distance to a.
func PointSegmentDistance(p, a, b Vec3) float64 {
	pp, pa, pb := p.XZ(), a.XZ(), b.XZ()
	ab := pb.Sub(pa)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return pp.Dist(pa)
	}
	t := Clamp(pp.Sub(pa).Dot(ab)/lenSq, 0, 1)
	return pp.Dist(pa.Add(ab.Scale(t)))
}

// SegmentCollides reports whether a point with the given radius touches the
// segment ab on the XZ plane.
func SegmentCollides(p Vec3, radius float64, a, b Vec3) bool {
	return PointSegmentDistance(p, a, b) <= radius
}
