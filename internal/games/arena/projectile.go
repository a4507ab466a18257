package arena

import "github.com/vovakirdan/tui-shooter/internal/core"

// Projectile is a straight-flying shot. It stops at the first obstacle it
// would enter and when it leaves the world.
type Projectile struct {
	Pos    core.Vec2
	Angle  float64 // degrees
	Speed  float64 // world units per tick
	Damage float64
	Radius float64
	Active bool

	trail    []core.Vec2
	trailMax int
}

// NewProjectile creates an active projectile at pos heading along angle.
func NewProjectile(pos core.Vec2, angle, speed, damage, radius float64, trailMax int) *Projectile {
	return &Projectile{
		Pos:      pos,
		Angle:    angle,
		Speed:    speed,
		Damage:   damage,
		Radius:   radius,
		Active:   true,
		trail:    make([]core.Vec2, 0, trailMax),
		trailMax: trailMax,
	}
}

// Update advances the projectile by one tick.
func (p *Projectile) Update(w *World) {
	if !p.Active {
		return
	}
	p.pushTrail(p.Pos)

	next := p.Pos.Add(core.FromAngle(p.Angle).Scale(p.Speed))
	if w.Blocked(next, p.Radius) {
		p.Active = false
		return
	}
	p.Pos = next
	if !w.Inside(p.Pos) {
		p.Active = false
	}
}

func (p *Projectile) pushTrail(pos core.Vec2) {
	if p.trailMax <= 0 {
		return
	}
	if len(p.trail) == p.trailMax {
		copy(p.trail, p.trail[1:])
		p.trail = p.trail[:len(p.trail)-1]
	}
	p.trail = append(p.trail, pos)
}

// Trail returns past positions, oldest first.
func (p *Projectile) Trail() []core.Vec2 {
	return p.trail
}

// Hits reports whether the projectile overlaps a circle.
func (p *Projectile) Hits(center core.Vec2, radius float64) bool {
	return core.CircleOverlaps(p.Pos, p.Radius, center, radius)
}

// compactProjectiles drops inactive projectiles in place.
func compactProjectiles(ps []*Projectile) []*Projectile {
	kept := ps[:0]
	for _, p := range ps {
		if p.Active {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(ps); i++ {
		ps[i] = nil
	}
	return kept
}
