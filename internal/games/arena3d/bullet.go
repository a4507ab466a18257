package arena3d

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Bullet is a player shot flying in a straight line through the volume.
type Bullet struct {
	Pos      core.Vec3
	Dir      core.Vec3
	Speed    float64
	Damage   float64
	Radius   float64
	Active   bool
	Distance float64 // total distance travelled
	MaxDist  float64

	trail    []core.Vec3
	trailMax int
}

// NewBullet creates an active bullet fired from pos along dir. The
// direction is normalized.
func NewBullet(pos, dir core.Vec3, cfg config.Weapon3DConfig, trailMax int) *Bullet {
	return &Bullet{
		Pos:      pos,
		Dir:      dir.Normalize(),
		Speed:    cfg.BulletSpeed,
		Damage:   cfg.BulletDamage,
		Radius:   cfg.BulletRadius,
		Active:   true,
		MaxDist:  cfg.MaxDistance,
		trailMax: trailMax,
	}
}

// Update advances the bullet one tick. A bullet that would enter a wall
// stops where it is. Otherwise it moves and is retired once it has flown
// past its maximum distance.
func (b *Bullet) Update(walls []Wall) {
	if !b.Active {
		return
	}
	if b.trailMax > 0 {
		b.trail = append(b.trail, b.Pos)
		if len(b.trail) > b.trailMax {
			b.trail = b.trail[len(b.trail)-b.trailMax:]
		}
	}

	move := b.Dir.Scale(b.Speed)
	next := b.Pos.Add(move)
	if collidesAny(walls, next, b.Radius) {
		b.Active = false
		return
	}
	b.Pos = next
	b.Distance += move.Len()
	if b.Distance > b.MaxDist {
		b.Active = false
	}
}

// Trail returns the recent positions, oldest first.
func (b *Bullet) Trail() []core.Vec3 {
	return b.trail
}

// Hits reports whether the bullet touches the enemy's body: a vertical
// cylinder standing on the floor under the enemy.
func (b *Bullet) Hits(e *Enemy, floorY float64) bool {
	if b.Pos.XZ().Dist(e.Pos.XZ()) >= e.Radius+b.Radius {
		return false
	}
	return b.Pos.Y+b.Radius >= floorY && b.Pos.Y-b.Radius <= floorY+e.Height
}

func compactBullets(bullets []*Bullet) []*Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		if b.Active {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(bullets); i++ {
		bullets[i] = nil
	}
	return kept
}
