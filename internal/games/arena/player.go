package arena

import (
	"math"
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Player is the avatar steered by the human.
type Player struct {
	Pos       core.Vec2
	Angle     float64 // heading in degrees, 0 = +X, grows clockwise on screen
	Radius    float64
	Speed     float64
	BaseSpeed float64
	TurnSpeed float64

	Health    float64
	MaxHealth float64
	Shield    float64
	MaxShield float64

	Weapon WeaponType
	Owned  []WeaponType

	lastShot        time.Duration
	speedUntil      time.Duration
	multiplier      int
	multiplierUntil time.Duration

	cfg    config.PlayerConfig
	pickup config.PickupConfig
}

// neverShot makes the first shot available at time zero.
const neverShot = time.Duration(math.MinInt64 / 2)

// NewPlayer creates a player at the world center, nudged out of obstacles.
func NewPlayer(w *World, rng *rand.Rand, cfg config.PlayerConfig, pickups config.PickupConfig) *Player {
	p := &Player{
		Radius:     cfg.Radius,
		Speed:      cfg.Speed,
		BaseSpeed:  cfg.Speed,
		TurnSpeed:  cfg.TurnSpeed,
		Health:     cfg.MaxHealth,
		MaxHealth:  cfg.MaxHealth,
		MaxShield:  cfg.MaxShield,
		Weapon:     Pistol,
		Owned:      []WeaponType{Pistol},
		lastShot:   neverShot,
		multiplier: 1,
		cfg:        cfg,
		pickup:     pickups,
	}
	p.Pos = p.spawn(w, rng)
	return p
}

// spawn tries the world center first, then random offsets whose range
// widens with every failed attempt.
func (p *Player) spawn(w *World, rng *rand.Rand) core.Vec2 {
	center := w.Bounds.Center()
	inner := core.NewRect(
		w.Bounds.X+p.Radius, w.Bounds.Y+p.Radius,
		w.Bounds.W-2*p.Radius, w.Bounds.H-2*p.Radius,
	)
	return w.findClear(p.cfg.SpawnAttempts, p.Radius, func(attempt int) core.Vec2 {
		if attempt == 0 {
			return center
		}
		offset := p.cfg.SpawnStep * float64(attempt)
		return core.Vec2{
			X: center.X + (rng.Float64()*2-1)*offset,
			Y: center.Y + (rng.Float64()*2-1)*offset,
		}.ClampTo(inner)
	})
}

// Move applies one tick of input. The move is committed only if the new
// position is clear of every obstacle.
func (p *Player) Move(in core.InputFrame, now time.Duration, w *World) {
	if now > p.speedUntil && p.Speed > p.BaseSpeed {
		p.Speed = p.BaseSpeed
	}

	if in.Has(core.ActionLeft) {
		p.Angle -= p.TurnSpeed
	}
	if in.Has(core.ActionRight) {
		p.Angle += p.TurnSpeed
	}

	next := p.Pos
	heading := core.FromAngle(p.Angle).Scale(p.Speed)
	if in.Has(core.ActionUp) {
		next = next.Add(heading)
	}
	if in.Has(core.ActionDown) {
		next = next.Sub(heading)
	}

	for i, action := range []core.Action{core.ActionWeapon1, core.ActionWeapon2, core.ActionWeapon3, core.ActionWeapon4} {
		if in.Has(action) {
			p.SelectWeapon(WeaponType(i))
		}
	}

	inner := core.NewRect(
		w.Bounds.X+p.Radius, w.Bounds.Y+p.Radius,
		w.Bounds.W-2*p.Radius, w.Bounds.H-2*p.Radius,
	)
	next = next.ClampTo(inner)
	if !w.Blocked(next, p.Radius) {
		p.Pos = next
	}
}

// SelectWeapon switches to weapon if the player owns it.
func (p *Player) SelectWeapon(weapon WeaponType) bool {
	if !p.Owns(weapon) {
		return false
	}
	p.Weapon = weapon
	return true
}

// Owns reports whether the weapon has been unlocked.
func (p *Player) Owns(weapon WeaponType) bool {
	return slices.Contains(p.Owned, weapon)
}

// CanShoot reports whether the current weapon's cooldown has elapsed.
func (p *Player) CanShoot(now time.Duration) bool {
	return now-p.lastShot > p.Weapon.Spec().Cooldown
}

// Shoot fires the current weapon. The shotgun fires a fan of pellets,
// every other weapon a single projectile.
func (p *Player) Shoot(now time.Duration, trailMax int) []*Projectile {
	p.lastShot = now
	spec := p.Weapon.Spec()

	shots := make([]*Projectile, 0, spec.Spread)
	half := spec.Spread / 2
	for i := -half; i <= half; i++ {
		angle := p.Angle + float64(i)*SpreadAngle
		shots = append(shots, NewProjectile(p.Pos, angle, spec.Speed, spec.Damage, spec.Radius, trailMax))
	}
	return shots
}

// TakeDamage applies damage to the shield first and the remainder to
// health. It returns true when health has dropped to zero or below.
func (p *Player) TakeDamage(amount float64) bool {
	if p.Shield > 0 {
		absorbed := math.Min(amount, p.Shield)
		p.Shield -= absorbed
		amount -= absorbed
	}
	if amount > 0 {
		p.Health -= amount
	}
	return p.Health <= 0
}

// Collect applies a pickup's effect.
func (p *Player) Collect(t PickupType, now time.Duration, rng *rand.Rand) {
	switch t {
	case PickupHealth:
		p.Health = math.Min(p.MaxHealth, p.Health+p.pickup.HealthAmount)
	case PickupSpeed:
		p.Speed = p.BaseSpeed * p.pickup.SpeedFactor
		p.speedUntil = now + p.pickup.SpeedDuration
	case PickupShield:
		p.Shield = math.Min(p.MaxShield, p.Shield+p.pickup.ShieldAmount)
	case PickupWeapon:
		var missing []WeaponType
		for _, w := range AllWeapons() {
			if !p.Owns(w) {
				missing = append(missing, w)
			}
		}
		if len(missing) == 0 {
			return
		}
		w := missing[rng.Intn(len(missing))]
		p.Owned = append(p.Owned, w)
		p.Weapon = w
	case PickupScoreMultiplier:
		p.multiplier = p.pickup.ScoreMultiplier
		p.multiplierUntil = now + p.pickup.MultiplierDuration
	}
}

// ScoreMultiplier returns the active score multiplier. It reverts to 1
// once the multiplier's expiry time has passed.
func (p *Player) ScoreMultiplier(now time.Duration) int {
	if p.multiplier > 1 && now < p.multiplierUntil {
		return p.multiplier
	}
	return 1
}

// SpeedBoosted reports whether a speed boost is active.
func (p *Player) SpeedBoosted() bool {
	return p.Speed > p.BaseSpeed
}

// LevelUp raises max health and refills health.
func (p *Player) LevelUp(bonus float64) {
	p.MaxHealth += bonus
	p.Health = p.MaxHealth
}
