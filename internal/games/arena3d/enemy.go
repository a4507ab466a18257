package arena3d

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/behavior"
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Enemy is a standing opponent that attacks at close range.
type Enemy struct {
	Pos            core.Vec3
	Yaw            float64 // facing toward the player, same convention as Camera
	Radius         float64
	Height         float64
	Health         float64
	MaxHealth      float64
	Speed          float64
	Aggression     float64
	AttackCooldown time.Duration
	Behavior       behavior.Behavior

	lastAttack time.Duration
}

// SpawnEnemy places an enemy at a random bearing and distance from the
// arena center, retrying while the spot touches a wall. When every attempt
// fails the last candidate is used. The attack clock starts at session time
// zero, so an enemy spawned late may attack at once.
func SpawnEnemy(walls []Wall, rng *rand.Rand, world config.World3DConfig, cfg config.Enemy3DConfig,
	difficulty float64) *Enemy {
	e := &Enemy{
		Radius:         cfg.Radius,
		Height:         cfg.Height,
		Health:         cfg.Health,
		MaxHealth:      cfg.Health,
		Speed:          cfg.Speed * difficulty,
		AttackCooldown: cfg.AttackCooldown,
		Behavior:       behavior.Random(rng),
	}
	aggression := cfg.MinAggression + rng.Float64()*(cfg.MaxAggression-cfg.MinAggression)
	e.Aggression = math.Min(1, aggression*difficulty)

	y := world.FloorY + cfg.Radius
	maxDist := math.Max(cfg.MinDistance, world.Size/2)
	attempts := max(cfg.SpawnAttempts, 1)
	for try := 0; try < attempts; try++ {
		angle := rng.Float64() * 2 * math.Pi
		dist := cfg.MinDistance + rng.Float64()*(maxDist-cfg.MinDistance)
		e.Pos = core.V3(math.Cos(angle)*dist, y, math.Sin(angle)*dist)
		if !collidesAny(walls, e.Pos, e.Radius) {
			break
		}
	}
	return e
}

// Update moves the enemy according to its behavior and reports whether it
// attacks the player this tick. A move into a wall is skipped. An ambusher
// holding its ground never attacks.
func (e *Enemy) Update(player core.Vec3, walls []Wall, now time.Duration, rng *rand.Rand, params behavior.Params,
	attackRange float64) bool {
	self := e.Pos.XZ()
	target := player.XZ()
	dist := self.Dist(target)
	if dist > 0 {
		e.Yaw = yawToward(target.Sub(self))
	}

	decision := behavior.Plan(e.Behavior, self, target, params)
	if decision.Hold {
		return false
	}

	step := behavior.StepToward(self, decision.Target, e.Speed)
	next := core.V3(step.X, e.Pos.Y, step.Y)
	if !collidesAny(walls, next, e.Radius) {
		e.Pos = next
	}

	if now-e.lastAttack > e.AttackCooldown && dist < attackRange && rng.Float64() < e.Aggression {
		e.lastAttack = now
		return true
	}
	return false
}

// Hit applies damage and reports whether the enemy died.
func (e *Enemy) Hit(damage float64) bool {
	e.Health -= damage
	return e.Health <= 0
}

// Alive reports whether the enemy still has health left.
func (e *Enemy) Alive() bool {
	return e.Health > 0
}

// yawToward converts an XZ direction into a camera-style yaw in degrees.
func yawToward(d core.Vec2) float64 {
	yaw := core.Degrees(math.Atan2(-d.X, -d.Y))
	if yaw < 0 {
		yaw += 360
	}
	return yaw
}
