package arena

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/behavior"
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Enemy is a hostile AI that moves according to its behavior and shoots
// at the player.
type Enemy struct {
	Pos          core.Vec2
	Angle        float64 // always faces the player
	Radius       float64
	Health       float64
	MaxHealth    float64
	Speed        float64
	Aggression   float64 // chance to fire per tick once the cooldown has elapsed
	ShotCooldown time.Duration
	Behavior     behavior.Behavior

	lastShot time.Duration
}

// SpawnEnemy places a new enemy at a random position clear of obstacles.
// Speed, aggression and fire rate scale with difficulty. The shot clock
// starts at session time zero, so an enemy spawned late may fire at once.
func SpawnEnemy(w *World, rng *rand.Rand, cfg config.EnemyConfig, difficulty float64) *Enemy {
	e := &Enemy{
		Radius:     cfg.Radius,
		Health:     cfg.Health,
		MaxHealth:  cfg.Health,
		Speed:      randFloatRange(rng, cfg.MinSpeed, cfg.MaxSpeed) * difficulty,
		Aggression: randFloatRange(rng, cfg.MinAggression, cfg.MaxAggression) * difficulty,
		Angle:      rng.Float64() * 360,
		Behavior:   behavior.Random(rng),
	}

	cooldown := cfg.MinShotCooldown
	if span := cfg.MaxShotCooldown - cfg.MinShotCooldown; span > 0 {
		cooldown += time.Duration(rng.Int63n(int64(span) + 1))
	}
	if difficulty > 0 {
		cooldown = time.Duration(float64(cooldown) / difficulty)
	}
	e.ShotCooldown = cooldown.Truncate(time.Millisecond)

	e.Pos = w.findClear(cfg.SpawnAttempts, e.Radius, func(int) core.Vec2 {
		return w.RandomPoint(rng, cfg.SpawnMargin)
	})
	return e
}

// Update moves the enemy one tick toward its behavior's target. It returns
// true when the enemy decides to fire at the player this tick.
func (e *Enemy) Update(player core.Vec2, now time.Duration, w *World, rng *rand.Rand, cfg config.EnemyConfig) bool {
	dist := e.Pos.Dist(player)
	if dist > 0 {
		e.Angle = e.Pos.AngleTo(player)
	}

	plan := behavior.Plan(e.Behavior, e.Pos, player, behavior.Params{
		FlankDistance: cfg.FlankDistance,
		AmbushRange:   cfg.AmbushRange,
	})
	if !plan.Hold {
		next := behavior.StepToward(e.Pos, plan.Target, e.Speed)
		if !w.Blocked(next, e.Radius) {
			e.Pos = next
		}
	}

	if now-e.lastShot > e.ShotCooldown && dist < cfg.ShootRange && rng.Float64() < e.Aggression {
		e.lastShot = now
		return true
	}
	return false
}

// Hit applies damage and returns true if the enemy died.
func (e *Enemy) Hit(damage float64) bool {
	e.Health -= damage
	return e.Health <= 0
}

// Alive reports whether the enemy still has health left.
func (e *Enemy) Alive() bool {
	return e.Health > 0
}
