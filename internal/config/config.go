// Package config provides YAML-based game configuration loading and
// difficulty management for the shooter modes.
package config

import "time"

// ArenaConfig contains all configuration for the 2D arena mode.
type ArenaConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Projectile ProjectileConfig `yaml:"projectiles"`
	Pickups    PickupConfig     `yaml:"pickups"`
	Map        MapConfig        `yaml:"map"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the 2D arena bounds in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the 2D player avatar.
type PlayerConfig struct {
	Radius        float64 `yaml:"radius"`
	Speed         float64 `yaml:"speed"`
	TurnSpeed     float64 `yaml:"turn_speed"` // degrees per tick
	MaxHealth     float64 `yaml:"max_health"`
	MaxShield     float64 `yaml:"max_shield"`
	SpawnAttempts int     `yaml:"spawn_attempts"`
	SpawnStep     float64 `yaml:"spawn_step"` // offset radius growth per attempt
}

// EnemyConfig defines 2D enemy spawning and behaviour.
type EnemyConfig struct {
	InitialCount    int              `yaml:"initial_count"`
	Radius          float64          `yaml:"radius"`
	Health          float64          `yaml:"health"`
	SpawnMargin     float64          `yaml:"spawn_margin"`
	SpawnAttempts   int              `yaml:"spawn_attempts"`
	MinSpeed        float64          `yaml:"min_speed"`
	MaxSpeed        float64          `yaml:"max_speed"`
	MinAggression   float64          `yaml:"min_aggression"`
	MaxAggression   float64          `yaml:"max_aggression"`
	MinShotCooldown time.Duration    `yaml:"min_shot_cooldown"`
	MaxShotCooldown time.Duration    `yaml:"max_shot_cooldown"`
	ShootRange      float64          `yaml:"shoot_range"`
	FlankDistance   float64          `yaml:"flank_distance"`
	AmbushRange     float64          `yaml:"ambush_range"`
	ContactDamage   float64          `yaml:"contact_damage"`
	Projectile      EnemyProjectiles `yaml:"projectile"`
}

// EnemyProjectiles defines the shots fired by 2D enemies.
type EnemyProjectiles struct {
	Damage float64 `yaml:"damage"`
	Speed  float64 `yaml:"speed"`
	Radius float64 `yaml:"radius"`
}

// ProjectileConfig defines shared projectile parameters.
type ProjectileConfig struct {
	TrailLength int `yaml:"trail_length"`
}

// PickupConfig defines pickup spawning and effects.
type PickupConfig struct {
	Radius             float64       `yaml:"radius"`
	SpawnInterval      time.Duration `yaml:"spawn_interval"`
	MaxActive          int           `yaml:"max_active"`
	SpawnClearance     float64       `yaml:"spawn_clearance"`
	SpawnAttempts      int           `yaml:"spawn_attempts"`
	SpawnMargin        float64       `yaml:"spawn_margin"`
	DropChance         float64       `yaml:"drop_chance"`
	HealthAmount       float64       `yaml:"health_amount"`
	ShieldAmount       float64       `yaml:"shield_amount"`
	SpeedFactor        float64       `yaml:"speed_factor"`
	SpeedDuration      time.Duration `yaml:"speed_duration"`
	ScoreMultiplier    int           `yaml:"score_multiplier"`
	MultiplierDuration time.Duration `yaml:"multiplier_duration"`
}

// MapConfig defines the obstacle layout generator.
type MapConfig struct {
	MinObstacles int     `yaml:"min_obstacles"`
	MaxObstacles int     `yaml:"max_obstacles"`
	MinSize      float64 `yaml:"min_size"`
	MaxSize      float64 `yaml:"max_size"`
	GridSize     float64 `yaml:"grid_size"`
	Attempts     int     `yaml:"attempts"`
}

// ScoringConfig defines points awarded per kill.
type ScoringConfig struct {
	KillPoints int `yaml:"kill_points"`
}

// Arena3DConfig contains all configuration for the 3D arena mode.
type Arena3DConfig struct {
	World      World3DConfig    `yaml:"world"`
	Camera     CameraConfig     `yaml:"camera"`
	Player     Player3DConfig   `yaml:"player"`
	Weapon     Weapon3DConfig   `yaml:"weapon"`
	Enemies    Enemy3DConfig    `yaml:"enemies"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// World3DConfig defines the 3D arena volume.
type World3DConfig struct {
	Size       float64 `yaml:"size"`
	FloorY     float64 `yaml:"floor_y"`
	CeilingY   float64 `yaml:"ceiling_y"`
	WallHeight float64 `yaml:"wall_height"`
	Doorway    float64 `yaml:"doorway"` // gap width in each wall of the central room
}

// CameraConfig defines first-person camera movement.
type CameraConfig struct {
	Speed           float64 `yaml:"speed"`
	LookSensitivity float64 `yaml:"look_sensitivity"` // degrees per pointer pixel
	KeyLookStep     float64 `yaml:"key_look_step"`    // degrees per look key press
	Radius          float64 `yaml:"radius"`
	MaxPitch        float64 `yaml:"max_pitch"`
	EdgeClearance   float64 `yaml:"edge_clearance"` // distance kept from floor and ceiling
	StartHeight     float64 `yaml:"start_height"`   // eye height above the floor
}

// Player3DConfig defines the 3D player's vitals.
type Player3DConfig struct {
	MaxHealth float64 `yaml:"max_health"`
	MaxShield float64 `yaml:"max_shield"`
}

// Weapon3DConfig defines the first-person weapon.
type Weapon3DConfig struct {
	Cooldown     time.Duration `yaml:"cooldown"`
	Recoil       time.Duration `yaml:"recoil"`
	BulletSpeed  float64       `yaml:"bullet_speed"`
	BulletDamage float64       `yaml:"bullet_damage"`
	BulletRadius float64       `yaml:"bullet_radius"`
	MaxDistance  float64       `yaml:"max_distance"`
}

// Enemy3DConfig defines 3D enemy spawning and behaviour.
type Enemy3DConfig struct {
	InitialCount   int           `yaml:"initial_count"`
	Health         float64       `yaml:"health"`
	Speed          float64       `yaml:"speed"`
	Radius         float64       `yaml:"radius"`
	Height         float64       `yaml:"height"`
	MinDistance    float64       `yaml:"min_distance"`
	SpawnAttempts  int           `yaml:"spawn_attempts"`
	AttackCooldown time.Duration `yaml:"attack_cooldown"`
	AttackRange    float64       `yaml:"attack_range"`
	AttackDamage   float64       `yaml:"attack_damage"`
	MinAggression  float64       `yaml:"min_aggression"`
	MaxAggression  float64       `yaml:"max_aggression"`
	FlankDistance  float64       `yaml:"flank_distance"`
	FlankRange     float64       `yaml:"flank_range"`
	AmbushRange    float64       `yaml:"ambush_range"`
}

// DifficultyConfig defines level progression. A level-up happens when the
// score reaches the current threshold; the threshold then grows by
// ThresholdFactor and the difficulty scalar by Step.
type DifficultyConfig struct {
	Initial         float64 `yaml:"initial"`
	Step            float64 `yaml:"step"`
	FirstThreshold  int     `yaml:"first_threshold"`
	ThresholdFactor int     `yaml:"threshold_factor"`
	EnemiesPerLevel int     `yaml:"enemies_per_level"`
	HealthPerLevel  float64 `yaml:"health_per_level"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	case "":
		return DifficultyNormal, true
	}
	return "", false
}

// InitialDifficultyForPreset returns the starting difficulty scalar for a preset.
func InitialDifficultyForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 1.3
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables difficulty growth.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the difficulty section based on a preset.
func (d *DifficultyConfig) ApplyPreset(preset DifficultyPreset) {
	d.Initial = InitialDifficultyForPreset(preset)
	if IsFixedPreset(preset) {
		d.Step = 0
	}
}
