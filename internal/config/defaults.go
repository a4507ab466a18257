package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

//go:embed defaults/arena3d.yaml
var defaultArena3DYAML []byte

// DefaultDifficultyConfig returns the level progression shared by both modes.
func DefaultDifficultyConfig() DifficultyConfig {
	return DifficultyConfig{
		Initial:         1.0,
		Step:            0.2,
		FirstThreshold:  10,
		ThresholdFactor: 2,
		EnemiesPerLevel: 2,
		HealthPerLevel:  20,
	}
}

// DefaultArenaConfig returns the default 2D arena configuration.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		World: WorldConfig{
			Width:  1200,
			Height: 900,
		},
		Player: PlayerConfig{
			Radius:        20,
			Speed:         5,
			TurnSpeed:     5,
			MaxHealth:     1000,
			MaxShield:     50,
			SpawnAttempts: 20,
			SpawnStep:     100,
		},
		Enemies: EnemyConfig{
			InitialCount:    5,
			Radius:          25,
			Health:          3,
			SpawnMargin:     50,
			SpawnAttempts:   20,
			MinSpeed:        1.5,
			MaxSpeed:        2.5,
			MinAggression:   0.5,
			MaxAggression:   1.0,
			MinShotCooldown: 1500 * time.Millisecond,
			MaxShotCooldown: 3000 * time.Millisecond,
			ShootRange:      400,
			FlankDistance:   200,
			AmbushRange:     300,
			ContactDamage:   5,
			Projectile: EnemyProjectiles{
				Damage: 1,
				Speed:  8,
				Radius: 20,
			},
		},
		Projectile: ProjectileConfig{
			TrailLength: 5,
		},
		Pickups: PickupConfig{
			Radius:             15,
			SpawnInterval:      10 * time.Second,
			MaxActive:          4,
			SpawnClearance:     20,
			SpawnAttempts:      20,
			SpawnMargin:        50,
			DropChance:         0.2,
			HealthAmount:       25,
			ShieldAmount:       30,
			SpeedFactor:        1.5,
			SpeedDuration:      10 * time.Second,
			ScoreMultiplier:    2,
			MultiplierDuration: 15 * time.Second,
		},
		Map: MapConfig{
			MinObstacles: 5,
			MaxObstacles: 10,
			MinSize:      50,
			MaxSize:      250,
			GridSize:     200,
			Attempts:     10,
		},
		Scoring: ScoringConfig{
			KillPoints: 10,
		},
		Difficulty: DefaultDifficultyConfig(),
	}
}

// DefaultArena3DConfig returns the default 3D arena configuration.
func DefaultArena3DConfig() Arena3DConfig {
	return Arena3DConfig{
		World: World3DConfig{
			Size:       50,
			FloorY:     -1,
			CeilingY:   5,
			WallHeight: 6,
			Doorway:    3,
		},
		Camera: CameraConfig{
			Speed:           0.2,
			LookSensitivity: 0.2,
			KeyLookStep:     3,
			Radius:          0.5,
			MaxPitch:        89,
			EdgeClearance:   0.5,
			StartHeight:     1,
		},
		Player: Player3DConfig{
			MaxHealth: 100,
			MaxShield: 50,
		},
		Weapon: Weapon3DConfig{
			Cooldown:     300 * time.Millisecond,
			Recoil:       150 * time.Millisecond,
			BulletSpeed:  0.5,
			BulletDamage: 1,
			BulletRadius: 0.1,
			MaxDistance:  100,
		},
		Enemies: Enemy3DConfig{
			InitialCount:   5,
			Health:         3,
			Speed:          0.05,
			Radius:         0.5,
			Height:         1.8,
			MinDistance:    10,
			SpawnAttempts:  20,
			AttackCooldown: time.Second,
			AttackRange:    3,
			AttackDamage:   5,
			MinAggression:  0.3,
			MaxAggression:  0.8,
			FlankDistance:  5,
			FlankRange:     10,
			AmbushRange:    8,
		},
		Scoring: ScoringConfig{
			KillPoints: 10,
		},
		Difficulty: DefaultDifficultyConfig(),
	}
}

// GetDefaultYAML returns the embedded default YAML for a game mode.
// Returns nil for unknown modes.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "arena":
		return defaultArenaYAML
	case "arena3d":
		return defaultArena3DYAML
	default:
		return nil
	}
}
