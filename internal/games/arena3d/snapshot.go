package arena3d

import (
	"github.com/vovakirdan/tui-shooter/internal/behavior"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Tick       int
	State      string
	Score      int
	HighScore  int
	Level      int
	Difficulty float64

	WorldSize float64
	Camera    CameraView
	Health    float64
	MaxHealth float64
	Shield    float64
	MaxShield float64
	Recoil    float64 // weapon kick in [0, 1]

	Walls   []WallView
	Enemies []EnemyView
	Bullets []BulletView
}

// CameraView is the player's pose.
type CameraView struct {
	Pos     core.Vec3
	Yaw     float64
	Pitch   float64
	Forward core.Vec3
}

// WallView is one wall segment.
type WallView struct {
	Start  core.Vec3
	End    core.Vec3
	Height float64
}

// EnemyView is one enemy's render state.
type EnemyView struct {
	Pos       core.Vec3
	Yaw       float64
	Health    float64
	MaxHealth float64
	Behavior  behavior.Behavior
}

// BulletView is one bullet's render state.
type BulletView struct {
	Pos   core.Vec3
	Dir   core.Vec3
	Trail []core.Vec3
}

// Snapshot returns the current game state for rendering and comparison.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       g.tick,
		State:      g.state,
		Score:      g.score,
		HighScore:  g.highScore,
		Level:      g.difficulty.Level(),
		Difficulty: g.difficulty.Difficulty(),
		WorldSize:  g.cfg.World.Size,
		Camera: CameraView{
			Pos:     g.camera.Pos,
			Yaw:     g.camera.Yaw,
			Pitch:   g.camera.Pitch,
			Forward: g.camera.Forward(),
		},
		Health:    g.health,
		MaxHealth: g.maxHealth,
		Shield:    g.shield,
		MaxShield: g.maxShield,
		Recoil:    g.weapon.Kick(g.now),
	}

	snap.Walls = make([]WallView, len(g.walls))
	for i, w := range g.walls {
		snap.Walls[i] = WallView{Start: w.Start, End: w.End, Height: w.Height}
	}

	snap.Enemies = make([]EnemyView, len(g.enemies))
	for i, e := range g.enemies {
		snap.Enemies[i] = EnemyView{
			Pos:       e.Pos,
			Yaw:       e.Yaw,
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
			Behavior:  e.Behavior,
		}
	}

	snap.Bullets = make([]BulletView, len(g.bullets))
	for i, b := range g.bullets {
		snap.Bullets[i] = BulletView{
			Pos:   b.Pos,
			Dir:   b.Dir,
			Trail: append([]core.Vec3(nil), b.Trail()...),
		}
	}
	return snap
}

// Hash returns a digest of the snapshot's simulation state for
// determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := core.NewHasher()

	h.Int(snap.Tick, snap.Score, snap.Level)
	h.String(snap.State)
	h.Float(snap.Difficulty)

	c := snap.Camera
	h.Float(c.Pos.X, c.Pos.Y, c.Pos.Z, c.Yaw, c.Pitch)
	h.Float(snap.Health, snap.MaxHealth, snap.Shield)

	for _, e := range snap.Enemies {
		h.Float(e.Pos.X, e.Pos.Y, e.Pos.Z, e.Health)
		h.Int(int(e.Behavior))
	}
	h.Int(len(snap.Bullets))
	for _, b := range snap.Bullets {
		h.Float(b.Pos.X, b.Pos.Y, b.Pos.Z)
	}

	return h.Sum64()
}
