package arena

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

	World      core.Rect
	Obstacles  []core.Rect
	Player     PlayerView
	Enemies    []EnemyView
	Shots      []ShotView
	EnemyShots []ShotView
	Pickups    []PickupView
}

// PlayerView is the player's render state.
type PlayerView struct {
	Pos             core.Vec2
	Angle           float64
	Radius          float64
	Health          float64
	MaxHealth       float64
	Shield          float64
	MaxShield       float64
	Weapon          WeaponType
	Owned           []WeaponType
	SpeedBoosted    bool
	ScoreMultiplier int
}

// EnemyView is one enemy's render state.
type EnemyView struct {
	Pos       core.Vec2
	Angle     float64
	Radius    float64
	Health    float64
	MaxHealth float64
	Behavior  behavior.Behavior
}

// ShotView is one projectile's render state.
type ShotView struct {
	Pos    core.Vec2
	Radius float64
	Trail  []core.Vec2
}

// PickupView is one pickup's render state.
type PickupView struct {
	Pos    core.Vec2
	Type   PickupType
	Radius float64
	Pulse  float64
}

// Snapshot returns the current game state for rendering and comparison.
func (g *Game) Snapshot() Snapshot {
	p := g.player
	snap := Snapshot{
		Tick:       g.tick,
		State:      g.state,
		Score:      g.score,
		HighScore:  g.highScore,
		Level:      g.difficulty.Level(),
		Difficulty: g.difficulty.Difficulty(),
		World:      g.world.Bounds,
		Obstacles:  append([]core.Rect(nil), g.world.Obstacles...),
		Player: PlayerView{
			Pos:             p.Pos,
			Angle:           p.Angle,
			Radius:          p.Radius,
			Health:          p.Health,
			MaxHealth:       p.MaxHealth,
			Shield:          p.Shield,
			MaxShield:       p.MaxShield,
			Weapon:          p.Weapon,
			Owned:           append([]WeaponType(nil), p.Owned...),
			SpeedBoosted:    p.SpeedBoosted(),
			ScoreMultiplier: p.ScoreMultiplier(g.now),
		},
		Shots:      shotViews(g.shots),
		EnemyShots: shotViews(g.enemyShots),
	}

	snap.Enemies = make([]EnemyView, len(g.enemies))
	for i, e := range g.enemies {
		snap.Enemies[i] = EnemyView{
			Pos:       e.Pos,
			Angle:     e.Angle,
			Radius:    e.Radius,
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
			Behavior:  e.Behavior,
		}
	}

	snap.Pickups = make([]PickupView, len(g.pickups))
	for i, pk := range g.pickups {
		snap.Pickups[i] = PickupView{Pos: pk.Pos, Type: pk.Type, Radius: pk.Radius, Pulse: pk.Pulse()}
	}
	return snap
}

func shotViews(shots []*Projectile) []ShotView {
	views := make([]ShotView, len(shots))
	for i, s := range shots {
		views[i] = ShotView{
			Pos:    s.Pos,
			Radius: s.Radius,
			Trail:  append([]core.Vec2(nil), s.Trail()...),
		}
	}
	return views
}

// Hash returns a digest of the snapshot's simulation state for
// determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := core.NewHasher()

	h.Int(snap.Tick)
	h.String(snap.State)
	h.Int(snap.Score)
	h.Int(snap.Level)
	h.Float(snap.Difficulty)

	for _, o := range snap.Obstacles {
		h.Float(o.X, o.Y, o.W, o.H)
	}

	p := snap.Player
	h.Float(p.Pos.X, p.Pos.Y, p.Angle, p.Health, p.MaxHealth, p.Shield)
	h.Int(int(p.Weapon), len(p.Owned), p.ScoreMultiplier)

	for _, e := range snap.Enemies {
		h.Float(e.Pos.X, e.Pos.Y, e.Health)
		h.Int(int(e.Behavior))
	}
	for _, s := range snap.Shots {
		h.Float(s.Pos.X, s.Pos.Y)
	}
	h.Int(len(snap.EnemyShots))
	for _, s := range snap.EnemyShots {
		h.Float(s.Pos.X, s.Pos.Y)
	}
	for _, pk := range snap.Pickups {
		h.Float(pk.Pos.X, pk.Pos.Y)
		h.Int(int(pk.Type))
	}

	return h.Sum64()
}
