// Package behavior decides where an enemy wants to go each tick. The same
// controller drives the 2D arena and the 3D arena (on its ground plane).
package behavior

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Behavior is an enemy's movement strategy, fixed for its lifetime.
type Behavior int

const (
	Chaser   Behavior = iota // heads straight for the player
	Flanker                  // circles to the player's side
	Ambusher                 // waits once the player is close
)

// All lists every behavior in declaration order.
var All = []Behavior{Chaser, Flanker, Ambusher}

// Random picks a behavior uniformly.
func Random(rng *rand.Rand) Behavior {
	return All[rng.Intn(len(All))]
}

func (b Behavior) String() string {
	switch b {
	case Chaser:
		return "chaser"
	case Flanker:
		return "flanker"
	case Ambusher:
		return "ambusher"
	default:
		return "unknown"
	}
}

// Glyph is the single-character marker renderers use for the behavior.
func (b Behavior) Glyph() rune {
	switch b {
	case Flanker:
		return 'F'
	case Ambusher:
		return 'A'
	default:
		return 'C'
	}
}

// Params tunes the planner for one world scale.
type Params struct {
	// FlankDistance is how far to the side of the player a flanker aims.
	FlankDistance float64
	// FlankRange limits flanking to players closer than this. Zero means
	// unlimited; beyond the range a flanker chases.
	FlankRange float64
	// AmbushRange is the distance under which an ambusher holds position.
	AmbushRange float64
}

// Decision is the outcome of one planning step.
type Decision struct {
	Target core.Vec2
	// Hold is set when the enemy should stay where it is this tick.
	Hold bool
}

// Plan returns where an enemy at self should move given the player position.
func Plan(b Behavior, self, player core.Vec2, p Params) Decision {
	toPlayer := player.Sub(self)
	dist := toPlayer.Len()

	switch b {
	case Chaser:
		return Decision{Target: player}
	case Flanker:
		if p.FlankRange > 0 && dist >= p.FlankRange {
			return Decision{Target: player}
		}
		side := toPlayer.Normalize().Perp()
		return Decision{Target: player.Add(side.Scale(p.FlankDistance))}
	case Ambusher:
		if dist < p.AmbushRange {
			return Decision{Target: self, Hold: true}
		}
		return Decision{Target: player}
	default:
		return Decision{Target: self, Hold: true}
	}
}

// StepToward moves from pos toward target by at most speed. It never
// overshoots the target.
func StepToward(pos, target core.Vec2, speed float64) core.Vec2 {
	d := target.Sub(pos)
	dist := d.Len()
	if dist == 0 {
		return pos
	}
	return pos.Add(d.Scale(math.Min(speed, dist) / dist))
}
