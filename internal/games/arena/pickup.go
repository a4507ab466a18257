package arena

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// PickupType represents the kinds of collectible pickups.
type PickupType int

const (
	PickupHealth          PickupType = iota // Restore health
	PickupSpeed                             // Temporary speed boost
	PickupShield                            // Add shield
	PickupWeapon                            // Unlock a new weapon
	PickupScoreMultiplier                   // Temporary score multiplier
	pickupTypeCount
)

// Glyph returns the display character for a pickup type.
func (t PickupType) Glyph() rune {
	switch t {
	case PickupHealth:
		return '+'
	case PickupSpeed:
		return '»'
	case PickupShield:
		return '◊'
	case PickupWeapon:
		return 'W'
	case PickupScoreMultiplier:
		return 'x'
	default:
		return '?'
	}
}

// String returns the name of the pickup type.
func (t PickupType) String() string {
	switch t {
	case PickupHealth:
		return "health"
	case PickupSpeed:
		return "speed"
	case PickupShield:
		return "shield"
	case PickupWeapon:
		return "weapon"
	case PickupScoreMultiplier:
		return "score multiplier"
	default:
		return "?"
	}
}

// Color returns the display color for a pickup type.
func (t PickupType) Color() core.Color {
	switch t {
	case PickupHealth:
		return core.ColorRed
	case PickupSpeed:
		return core.ColorYellow
	case PickupShield:
		return core.ColorBlue
	case PickupWeapon:
		return core.ColorOrange
	default:
		return core.ColorMagenta
	}
}

func randomPickupType(rng *rand.Rand) PickupType {
	return PickupType(rng.Intn(int(pickupTypeCount)))
}

// pulseStep is how far a pickup's pulse phase advances each tick, in radians.
const pulseStep = 0.05

// Pickup is a stationary collectible.
type Pickup struct {
	Pos    core.Vec2
	Type   PickupType
	Radius float64
	Phase  float64 // pulse phase in [0, 2π)
	Active bool
}

// Update advances the pulse animation.
func (p *Pickup) Update() {
	p.Phase = math.Mod(p.Phase+pulseStep, 2*math.Pi)
}

// Pulse returns the current pulse offset in [-1, 1].
func (p *Pickup) Pulse() float64 {
	return math.Sin(p.Phase)
}
