package arena

import "time"

// WeaponType identifies a player weapon.
type WeaponType int

const (
	Pistol WeaponType = iota
	Shotgun
	MachineGun
	Sniper
	weaponCount
)

// WeaponSpec describes how a weapon fires. Specs are immutable.
type WeaponSpec struct {
	Name     string
	Damage   float64
	Cooldown time.Duration
	Speed    float64 // world units per tick
	Radius   float64 // projectile radius
	Spread   int     // projectiles per shot; 1 for single-shot weapons
}

// SpreadAngle is the angle between adjacent shotgun pellets, in degrees.
const SpreadAngle = 15.0

var weaponTable = [weaponCount]WeaponSpec{
	Pistol:     {Name: "pistol", Damage: 1, Cooldown: 300 * time.Millisecond, Speed: 12, Radius: 30, Spread: 1},
	Shotgun:    {Name: "shotgun", Damage: 1, Cooldown: 800 * time.Millisecond, Speed: 10, Radius: 25, Spread: 3},
	MachineGun: {Name: "machine gun", Damage: 0.5, Cooldown: 100 * time.Millisecond, Speed: 15, Radius: 20, Spread: 1},
	Sniper:     {Name: "sniper", Damage: 3, Cooldown: 1200 * time.Millisecond, Speed: 20, Radius: 35, Spread: 1},
}

// Spec returns the weapon's firing parameters.
func (w WeaponType) Spec() WeaponSpec {
	if w < 0 || w >= weaponCount {
		return weaponTable[Pistol]
	}
	return weaponTable[w]
}

func (w WeaponType) String() string {
	return w.Spec().Name
}

// AllWeapons lists every weapon in selection-key order.
func AllWeapons() []WeaponType {
	return []WeaponType{Pistol, Shotgun, MachineGun, Sniper}
}
