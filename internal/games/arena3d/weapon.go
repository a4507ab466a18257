package arena3d

import (
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

// neverFired keeps the first shot from being blocked by the cooldown.
const neverFired = -time.Hour

// Weapon is the first-person gun: a fire cooldown plus a short recoil
// animation used by the renderer.
type Weapon struct {
	Cooldown time.Duration
	Recoil   time.Duration

	lastShot time.Duration
}

// NewWeapon creates a weapon ready to fire.
func NewWeapon(cfg config.Weapon3DConfig) *Weapon {
	return &Weapon{Cooldown: cfg.Cooldown, Recoil: cfg.Recoil, lastShot: neverFired}
}

// CanShoot reports whether the cooldown has elapsed.
func (w *Weapon) CanShoot(now time.Duration) bool {
	return now-w.lastShot > w.Cooldown
}

// Shoot records a shot at now.
func (w *Weapon) Shoot(now time.Duration) {
	w.lastShot = now
}

// Kick returns the recoil animation amount in [0, 1]: 1 right after a shot,
// falling linearly to 0 over the recoil duration.
func (w *Weapon) Kick(now time.Duration) float64 {
	since := now - w.lastShot
	if w.Recoil <= 0 || since >= w.Recoil {
		return 0
	}
	return 1 - float64(since)/float64(w.Recoil)
}
