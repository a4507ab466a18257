package arena3d

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func (g *Game) updateCamera(in core.InputFrame) {
	g.camera.Look(in.LookDX, in.LookDY)
	g.camera.LookKeys(in)
	g.camera.Move(in, g.walls, g.cfg.World)

	if in.Has(core.ActionFire) && g.weapon.CanShoot(g.now) {
		g.weapon.Shoot(g.now)
		g.bullets = append(g.bullets, NewBullet(g.camera.Pos, g.camera.Forward(), g.cfg.Weapon, bulletTrail))
	}
}

func (g *Game) updateBullets() {
	for _, b := range g.bullets {
		b.Update(g.walls)
	}
	g.bullets = compactBullets(g.bullets)
}

// updateEnemies moves every enemy and applies melee attacks. Attacks stop
// as soon as the player dies.
func (g *Game) updateEnemies() {
	damage := g.cfg.Enemies.AttackDamage * g.difficulty.Difficulty()
	for _, e := range g.enemies {
		if !e.Update(g.camera.Pos, g.walls, g.now, g.rng, g.params, g.cfg.Enemies.AttackRange) {
			continue
		}
		if g.takeDamage(damage) {
			g.gameOver()
			return
		}
	}
}

// takeDamage drains the shield before health and reports whether the
// player died.
func (g *Game) takeDamage(amount float64) bool {
	if g.shield > 0 {
		absorbed := math.Min(amount, g.shield)
		g.shield -= absorbed
		amount -= absorbed
	}
	if amount > 0 {
		g.health = math.Max(0, g.health-amount)
	}
	return g.health <= 0
}

// resolveHits checks bullets against enemies. Each bullet hits at most one
// enemy; every kill is replaced by a fresh enemy.
func (g *Game) resolveHits() {
	kills := 0
	for _, b := range g.bullets {
		for _, e := range g.enemies {
			if !e.Alive() || !b.Hits(e, g.cfg.World.FloorY) {
				continue
			}
			b.Active = false
			if e.Hit(b.Damage) {
				g.onKill()
				kills++
			}
			break
		}
	}
	g.bullets = compactBullets(g.bullets)
	if kills == 0 {
		return
	}

	alive := g.enemies[:0]
	for _, e := range g.enemies {
		if e.Alive() {
			alive = append(alive, e)
		}
	}
	g.enemies = alive
	for i := 0; i < kills; i++ {
		g.spawnEnemy()
	}
}

func (g *Game) onKill() {
	g.score += killScore(g.cfg.Scoring.KillPoints, g.difficulty.Difficulty())
	if g.score > g.highScore {
		g.highScore = g.score
	}
}

// killScore is the kill reward scaled by difficulty, truncated toward zero.
// The epsilon keeps multipliers built by repeated steps on their intended
// value: 1.0 plus three 0.2 steps is 1.5999999999999999 and still pays 16.
func killScore(points int, difficulty float64) int {
	return int(math.Floor(float64(points)*difficulty + 1e-9))
}

func (g *Game) gameOver() {
	g.state = StateGameOver
	if g.score > g.highScore {
		g.highScore = g.score
	}
	g.persistHighScore()
	g.log.Info("arena3d game over", "score", g.score, "level", g.difficulty.Level(), "run", g.runID)
}

// checkLevelUp performs at most one level-up per tick.
func (g *Game) checkLevelUp() {
	if !g.difficulty.Advance(g.score) {
		return
	}
	for i := 0; i < g.difficulty.EnemiesPerLevel(); i++ {
		g.spawnEnemy()
	}
	g.maxHealth += g.difficulty.HealthPerLevel()
	g.health = g.maxHealth
	g.log.Info("level up", "level", g.difficulty.Level(), "difficulty", g.difficulty.Difficulty(),
		"next", g.difficulty.NextThreshold())
}

func (g *Game) spawnEnemy() {
	g.enemies = append(g.enemies,
		SpawnEnemy(g.walls, g.rng, g.cfg.World, g.cfg.Enemies, g.difficulty.Difficulty()))
}
