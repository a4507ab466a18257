package arena

import "github.com/vovakirdan/tui-shooter/internal/core"

// Per-tick phases, run by Step in this order.

func (g *Game) spawnTimedPickup() {
	if g.now-g.lastPickupSpawn <= g.cfg.Pickups.SpawnInterval {
		return
	}
	g.lastPickupSpawn = g.now
	g.spawnPickup()
}

// spawnPickup places a random pickup clear of obstacles. Nothing spawns if
// the pickup cap is reached or no clear position turns up.
func (g *Game) spawnPickup() {
	pc := g.cfg.Pickups
	if len(g.pickups) >= pc.MaxActive {
		return
	}
	for try := 0; try < pc.SpawnAttempts; try++ {
		pos := g.world.RandomPoint(g.rng, pc.SpawnMargin)
		if g.world.Blocked(pos, pc.SpawnClearance) {
			continue
		}
		g.pickups = append(g.pickups, &Pickup{
			Pos:    pos,
			Type:   randomPickupType(g.rng),
			Radius: pc.Radius,
			Active: true,
		})
		return
	}
}

func (g *Game) updatePlayer(in core.InputFrame) {
	g.player.Move(in, g.now, g.world)
	if in.Has(core.ActionFire) && g.player.CanShoot(g.now) {
		g.shots = append(g.shots, g.player.Shoot(g.now, g.cfg.Projectile.TrailLength)...)
	}
}

func (g *Game) updateProjectiles() {
	for _, s := range g.shots {
		s.Update(g.world)
	}
	g.shots = compactProjectiles(g.shots)

	for _, s := range g.enemyShots {
		s.Update(g.world)
	}
	g.enemyShots = compactProjectiles(g.enemyShots)
}

func (g *Game) updatePickups() {
	kept := g.pickups[:0]
	for _, p := range g.pickups {
		p.Update()
		if core.CircleOverlaps(p.Pos, p.Radius, g.player.Pos, g.player.Radius) {
			g.player.Collect(p.Type, g.now, g.rng)
			p.Active = false
			g.log.Debug("pickup collected", "type", p.Type)
			continue
		}
		kept = append(kept, p)
	}
	g.pickups = kept
}

func (g *Game) updateEnemies() {
	ep := g.cfg.Enemies.Projectile
	for _, e := range g.enemies {
		if e.Update(g.player.Pos, g.now, g.world, g.rng, g.cfg.Enemies) {
			g.enemyShots = append(g.enemyShots,
				NewProjectile(e.Pos, e.Angle, ep.Speed, ep.Damage, ep.Radius, g.cfg.Projectile.TrailLength))
		}
	}
}

// resolveHits checks player projectiles against enemies. Each projectile
// hits at most one enemy. Dead enemies are marked during the scan and
// removed afterwards, then replaced at the current difficulty.
func (g *Game) resolveHits() {
	kills := 0
	for _, s := range g.shots {
		if !s.Active {
			continue
		}
		for _, e := range g.enemies {
			if !e.Alive() || !s.Hits(e.Pos, e.Radius) {
				continue
			}
			s.Active = false
			if e.Hit(s.Damage) {
				g.onKill(e)
				kills++
			}
			break
		}
	}
	if kills == 0 {
		g.shots = compactProjectiles(g.shots)
		return
	}

	alive := g.enemies[:0]
	for _, e := range g.enemies {
		if e.Alive() {
			alive = append(alive, e)
		}
	}
	g.enemies = alive
	g.shots = compactProjectiles(g.shots)

	for i := 0; i < kills; i++ {
		g.spawnEnemy()
	}
}

func (g *Game) onKill(e *Enemy) {
	g.score += g.cfg.Scoring.KillPoints * g.player.ScoreMultiplier(g.now)
	if g.score > g.highScore {
		g.highScore = g.score
	}

	if g.rng.Float64() < g.cfg.Pickups.DropChance && len(g.pickups) < g.cfg.Pickups.MaxActive {
		g.pickups = append(g.pickups, &Pickup{
			Pos:    e.Pos,
			Type:   randomPickupType(g.rng),
			Radius: g.cfg.Pickups.Radius,
			Active: true,
		})
	}
}

// resolvePlayerDamage applies enemy projectile hits and enemy contact.
// The transition to game over happens at most once.
func (g *Game) resolvePlayerDamage() {
	p := g.player
	for _, s := range g.enemyShots {
		if !s.Active || !s.Hits(p.Pos, p.Radius) {
			continue
		}
		s.Active = false
		if p.TakeDamage(s.Damage) {
			g.gameOver()
			return
		}
	}
	g.enemyShots = compactProjectiles(g.enemyShots)

	for _, e := range g.enemies {
		if !core.CircleOverlaps(e.Pos, e.Radius, p.Pos, p.Radius) {
			continue
		}
		if p.TakeDamage(g.cfg.Enemies.ContactDamage) {
			g.gameOver()
			return
		}
	}
}

func (g *Game) gameOver() {
	g.state = StateGameOver
	if g.score > g.highScore {
		g.highScore = g.score
	}
	g.persistHighScore()
	g.log.Info("arena game over", "score", g.score, "level", g.difficulty.Level(), "run", g.runID)
}

// checkLevelUp performs at most one level-up per tick.
func (g *Game) checkLevelUp() {
	if !g.difficulty.Advance(g.score) {
		return
	}
	for i := 0; i < g.difficulty.EnemiesPerLevel(); i++ {
		g.spawnEnemy()
	}
	g.player.LevelUp(g.difficulty.HealthPerLevel())
	g.log.Info("level up", "level", g.difficulty.Level(), "difficulty", g.difficulty.Difficulty(),
		"next", g.difficulty.NextThreshold())
}

func (g *Game) spawnEnemy() {
	g.enemies = append(g.enemies, SpawnEnemy(g.world, g.rng, g.cfg.Enemies, g.difficulty.Difficulty()))
}
