package river

// Projectile is a shot climbing the screen. X is fixed at launch; Y
// decreases by one per simulation tick until it reaches the top of the
// screen or hits an enemy. All projectiles advance in the same centralized
// step, once per tick, so motion is deterministic relative to rendering.
type Projectile struct {
	X int
	Y int
}

// advanceProjectiles moves every live projectile one row up.
// Y never goes below zero.
func (g *Game) advanceProjectiles() {
	for i := range g.projectiles {
		if g.projectiles[i].Y > 0 {
			g.projectiles[i].Y--
		}
	}
}

// sweepProjectiles removes spent and colliding projectiles.
// A projectile whose cell is an Enemy destroys it exactly once: the cell
// becomes River immediately, so a second projectile on the same cell in
// the same sweep flies on instead of double-counting. A projectile whose
// Y reached the top is removed regardless of collision.
//
// On ticks where the scroll frame also advanced, the shot and the terrain
// moved toward each other and the shot crossed two logical rows; the
// crossed row is checked as well so an enemy cannot slip between steps.
func (g *Game) sweepProjectiles() {
	crossed := g.tick%g.frameTicks == 0

	live := g.projectiles[:0]
	for _, p := range g.projectiles {
		if p.Y <= 0 {
			continue
		}
		if g.scene.DestroyEnemy(g.logicalRow(p.Y), p.X) {
			g.score++
			continue
		}
		if crossed && g.scene.DestroyEnemy(g.logicalRow(p.Y+1), p.X) {
			g.score++
			continue
		}
		live = append(live, p)
	}
	g.projectiles = live
}
