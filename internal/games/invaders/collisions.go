package invaders

// resolveCollisions runs the four collision phases in priority order.
// Each bullet is removed at most once because every scan stops at its first hit.
func (s *Session) resolveCollisions() {
	s.playerBulletsVsEnemies()
	s.enemyBulletsVsPlayer()
	s.bulletsVsShields(s.playerBullets)
	s.bulletsVsShields(s.enemyBullets)
}

// playerBulletsVsEnemies kills the first living enemy (row-major) whose
// rectangle contains each player bullet.
func (s *Session) playerBulletsVsEnemies() {
	f := s.formation
	s.playerBullets.ForEachActive(func(i int, b *Bullet) {
		for row := range f.Enemies {
			for col := range f.Enemies[row] {
				if !f.Enemies[row][col].Alive || !f.Bounds(row, col).ContainsPoint(b.X, b.Y) {
					continue
				}

				e := f.Enemies[row][col]
				f.Kill(row, col)
				s.playerBullets.ReleaseAt(i)
				points := e.Type.Score()
				s.score += points
				s.spawnExplosion(e.X+s.cfg.Formation.EnemyWidth/2, e.Y+s.cfg.Formation.EnemyHeight/2)
				s.emit(Event{Kind: EventEnemyKilled, Row: row, Col: col, Points: points})
				return
			}
		}
	})
}

// enemyBulletsVsPlayer applies at most one hit to the defender per tick.
func (s *Session) enemyBulletsVsPlayer() {
	for i := 0; i < s.enemyBullets.Cap(); i++ {
		if !s.enemyBullets.IsActive(i) {
			continue
		}
		b := s.enemyBullets.At(i)
		if !s.player.ContainsPoint(b.X, b.Y) {
			continue
		}

		s.enemyBullets.ReleaseAt(i)
		s.lives--
		cx, cy := s.player.Center()
		s.spawnExplosion(cx, cy)
		s.emit(Event{Kind: EventPlayerHit})
		if s.lives <= 0 {
			s.lives = 0
			s.gameOver()
		}
		return
	}
}

// bulletsVsShields removes each bullet that touches an active shield block
// together with that block.
func (s *Session) bulletsVsShields(bullets *Pool[Bullet]) {
	bullets.ForEachActive(func(i int, b *Bullet) {
		if s.shields.Hit(b.X, b.Y) {
			bullets.ReleaseAt(i)
		}
	})
}
