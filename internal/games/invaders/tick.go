package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Step applies the frame's actions in arrival order and then advances one tick.
func (s *Session) Step(in core.InputFrame) []Event {
	for _, a := range in.Actions {
		s.Apply(a)
	}
	return s.Tick()
}

// Tick advances the simulation by one frame. The returned events (including
// those raised by Apply since the previous Tick) stay valid until the next
// call to Apply, Step or Tick.
func (s *Session) Tick() []Event {
	s.drainEvents()
	s.tick++

	switch s.state {
	case StatePlaying:
		s.tickPlaying()
	case StateGameOver:
		s.gameOverTimer++
		if s.gameOverTimer >= s.cfg.Session.GameOverTicks {
			s.state = StateMenu
		}
	}

	s.drained = true
	return s.events
}

// tickPlaying runs one Playing frame in a fixed order: defender, formation
// march, formation fire, bullets, explosions, collisions, level clear.
func (s *Session) tickPlaying() {
	s.movePlayer()

	if s.formation.AdvanceMovement(s.cfg.Field.Width, s.player.Y) {
		s.lives = 0
		s.gameOver()
		return
	}

	s.formation.AdvanceShooting(s.rng, s.enemyBullets)

	s.playerBullets.ForEachActive(func(i int, b *Bullet) {
		b.Y -= s.cfg.Player.BulletSpeed
		if b.Y < 0 {
			s.playerBullets.ReleaseAt(i)
		}
	})
	s.enemyBullets.ForEachActive(func(i int, b *Bullet) {
		b.Y += s.cfg.Formation.BulletSpeed
		if b.Y > s.cfg.Field.Height {
			s.enemyBullets.ReleaseAt(i)
		}
	})

	s.advanceExplosions()
	s.resolveCollisions()

	if s.state == StatePlaying && s.formation.Alive() == 0 {
		s.level++
		if s.level > s.cfg.Session.MaxLevel {
			s.state = StateWin
			s.moveDir = 0
			s.emit(Event{Kind: EventWin})
			return
		}
		s.emit(Event{Kind: EventLevelCleared})
		s.startLevel()
	}
}

// advanceExplosions steps every explosion animation and frees finished ones.
func (s *Session) advanceExplosions() {
	s.explosions.ForEachActive(func(i int, e *Explosion) {
		e.Timer++
		if e.Timer < s.cfg.Explosions.FrameTicks {
			return
		}
		e.Timer = 0
		e.Frame++
		if e.Frame >= s.cfg.Explosions.Frames {
			s.explosions.ReleaseAt(i)
		}
	})
}
