// Package invaders implements the Space Invaders simulation: a marching enemy
// formation, a single defender, two bullet pools, destructible shields and
// the menu/playing/game-over/win state machine.
//
// The simulation works in field pixels and knows nothing about terminals,
// keys or timers. A driver feeds it core.Action values and calls Tick once
// per frame; renderers read a Snapshot.
package invaders

import (
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Session owns all game state for one player. It is not safe for concurrent use.
type Session struct {
	cfg config.InvadersConfig
	rng *rand.Rand

	state         State
	score         int
	lives         int
	level         int
	tick          uint64
	gameOverTimer int
	quit          bool

	player  core.Rect
	moveDir int // -1, 0 or 1 while a move is held

	formation     *Formation
	shields       *Shields
	playerBullets *Pool[Bullet]
	enemyBullets  *Pool[Bullet]
	explosions    *Pool[Explosion]

	events  []Event
	drained bool // events were handed out and are cleared on the next call
}

// New creates a session in the Menu state. The same config, seed and input
// sequence always produce the same game.
func New(cfg config.InvadersConfig, seed int64) *Session {
	s := &Session{
		cfg:           cfg,
		rng:           rand.New(rand.NewSource(seed)),
		formation:     NewFormation(cfg.Formation, cfg.Cadence),
		shields:       NewShields(cfg.Shields, cfg.Field.Width, cfg.Field.Height),
		playerBullets: NewPool[Bullet](cfg.Player.MaxBullets),
		enemyBullets:  NewPool[Bullet](cfg.Formation.MaxBullets),
		explosions:    NewPool[Explosion](cfg.Explosions.Capacity),
		events:        make([]Event, 0, 16),
	}
	s.Reset()
	return s
}

// Reset returns to the Menu with a fresh first level, full lives and no score.
// The random source keeps its position so successive games differ.
func (s *Session) Reset() {
	s.state = StateMenu
	s.score = 0
	s.lives = s.cfg.Player.Lives
	s.level = 1
	s.gameOverTimer = 0
	s.moveDir = 0
	s.player = core.NewRect(
		(s.cfg.Field.Width-s.cfg.Player.Width)/2,
		s.cfg.PlayerY(),
		s.cfg.Player.Width,
		s.cfg.Player.Height,
	)
	s.playerBullets.Clear()
	s.enemyBullets.Clear()
	s.explosions.Clear()
	s.startLevel()
}

// startLevel lays out the formation and shields for the current level.
// Bullets and explosions in flight are kept.
func (s *Session) startLevel() {
	s.formation.Reset(s.cfg.Cadence.MoveDelay(s.level), s.cfg.Cadence.ShootDelay(s.level))
	s.shields.Reset()
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.InvadersConfig { return s.cfg }

// State returns the current session state.
func (s *Session) State() State { return s.state }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Level returns the current level, starting at 1.
func (s *Session) Level() int { return s.level }

// TickCount returns the number of ticks processed.
func (s *Session) TickCount() uint64 { return s.tick }

// QuitRequested reports whether Cancel was pressed in the Menu.
func (s *Session) QuitRequested() bool { return s.quit }

// Player returns the defender's bounding rectangle.
func (s *Session) Player() core.Rect { return s.player }

// Formation exposes the enemy formation for inspection.
func (s *Session) Formation() *Formation { return s.formation }

// Shields exposes the shields for inspection.
func (s *Session) Shields() *Shields { return s.shields }

// PlayerBullets exposes the player bullet pool.
func (s *Session) PlayerBullets() *Pool[Bullet] { return s.playerBullets }

// EnemyBullets exposes the enemy bullet pool.
func (s *Session) EnemyBullets() *Pool[Bullet] { return s.enemyBullets }

// Explosions exposes the explosion pool.
func (s *Session) Explosions() *Pool[Explosion] { return s.explosions }

// Apply handles one input command between ticks.
func (s *Session) Apply(a core.Action) {
	s.drainEvents()
	switch s.state {
	case StateMenu:
		switch a {
		case core.ActionConfirm:
			s.Reset()
			s.state = StatePlaying
			s.emit(Event{Kind: EventRunStarted})
		case core.ActionCancel:
			s.quit = true
			s.emit(Event{Kind: EventQuit})
		}

	case StatePlaying:
		switch a {
		case core.ActionMoveLeft:
			s.moveDir = -1
		case core.ActionMoveRight:
			s.moveDir = 1
		case core.ActionStopMove:
			s.moveDir = 0
		case core.ActionFire:
			s.firePlayerBullet()
		case core.ActionCancel:
			s.emit(Event{Kind: EventAbandoned})
			s.moveDir = 0
			s.state = StateMenu
		}

	case StateGameOver, StateWin:
		if a == core.ActionConfirm {
			s.Reset()
		}
	}
}

// firePlayerBullet spawns a bullet at the defender's top-center if a slot is free.
func (s *Session) firePlayerBullet() {
	s.playerBullets.Acquire(Bullet{
		X: s.player.X + s.player.W/2,
		Y: s.player.Y,
	})
}

// movePlayer applies the held direction, keeping the defender on the field.
func (s *Session) movePlayer() {
	if s.moveDir == 0 {
		return
	}
	s.player.X = core.Clamp(
		s.player.X+s.moveDir*s.cfg.Player.Speed,
		0,
		s.cfg.Field.Width-s.player.W,
	)
}

// spawnExplosion starts an explosion centered at (x, y) if a slot is free.
func (s *Session) spawnExplosion(x, y int) {
	s.explosions.Acquire(Explosion{X: x, Y: y})
}

// gameOver ends the run and starts the game-over display timer.
func (s *Session) gameOver() {
	s.state = StateGameOver
	s.gameOverTimer = 0
	s.moveDir = 0
	s.emit(Event{Kind: EventGameOver})
}

// drainEvents clears events already returned by Tick.
func (s *Session) drainEvents() {
	if s.drained {
		s.events = s.events[:0]
		s.drained = false
	}
}

// emit records an event for the current tick, stamping the session counters.
func (s *Session) emit(e Event) {
	e.Tick = s.tick
	e.Score = s.score
	e.Lives = s.lives
	e.Level = s.level
	s.events = append(s.events, e)
}
