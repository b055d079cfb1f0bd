package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// EnemyView is a living enemy as seen by renderers.
type EnemyView struct {
	Row, Col int
	Bounds   core.Rect
	Type     EnemyType
}

// Snapshot is a read-only copy of everything a renderer or recorder needs.
// It shares no memory with the session.
type Snapshot struct {
	State         State
	Score         int
	Lives         int
	Level         int
	MaxLevel      int
	Tick          uint64
	GameOverTimer int
	GameOverTicks int
	Quit          bool

	FieldW, FieldH int

	Player        core.Rect
	PlayerBullets []Bullet
	EnemyBullets  []Bullet
	Enemies       []EnemyView
	Blocks        []core.Rect // Active shield blocks
	Explosions    []Explosion

	ExplosionFrames int
}

// Snapshot returns the current state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:           s.state,
		Score:           s.score,
		Lives:           s.lives,
		Level:           s.level,
		MaxLevel:        s.cfg.Session.MaxLevel,
		Tick:            s.tick,
		GameOverTimer:   s.gameOverTimer,
		GameOverTicks:   s.cfg.Session.GameOverTicks,
		Quit:            s.quit,
		FieldW:          s.cfg.Field.Width,
		FieldH:          s.cfg.Field.Height,
		Player:          s.player,
		PlayerBullets:   make([]Bullet, 0, s.playerBullets.ActiveCount()),
		EnemyBullets:    make([]Bullet, 0, s.enemyBullets.ActiveCount()),
		Enemies:         make([]EnemyView, 0, s.formation.Alive()),
		Explosions:      make([]Explosion, 0, s.explosions.ActiveCount()),
		ExplosionFrames: s.cfg.Explosions.Frames,
	}

	s.playerBullets.ForEachActive(func(_ int, b *Bullet) {
		snap.PlayerBullets = append(snap.PlayerBullets, *b)
	})
	s.enemyBullets.ForEachActive(func(_ int, b *Bullet) {
		snap.EnemyBullets = append(snap.EnemyBullets, *b)
	})
	s.explosions.ForEachActive(func(_ int, e *Explosion) {
		snap.Explosions = append(snap.Explosions, *e)
	})

	f := s.formation
	for row := range f.Enemies {
		for col, e := range f.Enemies[row] {
			if e.Alive {
				snap.Enemies = append(snap.Enemies, EnemyView{
					Row:    row,
					Col:    col,
					Bounds: f.Bounds(row, col),
					Type:   e.Type,
				})
			}
		}
	}

	for i := range s.shields.List {
		for c := range s.shields.List[i].Blocks {
			for _, b := range s.shields.List[i].Blocks[c] {
				if b.Active {
					snap.Blocks = append(snap.Blocks, s.shields.BlockBounds(b))
				}
			}
		}
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v int) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation, wraparound is fine
	}

	mix(int(snap.State))
	mix(snap.Score)
	mix(snap.Lives)
	mix(snap.Level)
	mix(snap.GameOverTimer)
	mix(snap.Player.X)
	mix(snap.Player.Y)
	for _, b := range snap.PlayerBullets {
		mix(b.X)
		mix(b.Y)
	}
	mix(-1)
	for _, b := range snap.EnemyBullets {
		mix(b.X)
		mix(b.Y)
	}
	mix(-2)
	for _, e := range snap.Enemies {
		mix(e.Row)
		mix(e.Col)
		mix(e.Bounds.X)
		mix(e.Bounds.Y)
	}
	mix(-3)
	for _, b := range snap.Blocks {
		mix(b.X)
		mix(b.Y)
	}
	mix(-4)
	for _, e := range snap.Explosions {
		mix(e.X)
		mix(e.Y)
		mix(e.Frame)
	}
	return h
}
