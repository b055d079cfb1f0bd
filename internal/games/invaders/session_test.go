package invaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

func newPlaying(t *testing.T) *Session {
	t.Helper()
	s := New(config.DefaultInvadersConfig(), 42)
	s.Apply(core.ActionConfirm)
	require.Equal(t, StatePlaying, s.State())
	s.events = s.events[:0]
	return s
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, 0, len(events))
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}

func killAll(f *Formation) {
	for row := 0; row < f.Rows(); row++ {
		for col := 0; col < f.Cols(); col++ {
			f.Kill(row, col)
		}
	}
}

func TestNewSession(t *testing.T) {
	s := New(config.DefaultInvadersConfig(), 1)

	assert.Equal(t, StateMenu, s.State())
	assert.Equal(t, 3, s.Lives())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 55, s.Formation().Alive())
	assert.Equal(t, core.NewRect(370, 540, 60, 40), s.Player())
}

func TestMenuIgnoresGameplayInput(t *testing.T) {
	s := New(config.DefaultInvadersConfig(), 1)
	s.Apply(core.ActionFire)
	s.Apply(core.ActionMoveLeft)
	s.Tick()

	assert.Equal(t, StateMenu, s.State())
	assert.Equal(t, 0, s.PlayerBullets().ActiveCount())
	assert.Equal(t, 370, s.Player().X)
}

func TestCancelTransitions(t *testing.T) {
	s := newPlaying(t)

	s.Apply(core.ActionCancel)
	assert.Equal(t, StateMenu, s.State())
	assert.False(t, s.QuitRequested())

	events := s.Step(frameOf(core.ActionCancel))
	assert.True(t, s.QuitRequested())
	assert.Equal(t, []EventKind{EventAbandoned, EventQuit}, kinds(events))
	assert.True(t, s.Snapshot().Quit)
}

func TestConfirmFromMenuStartsFreshGame(t *testing.T) {
	s := newPlaying(t)
	s.Formation().Kill(0, 0)
	s.score = 500
	s.lives = 1
	s.Apply(core.ActionCancel)

	s.Apply(core.ActionConfirm)
	assert.Equal(t, StatePlaying, s.State())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 3, s.Lives())
	assert.Equal(t, 55, s.Formation().Alive())
}

func TestRunEventsFromApply(t *testing.T) {
	s := New(config.DefaultInvadersConfig(), 1)

	events := s.Step(frameOf(core.ActionConfirm))
	require.Equal(t, []EventKind{EventRunStarted}, kinds(events))
	assert.Equal(t, uint64(0), events[0].Tick, "stamped before the tick advances")

	s.Tick()
	s.score = 250
	events = s.Step(frameOf(core.ActionCancel, core.ActionConfirm))

	require.Equal(t, []EventKind{EventAbandoned, EventRunStarted}, kinds(events))
	assert.Equal(t, 250, events[0].Score, "abandoned run keeps its score")
	assert.Equal(t, uint64(2), events[0].Tick)
	assert.Equal(t, 0, events[1].Score)
	assert.Equal(t, StatePlaying, s.State())
}

func TestConfirmAfterGameOverStartsNoRun(t *testing.T) {
	s := newPlaying(t)
	s.lives = 1
	s.EnemyBullets().Acquire(Bullet{X: 400, Y: 550})
	s.Tick()
	require.Equal(t, StateGameOver, s.State())

	events := s.Step(frameOf(core.ActionConfirm))
	assert.Empty(t, kinds(events))
	assert.Equal(t, StateMenu, s.State())
}

func TestFireSpawnsAtDefenderTopCenter(t *testing.T) {
	s := newPlaying(t)
	s.Apply(core.ActionFire)

	require.Equal(t, 1, s.PlayerBullets().ActiveCount())
	assert.Equal(t, Bullet{X: 400, Y: 540}, *s.PlayerBullets().At(0))

	s.Tick()
	assert.Equal(t, 528, s.PlayerBullets().At(0).Y)
}

func TestFireWithFullPoolIsNoop(t *testing.T) {
	s := newPlaying(t)
	for i := 0; i < 3; i++ {
		s.Apply(core.ActionFire)
	}
	require.Equal(t, 3, s.PlayerBullets().ActiveCount())

	s.Apply(core.ActionFire)
	assert.Equal(t, 3, s.PlayerBullets().ActiveCount())
}

func TestPlayerBulletLeavesField(t *testing.T) {
	s := newPlaying(t)
	s.PlayerBullets().Acquire(Bullet{X: 10, Y: 5})

	s.Tick()
	assert.Equal(t, 0, s.PlayerBullets().ActiveCount())
}

func TestHeldMovement(t *testing.T) {
	s := newPlaying(t)

	s.Step(frameOf(core.ActionMoveRight))
	assert.Equal(t, 374, s.Player().X)
	s.Tick()
	assert.Equal(t, 378, s.Player().X, "movement continues while held")

	s.Step(frameOf(core.ActionStopMove))
	assert.Equal(t, 378, s.Player().X)

	s.Apply(core.ActionMoveLeft)
	for i := 0; i < 200; i++ {
		s.Tick()
	}
	assert.Equal(t, 0, s.Player().X, "clamped to the left edge")
}

func TestPlayerBulletKillsOnlyTargetEnemy(t *testing.T) {
	s := newPlaying(t)
	target := s.Formation().Bounds(4, 5)
	cx, cy := target.Center()
	s.PlayerBullets().Acquire(Bullet{X: cx, Y: cy + 12})

	events := s.Tick()

	f := s.Formation()
	assert.False(t, f.Enemies[4][5].Alive)
	assert.True(t, f.Enemies[3][5].Alive, "enemy behind the target survives")
	assert.Equal(t, 54, f.Alive())
	assert.Equal(t, 10, s.Score())
	assert.Equal(t, 0, s.PlayerBullets().ActiveCount())
	assert.Equal(t, 1, s.Explosions().ActiveCount())
	assert.Equal(t, Explosion{X: 420, Y: 320}, *s.Explosions().At(0))

	require.Equal(t, []EventKind{EventEnemyKilled}, kinds(events))
	assert.Equal(t, 4, events[0].Row)
	assert.Equal(t, 5, events[0].Col)
	assert.Equal(t, 10, events[0].Points)
}

func TestKillCountsMatchScore(t *testing.T) {
	s := newPlaying(t)
	f := s.Formation()

	// Two bullets inside the same enemy: one kill, the other bullet flies on.
	cx, cy := f.Bounds(0, 0).Center()
	s.PlayerBullets().Acquire(Bullet{X: cx, Y: cy + 12})
	s.PlayerBullets().Acquire(Bullet{X: cx, Y: cy + 12})
	s.Tick()

	assert.Equal(t, 54, f.Alive())
	assert.Equal(t, 30, s.Score())
	assert.Equal(t, 1, s.PlayerBullets().ActiveCount())
}

func TestEnemyBulletHitsPlayerOncePerTick(t *testing.T) {
	s := newPlaying(t)
	s.EnemyBullets().Acquire(Bullet{X: 400, Y: 550})
	s.EnemyBullets().Acquire(Bullet{X: 380, Y: 550})

	events := s.Tick()

	assert.Equal(t, 2, s.Lives())
	assert.Equal(t, StatePlaying, s.State())
	assert.Equal(t, 1, s.EnemyBullets().ActiveCount())
	assert.False(t, s.EnemyBullets().IsActive(0), "first slot hits first")
	assert.Equal(t, Explosion{X: 400, Y: 560}, *s.Explosions().At(0))
	assert.Equal(t, []EventKind{EventPlayerHit}, kinds(events))

	s.Tick()
	assert.Equal(t, 1, s.Lives())
}

func TestLastLifeEndsGame(t *testing.T) {
	s := newPlaying(t)
	s.lives = 1
	s.gameOverTimer = 77
	s.EnemyBullets().Acquire(Bullet{X: 400, Y: 550})

	events := s.Tick()

	assert.Equal(t, StateGameOver, s.State())
	assert.Equal(t, 0, s.Lives())
	assert.Equal(t, 0, s.gameOverTimer)
	assert.Equal(t, []EventKind{EventPlayerHit, EventGameOver}, kinds(events))

	for i := 1; i < 180; i++ {
		s.Tick()
	}
	assert.Equal(t, StateGameOver, s.State())
	s.Tick()
	assert.Equal(t, StateMenu, s.State(), "back to the menu after 180 ticks")
}

func TestConfirmAfterGameOverResets(t *testing.T) {
	s := newPlaying(t)
	s.score = 120
	s.lives = 1
	s.EnemyBullets().Acquire(Bullet{X: 400, Y: 550})
	s.Tick()
	require.Equal(t, StateGameOver, s.State())

	s.Apply(core.ActionFire)
	assert.Equal(t, StateGameOver, s.State())

	s.Apply(core.ActionConfirm)
	assert.Equal(t, StateMenu, s.State())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 3, s.Lives())
}

func TestBreachEndsGameImmediately(t *testing.T) {
	s := newPlaying(t)
	f := s.Formation()
	shift(f, 59, 190)
	f.moveTimer = f.MoveDelay() - 1
	s.PlayerBullets().Acquire(Bullet{X: 10, Y: 300})

	events := s.Tick()

	assert.Equal(t, StateGameOver, s.State())
	assert.Equal(t, 0, s.Lives())
	assert.Equal(t, []EventKind{EventGameOver}, kinds(events))
	assert.Equal(t, 300, s.PlayerBullets().At(0).Y, "the rest of the tick is skipped")
}

func TestBulletsErodeShields(t *testing.T) {
	s := newPlaying(t)
	s.PlayerBullets().Acquire(Bullet{X: 100, Y: 515})
	s.EnemyBullets().Acquire(Bullet{X: 300, Y: 445})

	s.Tick()

	assert.Equal(t, 0, s.PlayerBullets().ActiveCount())
	assert.Equal(t, 0, s.EnemyBullets().ActiveCount())
	assert.False(t, s.Shields().List[0].Blocks[0][6].Active)
	assert.False(t, s.Shields().List[1].Blocks[3][0].Active)
	assert.Equal(t, 4*64-2, s.Shields().ActiveBlocks())
}

func TestLevelClearAdvances(t *testing.T) {
	s := newPlaying(t)
	s.Shields().Hit(100, 452)
	killAll(s.Formation())
	s.EnemyBullets().Acquire(Bullet{X: 10, Y: 100})

	events := s.Tick()

	assert.Equal(t, StatePlaying, s.State())
	assert.Equal(t, 2, s.Level())
	assert.Equal(t, []EventKind{EventLevelCleared}, kinds(events))
	assert.Equal(t, 2, events[0].Level)
	assert.Equal(t, 55, s.Formation().Alive())
	assert.Equal(t, 26, s.Formation().MoveDelay())
	assert.Equal(t, 50, s.Formation().ShootDelay())
	assert.Equal(t, 4*64, s.Shields().ActiveBlocks(), "shields are rebuilt")
	require.Equal(t, 1, s.EnemyBullets().ActiveCount(), "bullets in flight survive")
	assert.Equal(t, 106, s.EnemyBullets().At(0).Y)
}

func TestClearingLastLevelWins(t *testing.T) {
	s := newPlaying(t)
	s.level = 10
	killAll(s.Formation())

	events := s.Tick()

	assert.Equal(t, StateWin, s.State())
	assert.Equal(t, 11, s.Level())
	assert.Equal(t, []EventKind{EventWin}, kinds(events))

	for i := 0; i < 500; i++ {
		s.Tick()
	}
	assert.Equal(t, StateWin, s.State(), "only confirm leaves the win screen")

	s.Apply(core.ActionConfirm)
	assert.Equal(t, StateMenu, s.State())
	assert.Equal(t, 1, s.Level())
}

func TestExplosionAnimation(t *testing.T) {
	s := newPlaying(t)
	s.spawnExplosion(50, 50)

	for i := 0; i < 31; i++ {
		s.Tick()
	}
	require.Equal(t, 1, s.Explosions().ActiveCount())
	assert.Equal(t, 7, s.Explosions().At(0).Frame)

	s.Tick()
	assert.Equal(t, 0, s.Explosions().ActiveCount())
}

func TestExplosionPoolIsBounded(t *testing.T) {
	s := newPlaying(t)
	for i := 0; i < 25; i++ {
		s.spawnExplosion(i, i)
	}
	assert.Equal(t, 20, s.Explosions().ActiveCount())
}

func frameOf(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}
