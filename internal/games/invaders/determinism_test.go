package invaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// runAutopilot plays a seeded session for n ticks and calls check after each.
func runAutopilot(t *testing.T, seed int64, n int, check func(s *Session)) *Session {
	t.Helper()
	s := New(config.DefaultInvadersConfig(), seed)
	var pilot Autopilot
	in := core.NewInputFrame()

	for i := 0; i < n; i++ {
		snap := s.Snapshot()
		in.Clear()
		pilot.Decide(&snap, &in)
		s.Step(in)
		if check != nil {
			check(s)
		}
	}
	return s
}

func TestGameDeterminism(t *testing.T) {
	a := runAutopilot(t, 12345, 3000, nil)
	b := runAutopilot(t, 12345, 3000, nil)

	snapA, snapB := a.Snapshot(), b.Snapshot()
	assert.Equal(t, snapA.Hash(), snapB.Hash())
	assert.Equal(t, snapA.Score, snapB.Score)
	assert.Equal(t, snapA.Tick, snapB.Tick)
	assert.Equal(t, snapA.Player, snapB.Player)
}

func TestInvariantsHoldDuringPlay(t *testing.T) {
	prevState := StateMenu
	var prevScore, prevAlive, prevLevel int

	runAutopilot(t, 7, 6000, func(s *Session) {
		require.LessOrEqual(t, s.PlayerBullets().ActiveCount(), 3)
		require.LessOrEqual(t, s.EnemyBullets().ActiveCount(), 8)
		require.LessOrEqual(t, s.Explosions().ActiveCount(), 20)
		require.GreaterOrEqual(t, s.Lives(), 0)

		alive := 0
		f := s.Formation()
		for row := range f.Enemies {
			for _, e := range f.Enemies[row] {
				if e.Alive {
					alive++
				}
			}
		}
		require.Equal(t, f.Alive(), alive, "live count matches the grid")

		if prevState == StatePlaying && s.State() == StatePlaying && s.Level() == prevLevel {
			require.GreaterOrEqual(t, s.Score(), prevScore, "score never decreases during play")
			killed := prevAlive - alive
			require.GreaterOrEqual(t, killed, 0, "enemies never come back within a level")
			require.GreaterOrEqual(t, s.Score()-prevScore, 10*killed)
		}

		prevState, prevScore, prevAlive, prevLevel = s.State(), s.Score(), alive, s.Level()
	})
}

func TestAutopilotStartsAndScores(t *testing.T) {
	sawPlaying, best := false, 0
	runAutopilot(t, 99, 1500, func(s *Session) {
		if s.State() == StatePlaying {
			sawPlaying = true
		}
		best = max(best, s.Score())
	})

	assert.True(t, sawPlaying)
	assert.Greater(t, best, 0)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newPlaying(t)
	s.Apply(core.ActionFire)

	snap := s.Snapshot()
	require.Len(t, snap.PlayerBullets, 1)
	assert.Len(t, snap.Enemies, 55)
	assert.Len(t, snap.Blocks, 4*64)
	assert.Equal(t, 800, snap.FieldW)

	snap.PlayerBullets[0].Y = -100
	snap.Enemies[0].Bounds.X = -100
	assert.Equal(t, 540, s.PlayerBullets().At(0).Y)
	assert.Equal(t, 100, s.Formation().Enemies[0][0].X)

	before := snap.Hash()
	s.Tick()
	after := s.Snapshot()
	assert.NotEqual(t, before, after.Hash())
}

func TestAutopilotDecisions(t *testing.T) {
	tests := []struct {
		state State
		want  []core.Action
	}{
		{StateMenu, []core.Action{core.ActionConfirm}},
		{StateWin, []core.Action{core.ActionConfirm}},
		{StateGameOver, nil},
	}

	for _, tc := range tests {
		t.Run(tc.state.String(), func(t *testing.T) {
			var pilot Autopilot
			in := core.NewInputFrame()
			pilot.Decide(&Snapshot{State: tc.state}, &in)
			if tc.want == nil {
				assert.Zero(t, in.Len())
				return
			}
			assert.Equal(t, tc.want, in.Actions)
		})
	}
}

func TestAutopilotWalksAndFires(t *testing.T) {
	s := newPlaying(t)
	f := s.Formation()
	for row := range f.Rows() {
		for col := range f.Cols() {
			if col != 0 {
				f.Kill(row, col)
			}
		}
	}

	var pilot Autopilot
	in := core.NewInputFrame()
	snap := s.Snapshot()
	pilot.Decide(&snap, &in)
	assert.Equal(t, []core.Action{core.ActionMoveLeft, core.ActionFire}, in.Actions)

	in.Clear()
	pilot.Decide(&snap, &in)
	assert.Equal(t, []core.Action{core.ActionFire}, in.Actions, "direction is only sent when it changes")
}
