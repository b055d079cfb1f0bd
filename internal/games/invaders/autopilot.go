package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Autopilot is a naive player for headless runs. It starts a game from the
// Menu, walks under the nearest enemy column and keeps firing. After a win it
// confirms back to the Menu; after a loss it waits for the countdown.
type Autopilot struct {
	dir int // Direction last sent to the session
}

// Decide appends this frame's actions to in.
func (a *Autopilot) Decide(snap *Snapshot, in *core.InputFrame) {
	switch snap.State {
	case StateMenu:
		a.dir = 0
		in.Set(core.ActionConfirm)
		return
	case StateWin:
		in.Set(core.ActionConfirm)
		return
	case StatePlaying:
	default:
		return
	}

	cx, _ := snap.Player.Center()
	target, found := nearestColumn(snap, cx)
	if !found {
		a.hold(in, 0)
		return
	}

	switch dx := target - cx; {
	case dx < -snap.Player.W/4:
		a.hold(in, -1)
	case dx > snap.Player.W/4:
		a.hold(in, 1)
	default:
		a.hold(in, 0)
	}
	in.Set(core.ActionFire)
}

// hold sends a move or stop action when the wanted direction changes.
func (a *Autopilot) hold(in *core.InputFrame, dir int) {
	if dir == a.dir {
		return
	}
	a.dir = dir
	switch dir {
	case -1:
		in.Set(core.ActionMoveLeft)
	case 1:
		in.Set(core.ActionMoveRight)
	default:
		in.Set(core.ActionStopMove)
	}
}

// nearestColumn returns the x center of the living enemy closest to x.
func nearestColumn(snap *Snapshot, x int) (int, bool) {
	best, bestDist := 0, -1
	for _, e := range snap.Enemies {
		ex, _ := e.Bounds.Center()
		d := ex - x
		if d < 0 {
			d = -d
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = ex, d
		}
	}
	return best, bestDist >= 0
}
