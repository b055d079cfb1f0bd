package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Rand is the random source used to pick shooters.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Formation owns the enemy grid, its marching cadence and its shooting cadence.
type Formation struct {
	Enemies   [][]Enemy // [row][col]
	Direction Direction

	moveTimer  int
	moveDelay  int
	shootTimer int
	shootDelay int
	alive      int

	cfg config.FormationConfig
}

// NewFormation creates a formation laid out for the first level.
func NewFormation(cfg config.FormationConfig, cadence config.CadenceConfig) *Formation {
	f := &Formation{cfg: cfg}
	f.Enemies = make([][]Enemy, cfg.Rows)
	for row := range f.Enemies {
		f.Enemies[row] = make([]Enemy, cfg.Cols)
	}
	f.Reset(cadence.MoveDelay(1), cadence.ShootDelay(1))
	return f
}

// Reset lays every enemy out at its starting position, alive, marching right,
// with fresh timers and the given delays.
func (f *Formation) Reset(moveDelay, shootDelay int) {
	f.alive = 0
	for row := range f.Enemies {
		for col := range f.Enemies[row] {
			f.Enemies[row][col] = Enemy{
				X:     f.cfg.OriginX + col*(f.cfg.EnemyWidth+f.cfg.SpacingH),
				Y:     f.cfg.OriginY + row*(f.cfg.EnemyHeight+f.cfg.SpacingV),
				Type:  enemyTypeForRow(row),
				Alive: true,
			}
			f.alive++
		}
	}
	f.Direction = DirRight
	f.moveTimer = 0
	f.moveDelay = moveDelay
	f.shootTimer = 0
	f.shootDelay = shootDelay
}

// Rows returns the number of formation rows.
func (f *Formation) Rows() int { return len(f.Enemies) }

// Cols returns the number of formation columns.
func (f *Formation) Cols() int {
	if len(f.Enemies) == 0 {
		return 0
	}
	return len(f.Enemies[0])
}

// Alive returns the number of living enemies.
func (f *Formation) Alive() int { return f.alive }

// MoveDelay returns the ticks between marching steps.
func (f *Formation) MoveDelay() int { return f.moveDelay }

// ShootDelay returns the ticks between shooting cycles.
func (f *Formation) ShootDelay() int { return f.shootDelay }

// Bounds returns the bounding rectangle of the enemy at row, col.
func (f *Formation) Bounds(row, col int) core.Rect {
	e := f.Enemies[row][col]
	return core.NewRect(e.X, e.Y, f.cfg.EnemyWidth, f.cfg.EnemyHeight)
}

// Kill marks the enemy at row, col dead. It returns false if the enemy was
// already dead or the indices are out of range.
func (f *Formation) Kill(row, col int) bool {
	if row < 0 || row >= len(f.Enemies) || col < 0 || col >= len(f.Enemies[row]) {
		return false
	}
	e := &f.Enemies[row][col]
	if !e.Alive {
		return false
	}
	e.Alive = false
	f.alive--
	return true
}

// AdvanceMovement counts one tick toward the next marching step and performs
// the step when the delay elapses. It returns true if an enemy's bottom edge
// passed playerY while dropping.
func (f *Formation) AdvanceMovement(fieldW, playerY int) (breached bool) {
	f.moveTimer++
	if f.moveTimer < f.moveDelay {
		return false
	}
	f.moveTimer = 0
	return f.step(fieldW, playerY)
}

// step moves the formation once: sideways, or down and reversed at an edge.
func (f *Formation) step(fieldW, playerY int) bool {
	if f.atEdge(fieldW) {
		for row := range f.Enemies {
			for col := range f.Enemies[row] {
				e := &f.Enemies[row][col]
				if !e.Alive {
					continue
				}
				e.Y += f.cfg.DropDistance
				if e.Y+f.cfg.EnemyHeight > playerY {
					return true
				}
			}
		}
		if f.Direction == DirRight {
			f.Direction = DirLeft
		} else {
			f.Direction = DirRight
		}
		return false
	}

	dx := int(f.Direction) * f.cfg.MoveSpeed
	for row := range f.Enemies {
		for col := range f.Enemies[row] {
			if f.Enemies[row][col].Alive {
				f.Enemies[row][col].X += dx
			}
		}
	}
	return false
}

// atEdge reports whether the next sideways step would push the leading
// alive enemy past the field boundary.
func (f *Formation) atEdge(fieldW int) bool {
	for row := range f.Enemies {
		for _, e := range f.Enemies[row] {
			if !e.Alive {
				continue
			}
			if f.Direction == DirRight && e.X+f.cfg.EnemyWidth+f.cfg.MoveSpeed > fieldW {
				return true
			}
			if f.Direction == DirLeft && e.X-f.cfg.MoveSpeed < 0 {
				return true
			}
		}
	}
	return false
}

// AdvanceShooting counts one tick toward the next shooting cycle and, when the
// delay elapses, tries to fire one bullet into bullets. It returns true if a
// bullet was spawned.
func (f *Formation) AdvanceShooting(rng Rand, bullets *Pool[Bullet]) bool {
	f.shootTimer++
	if f.shootTimer < f.shootDelay {
		return false
	}
	f.shootTimer = 0
	return f.shoot(rng, bullets)
}

// shoot picks random cells up to ShotAttempts times. The first living pick
// fires from the lowest living enemy at or below it in the same column.
// No random numbers are drawn when the bullet pool is full.
func (f *Formation) shoot(rng Rand, bullets *Pool[Bullet]) bool {
	if !bullets.HasFree() {
		return false
	}
	rows, cols := f.Rows(), f.Cols()
	if rows == 0 || cols == 0 {
		return false
	}

	for attempt := 0; attempt < f.cfg.ShotAttempts; attempt++ {
		row := rng.Intn(rows)
		col := rng.Intn(cols)
		if !f.Enemies[row][col].Alive {
			continue
		}

		lowest := row
		for r := row + 1; r < rows; r++ {
			if f.Enemies[r][col].Alive {
				lowest = r
			}
		}

		shooter := f.Enemies[lowest][col]
		_, ok := bullets.Acquire(Bullet{
			X: shooter.X + f.cfg.EnemyWidth/2,
			Y: shooter.Y + f.cfg.EnemyHeight,
		})
		return ok
	}
	return false
}
