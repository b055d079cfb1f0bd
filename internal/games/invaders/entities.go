package invaders

// State is the top-level session state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
	StateWin
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	case StateWin:
		return "win"
	default:
		return "unknown"
	}
}

// EnemyType selects an enemy's score value and sprite.
type EnemyType int

const (
	EnemySquid   EnemyType = iota // Top row
	EnemyCrab                     // Middle rows
	EnemyOctopus                  // Bottom rows
)

var enemyScores = [...]int{
	EnemySquid:   30,
	EnemyCrab:    20,
	EnemyOctopus: 10,
}

// Score returns the points awarded for destroying an enemy of this type.
func (t EnemyType) Score() int {
	if t < 0 || int(t) >= len(enemyScores) {
		return 0
	}
	return enemyScores[t]
}

// enemyTypeForRow maps a formation row to its enemy type.
func enemyTypeForRow(row int) EnemyType {
	switch {
	case row < 1:
		return EnemySquid
	case row < 3:
		return EnemyCrab
	default:
		return EnemyOctopus
	}
}

// Direction is the horizontal marching direction of the formation.
type Direction int

const (
	DirRight Direction = 1
	DirLeft  Direction = -1
)

// Enemy is one cell of the formation grid. Its row and column never change.
type Enemy struct {
	X, Y  int
	Type  EnemyType
	Alive bool
}

// Bullet is a projectile; X, Y is its collision point.
type Bullet struct {
	X, Y int
}

// Explosion is a short animation left behind by a hit.
type Explosion struct {
	X, Y  int // Center
	Frame int
	Timer int // Ticks spent on the current frame
}
