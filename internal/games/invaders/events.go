package invaders

import "fmt"

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventEnemyKilled EventKind = iota
	EventPlayerHit
	EventLevelCleared
	EventGameOver
	EventWin
	EventQuit
	EventRunStarted
	EventAbandoned
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventEnemyKilled:
		return "enemy_killed"
	case EventPlayerHit:
		return "player_hit"
	case EventLevelCleared:
		return "level_cleared"
	case EventGameOver:
		return "game_over"
	case EventWin:
		return "win"
	case EventQuit:
		return "quit"
	case EventRunStarted:
		return "run_started"
	case EventAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// Event is reported by Tick and Apply so drivers can log, persist or play
// sounds without inspecting state diffs. Unused fields are zero.
type Event struct {
	Kind   EventKind
	Tick   uint64
	Row    int // EnemyKilled
	Col    int // EnemyKilled
	Points int // EnemyKilled
	Score  int
	Lives  int
	Level  int
}

// String formats the event for logs.
func (e Event) String() string {
	switch e.Kind {
	case EventEnemyKilled:
		return fmt.Sprintf("%s row=%d col=%d +%d", e.Kind, e.Row, e.Col, e.Points)
	case EventPlayerHit:
		return fmt.Sprintf("%s lives=%d", e.Kind, e.Lives)
	default:
		return fmt.Sprintf("%s score=%d level=%d", e.Kind, e.Score, e.Level)
	}
}
