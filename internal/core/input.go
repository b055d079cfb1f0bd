package core

// Action represents a semantic game command, abstracted from physical key presses.
// The simulation only ever sees these; key bindings live in the platform layer.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Start moving the defender left
	ActionMoveRight        // Start moving the defender right
	ActionStopMove         // Stop horizontal movement
	ActionFire             // Fire a player bullet
	ActionConfirm          // Start a game / leave a finished one
	ActionCancel           // Back to menu while playing, quit from the menu
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionStopMove:
		return "StopMove"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions received between two simulation ticks.
// Actions keep their arrival order, and repeats are kept: two Fire presses
// in one frame are two fire attempts.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make([]Action, 0, 8),
	}
}

// Set appends an action to the frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was queued this frame.
func (f InputFrame) Has(a Action) bool {
	for _, queued := range f.Actions {
		if queued == a {
			return true
		}
	}
	return false
}

// Len returns the number of queued actions.
func (f InputFrame) Len() int {
	return len(f.Actions)
}

// Clear resets the frame for the next tick, keeping its capacity.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Actions: make([]Action, len(f.Actions))}
	copy(clone.Actions, f.Actions)
	return clone
}
