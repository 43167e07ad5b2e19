package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions; the game never sees raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move craft left
	ActionRight          // Right arrow, D - move craft right
	ActionFire           // Space - launch a projectile
	ActionPause          // P, Escape - pause/unpause
	ActionStart          // Any otherwise-unbound key - leave the title screen
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit (handled by the platform)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Any returns true if any action at all was triggered this frame.
// The title screen starts the game on any key press.
func (f InputFrame) Any() bool {
	for _, v := range f.Actions {
		if v {
			return true
		}
	}
	return false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
