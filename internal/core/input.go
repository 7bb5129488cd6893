package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform maps keys to actions; games only ever see actions.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow
	ActionDown           // S, J, Down arrow
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionPause          // P - pause/unpause
	ActionRestart        // R - restart from the spawn state
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsSteer reports whether the action is one of the four directions.
func (a Action) IsSteer() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputFrame collects the actions triggered during one frame.
// Directional actions are last-write-wins: only the most recent one is kept
// as the frame's steer.
type InputFrame struct {
	set   uint32
	steer Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.set |= 1 << uint(a)
	if a.IsSteer() {
		f.steer = a
	}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if a == ActionNone {
		return false
	}
	return f.set&(1<<uint(a)) != 0
}

// Steer returns the latest directional action of the frame, or ActionNone.
func (f InputFrame) Steer() Action {
	return f.steer
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.set == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.set = 0
	f.steer = ActionNone
}
