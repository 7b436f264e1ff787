package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, H, Left arrow - accelerate paddle left
	ActionRight          // D, L, Right arrow - accelerate paddle right
	ActionLaunch         // Space - launch a ball from the paddle
	ActionPause          // P - pause/unpause a level
	ActionConfirm        // Enter - confirm selection in menus
	ActionBack           // B, Escape - go back
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionOther          // Any other key; still counts as "any key"
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
	case ActionLaunch:
		return "Launch"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// KeyEvent is a discrete key transition delivered to a game.
type KeyEvent struct {
	Action  Action
	Pressed bool // true on key-down, false on key-up
}

// Press returns a key-down event for a.
func Press(a Action) KeyEvent {
	return KeyEvent{Action: a, Pressed: true}
}

// Release returns a key-up event for a.
func Release(a Action) KeyEvent {
	return KeyEvent{Action: a, Pressed: false}
}

// MouseEvent is a pointer event. Games may ignore it.
type MouseEvent struct {
	X, Y    int
	Button  int
	Pressed bool
}
