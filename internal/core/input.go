package core

// Action is a semantic game action, abstracted from physical key presses.
// The platform maps keys and mouse buttons to actions; the game never sees
// raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionLeftCar         // A, Left arrow - toggle the blue (left-side) car's lane
	ActionRightCar        // D, Right arrow - toggle the red (right-side) car's lane
	ActionBack            // Esc - abort to the main menu
	ActionRestart         // R - restart after game over
	ActionHome            // H - back to menu after game over
	ActionQuit            // Q, Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeftCar:
		return "LeftCar"
	case ActionRightCar:
		return "RightCar"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionHome:
		return "Home"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is everything the player did during one simulation tick:
// triggered actions, whether any key at all was pressed (the main menu
// starts on any key), and an optional pointer click in virtual-pixel
// coordinates.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// AnyKey is set when any key was pressed this frame, mapped or not.
	AnyKey bool

	// Clicked is set when the pointer was clicked this frame; ClickX and
	// ClickY carry the click position in virtual-pixel space.
	Clicked        bool
	ClickX, ClickY int
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

// SetClick records a pointer click at virtual-pixel coordinates.
func (f *InputFrame) SetClick(x, y int) {
	f.Clicked = true
	f.ClickX = x
	f.ClickY = y
}

// Has reports whether the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether the frame carries no input at all.
func (f InputFrame) Empty() bool {
	return !f.AnyKey && !f.Clicked && len(f.Actions) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.AnyKey = false
	f.Clicked = false
	f.ClickX = 0
	f.ClickY = 0
}
