package core

// Action is a semantic input, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move paddle left
	ActionRight          // D, Right arrow - move paddle right
	ActionUp             // W, Up arrow - menu up
	ActionDown           // S, Down arrow - menu down
	ActionLaunch         // Space, mouse click - release a ball
	ActionConfirm        // Enter - confirm menu selection
	ActionPause          // Esc, P - open or close the pause menu
	ActionQuit           // Ctrl+C - leave immediately
	ActionAny            // Any key press, used to skip credits
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLaunch:
		return "Launch"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionAny:
		return "Any"
	default:
		return "Unknown"
	}
}

// InputFrame is the input gathered during one tick.
type InputFrame struct {
	Actions map[Action]bool

	// Pointer holds the last mouse column when PointerMoved is set.
	Pointer      int
	PointerMoved bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// MovePointer records a mouse position.
func (f *InputFrame) MovePointer(col int) {
	f.Pointer = col
	f.PointerMoved = true
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.PointerMoved = false
}
