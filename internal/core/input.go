package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLetter         // a-z - type a letter into the current guess
	ActionErase          // Backspace - remove the last typed letter
	ActionConfirm        // Enter - submit the current guess
	ActionBack           // Esc, or N/Esc at the play-again prompt - leave the game
	ActionRestart        // Y/Enter at the play-again prompt - start a new round
	ActionQuit           // Ctrl+C - exit the game or session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLetter:
		return "Letter"
	case ActionErase:
		return "Erase"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputEvent is one action received during a tick. Rune is set for ActionLetter.
type InputEvent struct {
	Action Action
	Rune   rune
}

// InputFrame collects the input received during one simulation tick.
// Events keep arrival order: typing "ab", Backspace, "c" within one tick must
// leave "ac" in the guess buffer.
type InputFrame struct {
	Events []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	f.Events = append(f.Events, InputEvent{Action: a})
}

// Type records a typed letter for this frame.
func (f *InputFrame) Type(r rune) {
	f.Events = append(f.Events, InputEvent{Action: ActionLetter, Rune: r})
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, e := range f.Events {
		if e.Action == a {
			return true
		}
	}
	return false
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Events = nil
}
