package core

// Action represents a semantic input intent, abstracted from physical key presses.
// Pointer clicks, touches and the Enter key all collapse into ActionActivate.
type Action int

const (
	ActionNone      Action = iota
	ActionActivate         // Enter - press the focused control
	ActionRestart          // Ctrl+R - start a new game
	ActionFocusNext        // Tab - move focus to the next control
	ActionFocusPrev        // Shift+Tab - move focus to the previous control
	ActionHelp             // ? - toggle full help
	ActionQuit             // Esc, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionActivate:
		return "Activate"
	case ActionRestart:
		return "Restart"
	case ActionFocusNext:
		return "FocusNext"
	case ActionFocusPrev:
		return "FocusPrev"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
