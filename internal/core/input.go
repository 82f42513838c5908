package core

// Action represents a playback action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionPause             // Space, P - pause/resume rotation
	ActionShade             // Enter, S - toggle grayscale shading
	ActionFaster            // + - raise the tick rate
	ActionSlower            // - - lower the tick rate
	ActionScreenshot        // Ctrl+S - save the current frame
	ActionHelp              // ? - toggle the full help view
	ActionQuit              // Q, Ctrl+C - exit playback
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionShade:
		return "Shade"
	case ActionFaster:
		return "Faster"
	case ActionSlower:
		return "Slower"
	case ActionScreenshot:
		return "Screenshot"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
