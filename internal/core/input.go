package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // Left arrow, A, H - reach for the left hold
	ActionRight              // Right arrow, D, L - reach for the right hold
	ActionToggleTheme        // T - switch between day and night backdrop
	ActionConfirm            // Enter, Space - start climbing from home or game over
	ActionBack               // B, Escape - return to the home screen
	ActionRestart            // R key - restart after game over
	ActionQuit               // Q, Ctrl+C - exit game/session
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
	case ActionToggleTheme:
		return "ToggleTheme"
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

// InputFrame represents the input state for a single simulation tick:
// the actions triggered during this frame, in the order they arrived, plus
// the wall-clock time the frame covers.
type InputFrame struct {
	// Order keeps every triggered action, duplicates included, so that two
	// presses of the same key within one frame are both applied.
	Order []Action

	// Delta is the time elapsed since the previous frame.
	// Zero means "one nominal tick" and is resolved by the game.
	Delta time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	f.Order = append(f.Order, a)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Order = f.Order[:0]
	f.Delta = 0
}
