package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - walk left, previous letter slot
	ActionRight          // Right arrow, D - walk right, next letter slot
	ActionUp             // Up arrow, W - next letter
	ActionDown           // Down arrow, S - drop through a trampoline shaft, previous letter
	ActionConfirm        // Space, Enter - start game, submit name
	ActionPause          // Escape, P - pause/unpause
	ActionSave           // Q while paused - save progress and leave to the title
	ActionLoad           // L on the title - resume saved progress
	ActionQuit           // Ctrl+C - exit session
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
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionSave:
		return "Save"
	case ActionLoad:
		return "Load"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
// Actions holds keys pressed this tick, Releases holds keys let go this tick.
type InputFrame struct {
	Actions  map[Action]bool
	Releases map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions:  make(map[Action]bool),
		Releases: make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Release marks an action as released for this frame.
func (f *InputFrame) Release(a Action) {
	if f.Releases == nil {
		f.Releases = make(map[Action]bool)
	}
	f.Releases[a] = true
}

// Released returns true if the given action was released this frame.
func (f InputFrame) Released(a Action) bool {
	if f.Releases == nil {
		return false
	}
	return f.Releases[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Releases {
		delete(f.Releases, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Releases {
		clone.Releases[k] = v
	}
	return clone
}
