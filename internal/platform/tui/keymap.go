package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mappy/internal/core"
)

// KeyMap holds the game's key bindings. It also feeds the help line.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Confirm    key.Binding
	Pause      key.Binding
	Save       key.Binding
	Load       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Down, k.Confirm, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Confirm, k.Pause, k.Save, k.Load},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "next letter"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "drop"),
		),
		Confirm: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc", "p"),
			key.WithHelp("esc/p", "pause"),
		),
		Save: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "save & quit (paused)"),
		),
		Load: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "load save"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.Up):
		return core.ActionUp, false
	case key.Matches(msg, k.Down):
		return core.ActionDown, false
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Save):
		return core.ActionSave, false
	case key.Matches(msg, k.Load):
		return core.ActionLoad, false
	}
	return core.ActionNone, false
}

// holdTracker turns repeated key presses into a held key with a release.
// Terminals report no key-up, so a lateral key counts as released once no
// repeat has arrived for releaseTicks ticks. The first press gets an extra
// grace period covering the terminal's initial auto-repeat delay.
type holdTracker struct {
	releaseTicks int
	repeatDelay  int

	action   core.Action
	lastSeen int
	repeated bool
}

func newHoldTracker(releaseTicks, tickRate int) *holdTracker {
	return &holdTracker{
		releaseTicks: releaseTicks,
		// Typical terminal auto-repeat delay is about half a second.
		repeatDelay: tickRate / 2,
	}
}

// press records a press of a lateral action at tick now. Switching to the
// other direction drops the old hold without a release.
func (h *holdTracker) press(a core.Action, now int) {
	if h.action == a {
		h.repeated = true
	} else {
		h.action = a
		h.repeated = false
	}
	h.lastSeen = now
}

// expire reports the held action released at tick now, if it timed out.
func (h *holdTracker) expire(now int) (core.Action, bool) {
	if h.action == core.ActionNone {
		return core.ActionNone, false
	}
	limit := h.releaseTicks
	if !h.repeated {
		limit += h.repeatDelay
	}
	if now-h.lastSeen <= limit {
		return core.ActionNone, false
	}
	a := h.action
	h.action = core.ActionNone
	h.repeated = false
	return a, true
}

// held returns the currently held lateral action, or ActionNone.
func (h *holdTracker) held() core.Action {
	return h.action
}

func isLateral(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight
}
