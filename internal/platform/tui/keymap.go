package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/steelwall/internal/core"
)

// KeyMap defines the key bindings used while a scene runs.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Launch     key.Binding
	Confirm    key.Binding
	Pause      key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Launch, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Launch},
		{k.Up, k.Down, k.Confirm},
		{k.Pause, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "move right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "menu up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "menu down"),
		),
		Launch: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "launch ball"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc", "p"),
			key.WithHelp("esc/p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// KeyMapper translates Bubble Tea input to scene actions.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap { return km.keys }

// MapKey returns the action bound to msg, or ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight
	case key.Matches(msg, km.keys.Up):
		return core.ActionUp
	case key.Matches(msg, km.keys.Down):
		return core.ActionDown
	case key.Matches(msg, km.keys.Launch):
		return core.ActionLaunch
	case key.Matches(msg, km.keys.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// MapKeyToFrame records a key press. Every key also counts as ActionAny.
// It reports whether the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	frame.Set(core.ActionAny)
	return action == core.ActionQuit
}

// MapMouseToFrame records pointer movement; a left click launches.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	frame.MovePointer(msg.X)
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		frame.Set(core.ActionLaunch)
		frame.Set(core.ActionAny)
	}
}

// IsScreenshot reports whether msg asks for a screenshot.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Screenshot)
}
