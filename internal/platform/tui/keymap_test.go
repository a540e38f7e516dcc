package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/steelwall/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"s", runeKey('s'), core.ActionDown},
		{"space", runeKey(' '), core.ActionLaunch},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause},
		{"p", runeKey('p'), core.ActionPause},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('x'), &frame) {
		t.Error("unbound key reported quit")
	}
	if !frame.Has(core.ActionAny) {
		t.Error("unbound key should still count as any key")
	}

	frame.Clear()
	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame) {
		t.Error("left reported quit")
	}
	if !frame.Has(core.ActionLeft) || !frame.Has(core.ActionAny) {
		t.Errorf("frame = %v, want Left and Any", frame.Actions)
	}

	frame.Clear()
	if !km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame) {
		t.Error("ctrl+c should report quit")
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())
	frame := core.NewInputFrame()

	km.MapMouseToFrame(tea.MouseMsg{X: 12, Action: tea.MouseActionMotion}, &frame)
	if !frame.PointerMoved || frame.Pointer != 12 {
		t.Errorf("pointer = %d moved=%v, want 12 moved", frame.Pointer, frame.PointerMoved)
	}
	if frame.Has(core.ActionLaunch) {
		t.Error("motion should not launch")
	}

	km.MapMouseToFrame(tea.MouseMsg{X: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame)
	if !frame.Has(core.ActionLaunch) || !frame.Has(core.ActionAny) {
		t.Error("left click should launch")
	}
	if frame.Pointer != 3 {
		t.Errorf("pointer = %d, want 3", frame.Pointer)
	}
}

func TestIsScreenshot(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())
	if !km.IsScreenshot(tea.KeyMsg{Type: tea.KeyCtrlS}) {
		t.Error("ctrl+s should take a screenshot")
	}
	if km.IsScreenshot(runeKey('s')) {
		t.Error("s is not a screenshot key")
	}
}
