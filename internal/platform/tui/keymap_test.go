package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/riverrun/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key        string
		wantAction core.Action
		wantQuit   bool
	}{
		{"a", core.ActionLeft, false},
		{"left", core.ActionLeft, false},
		{"d", core.ActionRight, false},
		{"right", core.ActionRight, false},
		{"space", core.ActionFire, false},
		{"p", core.ActionPause, false},
		{"esc", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		// Unbound keys act as start requests
		{"x", core.ActionStart, false},
		{"1", core.ActionStart, false},
	}

	for _, tt := range tests {
		action, isQuit := km.MapKey(keyMsg(tt.key))
		if action != tt.wantAction {
			t.Errorf("MapKey(%q) action = %v, want %v", tt.key, action, tt.wantAction)
		}
		if isQuit != tt.wantQuit {
			t.Errorf("MapKey(%q) isQuit = %v, want %v", tt.key, isQuit, tt.wantQuit)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(keyMsg("a"), &frame); quit {
		t.Error("MapKeyToFrame('a') reported quit")
	}
	if !frame.Has(core.ActionLeft) {
		t.Error("frame missing ActionLeft after 'a'")
	}

	if quit := km.MapKeyToFrame(keyMsg("q"), &frame); !quit {
		t.Error("MapKeyToFrame('q') did not report quit")
	}
}
