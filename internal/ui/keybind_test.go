package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"pondeditor/internal/editor"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("SPC q") == nil {
		t.Error("expected SPC q to be bound")
	}
	if reg.Lookup("space q") == nil {
		t.Error("expected space q to normalize to SPC q")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	// Press space -> leader waiting (Bubble Tea reports space as " ")
	consumed, cmd := h.Handle(keyMsg(" "), editor.ViewVisual)
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	consumed, cmd = h.Handle(keyMsg("x"), editor.ViewVisual)
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd == nil {
		t.Fatal("expected command for SPC x")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_MultiKeySequence(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC d c", func() tea.Msg { return ShowDuckFormMsg{} })
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), editor.ViewVisual)
	consumed, cmd := h.Handle(keyMsg("d"), editor.ViewVisual)
	if !consumed || cmd != nil {
		t.Errorf("d: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting || h.CurrentSeq() != "SPC d" {
		t.Errorf("expected to wait on SPC d, got waiting=%v seq=%q", h.LeaderWaiting, h.CurrentSeq())
	}
	_, cmd = h.Handle(keyMsg("c"), editor.ViewVisual)
	if cmd == nil {
		t.Fatal("expected command for SPC d c")
	}
	if _, ok := cmd().(ShowDuckFormMsg); !ok {
		t.Error("expected ShowDuckFormMsg")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), editor.ViewVisual)
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"), editor.ViewVisual)
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"), editor.ViewText)
	if !consumed || cmd == nil {
		t.Errorf("q: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"), editor.ViewVisual)
	if consumed {
		t.Error("unbound j should not be consumed")
	}
}

func TestKeyHandler_ViewScopedBinding(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForView("i", func() tea.Msg { return nil }, "Insert", []editor.View{editor.ViewText})
	h := NewKeyHandler(reg)

	if consumed, _ := h.Handle(keyMsg("i"), editor.ViewVisual); consumed {
		t.Error("text-only binding should not fire in the visual view")
	}
	if consumed, cmd := h.Handle(keyMsg("i"), editor.ViewText); !consumed || cmd == nil {
		t.Errorf("text view: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestLeaderHints_SubmenuLabel(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC d c", tea.Quit, "Create duck")
	reg.BindWithDesc("SPC d x", tea.Quit, "Delete duck")

	top := reg.LeaderHints("", editor.ViewVisual)
	if top["q"] != "Quit" || top["d"] != "Duck" {
		t.Errorf("first-level hints: %v", top)
	}
	next := reg.LeaderHints("SPC d", editor.ViewVisual)
	if next["c"] != "Create duck" || next["x"] != "Delete duck" || len(next) != 2 {
		t.Errorf("second-level hints: %v", next)
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	h := NewKeyHandler(reg)
	h.Handle(keyMsg(" "), editor.ViewVisual)

	out := RenderKeybindHelp(h, editor.ViewVisual)
	if !strings.Contains(out, "Quit") || !strings.Contains(out, "cancel") {
		t.Errorf("help missing hints: %q", out)
	}
	if RenderKeybindHelp(nil, editor.ViewVisual) != "" {
		t.Error("nil handler should render nothing")
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
