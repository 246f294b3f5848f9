package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"pondeditor/internal/editor"
)

// KeybindRegistry maps key sequences to commands.
// Key sequences use spacemacs-style notation: "SPC" for space, "SPC d c" for SPC then d then c.
// Single keys: "1", "tab", "esc", "ctrl+c", "?".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	viewFilter   map[string][]editor.View // nil/empty = applies to every view
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		viewFilter:   make(map[string][]editor.View),
	}
}

// Bind registers a key sequence to a command.
// Overwrites any existing binding for the sequence.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence with a description for the help view.
// The binding applies to both views.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForView(seq, cmd, desc, nil)
}

// BindWithDescForView registers a key sequence scoped to the given views.
// Hints are only shown, and the binding only fires, while one of views is active.
func (r *KeybindRegistry) BindWithDescForView(seq string, cmd tea.Cmd, desc string, views []editor.View) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(views) > 0 {
		r.viewFilter[n] = views
	}
}

// Lookup returns the command for a key sequence, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)]
}

// LookupForView is Lookup restricted to bindings that apply to view.
func (r *KeybindRegistry) LookupForView(seq string, view editor.View) tea.Cmd {
	n := normalizeSeq(seq)
	if !r.appliesToView(n, view) {
		return nil
	}
	return r.bindings[n]
}

// HasPrefix returns true if any binding starts with seq and a space (i.e. more keys follow).
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// firstLevelSubmenuLabel maps first-level keys that have sub-bindings to a generic display label.
var firstLevelSubmenuLabel = map[string]string{
	"d": "Duck",
}

// LeaderHints returns hints for SPC-prefixed bindings, filtered by view.
// When currentSeq is empty, returns first-level hints (e.g. "q", "d").
// When currentSeq is e.g. "SPC d", returns next-level hints ("c", "u", "x").
func (r *KeybindRegistry) LeaderHints(currentSeq string, view editor.View) map[string]string {
	out := make(map[string]string)
	prefix := "SPC "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) {
			continue
		}
		if !r.appliesToView(seq, view) {
			continue
		}
		rest := strings.TrimPrefix(seq, prefix)
		key := rest
		if parts := strings.Fields(rest); len(parts) > 0 {
			key = parts[0]
		}
		switch {
		case r.HasPrefix(strings.TrimSuffix(prefix, " ") + " " + key):
			if label, ok := firstLevelSubmenuLabel[key]; ok {
				out[key] = label
			} else {
				out[key] = key + "…"
			}
		case r.descriptions[seq] != "":
			out[key] = r.descriptions[seq]
		default:
			out[key] = seq
		}
	}
	return out
}

func (r *KeybindRegistry) appliesToView(seq string, view editor.View) bool {
	views, ok := r.viewFilter[seq]
	if !ok || len(views) == 0 {
		return true
	}
	for _, v := range views {
		if v == view {
			return true
		}
	}
	return false
}

// normalizeSeq converts tea key strings to our canonical format.
// "space" -> "SPC", "ctrl+c" -> "ctrl+c", "j" -> "j".
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // " " (tea.KeyMsg.String() format)
	LeaderSeq     string   // "SPC" (our format)
	LeaderWaiting bool     // true when waiting for key after leader
	Buffer        []string // accumulated sequence in leader mode
}

// NewKeyHandler creates a handler with SPC as leader.
// Bubble Tea reports space as " " (KeySpace), not "space".
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: " ",
		LeaderSeq: "SPC",
	}
}

// Handle processes a KeyMsg for the active view. Returns (consumed, cmd).
// If consumed is true, the key was handled by the keybind system and should not be passed to panes.
func (h *KeyHandler) Handle(msg tea.KeyMsg, view editor.View) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	// Esc cancels leader mode
	if s == "esc" {
		if h.LeaderWaiting {
			h.reset()
			return true, nil
		}
		return false, nil
	}

	if s == h.LeaderKey && !h.LeaderWaiting {
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")

		if c := h.Registry.LookupForView(seq, view); c != nil {
			h.reset()
			return true, c
		}
		// No exact match; stay in leader mode if a longer binding exists
		if h.Registry.HasPrefix(seq) {
			return true, nil
		}
		h.reset()
		return true, nil
	}

	if c := h.Registry.LookupForView(keyToSeqPart(s), view); c != nil {
		return true, c
	}
	return false, nil
}

// CurrentSeq returns the buffered leader sequence, or "" outside leader mode.
func (h *KeyHandler) CurrentSeq() string {
	return strings.Join(h.Buffer, " ")
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// keyToSeqPart converts a tea key string to our sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}
