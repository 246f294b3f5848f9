package ui

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"pondeditor/internal/editor"
)

// EditFunc receives every text mutation with its source.
type EditFunc func(src editor.EditSource) editor.Outcome

// CodePane is the text surface. Every change to its content, from the
// keyboard or from SetText, is reported through onEdit.
type CodePane struct {
	textarea textarea.Model
	onEdit   EditFunc
	last     editor.Outcome
}

// Ensure CodePane implements View and the text surface.
var (
	_ View               = (*CodePane)(nil)
	_ editor.TextSurface = (*CodePane)(nil)
)

// NewCodePane creates an empty code pane.
func NewCodePane() *CodePane {
	ta := textarea.New()
	ta.Placeholder = "// JavaScript"
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.SetWidth(72)
	ta.SetHeight(16)
	return &CodePane{textarea: ta}
}

// OnEdit installs the mutation callback.
func (c *CodePane) OnEdit(fn EditFunc) {
	c.onEdit = fn
}

// Text implements editor.TextSurface.
func (c *CodePane) Text() string {
	return c.textarea.Value()
}

// SetText implements editor.TextSurface. The write is reported with src.
func (c *CodePane) SetText(text string, src editor.EditSource) {
	c.textarea.SetValue(text)
	c.report(src)
}

func (c *CodePane) report(src editor.EditSource) editor.Outcome {
	c.last = editor.Ignored
	if c.onEdit != nil {
		c.last = c.onEdit(src)
	}
	return c.last
}

// LastOutcome returns the outcome of the most recent reported edit.
func (c *CodePane) LastOutcome() editor.Outcome {
	return c.last
}

// Focus puts the pane in insert mode.
func (c *CodePane) Focus() tea.Cmd {
	return c.textarea.Focus()
}

// Blur leaves insert mode.
func (c *CodePane) Blur() {
	c.textarea.Blur()
}

// Focused reports whether the pane is in insert mode.
func (c *CodePane) Focused() bool {
	return c.textarea.Focused()
}

// SetSize resizes the editing area.
func (c *CodePane) SetSize(w, h int) {
	if w > 0 {
		c.textarea.SetWidth(w)
	}
	if h > 0 {
		c.textarea.SetHeight(h)
	}
}

// Init implements View.
func (c *CodePane) Init() tea.Cmd {
	return textarea.Blink
}

// Insert types s at the cursor as a user edit.
func (c *CodePane) Insert(s string) editor.Outcome {
	before := c.textarea.Value()
	c.textarea.InsertString(s)
	return c.reportChange(before)
}

// Update implements View. Any message that changes the content is reported
// as a user edit; LastOutcome is Ignored when nothing changed.
func (c *CodePane) Update(msg tea.Msg) (View, tea.Cmd) {
	before := c.textarea.Value()
	var cmd tea.Cmd
	c.textarea, cmd = c.textarea.Update(msg)
	c.reportChange(before)
	return c, cmd
}

func (c *CodePane) reportChange(before string) editor.Outcome {
	if c.textarea.Value() == before {
		c.last = editor.Ignored
		return c.last
	}
	return c.report(editor.SourceUser)
}

// View implements View.
func (c *CodePane) View() string {
	return c.textarea.View()
}
