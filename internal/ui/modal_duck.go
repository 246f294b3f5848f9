package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pondeditor/internal/duck"
	"pondeditor/internal/editor"
)

type formField struct {
	name  string
	label string
	input textinput.Model
}

// DuckFormModal collects the fields for a duck create/update/delete.
// The program is captured when the form opens.
type DuckFormModal struct {
	Op       duck.Op
	Err      string
	snapshot editor.Submission
	fields   []formField
	focus    FocusManager
}

// Ensure DuckFormModal implements View.
var _ View = (*DuckFormModal)(nil)

var duckFieldLabels = map[string]string{
	duck.FieldUserID:  "User ID",
	duck.FieldName:    "Duck name",
	duck.FieldDuckKey: "Duck key",
}

// NewDuckFormModal builds the form for op, pre-filled from snap.
func NewDuckFormModal(op duck.Op, snap editor.Submission) *DuckFormModal {
	names := []string{duck.FieldDuckKey, duck.FieldUserID}
	if op == duck.OpCreate {
		names = []string{duck.FieldUserID, duck.FieldName}
	}

	m := &DuckFormModal{Op: op, snapshot: snap}
	for _, n := range names {
		ti := textinput.New()
		ti.Placeholder = strings.ToLower(duckFieldLabels[n])
		ti.Width = 32
		m.fields = append(m.fields, formField{name: n, label: duckFieldLabels[n], input: ti})
	}
	m.focus = FocusManager{Order: names, OnChange: m.onFocus}
	m.focus.SetFocus(names[0])
	return m
}

func (m *DuckFormModal) onFocus(from, to string) {
	for i := range m.fields {
		switch m.fields[i].name {
		case from:
			m.fields[i].input.Blur()
		case to:
			m.fields[i].input.Focus()
		}
	}
}

// Focused returns the name of the focused field.
func (m *DuckFormModal) Focused() string {
	return m.focus.Current
}

// SetValue sets a field by form name.
func (m *DuckFormModal) SetValue(name, value string) {
	for i := range m.fields {
		if m.fields[i].name == name {
			m.fields[i].input.SetValue(value)
		}
	}
}

func (m *DuckFormModal) value(name string) string {
	for _, f := range m.fields {
		if f.name == name {
			return strings.TrimSpace(f.input.Value())
		}
	}
	return ""
}

// Request builds the duck request from the form and the captured program.
func (m *DuckFormModal) Request() duck.Request {
	switch m.Op {
	case duck.OpCreate:
		return duck.CreateForm{
			UserID: m.value(duck.FieldUserID),
			Name:   m.value(duck.FieldName),
			JS:     m.snapshot.JS,
			XML:    m.snapshot.XML,
		}
	case duck.OpUpdate:
		return duck.UpdateForm{
			DuckKey: m.value(duck.FieldDuckKey),
			UserID:  m.value(duck.FieldUserID),
			JS:      m.snapshot.JS,
			XML:     m.snapshot.XML,
		}
	default:
		return duck.DeleteForm{
			DuckKey: m.value(duck.FieldDuckKey),
			UserID:  m.value(duck.FieldUserID),
		}
	}
}

// Init implements View.
func (m *DuckFormModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *DuckFormModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "tab", "down":
			m.focus.Next()
			return m, nil
		case "shift+tab", "up":
			m.focus.Prev()
			return m, nil
		case "enter":
			req := m.Request()
			if err := req.Validate(); err != nil {
				var fe *duck.FieldError
				if errors.As(err, &fe) {
					m.focus.SetFocus(fe.Field)
					m.Err = fmt.Sprintf("%s is required", duckFieldLabels[fe.Field])
				}
				return m, nil
			}
			m.Err = ""
			return m, func() tea.Msg { return SubmitDuckMsg{Request: req} }
		}
	}
	var cmds []tea.Cmd
	for i := range m.fields {
		if m.fields[i].name != m.focus.Current {
			continue
		}
		var cmd tea.Cmd
		m.fields[i].input, cmd = m.fields[i].input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

var duckFormTitles = map[duck.Op]string{
	duck.OpCreate: "Create duck",
	duck.OpUpdate: "Update duck",
	duck.OpDelete: "Delete duck",
}

// View implements View.
func (m *DuckFormModal) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(duckFormTitles[m.Op]) + "\n\n")
	for _, f := range m.fields {
		label := Styles.Muted.Render(f.label)
		if f.name == m.focus.Current {
			label = Styles.Selected.Render(f.label)
		}
		b.WriteString(label + "\n" + f.input.View() + "\n")
	}
	if m.Op != duck.OpDelete {
		src := "blocks"
		if m.snapshot.XML == "" {
			src = "text only"
		}
		b.WriteString(Styles.Muted.Render(fmt.Sprintf("\nProgram: %d bytes of JavaScript (%s)", len(m.snapshot.JS), src)) + "\n")
	}
	if m.Err != "" {
		b.WriteString("\n" + Styles.Error.Render(m.Err) + "\n")
	}
	b.WriteString("\n" + Styles.Hint.Render("Tab: next field  Enter: submit  Esc: cancel"))
	box := Styles.Box
	if m.Op == duck.OpDelete {
		box = Styles.BoxDanger
	}
	return box.Render(b.String())
}
