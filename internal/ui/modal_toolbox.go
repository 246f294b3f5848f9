package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"pondeditor/internal/blocks"
)

// toolboxItem implements list.Item for a statement block kind.
type toolboxItem struct {
	kind blocks.Kind
}

func (i toolboxItem) FilterValue() string { return i.kind.Label() }
func (i toolboxItem) Title() string       { return i.kind.Label() }
func (i toolboxItem) Description() string { return string(i.kind) }

// ToolboxModal picks a block kind to append to the program.
type ToolboxModal struct {
	list     list.Model
	intoBody bool
}

// Ensure ToolboxModal implements View.
var _ View = (*ToolboxModal)(nil)

// NewToolboxModal lists the statement blocks in toolbox order.
func NewToolboxModal(intoBody bool) *ToolboxModal {
	items := make([]list.Item, len(blocks.Toolbox))
	for i, k := range blocks.Toolbox {
		items[i] = toolboxItem{kind: k}
	}
	l := list.New(items, NewCompactListDelegate(), 30, len(items)+2)
	l.Title = "Add block"
	if intoBody {
		l.Title = "Add block to loop"
	}
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	return &ToolboxModal{list: l, intoBody: intoBody}
}

// Selected returns the highlighted kind.
func (m *ToolboxModal) Selected() blocks.Kind {
	if it, ok := m.list.SelectedItem().(toolboxItem); ok {
		return it.kind
	}
	return ""
}

// Init implements View.
func (m *ToolboxModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ToolboxModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			k, into := m.Selected(), m.intoBody
			if k == "" {
				return m, nil
			}
			return m, func() tea.Msg { return AppendBlockMsg{Kind: k, IntoBody: into} }
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements View.
func (m *ToolboxModal) View() string {
	return Styles.BoxCompact.Render(m.list.View() + "\n" + Styles.Hint.Render("j/k: move  Enter: add  Esc: cancel"))
}
