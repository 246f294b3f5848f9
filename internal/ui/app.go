package ui

import (
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pondeditor/internal/blocks"
	"pondeditor/internal/codegen"
	"pondeditor/internal/duck"
	"pondeditor/internal/editor"
	"pondeditor/internal/logging"
)

// Options configures NewAppModel.
type Options struct {
	Program       *blocks.Program // nil = default program
	Publisher     duck.Publisher  // nil = in-memory stub
	Logger        *slog.Logger    // nil = discard
	TabSize       int             // loop body indent of generated code
	EditorOptions []editor.Option // extra core options (tracer, observers)
}

// AppModel is the root model: a tab bar over the blocks and code panes,
// with modals on an overlay stack. It is the editor's Tabs collaborator.
type AppModel struct {
	Editor     *editor.Editor
	Blocks     *BlocksPane
	Code       *CodePane
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Publisher  duck.Publisher
	Status     string
	ShowDocs   bool

	enabled       map[editor.View]bool
	shown         editor.View
	log           *slog.Logger
	width, height int
}

// Ensure AppModel satisfies the tab collaborator.
var _ editor.Tabs = (*AppModel)(nil)

// NewAppModel creates the root application model in the visual, linked state.
func NewAppModel(opts Options) *AppModel {
	m := &AppModel{
		Blocks:    NewBlocksPane(opts.Program),
		Code:      NewCodePane(),
		Publisher: opts.Publisher,
		enabled:   make(map[editor.View]bool),
		log:       opts.Logger,
	}
	if m.Publisher == nil {
		m.Publisher = &duck.StubPublisher{}
	}
	if m.log == nil {
		m.log = logging.NewNop()
	}
	core := append([]editor.Option{editor.WithLogger(m.log)}, opts.EditorOptions...)
	m.Editor = editor.New(editor.Collaborators{
		Visual: m.Blocks,
		Text:   m.Code,
		Tabs:   m,
		Render: codegen.Indented(opts.TabSize),
	}, core...)
	m.Code.OnEdit(m.Editor.Link.OnTextEdited)
	m.KeyHandler = NewKeyHandler(newKeybinds())
	return m
}

func newKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("tab", func() tea.Msg { return CycleViewMsg{} }, "Next view")
	reg.BindWithDesc("shift+tab", func() tea.Msg { return CycleViewMsg{} }, "Previous view")
	reg.BindWithDesc("1", func() tea.Msg { return SelectViewMsg{View: editor.ViewVisual} }, "Blocks")
	reg.BindWithDesc("2", func() tea.Msg { return SelectViewMsg{View: editor.ViewText} }, "JavaScript")
	reg.BindWithDesc("?", func() tea.Msg { return ToggleDocsMsg{} }, "Docs")
	reg.BindWithDesc("SPC ?", func() tea.Msg { return ToggleDocsMsg{} }, "Docs")
	text := []editor.View{editor.ViewText}
	reg.BindWithDescForView("i", func() tea.Msg { return FocusCodeMsg{} }, "Edit code", text)
	reg.BindWithDescForView("enter", func() tea.Msg { return FocusCodeMsg{} }, "Edit code", text)
	reg.BindWithDesc("SPC d c", func() tea.Msg { return ShowDuckFormMsg{Op: duck.OpCreate} }, "Create duck")
	reg.BindWithDesc("SPC d u", func() tea.Msg { return ShowDuckFormMsg{Op: duck.OpUpdate} }, "Update duck")
	reg.BindWithDesc("SPC d x", func() tea.Msg { return ShowDuckFormMsg{Op: duck.OpDelete} }, "Delete duck")
	return reg
}

// SetTabEnabled implements editor.Tabs.
func (m *AppModel) SetTabEnabled(v editor.View, enabled bool) {
	m.enabled[v] = enabled
}

// TabEnabled reports whether v's tab can be selected.
func (m *AppModel) TabEnabled(v editor.View) bool {
	return m.enabled[v]
}

// ShowView implements editor.Tabs. The code pane is in insert mode
// whenever it is shown; the docs panel follows the shown view.
func (m *AppModel) ShowView(v editor.View) {
	m.shown = v
	if v == editor.ViewText {
		m.Code.Focus()
	} else {
		m.Code.Blur()
	}
}

// Shown returns the view whose surface is visible.
func (m *AppModel) Shown() editor.View {
	return m.shown
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Code.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Code.SetSize(msg.Width-4, msg.Height-8)
		a.Blocks.Update(msg)
		return a, nil
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	case SelectViewMsg:
		return a, a.selectView(msg.View)
	case CycleViewMsg:
		return a, a.selectView(otherView(a.Editor.View.Active()))
	case ToggleDocsMsg:
		a.ShowDocs = !a.ShowDocs
		return a, nil
	case FocusCodeMsg:
		if a.shown == editor.ViewText {
			return a, a.Code.Focus()
		}
		return a, nil
	case ResolveConfirmationMsg:
		return a.handleResolveConfirmation(msg)
	case ShowToolboxMsg:
		return a.handleShowToolbox(msg)
	case AppendBlockMsg:
		a.Overlays.Pop()
		a.Blocks.Update(msg)
		return a, nil
	case ShowDuckFormMsg:
		return a.handleShowDuckForm(msg)
	case SubmitDuckMsg:
		return a.handleSubmitDuck(msg)
	case duck.ResultMsg:
		return a.handleDuckResult(msg)
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case PasteMsg:
		return a.handlePaste(msg)
	}

	// Blink and other ambient messages go to the live input: the top modal,
	// else the code pane. A content change still goes through the link.
	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		return a, cmd
	}
	_, cmd := a.Code.Update(msg)
	a.report(a.Code.LastOutcome())
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	b.WriteString(a.renderTabs() + "\n")

	var body string
	if top, ok := a.Overlays.Peek(); ok {
		body = top.View.View()
	} else {
		body = Styles.Pane.Render(a.paneView())
		if a.ShowDocs {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, RenderDocs(a.shown))
		}
	}
	b.WriteString(body + "\n")

	if a.Status != "" {
		b.WriteString(Styles.Status.Render(a.Status) + "\n")
	}
	b.WriteString(Styles.Hint.Render(a.hint()))
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		b.WriteString("\n" + RenderKeybindHelp(a.KeyHandler, a.Editor.View.Active()))
	}
	return b.String()
}

func (a *appModelAdapter) paneView() string {
	if a.shown == editor.ViewText {
		return a.Code.View()
	}
	return a.Blocks.View()
}

var tabTitles = map[editor.View]string{
	editor.ViewVisual: "1 Blocks",
	editor.ViewText:   "2 JavaScript",
}

func (a *AppModel) renderTabs() string {
	var tabs []string
	for _, v := range []editor.View{editor.ViewVisual, editor.ViewText} {
		style := Styles.TabInactive
		switch {
		case !a.enabled[v]:
			style = Styles.TabDisabled
		case v == a.shown:
			style = Styles.TabActive
		}
		tabs = append(tabs, style.Render(tabTitles[v]))
	}
	mode := "linked"
	if !a.Editor.State().Linked() {
		mode = "text only"
	}
	return strings.Join(tabs, Styles.Muted.Render("|")) + "  " + Styles.Muted.Render(mode)
}

func (a *AppModel) hint() string {
	switch {
	case a.shown == editor.ViewText && a.Code.Focused():
		return "esc: command mode  tab: switch view  ctrl+c: quit"
	case a.shown == editor.ViewText:
		return "i: edit  1/2: view  ?: docs  SPC: menu"
	default:
		return "a: add  x: remove  +/-: adjust  1/2: view  ?: docs  SPC: menu"
	}
}

func otherView(v editor.View) editor.View {
	if v == editor.ViewVisual {
		return editor.ViewText
	}
	return editor.ViewVisual
}
