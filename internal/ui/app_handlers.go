package ui

import (
	"context"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"pondeditor/internal/duck"
	"pondeditor/internal/editor"
)

// Status line texts.
const (
	statusSevered  = "Text-only mode. Delete all code to get the blocks back."
	statusRelinked = "Code is empty. Blocks are available again."
	statusReverted = "Edit discarded."
	statusBlocked  = "Blocks are unavailable while the program is text only."
	statusSending  = "Sending..."
)

// handleKey routes a key to the top overlay, the code pane in insert
// mode, the keybind system, or the blocks pane, in that order.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return cmd
	}

	view := a.Editor.View.Active()
	if view == editor.ViewText && a.Code.Focused() {
		switch msg.String() {
		case "esc":
			a.Code.Blur()
			return nil
		case "tab", "shift+tab":
			return a.selectView(otherView(view))
		case "ctrl+v":
			return readClipboard
		}
		_, cmd := a.Code.Update(msg)
		a.report(a.Code.LastOutcome())
		return cmd
	}

	if consumed, cmd := a.KeyHandler.Handle(msg, view); consumed {
		return cmd
	}
	if view == editor.ViewVisual {
		_, cmd := a.Blocks.Update(msg)
		return cmd
	}
	return nil
}

// report reflects a link outcome in the UI. NeedsConfirmation opens the
// break-link prompt; the link stays pending until it is answered.
func (a *AppModel) report(out editor.Outcome) {
	switch out {
	case editor.NeedsConfirmation:
		a.Overlays.Push(Overlay{View: NewBreakLinkModal()})
	case editor.Severed:
		a.Status = statusSevered
	case editor.Relinked:
		a.Status = statusRelinked
	case editor.Reverted:
		a.Status = statusReverted
	}
}

func (a *AppModel) selectView(v editor.View) tea.Cmd {
	if !a.Editor.View.SelectView(v) {
		if !a.Editor.View.Enabled(v) {
			a.Status = statusBlocked
		}
		return nil
	}
	if v == editor.ViewText {
		return a.Code.Init()
	}
	return nil
}

func readClipboard() tea.Msg {
	s, err := clipboard.ReadAll()
	return PasteMsg{Text: s, Err: err}
}

// handlePaste inserts clipboard text when the code pane is in insert mode
// and no modal is open.
func (a *appModelAdapter) handlePaste(msg PasteMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.log.Warn("read clipboard", "error", msg.Err)
		return a, nil
	}
	if a.Overlays.Len() > 0 || a.Editor.View.Active() != editor.ViewText || !a.Code.Focused() {
		return a, nil
	}
	a.report(a.Code.Insert(msg.Text))
	return a, nil
}

func (a *appModelAdapter) handleResolveConfirmation(msg ResolveConfirmationMsg) (tea.Model, tea.Cmd) {
	if top, ok := a.Overlays.Peek(); ok {
		if _, isConfirm := top.View.(*ConfirmModal); isConfirm {
			a.Overlays.Pop()
		}
	}
	a.report(a.Editor.Link.ResolveConfirmation(msg.Confirmed))
	return a, nil
}

func (a *appModelAdapter) handleShowToolbox(msg ShowToolboxMsg) (tea.Model, tea.Cmd) {
	if a.Editor.View.Active() != editor.ViewVisual {
		return a, nil
	}
	modal := NewToolboxModal(msg.IntoBody)
	a.Overlays.Push(Overlay{View: modal})
	return a, modal.Init()
}

func (a *appModelAdapter) handleShowDuckForm(msg ShowDuckFormMsg) (tea.Model, tea.Cmd) {
	snap, err := a.Editor.Link.Snapshot()
	if err != nil {
		a.log.Error("snapshot program", "error", err)
		a.Status = err.Error()
		return a, nil
	}
	modal := NewDuckFormModal(msg.Op, snap)
	a.Overlays.Push(Overlay{View: modal})
	return a, modal.Init()
}

func (a *appModelAdapter) handleSubmitDuck(msg SubmitDuckMsg) (tea.Model, tea.Cmd) {
	a.Overlays.Pop()
	a.Status = statusSending
	a.log.Info("duck request", "op", msg.Request.Op())
	return a, a.Publisher.Publish(context.Background(), msg.Request)
}

func (a *appModelAdapter) handleDuckResult(msg duck.ResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.log.Warn("duck request failed", "op", msg.Op, "error", msg.Err)
	} else {
		a.log.Info("duck request done", "op", msg.Op, "key", msg.Key)
	}
	a.Status = msg.Text
	return a, nil
}
