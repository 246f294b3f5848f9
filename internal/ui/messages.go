package ui

import (
	"pondeditor/internal/blocks"
	"pondeditor/internal/duck"
	"pondeditor/internal/editor"
)

// SelectViewMsg asks the view controller to show a view (1, 2).
type SelectViewMsg struct {
	View editor.View
}

// CycleViewMsg selects the other view (tab, shift+tab).
type CycleViewMsg struct{}

// ToggleDocsMsg shows or hides the docs panel for the active view (?).
type ToggleDocsMsg struct{}

// FocusCodeMsg puts the code pane back in insert mode (i, enter).
type FocusCodeMsg struct{}

// ResolveConfirmationMsg carries the user's answer to the break-link prompt.
type ResolveConfirmationMsg struct {
	Confirmed bool
}

// ShowToolboxMsg opens the block toolbox (a, A).
type ShowToolboxMsg struct {
	IntoBody bool // append into the selected loop's body
}

// AppendBlockMsg adds a new block chosen from the toolbox.
type AppendBlockMsg struct {
	Kind     blocks.Kind
	IntoBody bool
}

// ShowDuckFormMsg opens the duck form for an operation (SPC d c|u|x).
type ShowDuckFormMsg struct {
	Op duck.Op
}

// SubmitDuckMsg is sent when a duck form passes validation.
type SubmitDuckMsg struct {
	Request duck.Request
}

// DismissModalMsg is sent when the user cancels a modal (Esc).
type DismissModalMsg struct{}

// PasteMsg carries clipboard text for the code pane (ctrl+v).
type PasteMsg struct {
	Text string
	Err  error
}
