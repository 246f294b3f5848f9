// Package ui is the Bubble Tea front end of the editor.
//
// Core abstractions:
//   - View: a pane or modal with its own model, update, view (Elm-style)
//   - BlocksPane: the visual surface, a cursor over the root blocks
//   - CodePane: the text surface on a textarea; reports every change to the link
//   - AppModel: tab bar and status line; the editor's Tabs collaborator
//   - Overlay: modals (break-link prompt, toolbox, duck forms) on a stack
//   - KeybindRegistry: single keys and SPC-leader sequences, scoped per view
package ui
