package editor

import "pondeditor/internal/blocks"

// VisualSurface is the block editing surface.
type VisualSurface interface {
	// Program returns the current block program snapshot.
	Program() *blocks.Program
	// HasTopBlocks reports whether any root-level block exists.
	HasTopBlocks() bool
	// ClearProgram replaces the program with the empty program.
	ClearProgram()
}

// TextSurface is the source code editing surface. Implementations report
// every mutation back through RepresentationLink.OnTextEdited, passing the
// source given to SetText for programmatic writes.
type TextSurface interface {
	Text() string
	SetText(text string, src EditSource)
}

// Generator renders a block program as source text. It must be pure.
type Generator func(*blocks.Program) string

// Tabs controls the tab affordances and per-view visibility.
type Tabs interface {
	SetTabEnabled(v View, enabled bool)
	// ShowView makes exactly v's surface and its view-scoped controls visible.
	ShowView(v View)
}

// Collaborators groups the surfaces an Editor drives.
type Collaborators struct {
	Visual VisualSurface
	Text   TextSurface
	Tabs   Tabs
	Render Generator // defaults to codegen.Generate
}
