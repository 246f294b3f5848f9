package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"pondeditor/internal/blocks"
	"pondeditor/internal/editor"
	"pondeditor/internal/ui/textutil"
)

// numberStep is the +/- increment for numeric inputs.
const numberStep = 5

// BlocksPane is the visual surface: a cursor over the root blocks of the
// program. Edits here never notify the link; the code view regenerates
// when it is next entered.
type BlocksPane struct {
	program *blocks.Program
	cursor  int
	width   int
}

// Ensure BlocksPane implements View and the visual surface.
var (
	_ View                 = (*BlocksPane)(nil)
	_ editor.VisualSurface = (*BlocksPane)(nil)
)

// NewBlocksPane shows p, or the default program when p is nil.
func NewBlocksPane(p *blocks.Program) *BlocksPane {
	if p == nil {
		p = blocks.Default()
	}
	return &BlocksPane{program: p}
}

// Program implements editor.VisualSurface.
func (b *BlocksPane) Program() *blocks.Program {
	return b.program
}

// HasTopBlocks implements editor.VisualSurface.
func (b *BlocksPane) HasTopBlocks() bool {
	return b.program.HasTopBlocks()
}

// ClearProgram implements editor.VisualSurface.
func (b *BlocksPane) ClearProgram() {
	b.program.Clear()
	b.cursor = 0
}

// Cursor returns the index of the selected root block.
func (b *BlocksPane) Cursor() int {
	return b.cursor
}

// Append adds a block at the root, or inside the selected loop's body.
func (b *BlocksPane) Append(k blocks.Kind, intoBody bool) {
	nb := blocks.New(k)
	if intoBody {
		if sel := b.selected(); sel != nil && sel.Kind.HasBody() {
			sel.Body = append(sel.Body, nb)
			return
		}
	}
	b.program.Append(nb)
	b.cursor = len(b.program.Top) - 1
}

func (b *BlocksPane) selected() *blocks.Block {
	if b.cursor < 0 || b.cursor >= len(b.program.Top) {
		return nil
	}
	return b.program.Top[b.cursor]
}

func (b *BlocksPane) removeSelected() {
	if b.selected() == nil {
		return
	}
	b.program.Remove(b.cursor)
	if b.cursor >= len(b.program.Top) && b.cursor > 0 {
		b.cursor--
	}
}

// adjust changes the first numeric input of the selected block by delta.
func (b *BlocksPane) adjust(delta float64) {
	sel := b.selected()
	if sel == nil {
		return
	}
	for _, name := range sel.Kind.Inputs() {
		if in := sel.Input(name); in != nil && in.Kind == blocks.KindNumber {
			in.Num += delta
			return
		}
	}
}

// Init implements View.
func (b *BlocksPane) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (b *BlocksPane) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
	case AppendBlockMsg:
		b.Append(msg.Kind, msg.IntoBody)
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if b.cursor < len(b.program.Top)-1 {
				b.cursor++
			}
		case "k", "up":
			if b.cursor > 0 {
				b.cursor--
			}
		case "a":
			return b, func() tea.Msg { return ShowToolboxMsg{} }
		case "A":
			if sel := b.selected(); sel != nil && sel.Kind.HasBody() {
				return b, func() tea.Msg { return ShowToolboxMsg{IntoBody: true} }
			}
		case "x", "delete":
			b.removeSelected()
		case "X":
			b.ClearProgram()
		case "+", "=":
			b.adjust(numberStep)
		case "-":
			b.adjust(-numberStep)
		}
	}
	return b, nil
}

// View implements View.
func (b *BlocksPane) View() string {
	if !b.program.HasTopBlocks() {
		return Styles.Empty.Render("No blocks. Press a to add one.")
	}
	width := b.width - 6
	if width <= 0 {
		width = 72
	}
	var lines []string
	for i, blk := range b.program.Top {
		prefix, style := "  ", Styles.Normal
		if i == b.cursor {
			prefix, style = "> ", Styles.Selected
		}
		lines = append(lines, style.Render(textutil.Truncate(prefix+describe(blk), width)))
		for _, child := range bodyLines(blk, 1) {
			lines = append(lines, Styles.Muted.Render(textutil.Truncate("  "+child, width)))
		}
	}
	return strings.Join(lines, "\n")
}

// describe renders one block as "label  INPUT value ...".
func describe(b *blocks.Block) string {
	var parts []string
	parts = append(parts, b.Kind.Label())
	for _, name := range b.Kind.Inputs() {
		parts = append(parts, fmt.Sprintf("%s %s", name, describeValue(b.Input(name))))
	}
	return strings.Join(parts, "  ")
}

func describeValue(b *blocks.Block) string {
	switch {
	case b == nil:
		return "_"
	case b.Kind == blocks.KindNumber:
		return blocks.FormatNumber(b.Num)
	case len(b.Kind.Inputs()) > 0:
		return "(" + describe(b) + ")"
	default:
		return b.Kind.Label()
	}
}

func bodyLines(b *blocks.Block, depth int) []string {
	var out []string
	for _, child := range b.Body {
		out = append(out, strings.Repeat("  ", depth)+describe(child))
		out = append(out, bodyLines(child, depth+1)...)
	}
	return out
}
