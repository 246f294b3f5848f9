// Package codegen renders a visual block program as duck JavaScript.
package codegen

import (
	"strings"

	"pondeditor/internal/blocks"
)

// ReservedWords are the duck API names a user program must not shadow.
var ReservedWords = []string{
	"scan", "cannon", "drive", "swim", "stop", "speed",
	"damage", "health", "loc_x", "getX", "loc_y", "getY", "log",
}

// DefaultIndent is the loop body indent width used by Generate.
const DefaultIndent = 2

type generator struct {
	indent string
}

// Generate returns the JavaScript for p. The result is a pure function of
// the block structure: one statement per line, no trailing newline.
func Generate(p *blocks.Program) string {
	return Indented(DefaultIndent)(p)
}

// Indented returns a generator that indents loop bodies by width spaces.
// A non-positive width falls back to DefaultIndent.
func Indented(width int) func(*blocks.Program) string {
	if width <= 0 {
		width = DefaultIndent
	}
	g := generator{indent: strings.Repeat(" ", width)}
	return g.generate
}

func (g generator) generate(p *blocks.Program) string {
	if !p.HasTopBlocks() {
		return ""
	}
	var lines []string
	for _, b := range p.Top {
		lines = g.appendStatement(lines, b, 0)
	}
	return strings.Join(lines, "\n")
}

func (g generator) appendStatement(lines []string, b *blocks.Block, depth int) []string {
	pad := strings.Repeat(g.indent, depth)
	switch b.Kind {
	case blocks.KindLoop:
		lines = append(lines, pad+"while (true) {")
		for _, s := range b.Body {
			lines = g.appendStatement(lines, s, depth+1)
		}
		return append(lines, pad+"}")
	case blocks.KindCannon:
		return append(lines, pad+call("cannon", arg(b, blocks.InputDegree), arg(b, blocks.InputRange))+";")
	case blocks.KindSwim:
		return append(lines, pad+call("swim", arg(b, blocks.InputDegree), arg(b, blocks.InputSpeed))+";")
	case blocks.KindStop:
		return append(lines, pad+call("stop")+";")
	case blocks.KindLog:
		return append(lines, pad+call("log", arg(b, blocks.InputValue))+";")
	default:
		// An orphaned value block still generates an expression statement.
		return append(lines, pad+expr(b)+";")
	}
}

func expr(b *blocks.Block) string {
	switch b.Kind {
	case blocks.KindNumber:
		return blocks.FormatNumber(b.Num)
	case blocks.KindScan:
		return call("scan", arg(b, blocks.InputDegree))
	case blocks.KindHealth:
		return call("health")
	case blocks.KindSpeed:
		return call("speed")
	case blocks.KindX:
		return call("getX")
	case blocks.KindY:
		return call("getY")
	}
	return ""
}

// arg renders a value socket; an empty socket reads as 0.
func arg(b *blocks.Block, name string) string {
	in := b.Input(name)
	if in == nil {
		return "0"
	}
	return expr(in)
}

func call(name string, args ...string) string {
	return name + "(" + strings.Join(args, ", ") + ")"
}
