// Package blocks models the visual form of a duck program: a tree of typed
// blocks arranged as an ordered list of root-level statements.
package blocks

import "errors"

// ErrUnknownBlock is returned when a block type is not part of the Pond toolbox.
var ErrUnknownBlock = errors.New("unknown block type")

// Kind is the Blockly type name of a block.
type Kind string

const (
	KindCannon Kind = "pond_cannon"
	KindSwim   Kind = "pond_swim"
	KindStop   Kind = "pond_stop"
	KindLog    Kind = "pond_log"
	KindLoop   Kind = "controls_whileUntil"

	KindNumber Kind = "pond_math_number"
	KindScan   Kind = "pond_scan"
	KindHealth Kind = "pond_getHealth"
	KindSpeed  Kind = "pond_speed"
	KindX      Kind = "pond_loc_x"
	KindY      Kind = "pond_loc_y"
)

// Input names used by value sockets.
const (
	InputDegree = "DEGREE"
	InputRange  = "RANGE"
	InputSpeed  = "SPEED"
	InputValue  = "VALUE"
)

type input struct {
	name string
	def  float64
}

type kindInfo struct {
	label     string
	statement bool
	body      bool
	inputs    []input
}

var kinds = map[Kind]kindInfo{
	KindCannon: {label: "cannon", statement: true, inputs: []input{{InputDegree, 0}, {InputRange, 70}}},
	KindSwim:   {label: "swim", statement: true, inputs: []input{{InputDegree, 0}, {InputSpeed, 50}}},
	KindStop:   {label: "stop", statement: true},
	KindLog:    {label: "log", statement: true, inputs: []input{{InputValue, 0}}},
	KindLoop:   {label: "repeat forever", statement: true, body: true},
	KindNumber: {label: "number"},
	KindScan:   {label: "scan", inputs: []input{{InputDegree, 0}}},
	KindHealth: {label: "health"},
	KindSpeed:  {label: "speed"},
	KindX:      {label: "getX"},
	KindY:      {label: "getY"},
}

// Toolbox lists the block kinds offered for insertion, in display order.
var Toolbox = []Kind{KindCannon, KindSwim, KindStop, KindLog, KindLoop}

// Known reports whether k is a Pond block type.
func (k Kind) Known() bool {
	_, ok := kinds[k]
	return ok
}

// IsStatement reports whether blocks of this kind connect vertically.
func (k Kind) IsStatement() bool {
	return kinds[k].statement
}

// HasBody reports whether the block holds a nested statement list.
func (k Kind) HasBody() bool {
	return kinds[k].body
}

// Label is the short human name shown in the blocks pane.
func (k Kind) Label() string {
	if info, ok := kinds[k]; ok {
		return info.label
	}
	return string(k)
}

// Inputs returns the value socket names of k in display order.
func (k Kind) Inputs() []string {
	info := kinds[k]
	names := make([]string, len(info.inputs))
	for i, in := range info.inputs {
		names[i] = in.name
	}
	return names
}

// Block is one node of the visual program.
type Block struct {
	Kind   Kind
	Num    float64           // value of a KindNumber block
	Inputs map[string]*Block // value sockets by input name
	Body   []*Block          // nested statements (loops)
}

// New returns a block of kind k with its number sockets filled by defaults,
// the way the toolbox hands out fresh blocks.
func New(k Kind) *Block {
	b := &Block{Kind: k}
	for _, in := range kinds[k].inputs {
		if b.Inputs == nil {
			b.Inputs = make(map[string]*Block)
		}
		b.Inputs[in.name] = Number(in.def)
	}
	return b
}

// Number returns a number value block.
func Number(n float64) *Block {
	return &Block{Kind: KindNumber, Num: n}
}

// Input returns the block plugged into the named socket, or nil.
func (b *Block) Input(name string) *Block {
	if b == nil || b.Inputs == nil {
		return nil
	}
	return b.Inputs[name]
}

// Clone returns a deep copy of b.
func (b *Block) Clone() *Block {
	if b == nil {
		return nil
	}
	c := &Block{Kind: b.Kind, Num: b.Num}
	if b.Inputs != nil {
		c.Inputs = make(map[string]*Block, len(b.Inputs))
		for name, in := range b.Inputs {
			c.Inputs[name] = in.Clone()
		}
	}
	for _, s := range b.Body {
		c.Body = append(c.Body, s.Clone())
	}
	return c
}

// Program is the visual representation: root-level blocks in order.
type Program struct {
	Top []*Block
}

// Default returns the starter program, a single cannon(0, 70) block.
func Default() *Program {
	return &Program{Top: []*Block{New(KindCannon)}}
}

// HasTopBlocks reports whether any root-level block exists.
// Only the root list is consulted.
func (p *Program) HasTopBlocks() bool {
	return p != nil && len(p.Top) > 0
}

// Clear replaces the program with the empty program.
func (p *Program) Clear() {
	p.Top = nil
}

// Append adds b as the last root-level block.
func (p *Program) Append(b *Block) {
	p.Top = append(p.Top, b)
}

// Remove deletes the root-level block at i. Out of range is a no-op.
func (p *Program) Remove(i int) {
	if i < 0 || i >= len(p.Top) {
		return
	}
	p.Top = append(p.Top[:i], p.Top[i+1:]...)
}

// Clone returns a deep copy of p.
func (p *Program) Clone() *Program {
	if p == nil {
		return &Program{}
	}
	c := &Program{}
	for _, b := range p.Top {
		c.Top = append(c.Top, b.Clone())
	}
	return c
}
