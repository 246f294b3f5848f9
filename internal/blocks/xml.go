package blocks

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Blockly workspace XML. Root statements are chained through <next>;
// number sockets are written as shadows.

type xmlDoc struct {
	XMLName xml.Name   `xml:"xml"`
	Blocks  []xmlBlock `xml:"block"`
}

type xmlBlock struct {
	Type       string         `xml:"type,attr"`
	X          int            `xml:"x,attr,omitempty"`
	Y          int            `xml:"y,attr,omitempty"`
	Mutation   *xmlMutation   `xml:"mutation,omitempty"`
	Fields     []xmlField     `xml:"field"`
	Values     []xmlValue     `xml:"value"`
	Statements []xmlStatement `xml:"statement"`
	Next       *xmlNext       `xml:"next,omitempty"`
}

type xmlMutation struct {
	AngleField string `xml:"angle_field,attr"`
}

type xmlField struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

type xmlValue struct {
	Name   string    `xml:"name,attr"`
	Shadow *xmlBlock `xml:"shadow,omitempty"`
	Block  *xmlBlock `xml:"block,omitempty"`
}

type xmlStatement struct {
	Name  string    `xml:"name,attr"`
	Block *xmlBlock `xml:"block,omitempty"`
}

type xmlNext struct {
	Block *xmlBlock `xml:"block"`
}

const statementDo = "DO"

// MarshalXML encodes p as Blockly workspace XML.
// The empty program encodes as "<xml></xml>".
func MarshalXML(p *Program) ([]byte, error) {
	doc := xmlDoc{}
	if p.HasTopBlocks() {
		head := chain(p.Top)
		head.X, head.Y = 70, 70
		doc.Blocks = []xmlBlock{*head}
	}
	out, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal blocks: %w", err)
	}
	return out, nil
}

// UnmarshalXML decodes Blockly workspace XML. Every top-level stack is
// flattened into the root list in document order.
func UnmarshalXML(data []byte) (*Program, error) {
	var doc xmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal blocks: %w", err)
	}
	p := &Program{}
	for i := range doc.Blocks {
		stack, err := unchain(&doc.Blocks[i])
		if err != nil {
			return nil, err
		}
		p.Top = append(p.Top, stack...)
	}
	return p, nil
}

func chain(list []*Block) *xmlBlock {
	var head, tail *xmlBlock
	for _, b := range list {
		xb := encode(b)
		if head == nil {
			head = xb
		} else {
			tail.Next = &xmlNext{Block: xb}
		}
		tail = xb
	}
	return head
}

func encode(b *Block) *xmlBlock {
	xb := &xmlBlock{Type: string(b.Kind)}
	if b.Kind == KindNumber {
		xb.Fields = []xmlField{{Name: "NUM", Value: FormatNumber(b.Num)}}
		return xb
	}
	for _, name := range b.Kind.Inputs() {
		in := b.Input(name)
		if in == nil {
			continue
		}
		v := xmlValue{Name: name}
		if in.Kind == KindNumber {
			sh := encode(in)
			sh.Mutation = &xmlMutation{AngleField: strconv.FormatBool(name == InputDegree)}
			v.Shadow = sh
		} else {
			v.Block = encode(in)
		}
		xb.Values = append(xb.Values, v)
	}
	if b.Kind.HasBody() {
		st := xmlStatement{Name: statementDo}
		if len(b.Body) > 0 {
			st.Block = chain(b.Body)
		}
		xb.Statements = append(xb.Statements, st)
	}
	return xb
}

func unchain(xb *xmlBlock) ([]*Block, error) {
	var out []*Block
	for cur := xb; cur != nil; {
		b, err := decode(cur)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
		if cur.Next == nil {
			break
		}
		cur = cur.Next.Block
	}
	return out, nil
}

func decode(xb *xmlBlock) (*Block, error) {
	k := Kind(xb.Type)
	if !k.Known() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBlock, xb.Type)
	}
	b := &Block{Kind: k}
	if k == KindNumber {
		for _, f := range xb.Fields {
			if f.Name != "NUM" {
				continue
			}
			n, err := strconv.ParseFloat(strings.TrimSpace(f.Value), 64)
			if err != nil {
				return nil, fmt.Errorf("block %s field NUM: %w", xb.Type, err)
			}
			b.Num = n
		}
		return b, nil
	}
	for _, v := range xb.Values {
		src := v.Block
		if src == nil {
			src = v.Shadow
		}
		if src == nil {
			continue
		}
		in, err := decode(src)
		if err != nil {
			return nil, err
		}
		if b.Inputs == nil {
			b.Inputs = make(map[string]*Block)
		}
		b.Inputs[v.Name] = in
	}
	for _, st := range xb.Statements {
		if st.Name != statementDo || st.Block == nil {
			continue
		}
		body, err := unchain(st.Block)
		if err != nil {
			return nil, err
		}
		b.Body = body
	}
	return b, nil
}

// FormatNumber prints n in shortest form ("0", "70", "2.5").
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
