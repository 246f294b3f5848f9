package blocks

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsSingleCannon(t *testing.T) {
	p := Default()
	require.Len(t, p.Top, 1)
	assert.Equal(t, KindCannon, p.Top[0].Kind)
	assert.Equal(t, 0.0, p.Top[0].Input(InputDegree).Num)
	assert.Equal(t, 70.0, p.Top[0].Input(InputRange).Num)
}

func TestHasTopBlocks_RootOnly(t *testing.T) {
	var nilProgram *Program
	assert.False(t, nilProgram.HasTopBlocks())
	assert.False(t, (&Program{}).HasTopBlocks())

	p := Default()
	assert.True(t, p.HasTopBlocks())
	p.Clear()
	assert.False(t, p.HasTopBlocks())
}

func TestProgram_AppendRemove(t *testing.T) {
	p := &Program{}
	p.Append(New(KindCannon))
	p.Append(New(KindStop))
	p.Append(New(KindSwim))

	p.Remove(1)
	require.Len(t, p.Top, 2)
	assert.Equal(t, KindSwim, p.Top[1].Kind)

	p.Remove(-1)
	p.Remove(5)
	assert.Len(t, p.Top, 2)
}

func TestClone_IsDeep(t *testing.T) {
	loop := New(KindLoop)
	loop.Body = []*Block{New(KindCannon)}
	p := &Program{Top: []*Block{loop}}

	c := p.Clone()
	c.Top[0].Body[0].Input(InputRange).Num = 10

	assert.Equal(t, 70.0, p.Top[0].Body[0].Input(InputRange).Num)
}

func TestKind_Metadata(t *testing.T) {
	assert.True(t, KindCannon.IsStatement())
	assert.False(t, KindScan.IsStatement())
	assert.True(t, KindLoop.HasBody())
	assert.Equal(t, []string{InputDegree, InputSpeed}, KindSwim.Inputs())
	assert.Equal(t, "cannon", KindCannon.Label())
	assert.Equal(t, "mystery", Kind("mystery").Label())
	assert.False(t, Kind("mystery").Known())
}

func TestXML_RoundTripNested(t *testing.T) {
	scanCannon := New(KindCannon)
	scanCannon.Inputs[InputRange] = New(KindScan)
	loop := New(KindLoop)
	loop.Body = []*Block{New(KindSwim), scanCannon}
	p := &Program{Top: []*Block{New(KindCannon), loop, New(KindStop)}}

	data, err := MarshalXML(p)
	require.NoError(t, err)

	got, err := UnmarshalXML(data)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestMarshalXML_DefaultShape(t *testing.T) {
	data, err := MarshalXML(Default())
	require.NoError(t, err)
	s := string(data)

	assert.True(t, strings.HasPrefix(s, `<xml><block type="pond_cannon" x="70" y="70">`), s)
	assert.Contains(t, s, `<value name="DEGREE"><shadow type="pond_math_number"><mutation angle_field="true"></mutation><field name="NUM">0</field></shadow></value>`)
	assert.Contains(t, s, `<field name="NUM">70</field>`)
}

func TestMarshalXML_Empty(t *testing.T) {
	data, err := MarshalXML(&Program{})
	require.NoError(t, err)
	assert.Equal(t, "<xml></xml>", string(data))
}

func TestUnmarshalXML_BlockCoversShadow(t *testing.T) {
	src := `<xml><block type="pond_cannon">` +
		`<value name="DEGREE"><shadow type="pond_math_number"><field name="NUM">0</field></shadow>` +
		`<block type="pond_scan"><value name="DEGREE"><shadow type="pond_math_number"><field name="NUM">90</field></shadow></value></block></value>` +
		`</block></xml>`
	p, err := UnmarshalXML([]byte(src))
	require.NoError(t, err)
	require.Len(t, p.Top, 1)
	deg := p.Top[0].Input(InputDegree)
	require.NotNil(t, deg)
	assert.Equal(t, KindScan, deg.Kind)
	assert.Equal(t, 90.0, deg.Input(InputDegree).Num)
}

func TestUnmarshalXML_MultipleStacksFlatten(t *testing.T) {
	src := `<xml>` +
		`<block type="pond_stop"><next><block type="pond_swim"></block></next></block>` +
		`<block type="pond_getHealth"></block>` +
		`</xml>`
	p, err := UnmarshalXML([]byte(src))
	require.NoError(t, err)
	require.Len(t, p.Top, 3)
	assert.Equal(t, KindStop, p.Top[0].Kind)
	assert.Equal(t, KindSwim, p.Top[1].Kind)
	assert.Equal(t, KindHealth, p.Top[2].Kind)
}

func TestUnmarshalXML_Errors(t *testing.T) {
	_, err := UnmarshalXML([]byte(`<xml><block type="controls_if"></block></xml>`))
	assert.True(t, errors.Is(err, ErrUnknownBlock), "got %v", err)

	_, err = UnmarshalXML([]byte(`<xml><block type="pond_math_number"><field name="NUM">abc</field></block></xml>`))
	assert.Error(t, err)

	_, err = UnmarshalXML([]byte(`<xml><block`))
	assert.Error(t, err)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "70", FormatNumber(70))
	assert.Equal(t, "2.5", FormatNumber(2.5))
	assert.Equal(t, "-45", FormatNumber(-45))
}
