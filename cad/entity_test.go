package cad

import (
	"testing"

	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/format"
	"github.com/stretchr/testify/require"
)

func TestEntityDefaults(t *testing.T) {
	line := NewLine(XYZ{}, XYZ{X: 1})
	require.True(t, line.Color.IsByLayer())
	require.True(t, line.Transparency.IsByLayer())
	require.Equal(t, LineWeightByLayer, line.LineWeight)
	require.InDelta(t, 1.0, line.LineTypeScale, 0)
	require.Equal(t, ZAxis, line.Normal)

	arc := NewArc(XYZ{X: 1}, 2, 0, 1.5)
	require.Equal(t, KindArc, arc.Kind())
	require.Equal(t, format.ObjectArc, arc.ObjectType())
	require.InDelta(t, 2.0, arc.Radius, 0)

	ins := NewInsert(nil, XYZ{})
	require.InDelta(t, 1.0, ins.XScale, 0)
	require.InDelta(t, 1.0, ins.ZScale, 0)
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "Line", KindLine.String())
	require.Equal(t, "Wipeout", KindWipeout.String())
	require.Equal(t, "Kind(200)", Kind(200).String())
}

func TestWipeout_Setters(t *testing.T) {
	w := NewWipeout()
	require.Equal(t, uint8(50), w.Brightness())
	require.Equal(t, uint8(50), w.Contrast())
	require.Zero(t, w.Fade())

	require.NoError(t, w.SetBrightness(100))
	require.NoError(t, w.SetContrast(0))
	require.NoError(t, w.SetFade(30))
	require.Equal(t, uint8(100), w.Brightness())
	require.Equal(t, uint8(0), w.Contrast())
	require.Equal(t, uint8(30), w.Fade())

	require.ErrorIs(t, w.SetBrightness(101), errs.ErrValueOutOfRange)
	require.ErrorIs(t, w.SetContrast(-1), errs.ErrValueOutOfRange)
	require.ErrorIs(t, w.SetFade(1000), errs.ErrValueOutOfRange)
	require.Equal(t, uint8(100), w.Brightness())
}

func TestLineType_Pattern(t *testing.T) {
	lt := NewLineType("Dashed")
	require.Equal(t, byte('A'), lt.Alignment)
	require.False(t, lt.HasText())

	lt.Segments = []LineTypeSegment{
		{Length: 0.5, Scale: 1},
		{Length: -0.25, Scale: 1},
		{Length: 0, ShapeFlags: ShapeText, Text: "GAS", Scale: 1},
	}
	require.InDelta(t, 0.75, lt.PatternLength(), 1e-12)
	require.True(t, lt.HasText())
}

func TestColor(t *testing.T) {
	require.True(t, IndexColor(0).IsByBlock())
	require.True(t, IndexColor(256).IsByLayer())
	require.Equal(t, int16(1), IndexColor(1).Index())

	tc := TrueColor(0x12, 0x34, 0x56)
	require.True(t, tc.IsTrueColor())
	require.Equal(t, uint32(0x123456), tc.RGB())

	require.PanicsWithError(t, "value out of range: color index 300 not in 0-256", func() {
		IndexColor(300)
	})

	require.Equal(t, uint32(0), Transparency{}.Value())
	require.Equal(t, uint32(0x01000000), TransparencyByBlock.Value())
	require.Equal(t, uint32(0x020000FF), Opacity(0xFF).Value())
}

func TestLineWeightIndex(t *testing.T) {
	tests := []struct {
		lw    LineWeight
		index uint8
	}{
		{LineWeight000, 0},
		{LineWeight025, 7},
		{LineWeight211, 23},
		{LineWeightByLayer, 29},
		{LineWeightByBlock, 30},
		{LineWeightDefault, 31},
	}

	for _, tt := range tests {
		idx, ok := tt.lw.Index()
		require.True(t, ok)
		require.Equal(t, tt.index, idx)

		back, ok := LineWeightFromIndex(idx)
		require.True(t, ok)
		require.Equal(t, tt.lw, back)
	}

	_, ok := LineWeight(17).Index()
	require.False(t, ok)
	_, ok = LineWeightFromIndex(25)
	require.False(t, ok)
}
