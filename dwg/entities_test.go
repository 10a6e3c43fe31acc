package dwg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cadbin/cad"
	"github.com/arloliu/cadbin/format"
)

func TestWriteLine_ZCompaction(t *testing.T) {
	flat := cad.NewLine(cad.XYZ{X: 1, Y: 2}, cad.XYZ{X: 1, Y: 5})
	raised := cad.NewLine(cad.XYZ{X: 1, Y: 2, Z: 3}, cad.XYZ{X: 1, Y: 5, Z: 3})

	doc := cad.NewDocument(format.R2000)
	require.NoError(t, doc.AddEntity(flat))
	require.NoError(t, doc.AddEntity(raised))

	section, err := WriteObjects(doc)
	require.NoError(t, err)

	readLine := func(line *cad.Line) (start, end cad.XYZ, bits int) {
		p := parseRecord(t, section, line)
		p.readEntityCommon(t)
		d := p.data
		from := d.Position()

		zIsZero, err := d.ReadBit()
		require.NoError(t, err)
		start.X, err = d.ReadRawDouble()
		require.NoError(t, err)
		end.X, err = d.ReadBitDoubleWithDefault(start.X)
		require.NoError(t, err)
		start.Y, err = d.ReadRawDouble()
		require.NoError(t, err)
		end.Y, err = d.ReadBitDoubleWithDefault(start.Y)
		require.NoError(t, err)
		if !zIsZero {
			start.Z, err = d.ReadRawDouble()
			require.NoError(t, err)
			end.Z, err = d.ReadBitDoubleWithDefault(start.Z)
			require.NoError(t, err)
		}

		thickness, err := d.ReadBitThickness()
		require.NoError(t, err)
		require.Zero(t, thickness)
		normal, err := d.ReadBitExtrusion()
		require.NoError(t, err)
		require.Equal(t, cad.ZAxis, normal)
		require.Equal(t, int(p.bitSize), d.Position())

		return start, end, d.Position() - from
	}

	start, end, flatBits := readLine(flat)
	require.Equal(t, flat.StartPoint, start)
	require.Equal(t, flat.EndPoint, end)

	start, end, raisedBits := readLine(raised)
	require.Equal(t, raised.StartPoint, start)
	require.Equal(t, raised.EndPoint, end)

	// RD z plus a DD equal to its default.
	require.Equal(t, 64+2, raisedBits-flatBits)
}

func TestWriteLine_R14(t *testing.T) {
	line := cad.NewLine(cad.XYZ{X: 1}, cad.XYZ{X: 4, Y: 4})
	line.Thickness = 0.5

	doc := cad.NewDocument(format.R14)
	require.NoError(t, doc.AddEntity(line))

	section, err := WriteObjects(doc)
	require.NoError(t, err)

	p := parseRecord(t, section, line)
	p.readEntityCommon(t)

	start, err := p.data.Read3BitDouble()
	require.NoError(t, err)
	require.Equal(t, line.StartPoint, start)
	end, err := p.data.Read3BitDouble()
	require.NoError(t, err)
	require.Equal(t, line.EndPoint, end)

	thickness, err := p.data.ReadBitThickness()
	require.NoError(t, err)
	require.InDelta(t, 0.5, thickness, 0)
	normal, err := p.data.ReadBitExtrusion()
	require.NoError(t, err)
	require.Equal(t, cad.ZAxis, normal)
}

func TestWritePointCircleArc(t *testing.T) {
	point := cad.NewPoint(cad.XYZ{X: 7, Y: 8, Z: 9})
	point.Rotation = 0.25
	circle := cad.NewCircle(cad.XYZ{X: 1, Y: 1}, 4)
	arc := cad.NewArc(cad.XYZ{}, 2, 0, 1.5)

	doc := cad.NewDefaultDocument(format.R2010)
	for _, e := range []cad.Entity{point, circle, arc} {
		require.NoError(t, doc.AddEntity(e))
	}

	section, err := WriteObjects(doc)
	require.NoError(t, err)

	p := parseRecord(t, section, point)
	p.readEntityCommon(t)
	location, err := p.data.Read3BitDouble()
	require.NoError(t, err)
	require.Equal(t, point.Location, location)
	_, err = p.data.ReadBitThickness()
	require.NoError(t, err)
	_, err = p.data.ReadBitExtrusion()
	require.NoError(t, err)
	rotation, err := p.data.ReadBitDouble()
	require.NoError(t, err)
	require.InDelta(t, 0.25, rotation, 0)

	readCircle := func(p *parsedRecord) (cad.XYZ, float64) {
		center, err := p.data.Read3BitDouble()
		require.NoError(t, err)
		radius, err := p.data.ReadBitDouble()
		require.NoError(t, err)
		_, err = p.data.ReadBitThickness()
		require.NoError(t, err)
		_, err = p.data.ReadBitExtrusion()
		require.NoError(t, err)

		return center, radius
	}

	p = parseRecord(t, section, circle)
	p.readEntityCommon(t)
	center, radius := readCircle(p)
	require.Equal(t, circle.Center, center)
	require.InDelta(t, 4.0, radius, 0)

	p = parseRecord(t, section, arc)
	p.readEntityCommon(t)
	_, radius = readCircle(p)
	require.InDelta(t, 2.0, radius, 0)
	startAngle, err := p.data.ReadBitDouble()
	require.NoError(t, err)
	require.Zero(t, startAngle)
	endAngle, err := p.data.ReadBitDouble()
	require.NoError(t, err)
	require.InDelta(t, 1.5, endAngle, 0)
}

func TestWriteInsert_ScaleFlags(t *testing.T) {
	tests := []struct {
		name    string
		scale   cad.XYZ
		flag    uint8
		payload int // bits after the flag
	}{
		{"unit", cad.XYZ{X: 1, Y: 1, Z: 1}, scaleUnitFactor, 0},
		{"unit x", cad.XYZ{X: 1, Y: 2, Z: 1}, scaleUnitX, 2 + 64 + 2},
		{"uniform", cad.XYZ{X: 2, Y: 2, Z: 2}, scaleUniform, 64},
		{"explicit", cad.XYZ{X: 2, Y: 3, Z: 2}, scaleExplicit, 64 + 2 + 64 + 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := cad.NewDefaultDocument(format.R2000)
			door := cad.NewBlockRecord("Door")
			require.NoError(t, doc.BlockRecords.Add(door))

			ins := cad.NewInsert(door, cad.XYZ{X: 10})
			ins.XScale, ins.YScale, ins.ZScale = tt.scale.X, tt.scale.Y, tt.scale.Z
			require.NoError(t, doc.AddEntity(ins))

			section, err := WriteObjects(doc)
			require.NoError(t, err)

			p := parseRecord(t, section, ins)
			p.readEntityCommon(t)
			point, err := p.data.Read3BitDouble()
			require.NoError(t, err)
			require.Equal(t, ins.InsertPoint, point)

			flag, err := p.data.Read2Bits()
			require.NoError(t, err)
			require.Equal(t, tt.flag, flag)

			var scale cad.XYZ
			from := p.data.Position()
			switch flag {
			case scaleUnitFactor:
				scale = cad.XYZ{X: 1, Y: 1, Z: 1}
			case scaleUnitX:
				scale.X = 1
				scale.Y, err = p.data.ReadBitDoubleWithDefault(1)
				require.NoError(t, err)
				scale.Z, err = p.data.ReadBitDoubleWithDefault(1)
				require.NoError(t, err)
			case scaleUniform:
				scale.X, err = p.data.ReadRawDouble()
				require.NoError(t, err)
				scale.Y, scale.Z = scale.X, scale.X
			default:
				scale.X, err = p.data.ReadRawDouble()
				require.NoError(t, err)
				scale.Y, err = p.data.ReadBitDoubleWithDefault(scale.X)
				require.NoError(t, err)
				scale.Z, err = p.data.ReadBitDoubleWithDefault(scale.X)
				require.NoError(t, err)
			}
			require.Equal(t, tt.scale, scale)
			require.Equal(t, tt.payload, p.data.Position()-from)

			_, err = p.data.ReadBitDouble()
			require.NoError(t, err)
			normal, err := p.data.Read3BitDouble()
			require.NoError(t, err)
			require.Equal(t, cad.ZAxis, normal)
			hasAttribs, err := p.data.ReadBit()
			require.NoError(t, err)
			require.False(t, hasAttribs)

			layer0, _ := doc.Layers.Get("0")
			require.Equal(t, []ref{
				{format.ReferenceHardOwnership, 0},
				{format.ReferenceHardPointer, layer0.Handle()},
				{format.ReferenceHardPointer, door.Handle()},
			}, readRefs(t, p.handles(t), 3))
		})
	}
}

func TestWriteEntity_Wipeout(t *testing.T) {
	collector := &NotificationCollector{}
	doc := cad.NewDefaultDocument(format.R2004)
	line := cad.NewLine(cad.XYZ{}, cad.XYZ{X: 1})
	wipeout := cad.NewWipeout()
	require.NoError(t, doc.AddEntity(line))
	require.NoError(t, doc.AddEntity(wipeout))

	section, err := WriteObjects(doc, WithNotifier(collector))
	require.NoError(t, err)

	require.Equal(t, 1, collector.Len())
	require.Equal(t, 1, collector.CountOf(NotImplemented))
	n := collector.Notifications()[0]
	require.Equal(t, wipeout.Handle(), n.Handle)
	require.Equal(t, cad.KindWipeout, n.Kind)
	require.Equal(t, collector.Notifications(), section.Notifications())

	_, ok := section.Handles().Offset(wipeout.Handle())
	require.False(t, ok)
	require.False(t, section.Handles().IsReferenced(wipeout.Handle()))

	// The model space header owns only the line.
	p := parseRecord(t, section, doc.ModelSpace())
	_, _ = p.readEntryName(t)
	for range 5 {
		_, err = p.data.ReadBit()
		require.NoError(t, err)
	}
	owned, err := p.data.ReadBitLong()
	require.NoError(t, err)
	require.Equal(t, int32(1), owned)
}

// customLine reports the line kind without being a *cad.Line.
type customLine struct {
	cad.EntityBase
}

func (*customLine) Kind() cad.Kind                { return cad.KindLine }
func (*customLine) ObjectType() format.ObjectType { return format.ObjectLine }

func TestHasEncoder(t *testing.T) {
	for _, e := range []cad.Entity{
		cad.NewLine(cad.XYZ{}, cad.XYZ{}),
		cad.NewPoint(cad.XYZ{}),
		cad.NewCircle(cad.XYZ{}, 1),
		cad.NewArc(cad.XYZ{}, 1, 0, 1),
		cad.NewInsert(nil, cad.XYZ{}),
	} {
		require.True(t, hasEncoder(e), e.Kind().String())
	}

	rec := cad.NewBlockRecord("Door")
	for _, e := range []cad.Entity{cad.NewWipeout(), rec.BlockEntity(), rec.BlockEnd(), &customLine{}} {
		require.False(t, hasEncoder(e), e.Kind().String())
	}
}

func TestWriteEntity_CustomKind(t *testing.T) {
	collector := &NotificationCollector{}
	doc := cad.NewDefaultDocument(format.R2010)
	custom := &customLine{}
	require.NoError(t, doc.AddEntity(custom))

	section, err := WriteObjects(doc, WithNotifier(collector))
	require.NoError(t, err)

	require.Equal(t, 1, collector.CountOf(NotImplemented))
	require.Equal(t, custom.Handle(), collector.Notifications()[0].Handle)

	_, ok := section.Handles().Offset(custom.Handle())
	require.False(t, ok)
	require.False(t, section.Handles().IsReferenced(custom.Handle()))
}
