package dwg

import (
	"fmt"

	"github.com/arloliu/cadbin/cad"
	"github.com/arloliu/cadbin/format"
)

// Insert scale flags, R2000+.
const (
	scaleExplicit   uint8 = 0 // x raw, y and z default to x
	scaleUnitX      uint8 = 1 // x is 1.0, y and z default to 1.0
	scaleUniform    uint8 = 2 // x raw, y and z equal x
	scaleUnitFactor uint8 = 3 // all 1.0
)

// hasEncoder reports whether e can be written. Entities without an
// encoder are reported and skipped.
func hasEncoder(e cad.Entity) bool {
	switch e.(type) {
	case *cad.Line, *cad.Point, *cad.Circle, *cad.Arc, *cad.Insert:
		return true
	default:
		return false
	}
}

func (w *ObjectWriter) writeEntity(e cad.Entity) error {
	switch v := e.(type) {
	case *cad.Line:
		return w.writeLine(v)
	case *cad.Point:
		return w.writePoint(v)
	case *cad.Circle:
		return w.writeCircle(v)
	case *cad.Arc:
		return w.writeArc(v)
	case *cad.Insert:
		return w.writeInsert(v)
	default:
		w.notify(Notification{
			Message: fmt.Sprintf("entity not implemented: %s", e.Kind()),
			Type:    NotImplemented,
			Handle:  e.Handle(),
			Kind:    e.Kind(),
		})

		return nil
	}
}

func (w *ObjectWriter) writeLine(line *cad.Line) error {
	rec := w.newRecord(line, true)
	w.writeCommonEntityData(rec, line)

	d := rec.data
	start, end := line.StartPoint, line.EndPoint
	if w.gates.R13_14Only {
		d.Write3BitDouble(start)
		d.Write3BitDouble(end)
	}

	if w.gates.R2000Plus {
		zIsZero := start.Z == 0 && end.Z == 0
		d.WriteBit(zIsZero)
		d.WriteRawDouble(start.X)
		d.WriteBitDoubleWithDefault(end.X, start.X)
		d.WriteRawDouble(start.Y)
		d.WriteBitDoubleWithDefault(end.Y, start.Y)
		if !zIsZero {
			d.WriteRawDouble(start.Z)
			d.WriteBitDoubleWithDefault(end.Z, start.Z)
		}
	}

	d.WriteBitThickness(line.Thickness)
	d.WriteBitExtrusion(line.Normal)

	return w.commit(rec)
}

func (w *ObjectWriter) writePoint(point *cad.Point) error {
	rec := w.newRecord(point, true)
	w.writeCommonEntityData(rec, point)

	d := rec.data
	d.Write3BitDouble(point.Location)
	d.WriteBitThickness(point.Thickness)
	d.WriteBitExtrusion(point.Normal)
	d.WriteBitDouble(point.Rotation)

	return w.commit(rec)
}

func (w *ObjectWriter) writeCircle(circle *cad.Circle) error {
	rec := w.newRecord(circle, true)
	w.writeCommonEntityData(rec, circle)
	writeCircleData(rec, circle)

	return w.commit(rec)
}

func (w *ObjectWriter) writeArc(arc *cad.Arc) error {
	rec := w.newRecord(arc, true)
	w.writeCommonEntityData(rec, arc)
	writeCircleData(rec, &arc.Circle)
	rec.data.WriteBitDouble(arc.StartAngle)
	rec.data.WriteBitDouble(arc.EndAngle)

	return w.commit(rec)
}

func writeCircleData(rec *record, circle *cad.Circle) {
	d := rec.data
	d.Write3BitDouble(circle.Center)
	d.WriteBitDouble(circle.Radius)
	d.WriteBitThickness(circle.Thickness)
	d.WriteBitExtrusion(circle.Normal)
}

func (w *ObjectWriter) writeInsert(ins *cad.Insert) error {
	rec := w.newRecord(ins, true)
	w.writeCommonEntityData(rec, ins)

	d := rec.data
	d.Write3BitDouble(ins.InsertPoint)

	if w.gates.R13_14Only {
		d.Write3BitDouble(cad.XYZ{X: ins.XScale, Y: ins.YScale, Z: ins.ZScale})
	}

	if w.gates.R2000Plus {
		x, y, z := ins.XScale, ins.YScale, ins.ZScale
		switch {
		case x == 1 && y == 1 && z == 1:
			d.Write2Bits(scaleUnitFactor)
		case x == 1:
			d.Write2Bits(scaleUnitX)
			d.WriteBitDoubleWithDefault(y, 1)
			d.WriteBitDoubleWithDefault(z, 1)
		case x == y && x == z:
			d.Write2Bits(scaleUniform)
			d.WriteRawDouble(x)
		default:
			d.Write2Bits(scaleExplicit)
			d.WriteRawDouble(x)
			d.WriteBitDoubleWithDefault(y, x)
			d.WriteBitDoubleWithDefault(z, x)
		}
	}

	d.WriteBitDouble(ins.Rotation)
	d.Write3BitDouble(ins.Normal)
	d.WriteBit(false) // no attributes

	rec.ref(format.ReferenceHardPointer, ins.Block)

	return w.commit(rec)
}
