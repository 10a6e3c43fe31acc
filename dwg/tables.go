package dwg

import (
	"fmt"

	"github.com/arloliu/cadbin/cad"
	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/format"
)

// Layer flag word, R2000+.
const (
	layerWordFrozen          int16 = 0x01
	layerWordOn              int16 = 0x02
	layerWordFrozenNew       int16 = 0x04
	layerWordLocked          int16 = 0x08
	layerWordPlot            int16 = 0x10
	layerWordLineWeightShift       = 5
)

const (
	maxLineTypeSegments = 255

	lineTypeTextAreaSize     = 256
	lineTypeTextAreaSizeWide = 512
)

// writeTable writes the control object of table followed by every entry.
func writeTable[T cad.TableEntry](w *ObjectWriter, table *cad.Table[T]) error {
	rec := w.newRecord(table, false)
	w.writeCommonNonEntityData(rec)
	rec.data.WriteBitLong(int32(table.Len())) //nolint:gosec
	for entry := range table.All() {
		rec.ref(format.ReferenceSoftOwnership, entry)
	}
	if err := w.commit(rec); err != nil {
		return err
	}

	w.logger.Debug().
		Stringer("table", table.ObjectType()).
		Uint64("handle", uint64(table.Handle())).
		Int("entries", table.Len()).
		Msg("table written")

	for entry := range table.All() {
		if err := w.writeEntry(entry); err != nil {
			return err
		}
	}

	return nil
}

// writeEntry dispatches on the concrete entry type.
func (w *ObjectWriter) writeEntry(entry cad.TableEntry) error {
	switch e := entry.(type) {
	case *cad.AppID:
		return w.writeAppID(e)
	case *cad.Layer:
		return w.writeLayer(e)
	case *cad.LineType:
		return w.writeLineType(e)
	case *cad.TextStyle:
		return w.writeTextStyle(e)
	case *cad.UCS:
		return w.writeUCS(e)
	case *cad.View:
		return w.writeView(e)
	case *cad.BlockRecord:
		return w.writeBlockRecord(e)
	default:
		w.notify(Notification{
			Message: fmt.Sprintf("table entry not implemented: %T", entry),
			Type:    NotImplemented,
			Handle:  entry.Handle(),
		})

		return nil
	}
}

func (w *ObjectWriter) writeAppID(app *cad.AppID) error {
	rec := w.newRecord(app, false)
	w.writeCommonEntryData(rec, app)

	_ = rec.data.WriteByte(0)
	rec.refHandle(format.ReferenceHardPointer, 0) // xref block

	return w.commit(rec)
}

func (w *ObjectWriter) writeLayer(layer *cad.Layer) error {
	g := w.gates
	rec := w.newRecord(layer, false)
	w.writeCommonEntryData(rec, layer)

	if g.R13_14Only {
		rec.data.WriteBit(layer.IsFrozen())
		rec.data.WriteBit(layer.IsOn)
		rec.data.WriteBit(layer.Flags&cad.LayerFrozenNewViewports != 0)
		rec.data.WriteBit(layer.IsLocked())
	}
	if g.R2000Plus {
		rec.data.WriteBitShort(layerFlagWord(layer))
	}
	rec.data.WriteCmColor(layer.Color)

	rec.refHandle(format.ReferenceHardPointer, 0) // xref block
	if g.R2000Plus {
		rec.refHandle(format.ReferenceHardPointer, 0) // plot style
	}
	if g.R2007Plus {
		rec.refHandle(format.ReferenceHardPointer, 0) // material
	}
	rec.ref(format.ReferenceHardPointer, layer.LineType)
	if g.R2013Plus {
		rec.refHandle(format.ReferenceHardPointer, 0)
	}

	return w.commit(rec)
}

// layerFlagWord packs the layer state and line weight index. Only flags
// that are set contribute a bit.
func layerFlagWord(layer *cad.Layer) int16 {
	word := int16(lineWeightIndex(layer.LineWeight)) << layerWordLineWeightShift
	if layer.IsFrozen() {
		word |= layerWordFrozen
	}
	if layer.IsOn {
		word |= layerWordOn
	}
	if layer.Flags&cad.LayerFrozenNewViewports != 0 {
		word |= layerWordFrozenNew
	}
	if layer.IsLocked() {
		word |= layerWordLocked
	}
	if layer.PlotFlag {
		word |= layerWordPlot
	}

	return word
}

func (w *ObjectWriter) writeLineType(lt *cad.LineType) error {
	rec := w.newRecord(lt, false)
	if len(lt.Segments) > maxLineTypeSegments {
		panic(fmt.Errorf("%w: line type %q has %d segments, at most %d allowed",
			errs.ErrValueOutOfRange, lt.Name(), len(lt.Segments), maxLineTypeSegments))
	}
	w.writeCommonEntryData(rec, lt)

	d := rec.data
	d.WriteVariableText(lt.Description)
	d.WriteBitDouble(lt.PatternLength())
	_ = d.WriteByte(lt.Alignment)
	_ = d.WriteByte(byte(len(lt.Segments)))

	for _, s := range lt.Segments {
		d.WriteBitDouble(s.Length)
		d.WriteBitShort(s.ShapeNumber)
		d.WriteRawDouble(s.Offset.X)
		d.WriteRawDouble(s.Offset.Y)
		d.WriteBitDouble(s.Scale)
		d.WriteBitDouble(s.Rotation)
		d.WriteBitShort(int16(s.ShapeFlags))
	}

	// Segment text is not laid out; the area is reserved as zeros.
	switch {
	case !w.gates.R2007Plus:
		d.WriteBytes(make([]byte, lineTypeTextAreaSize))
	case lt.HasText():
		d.WriteBytes(make([]byte, lineTypeTextAreaSizeWide))
	}

	rec.refHandle(format.ReferenceHardPointer, 0) // xref block
	for range lt.Segments {
		rec.refHandle(format.ReferenceHardPointer, 0) // shape file
	}

	return w.commit(rec)
}

func (w *ObjectWriter) writeTextStyle(style *cad.TextStyle) error {
	rec := w.newRecord(style, false)
	w.writeCommonEntryData(rec, style)

	d := rec.data
	d.WriteBit(style.Flags&cad.StyleIsShape != 0)
	d.WriteBit(style.Flags&cad.StyleVerticalText != 0)
	d.WriteBitDouble(style.Height)
	d.WriteBitDouble(style.Width)
	d.WriteBitDouble(style.ObliqueAngle)
	_ = d.WriteByte(byte(style.MirrorFlags))
	d.WriteBitDouble(style.LastHeight)
	d.WriteVariableText(style.Filename)
	d.WriteVariableText(style.BigFontFilename)

	rec.ref(format.ReferenceHardPointer, style.Owner())

	return w.commit(rec)
}

func (w *ObjectWriter) writeUCS(ucs *cad.UCS) error {
	g := w.gates
	rec := w.newRecord(ucs, false)
	w.writeCommonEntryData(rec, ucs)

	d := rec.data
	d.Write3BitDouble(ucs.Origin)
	d.Write3BitDouble(ucs.XAxis)
	d.Write3BitDouble(ucs.YAxis)
	if g.R2000Plus {
		d.WriteBitDouble(ucs.Elevation)
		d.WriteBitShort(ucs.OrthographicViewType)
		d.WriteBitShort(ucs.OrthographicType)
	}

	rec.refHandle(format.ReferenceHardPointer, 0) // xref block
	if g.R2000Plus {
		rec.refHandle(format.ReferenceHardPointer, 0) // base UCS
		rec.refHandle(format.ReferenceHardPointer, 0) // named UCS
	}

	return w.commit(rec)
}

func (w *ObjectWriter) writeView(view *cad.View) error {
	g := w.gates
	rec := w.newRecord(view, false)
	w.writeCommonEntryData(rec, view)

	d := rec.data
	d.WriteBitDouble(view.Height)
	d.WriteBitDouble(view.Width)
	d.Write2RawDouble(view.Center)
	d.Write3BitDouble(view.Target)
	d.Write3BitDouble(view.Direction)
	d.WriteBitDouble(view.Angle)
	d.WriteBitDouble(view.LensLength)
	d.WriteBitDouble(view.FrontClipping)
	d.WriteBitDouble(view.BackClipping)

	d.WriteBit(view.ViewMode&cad.ViewPerspective != 0)
	d.WriteBit(view.ViewMode&cad.ViewFrontClipping != 0)
	d.WriteBit(view.ViewMode&cad.ViewBackClipping != 0)
	d.WriteBit(view.ViewMode&cad.ViewFrontClippingZ != 0)

	if g.R2000Plus {
		_ = d.WriteByte(view.RenderMode)
	}

	if g.R2007Plus {
		// Default lighting, brightness, contrast and ambient color 250.
		d.WriteBit(true)
		_ = d.WriteByte(1)
		d.WriteBitDouble(0)
		d.WriteBitDouble(0)
		d.WriteCmColor(cad.IndexColor(250))
	}

	d.WriteBit(view.IsPaperSpace)

	if g.R2000Plus {
		d.WriteBit(view.IsUcsAssociated)
		if view.IsUcsAssociated {
			d.Write3BitDouble(view.UcsOrigin)
			d.Write3BitDouble(view.UcsXAxis)
			d.Write3BitDouble(view.UcsYAxis)
			d.WriteBitDouble(view.UcsElevation)
			d.WriteBitShort(view.UcsOrthographicType)
		}
	}

	if g.R2007Plus {
		d.WriteBit(view.IsPlottable)
	}

	rec.refHandle(format.ReferenceHardPointer, 0) // xref block
	if g.R2007Plus {
		rec.refHandle(format.ReferenceSoftPointer, 0)   // background
		rec.refHandle(format.ReferenceHardPointer, 0)   // visual style
		rec.refHandle(format.ReferenceHardOwnership, 0) // sun
	}
	if g.R2000Plus && view.IsUcsAssociated {
		rec.refHandle(format.ReferenceHardPointer, 0) // base UCS
		rec.refHandle(format.ReferenceHardPointer, 0) // named UCS
	}
	if g.R2007Plus {
		rec.refHandle(format.ReferenceSoftPointer, 0) // live section
	}

	return w.commit(rec)
}
