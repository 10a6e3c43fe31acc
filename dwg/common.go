package dwg

import (
	"fmt"
	"strings"

	"github.com/arloliu/cadbin/cad"
	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/format"
)

// Entity modes of the common entity data.
const (
	entityModeBlock      uint8 = 0
	entityModePaperSpace uint8 = 1
	entityModeModelSpace uint8 = 2
)

// Line type flags of the common entity data, R2000+.
const (
	lineTypeByLayer    uint8 = 0
	lineTypeByBlock    uint8 = 1
	lineTypeContinuous uint8 = 2
	lineTypeHandle     uint8 = 3
)

const xrefDependentWord int16 = 0x100

// writeCommonNonEntityData writes the data shared by control objects,
// table entries and block headers.
func (w *ObjectWriter) writeCommonNonEntityData(rec *record) {
	rec.ref(format.ReferenceSoftPointer, rec.obj.Owner())
	rec.data.WriteBitLong(0)
	w.writeExtensionFlags(rec)
}

// writeExtensionFlags writes the reactor-adjacent dictionary and binary
// data markers. No object carries an extension dictionary.
func (w *ObjectWriter) writeExtensionFlags(rec *record) {
	if w.gates.R2004Plus {
		rec.data.WriteBit(true)
	} else {
		rec.refHandle(format.ReferenceHardOwnership, 0)
	}

	if w.gates.R2013Plus {
		rec.data.WriteBit(false)
	}
}

// writeCommonEntryData writes the common data of a table entry followed by
// its name and xref bits.
func (w *ObjectWriter) writeCommonEntryData(rec *record, e cad.TableEntry) {
	w.writeCommonNonEntityData(rec)
	rec.data.WriteVariableText(e.Name())
	w.writeXrefDependentBits(rec, e)
}

func (w *ObjectWriter) writeXrefDependentBits(rec *record, e cad.TableEntry) {
	if w.gates.R2007Plus {
		var word int16
		if e.IsXrefDependent() {
			word = xrefDependentWord
		}
		rec.data.WriteBitShort(word)

		return
	}

	rec.data.WriteBit(false) // 64-flag
	rec.data.WriteBitShort(0)
	rec.data.WriteBit(e.IsXrefDependent())
}

func (w *ObjectWriter) writeCommonEntityData(rec *record, e cad.Entity) {
	g := w.gates
	base := e.Common()
	d := rec.data

	owner := base.OwnerRecord()
	mode := entityModeBlock
	switch {
	case owner != nil && owner.IsModelSpace():
		mode = entityModeModelSpace
	case owner != nil && owner.IsPaperSpace():
		mode = entityModePaperSpace
	}
	d.Write2Bits(mode)
	if mode == entityModeBlock {
		rec.ref(format.ReferenceSoftPointer, owner)
	}

	d.WriteBitLong(0)
	w.writeExtensionFlags(rec)

	ltFlags := lineTypeFlags(base.LineType)
	if g.R13_14Only {
		d.WriteBit(ltFlags == lineTypeByLayer)
		rec.ref(format.ReferenceHardPointer, base.Layer)
		if ltFlags != lineTypeByLayer {
			rec.ref(format.ReferenceHardPointer, base.LineType)
		}
	}

	if g.R2004Pre {
		d.WriteBit(true) // no links
	}

	d.WriteEnColor(base.Color, base.Transparency)
	d.WriteBitDouble(base.LineTypeScale)

	if g.R2000Plus {
		rec.ref(format.ReferenceHardPointer, base.Layer)
		d.Write2Bits(ltFlags)
		if ltFlags == lineTypeHandle {
			rec.ref(format.ReferenceHardPointer, base.LineType)
		}
		d.Write2Bits(0) // plot style by layer
	}

	if g.R2007Plus {
		d.Write2Bits(0) // material by layer
		_ = d.WriteByte(0)
	}

	if g.R2010Plus {
		d.WriteBits(0, 3)
	}

	var invisible int16
	if base.IsInvisible {
		invisible = 1
	}
	d.WriteBitShort(invisible)

	if g.R2000Plus {
		_ = d.WriteByte(lineWeightIndex(base.LineWeight))
	}
}

// lineTypeFlags maps the reserved line type names to their short codes.
// Any other line type is written as a handle.
func lineTypeFlags(lt *cad.LineType) uint8 {
	if lt == nil {
		return lineTypeByLayer
	}

	switch name := lt.Name(); {
	case strings.EqualFold(name, cad.LineTypeByLayerName):
		return lineTypeByLayer
	case strings.EqualFold(name, cad.LineTypeByBlockName):
		return lineTypeByBlock
	case strings.EqualFold(name, cad.LineTypeContinuousName):
		return lineTypeContinuous
	default:
		return lineTypeHandle
	}
}

// lineWeightIndex panics for weights the format cannot represent.
func lineWeightIndex(lw cad.LineWeight) uint8 {
	idx, ok := lw.Index()
	if !ok {
		panic(fmt.Errorf("%w: line weight %d", errs.ErrValueOutOfRange, lw))
	}

	return idx
}
