package dwg

import (
	"github.com/arloliu/cadbin/cad"
	"github.com/arloliu/cadbin/format"
)

// writeBlockControl writes the block control object and then every block
// record. The reserved model and paper space records are referenced as
// hard owners and are not counted.
func (w *ObjectWriter) writeBlockControl() error {
	records := w.doc.BlockRecords

	rec := w.newRecord(records, false)
	w.writeCommonNonEntityData(rec)
	rec.data.WriteBitLong(int32(records.Len() - 2)) //nolint:gosec

	for r := range records.All() {
		if r.IsModelSpace() || r.IsPaperSpace() {
			continue
		}
		rec.ref(format.ReferenceSoftOwnership, r)
	}

	modelSpace, _ := records.Get(cad.ModelSpaceName)
	paperSpace, _ := records.Get(cad.PaperSpaceName)
	rec.ref(format.ReferenceHardOwnership, modelSpace)
	rec.ref(format.ReferenceHardOwnership, paperSpace)

	if err := w.commit(rec); err != nil {
		return err
	}

	w.logger.Debug().
		Stringer("table", records.ObjectType()).
		Uint64("handle", uint64(records.Handle())).
		Int("entries", records.Len()).
		Msg("table written")

	for r := range records.All() {
		if err := w.writeEntry(r); err != nil {
			return err
		}
	}

	return nil
}

// writeBlockRecord writes the BLOCK entity, the block header, the owned
// entities and the ENDBLK entity, in that order.
func (w *ObjectWriter) writeBlockRecord(r *cad.BlockRecord) error {
	if err := w.writeBlockBegin(r.BlockEntity()); err != nil {
		return err
	}
	if err := w.writeBlockHeader(r); err != nil {
		return err
	}

	for e := range r.Entities() {
		if err := w.writeEntity(e); err != nil {
			return err
		}
	}

	if err := w.writeBlockEnd(r.BlockEnd()); err != nil {
		return err
	}

	w.logger.Debug().
		Str("block", r.Name()).
		Uint64("handle", uint64(r.Handle())).
		Int("entities", r.EntityCount()).
		Int("offset", w.section.Len()).
		Msg("block written")

	return nil
}

func (w *ObjectWriter) writeBlockHeader(r *cad.BlockRecord) error {
	g := w.gates
	rec := w.newRecord(r, false)
	w.writeCommonEntryData(rec, r)

	block := r.BlockEntity()
	owned := w.ownedEntities(r)
	isXRef := r.Flags&cad.BlockXRef != 0
	isOverlay := r.Flags&cad.BlockXRefOverlay != 0

	d := rec.data
	d.WriteBit(r.Flags&cad.BlockAnonymous != 0)
	d.WriteBit(r.HasAttributes())
	d.WriteBit(isXRef)
	d.WriteBit(isOverlay)
	if g.R2000Plus {
		d.WriteBit(isXRef) // loaded
	}
	// Xref blocks carry neither the owned count nor the owned references.
	listOwned := g.R2004Plus && !isXRef
	if listOwned {
		d.WriteBitLong(int32(len(owned))) //nolint:gosec
	}

	d.Write3BitDouble(block.BasePoint)
	d.WriteVariableText(block.XrefPath)

	var inserts []*cad.Insert
	if g.R2000Plus {
		for ins := range w.doc.InsertsOf(r) {
			inserts = append(inserts, ins)
			_ = d.WriteByte(1)
		}
		_ = d.WriteByte(0)

		d.WriteVariableText(block.Comments)
		d.WriteBitLong(0) // preview size
	}

	if g.R2007Plus {
		d.WriteBitShort(int16(r.Units))
		d.WriteBit(r.IsExplodable)
		var canScale byte
		if r.CanScale {
			canScale = 1
		}
		_ = d.WriteByte(canScale)
	}

	rec.refHandle(format.ReferenceHardPointer, 0)
	rec.ref(format.ReferenceHardOwnership, block)

	if g.R13_15Only && !isXRef {
		var first, last cad.Object
		if len(owned) > 0 {
			first, last = owned[0], owned[len(owned)-1]
		}
		rec.ref(format.ReferenceSoftPointer, first)
		rec.ref(format.ReferenceSoftPointer, last)
	}

	if listOwned {
		for _, e := range owned {
			rec.ref(format.ReferenceHardOwnership, e)
		}
	}

	rec.ref(format.ReferenceHardOwnership, r.BlockEnd())

	if g.R2000Plus {
		for _, ins := range inserts {
			rec.ref(format.ReferenceSoftPointer, ins)
		}
		rec.refHandle(format.ReferenceHardPointer, 0) // layout
	}

	return w.commit(rec)
}

// ownedEntities returns the entities of r that have an encoder. Skipped
// entities are never referenced.
func (w *ObjectWriter) ownedEntities(r *cad.BlockRecord) []cad.Entity {
	owned := make([]cad.Entity, 0, r.EntityCount())
	for e := range r.Entities() {
		if hasEncoder(e) {
			owned = append(owned, e)
		}
	}

	return owned
}

func (w *ObjectWriter) writeBlockBegin(block *cad.Block) error {
	rec := w.newRecord(block, true)
	w.writeCommonEntityData(rec, block)
	rec.data.WriteVariableText(block.Name())

	return w.commit(rec)
}

func (w *ObjectWriter) writeBlockEnd(end *cad.BlockEnd) error {
	rec := w.newRecord(end, true)
	w.writeCommonEntityData(rec, end)

	return w.commit(rec)
}
