package dwg

import (
	"fmt"

	"github.com/arloliu/cadbin/cad"
	"github.com/arloliu/cadbin/encoding"
	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/format"
)

// record is one object record under construction.
//
// Type-specific fields go to data and references to handles. The common
// prefix (type, size, own handle) depends on the final length of both
// streams and is composed by commit.
type record struct {
	obj     cad.Object
	entity  bool
	data    *encoding.BitWriter
	handles *encoding.BitWriter
	refs    *HandleMap
	doc     *cad.Document
}

func (w *ObjectWriter) newRecord(obj cad.Object, entity bool) *record {
	w.current = obj

	return &record{
		obj:     obj,
		entity:  entity,
		data:    w.newBitWriter(),
		handles: w.newBitWriter(),
		refs:    w.handles,
		doc:     w.doc,
	}
}

// ref writes a reference to obj, or a null reference when obj is nil.
//
// It panics with errs.ErrValueOutOfRange when obj belongs to another
// document or was never added to one.
func (r *record) ref(code format.ReferenceType, obj cad.Object) {
	h := cad.HandleOf(obj)
	if h != 0 && !r.doc.Owns(obj) {
		panic(fmt.Errorf("%w: reference to %s 0x%X outside the document", errs.ErrValueOutOfRange, obj.ObjectType(), uint64(h)))
	}
	r.refHandle(code, h)
}

func (r *record) refHandle(code format.ReferenceType, h cad.Handle) {
	r.handles.WriteHandle(code, h)
	r.refs.Reference(h)
}

func (r *record) release() {
	r.data.Finish()
	r.handles.Finish()
}

// commit composes the record, registers its handle at the current section
// offset and appends it to the section.
//
// Layout:
//
//	MS  body size in bytes
//	MC  handle stream size in bits, padding included (R2010+)
//	body:
//	  type            BS, OT from R2010
//	  RL bit size     R2000-R2007
//	  own handle      H, code 0
//	  EED size        BS 0
//	  graphics flag   B 0, entities only
//	  RL bit size     R13-R14
//	  data stream
//	  handle stream
//	  padding to a byte boundary
//
// The bit size counts everything in front of the handle stream.
func (w *ObjectWriter) commit(r *record) error {
	defer r.release()

	g := w.gates

	common := w.newBitWriter()
	defer common.Finish()
	common.WriteHandle(format.ReferenceNone, r.obj.Handle())
	common.WriteBitShort(0)
	if r.entity {
		common.WriteBit(false)
	}

	body := w.newBitWriter()
	defer body.Finish()
	body.WriteObjectType(r.obj.ObjectType())

	sizeBefore := g.R2000Plus && !g.R2010Plus
	sizeAfter := g.R13_14Only

	bitSize := body.BitLen() + common.BitLen() + r.data.BitLen()
	if sizeBefore || sizeAfter {
		bitSize += 32
	}

	if sizeBefore {
		body.WriteRawLong(int32(bitSize)) //nolint:gosec
	}
	body.AppendBits(common)
	if sizeAfter {
		body.WriteRawLong(int32(bitSize)) //nolint:gosec
	}
	body.AppendBits(r.data)
	body.AppendBits(r.handles)

	offset := int64(w.section.Len())
	if err := w.handles.Register(r.obj.Handle(), offset); err != nil {
		return err
	}

	data := body.Bytes()
	w.section.B = encoding.AppendModularShort(w.section.B, uint32(len(data))) //nolint:gosec
	if g.R2010Plus {
		padding := len(data)*8 - body.BitLen()
		w.section.B = encoding.AppendModularChar(w.section.B, int64(r.handles.BitLen()+padding))
	}
	w.section.MustWrite(data)

	return nil
}
