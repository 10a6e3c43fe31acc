package cad

import (
	"fmt"
	"iter"
	"slices"

	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/format"
)

// Header holds document-wide settings.
type Header struct {
	// Version is the format revision the document is written as.
	Version format.Revision
}

// Document is a drawing: its tables, block records and entities.
type Document struct {
	Header Header

	AppIDs       *Table[*AppID]
	Layers       *Table[*Layer]
	LineTypes    *Table[*LineType]
	TextStyles   *Table[*TextStyle]
	UCSs         *Table[*UCS]
	Views        *Table[*View]
	BlockRecords *Table[*BlockRecord]

	modelSpace *BlockRecord
	paperSpace *BlockRecord

	lastHandle Handle
	entities   []Entity
}

// NewDocument creates a document whose only entries are the model space
// and paper space block records.
func NewDocument(rev format.Revision) *Document {
	d := &Document{Header: Header{Version: rev}}

	d.AppIDs = newTable[*AppID](d, format.ObjectAppIDControl)
	d.Layers = newTable[*Layer](d, format.ObjectLayerControl)
	d.LineTypes = newTable[*LineType](d, format.ObjectLineTypeControl)
	d.TextStyles = newTable[*TextStyle](d, format.ObjectStyleControl)
	d.UCSs = newTable[*UCS](d, format.ObjectUCSControl)
	d.Views = newTable[*View](d, format.ObjectViewControl)
	d.BlockRecords = newTable[*BlockRecord](d, format.ObjectBlockControl)

	d.modelSpace = NewBlockRecord(ModelSpaceName)
	d.paperSpace = NewBlockRecord(PaperSpaceName)
	d.mustAdd(d.BlockRecords.Add(d.modelSpace))
	d.mustAdd(d.BlockRecords.Add(d.paperSpace))

	return d
}

// NewDefaultDocument creates a document with the standard entries: the
// ACAD application id, the ByBlock, ByLayer and Continuous line types,
// layer "0" and text style "Standard".
func NewDefaultDocument(rev format.Revision) *Document {
	d := NewDocument(rev)

	d.mustAdd(d.AppIDs.Add(NewAppID("ACAD")))

	continuous := NewLineType(LineTypeContinuousName)
	continuous.Description = "Solid line"
	d.mustAdd(d.LineTypes.Add(NewLineType(LineTypeByBlockName)))
	d.mustAdd(d.LineTypes.Add(NewLineType(LineTypeByLayerName)))
	d.mustAdd(d.LineTypes.Add(continuous))

	layer := NewLayer("0")
	layer.LineType = continuous
	d.mustAdd(d.Layers.Add(layer))

	style := NewTextStyle(StandardStyleName)
	style.Filename = "txt"
	d.mustAdd(d.TextStyles.Add(style))

	return d
}

func (d *Document) mustAdd(err error) {
	if err != nil {
		panic(fmt.Sprintf("cad: building reserved entries: %v", err))
	}
}

func (d *Document) nextHandle() Handle {
	d.lastHandle++
	return d.lastHandle
}

// Revision returns the format revision of the document.
func (d *Document) Revision() format.Revision {
	return d.Header.Version
}

// LastHandle returns the highest handle assigned so far.
func (d *Document) LastHandle() Handle {
	return d.lastHandle
}

// ModelSpace returns the model space block record.
func (d *Document) ModelSpace() *BlockRecord {
	return d.modelSpace
}

// PaperSpace returns the paper space block record.
func (d *Document) PaperSpace() *BlockRecord {
	return d.paperSpace
}

// AddEntity adds e to model space.
func (d *Document) AddEntity(e Entity) error {
	return d.AddBlockEntity(d.modelSpace, e)
}

// AddBlockEntity appends e to the entities of rec and assigns its handle.
//
// An entity without a layer is placed on layer "0" when the document has one.
//
// Returns:
//   - errs.ErrNilObject if rec or e is nil
//   - errs.ErrForeignObject if rec, the entity's layer or line type, or
//     the block an insert references belongs to another document
//   - errs.ErrManagedEntity for BLOCK and ENDBLK entities
//   - errs.ErrAlreadyOwned if e was already added
func (d *Document) AddBlockEntity(rec *BlockRecord, e Entity) error {
	if rec == nil || e == nil || isNilEntity(e) {
		return errs.ErrNilObject
	}
	if rec.owner != d.BlockRecords {
		return fmt.Errorf("%w: block record %q", errs.ErrForeignObject, rec.name)
	}

	switch v := e.(type) {
	case *Block, *BlockEnd:
		return fmt.Errorf("%w: %s", errs.ErrManagedEntity, e.Kind())
	case *Insert:
		if v.Block != nil && !d.Owns(v.Block) {
			return fmt.Errorf("%w: inserted block %q", errs.ErrForeignObject, v.Block.name)
		}
	}

	base := e.Common()
	if base.Layer != nil && !d.Owns(base.Layer) {
		return fmt.Errorf("%w: layer %q", errs.ErrForeignObject, base.Layer.name)
	}
	if base.LineType != nil && !d.Owns(base.LineType) {
		return fmt.Errorf("%w: line type %q", errs.ErrForeignObject, base.LineType.name)
	}
	if base.handle != 0 {
		return fmt.Errorf("%w: %s %#x", errs.ErrAlreadyOwned, e.Kind(), uint64(base.handle))
	}

	if base.Layer == nil {
		if l, ok := d.Layers.Get("0"); ok {
			base.Layer = l
		}
	}

	base.handle = d.nextHandle()
	base.owner = rec
	rec.entities = append(rec.entities, e)
	d.entities = append(d.entities, e)

	return nil
}

// Owns reports whether o has been added to d. Control objects of d's
// tables are owned by d; objects not yet added are owned by no document.
func (d *Document) Owns(o Object) bool {
	for o != nil && HandleOf(o) != 0 {
		if t, ok := o.(interface{ document() *Document }); ok {
			return t.document() == d
		}
		o = o.Owner()
	}

	return false
}

// Entities iterates every entity of every block record in the order they
// were added to the document.
func (d *Document) Entities() iter.Seq[Entity] {
	return slices.Values(d.entities)
}

// EntityCount returns the number of entities in the document.
func (d *Document) EntityCount() int {
	return len(d.entities)
}

// InsertsOf iterates, in document order, the inserts referencing rec.
func (d *Document) InsertsOf(rec *BlockRecord) iter.Seq[*Insert] {
	return func(yield func(*Insert) bool) {
		for _, e := range d.entities {
			ins, ok := e.(*Insert)
			if !ok || ins.Block != rec {
				continue
			}
			if !yield(ins) {
				return
			}
		}
	}
}

func isNilEntity(e Entity) bool {
	switch v := e.(type) {
	case *Line:
		return v == nil
	case *Point:
		return v == nil
	case *Circle:
		return v == nil
	case *Arc:
		return v == nil
	case *Insert:
		return v == nil
	case *Wipeout:
		return v == nil
	case *Block:
		return v == nil
	case *BlockEnd:
		return v == nil
	default:
		return false
	}
}
