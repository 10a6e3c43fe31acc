package cad

import (
	"iter"
	"slices"
	"strings"

	"github.com/arloliu/cadbin/format"
)

// Reserved block record names.
const (
	ModelSpaceName = "*Model_Space"
	PaperSpaceName = "*Paper_Space"
)

// BlockFlags are the type bits of a block record.
type BlockFlags uint8

const (
	BlockAnonymous     BlockFlags = 0x01
	BlockHasAttributes BlockFlags = 0x02
	BlockXRef          BlockFlags = 0x04
	BlockXRefOverlay   BlockFlags = 0x08
)

// Units is the insertion unit of a block.
type Units int16

const (
	UnitsUnitless Units = iota
	UnitsInches
	UnitsFeet
	UnitsMiles
	UnitsMillimeters
	UnitsCentimeters
	UnitsMeters
)

// BlockRecord is a block definition: a named, ordered list of entities
// delimited by a BLOCK and an ENDBLK entity.
type BlockRecord struct {
	entryBase

	Flags        BlockFlags
	Units        Units
	IsExplodable bool
	CanScale     bool

	block    *Block
	end      *BlockEnd
	entities []Entity
}

// NewBlockRecord creates an empty, explodable and scalable block record.
func NewBlockRecord(name string) *BlockRecord {
	rec := &BlockRecord{
		entryBase:    entryBase{name: name},
		IsExplodable: true,
		CanScale:     true,
	}
	rec.block = &Block{EntityBase: newEntityBase(), record: rec}
	rec.end = &BlockEnd{EntityBase: newEntityBase()}

	return rec
}

// ObjectType implements Object.
func (*BlockRecord) ObjectType() format.ObjectType { return format.ObjectBlockHeader }

func (r *BlockRecord) attach(doc *Document, owner Object) {
	r.entryBase.attach(doc, owner)

	r.block.handle = doc.nextHandle()
	r.block.owner = r
	r.end.handle = doc.nextHandle()
	r.end.owner = r
}

// BlockEntity returns the BLOCK entity that opens the definition.
func (r *BlockRecord) BlockEntity() *Block {
	return r.block
}

// BlockEnd returns the ENDBLK entity that closes the definition.
func (r *BlockRecord) BlockEnd() *BlockEnd {
	return r.end
}

// HasAttributes reports whether the definition contains attribute definitions.
func (r *BlockRecord) HasAttributes() bool {
	return r.Flags&BlockHasAttributes != 0
}

// IsXRef reports whether the record is an external reference or overlay.
func (r *BlockRecord) IsXRef() bool {
	return r.Flags&(BlockXRef|BlockXRefOverlay) != 0
}

// IsModelSpace reports whether r is the model space record.
func (r *BlockRecord) IsModelSpace() bool {
	return strings.EqualFold(r.name, ModelSpaceName)
}

// IsPaperSpace reports whether r is the paper space record.
func (r *BlockRecord) IsPaperSpace() bool {
	return strings.EqualFold(r.name, PaperSpaceName)
}

// Entities iterates the owned entities in stored order.
func (r *BlockRecord) Entities() iter.Seq[Entity] {
	return slices.Values(r.entities)
}

// EntityCount returns the number of owned entities.
func (r *BlockRecord) EntityCount() int {
	return len(r.entities)
}

// FirstEntity returns the first owned entity, or nil.
func (r *BlockRecord) FirstEntity() Entity {
	if len(r.entities) == 0 {
		return nil
	}

	return r.entities[0]
}

// LastEntity returns the last owned entity, or nil.
func (r *BlockRecord) LastEntity() Entity {
	if len(r.entities) == 0 {
		return nil
	}

	return r.entities[len(r.entities)-1]
}

// Block is the BLOCK entity opening a block definition.
type Block struct {
	EntityBase

	BasePoint XYZ
	XrefPath  string
	Comments  string

	record *BlockRecord
}

// Name returns the name of the owning block record.
func (b *Block) Name() string {
	return b.record.name
}

func (*Block) Kind() Kind                    { return KindBlock }
func (*Block) ObjectType() format.ObjectType { return format.ObjectBlock }

// BlockEnd is the ENDBLK entity closing a block definition.
type BlockEnd struct {
	EntityBase
}

func (*BlockEnd) Kind() Kind                    { return KindBlockEnd }
func (*BlockEnd) ObjectType() format.ObjectType { return format.ObjectEndBlock }
