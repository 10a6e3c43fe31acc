package cad

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/format"
	"github.com/arloliu/cadbin/internal/collision"
	"github.com/arloliu/cadbin/internal/hash"
)

// TableEntry is a named member of a Table.
type TableEntry interface {
	Object
	// Name returns the entry name, unique within its table ignoring case.
	Name() string
	// IsXrefDependent reports whether the entry comes from an external reference.
	IsXrefDependent() bool

	attach(doc *Document, owner Object)
}

// Table is an ordered collection of named entries of one kind.
//
// The table itself is an object (the table control object) with its own
// handle. Iteration order is insertion order.
type Table[T TableEntry] struct {
	objectBase

	doc        *Document
	objectType format.ObjectType
	entries    []T
	index      map[uint64]int
	tracker    *collision.Tracker
}

func newTable[T TableEntry](doc *Document, objectType format.ObjectType) *Table[T] {
	t := &Table[T]{
		doc:        doc,
		objectType: objectType,
		index:      make(map[uint64]int),
		tracker:    collision.NewTracker(),
	}
	t.handle = doc.nextHandle()

	return t
}

func (t *Table[T]) document() *Document {
	return t.doc
}

// ObjectType returns the control object type of the table.
func (t *Table[T]) ObjectType() format.ObjectType {
	return t.objectType
}

// Add appends entry to the table and assigns its handle.
//
// Returns:
//   - errs.ErrNilObject if entry is nil
//   - errs.ErrAlreadyOwned if entry already belongs to a table
//   - errs.ErrEmptyName or errs.ErrDuplicateName for invalid names
//   - errs.ErrForeignObject if a layer's line type belongs to another document
func (t *Table[T]) Add(entry T) error {
	if any(entry) == nil || isNilEntry(entry) {
		return errs.ErrNilObject
	}
	if entry.Handle() != 0 {
		return fmt.Errorf("%w: %q", errs.ErrAlreadyOwned, entry.Name())
	}

	if l, ok := any(entry).(*Layer); ok && l.LineType != nil && !t.doc.Owns(l.LineType) {
		return fmt.Errorf("%w: line type %q of layer %q", errs.ErrForeignObject, l.LineType.name, l.name)
	}

	id := hash.NameID(entry.Name())
	if err := t.tracker.Track(entry.Name(), id); err != nil {
		return err
	}

	entry.attach(t.doc, t)
	t.entries = append(t.entries, entry)
	if _, taken := t.index[id]; !taken {
		t.index[id] = len(t.entries) - 1
	}

	return nil
}

// Get returns the entry named name, ignoring case.
func (t *Table[T]) Get(name string) (T, bool) {
	var zero T

	id := hash.NameID(name)
	if !t.tracker.HasCollision() {
		i, ok := t.index[id]
		if !ok {
			return zero, false
		}

		return t.entries[i], true
	}

	for _, e := range t.entries {
		if strings.EqualFold(e.Name(), name) {
			return e, true
		}
	}

	return zero, false
}

// Contains reports whether an entry named name exists, ignoring case.
func (t *Table[T]) Contains(name string) bool {
	_, ok := t.Get(name)
	return ok
}

// Len returns the number of entries.
func (t *Table[T]) Len() int {
	return len(t.entries)
}

// At returns the i-th entry in insertion order.
func (t *Table[T]) At(i int) T {
	return t.entries[i]
}

// All iterates the entries in insertion order.
func (t *Table[T]) All() iter.Seq[T] {
	return slices.Values(t.entries)
}

// Entries returns a copy of the entries in insertion order.
func (t *Table[T]) Entries() []T {
	return slices.Clone(t.entries)
}

func isNilEntry(e TableEntry) bool {
	switch v := e.(type) {
	case *AppID:
		return v == nil
	case *Layer:
		return v == nil
	case *LineType:
		return v == nil
	case *TextStyle:
		return v == nil
	case *UCS:
		return v == nil
	case *View:
		return v == nil
	case *BlockRecord:
		return v == nil
	default:
		return false
	}
}
