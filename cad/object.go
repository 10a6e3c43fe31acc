package cad

import "github.com/arloliu/cadbin/format"

// Handle uniquely identifies an object within its document. 0 means "no object".
type Handle uint64

// Object is anything that can be written as a record and referenced by handle.
type Object interface {
	// Handle returns the object's handle, 0 until it is added to a document.
	Handle() Handle
	// ObjectType returns the record type number.
	ObjectType() format.ObjectType
	// Owner returns the owning object, nil for document-level objects.
	Owner() Object
}

// HandleOf returns the handle of o, or 0 when o is nil.
//
// It also treats typed nil pointers stored in the interface as "no object".
func HandleOf(o Object) Handle {
	if o == nil {
		return 0
	}

	switch v := o.(type) {
	case TableEntry:
		if isNilEntry(v) {
			return 0
		}
	case Entity:
		if isNilEntity(v) {
			return 0
		}
	}

	return o.Handle()
}

type objectBase struct {
	handle Handle
	owner  Object
}

// Handle returns the object's handle.
func (o *objectBase) Handle() Handle {
	return o.handle
}

// Owner returns the owning object.
func (o *objectBase) Owner() Object {
	return o.owner
}
