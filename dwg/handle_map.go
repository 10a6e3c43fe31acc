package dwg

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/arloliu/cadbin/cad"
	"github.com/arloliu/cadbin/errs"
)

// HandleMap records the section offset of every written object and the
// set of handles referenced by written records.
//
// References are resolved by handle value at load time, so offsets are
// never patched into records. Finalize checks that every referenced handle
// was written.
type HandleMap struct {
	offsets    map[cad.Handle]int64
	referenced map[cad.Handle]struct{}
}

// NewHandleMap creates an empty map.
func NewHandleMap() *HandleMap {
	return &HandleMap{
		offsets:    make(map[cad.Handle]int64),
		referenced: make(map[cad.Handle]struct{}),
	}
}

// Register records that the object h starts at offset.
//
// Returns:
//   - errs.ErrNullHandle if h is 0
//   - errs.ErrDuplicateHandle if h was already registered
func (m *HandleMap) Register(h cad.Handle, offset int64) error {
	if h == 0 {
		return errs.ErrNullHandle
	}
	if prev, ok := m.offsets[h]; ok {
		return fmt.Errorf("%w: %#x at offset %d and %d", errs.ErrDuplicateHandle, uint64(h), prev, offset)
	}

	m.offsets[h] = offset

	return nil
}

// Reference records that a written record points at h. Handle 0 is the
// null reference and is ignored.
func (m *HandleMap) Reference(h cad.Handle) {
	if h == 0 {
		return
	}
	m.referenced[h] = struct{}{}
}

// Finalize returns errs.ErrUnresolvedHandle listing every referenced
// handle that was never registered, or nil.
func (m *HandleMap) Finalize() error {
	var missing []cad.Handle
	for h := range m.referenced {
		if _, ok := m.offsets[h]; !ok {
			missing = append(missing, h)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	slices.Sort(missing)
	names := make([]string, len(missing))
	for i, h := range missing {
		names[i] = fmt.Sprintf("%#x", uint64(h))
	}

	return fmt.Errorf("%w: %s", errs.ErrUnresolvedHandle, strings.Join(names, ", "))
}

// Offset returns the offset registered for h.
func (m *HandleMap) Offset(h cad.Handle) (int64, bool) {
	off, ok := m.offsets[h]
	return off, ok
}

// IsReferenced reports whether any written record points at h.
func (m *HandleMap) IsReferenced(h cad.Handle) bool {
	_, ok := m.referenced[h]
	return ok
}

// Len returns the number of registered handles.
func (m *HandleMap) Len() int {
	return len(m.offsets)
}

// All iterates the registered handles in ascending handle order.
func (m *HandleMap) All() iter.Seq2[cad.Handle, int64] {
	return func(yield func(cad.Handle, int64) bool) {
		for _, h := range slices.Sorted(maps.Keys(m.offsets)) {
			if !yield(h, m.offsets[h]) {
				return
			}
		}
	}
}
