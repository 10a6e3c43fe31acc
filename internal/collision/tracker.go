package collision

import (
	"fmt"
	"strings"

	"github.com/arloliu/cadbin/errs"
)

// Tracker detects duplicate entry names within one table.
//
// Names are compared case-insensitively through their NameID. Two distinct
// names that share a NameID are a hash collision: they are both accepted and
// the collision flag is raised so that lookups fall back to comparing names.
type Tracker struct {
	names        map[uint64][]string // NameID -> names seen with that id
	hasCollision bool
}

// NewTracker creates a new name tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names: make(map[uint64][]string),
	}
}

// Track records name under id.
//
// Returns:
//   - errs.ErrEmptyName if name is empty
//   - errs.ErrDuplicateName if an equal name (ignoring case) was tracked before
func (t *Tracker) Track(name string, id uint64) error {
	if name == "" {
		return errs.ErrEmptyName
	}

	existing := t.names[id]
	for _, n := range existing {
		if strings.EqualFold(n, name) {
			return fmt.Errorf("%w: %q", errs.ErrDuplicateName, name)
		}
	}

	if len(existing) > 0 {
		t.hasCollision = true
	}
	t.names[id] = append(existing, name)

	return nil
}

// Untrack forgets name. Unknown names are ignored.
func (t *Tracker) Untrack(name string, id uint64) {
	existing := t.names[id]
	for i, n := range existing {
		if strings.EqualFold(n, name) {
			existing = append(existing[:i], existing[i+1:]...)
			break
		}
	}

	if len(existing) == 0 {
		delete(t.names, id)
		return
	}
	t.names[id] = existing
}

// Contains reports whether name has been tracked.
func (t *Tracker) Contains(name string, id uint64) bool {
	for _, n := range t.names[id] {
		if strings.EqualFold(n, name) {
			return true
		}
	}

	return false
}

// HasCollision returns true if two distinct names shared an id.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	count := 0
	for _, names := range t.names {
		count += len(names)
	}

	return count
}

// Reset clears all tracked names and the collision state.
func (t *Tracker) Reset() {
	clear(t.names)
	t.hasCollision = false
}
