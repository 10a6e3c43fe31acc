package hash

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// NameID computes the case-insensitive identifier of a table entry name.
// Names that differ only in letter case share the same NameID.
func NameID(name string) uint64 {
	return xxhash.Sum64String(strings.ToUpper(name))
}
