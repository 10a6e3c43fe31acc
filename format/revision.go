package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/cadbin/errs"
)

// Revision identifies a drawing file format release.
//
// Values are ordered: a later release always compares greater than an
// earlier one, so range checks can use plain comparison operators.
type Revision uint8

const (
	RevisionUnknown Revision = iota
	R12                      // AC1009, recognised but not writable
	R13                      // AC1012
	R14                      // AC1014
	R2000                    // AC1015
	R2004                    // AC1018
	R2007                    // AC1021
	R2010                    // AC1024
	R2013                    // AC1027
	R2018                    // AC1032
)

// revisionInfo holds the release name and file code of a revision.
type revisionInfo struct {
	name string
	code string
}

var revisions = [...]revisionInfo{
	RevisionUnknown: {"Unknown", "MC0.0"},
	R12:             {"R12", "AC1009"},
	R13:             {"R13", "AC1012"},
	R14:             {"R14", "AC1014"},
	R2000:           {"R2000", "AC1015"},
	R2004:           {"R2004", "AC1018"},
	R2007:           {"R2007", "AC1021"},
	R2010:           {"R2010", "AC1024"},
	R2013:           {"R2013", "AC1027"},
	R2018:           {"R2018", "AC1032"},
}

func (r Revision) String() string {
	if int(r) < len(revisions) {
		return revisions[r].name
	}

	return "Unknown"
}

// Code returns the file code of the revision, e.g. "AC1015" for R2000.
func (r Revision) Code() string {
	if int(r) < len(revisions) {
		return revisions[r].code
	}

	return revisions[RevisionUnknown].code
}

// IsValid reports whether r is a known revision other than RevisionUnknown.
func (r Revision) IsValid() bool {
	return r > RevisionUnknown && r <= R2018
}

// Supported reports whether the object writer can target r.
func (r Revision) Supported() bool {
	return r >= R13 && r <= R2018
}

// Between reports whether r lies in the inclusive range [from, to].
func (r Revision) Between(from, to Revision) bool {
	return r >= from && r <= to
}

// ParseRevision parses a release name ("R2000") or a file code ("AC1015").
// Matching is case-insensitive.
func ParseRevision(s string) (Revision, error) {
	s = strings.TrimSpace(s)
	for i := R12; i <= R2018; i++ {
		info := revisions[i]
		if strings.EqualFold(s, info.name) || strings.EqualFold(s, info.code) {
			return i, nil
		}
	}

	return RevisionUnknown, fmt.Errorf("%w: %q", errs.ErrInvalidRevision, s)
}

// Revisions returns all known revisions in ascending order.
func Revisions() []Revision {
	return []Revision{R12, R13, R14, R2000, R2004, R2007, R2010, R2013, R2018}
}

// SupportedRevisions returns the revisions the object writer can target.
func SupportedRevisions() []Revision {
	return []Revision{R13, R14, R2000, R2004, R2007, R2010, R2013, R2018}
}
