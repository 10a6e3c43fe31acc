package dwg

import "github.com/arloliu/cadbin/format"

// Gates are the revision predicates consulted by the encoders.
//
// They are evaluated once per write session. Ranges include both named
// endpoints: R13_15Only is true for R13, R14 and R2000.
type Gates struct {
	Revision format.Revision

	R13_14Only bool //nolint:revive
	R13_15Only bool //nolint:revive
	R2000Plus  bool
	R2004Pre   bool
	R2004Plus  bool
	R2007Plus  bool
	R2010Plus  bool
	R2013Plus  bool
	R2018Plus  bool
}

// NewGates evaluates the predicates for rev.
func NewGates(rev format.Revision) Gates {
	return Gates{
		Revision:   rev,
		R13_14Only: rev.Between(format.R13, format.R14),
		R13_15Only: rev.Between(format.R13, format.R2000),
		R2000Plus:  rev >= format.R2000,
		R2004Pre:   rev < format.R2004,
		R2004Plus:  rev >= format.R2004,
		R2007Plus:  rev >= format.R2007,
		R2010Plus:  rev >= format.R2010,
		R2013Plus:  rev >= format.R2013,
		R2018Plus:  rev >= format.R2018,
	}
}
