package cad

// LineWeight is a line weight in hundredths of a millimetre, or one of the
// logical values ByLayer, ByBlock and Default.
type LineWeight int16

const (
	LineWeightDefault LineWeight = -3
	LineWeightByBlock LineWeight = -2
	LineWeightByLayer LineWeight = -1
	LineWeight000     LineWeight = 0
	LineWeight005     LineWeight = 5
	LineWeight009     LineWeight = 9
	LineWeight013     LineWeight = 13
	LineWeight015     LineWeight = 15
	LineWeight018     LineWeight = 18
	LineWeight020     LineWeight = 20
	LineWeight025     LineWeight = 25
	LineWeight030     LineWeight = 30
	LineWeight035     LineWeight = 35
	LineWeight040     LineWeight = 40
	LineWeight050     LineWeight = 50
	LineWeight053     LineWeight = 53
	LineWeight060     LineWeight = 60
	LineWeight070     LineWeight = 70
	LineWeight080     LineWeight = 80
	LineWeight090     LineWeight = 90
	LineWeight100     LineWeight = 100
	LineWeight106     LineWeight = 106
	LineWeight120     LineWeight = 120
	LineWeight140     LineWeight = 140
	LineWeight158     LineWeight = 158
	LineWeight200     LineWeight = 200
	LineWeight211     LineWeight = 211
)

// lineWeightIndexes lists the explicit weights in index order.
var lineWeightIndexes = [...]LineWeight{
	LineWeight000, LineWeight005, LineWeight009, LineWeight013, LineWeight015,
	LineWeight018, LineWeight020, LineWeight025, LineWeight030, LineWeight035,
	LineWeight040, LineWeight050, LineWeight053, LineWeight060, LineWeight070,
	LineWeight080, LineWeight090, LineWeight100, LineWeight106, LineWeight120,
	LineWeight140, LineWeight158, LineWeight200, LineWeight211,
}

// Index returns the 5-bit line weight index used by the binary format and
// whether w is a known weight. ByLayer is 29, ByBlock 30, Default 31.
func (w LineWeight) Index() (uint8, bool) {
	switch w {
	case LineWeightByLayer:
		return 29, true
	case LineWeightByBlock:
		return 30, true
	case LineWeightDefault:
		return 31, true
	}

	for i, lw := range lineWeightIndexes {
		if lw == w {
			return uint8(i), true //nolint:gosec
		}
	}

	return 0, false
}

// LineWeightFromIndex is the inverse of LineWeight.Index.
func LineWeightFromIndex(index uint8) (LineWeight, bool) {
	switch index {
	case 29:
		return LineWeightByLayer, true
	case 30:
		return LineWeightByBlock, true
	case 31:
		return LineWeightDefault, true
	}

	if int(index) < len(lineWeightIndexes) {
		return lineWeightIndexes[index], true
	}

	return 0, false
}
