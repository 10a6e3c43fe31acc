package cad

import (
	"fmt"

	"github.com/arloliu/cadbin/errs"
)

// colorMethod selects how a Color value is interpreted.
type colorMethod uint8

const (
	colorByLayer colorMethod = iota
	colorByBlock
	colorIndex
	colorTrue
)

// Color is either a logical color (by layer, by block), an index into the
// 256-entry palette, or an explicit RGB value.
//
// The zero value is ByLayer.
type Color struct {
	method colorMethod
	index  uint8
	rgb    uint32
}

var (
	// ByLayer takes the color of the entity's layer.
	ByLayer = Color{method: colorByLayer}
	// ByBlock takes the color of the inserting block reference.
	ByBlock = Color{method: colorByBlock}
)

// IndexColor returns a palette color. Index 0 and 256 are reserved for
// ByBlock and ByLayer and are mapped to those values.
func IndexColor(index int16) Color {
	switch {
	case index == 0:
		return ByBlock
	case index == 256:
		return ByLayer
	case index < 0 || index > 256:
		panic(fmt.Errorf("%w: color index %d not in 0-256", errs.ErrValueOutOfRange, index))
	default:
		return Color{method: colorIndex, index: uint8(index)}
	}
}

// TrueColor returns an explicit RGB color.
func TrueColor(r, g, b uint8) Color {
	return Color{method: colorTrue, rgb: uint32(r)<<16 | uint32(g)<<8 | uint32(b)}
}

// IsByLayer reports whether c is ByLayer.
func (c Color) IsByLayer() bool { return c.method == colorByLayer }

// IsByBlock reports whether c is ByBlock.
func (c Color) IsByBlock() bool { return c.method == colorByBlock }

// IsTrueColor reports whether c carries an explicit RGB value.
func (c Color) IsTrueColor() bool { return c.method == colorTrue }

// Index returns the palette index of c: 256 for ByLayer, 0 for ByBlock and
// the nearest palette slot (always 7) for true colors, which have no index.
func (c Color) Index() int16 {
	switch c.method {
	case colorByLayer:
		return 256
	case colorByBlock:
		return 0
	case colorTrue:
		return 7
	default:
		return int16(c.index)
	}
}

// RGB returns the packed 0xRRGGBB value of a true color, 0 otherwise.
func (c Color) RGB() uint32 {
	if c.method != colorTrue {
		return 0
	}

	return c.rgb
}

func (c Color) String() string {
	switch c.method {
	case colorByLayer:
		return "ByLayer"
	case colorByBlock:
		return "ByBlock"
	case colorTrue:
		return fmt.Sprintf("RGB(%d,%d,%d)", c.rgb>>16&0xFF, c.rgb>>8&0xFF, c.rgb&0xFF)
	default:
		return fmt.Sprintf("Index(%d)", c.index)
	}
}

// Transparency is an entity transparency. The zero value is ByLayer.
type Transparency struct {
	byBlock bool
	alpha   uint8
	set     bool
}

// TransparencyByBlock takes the transparency of the inserting block reference.
var TransparencyByBlock = Transparency{byBlock: true}

// Opacity returns a transparency with explicit alpha, 0 fully transparent,
// 255 fully opaque.
func Opacity(alpha uint8) Transparency {
	return Transparency{alpha: alpha, set: true}
}

// IsByLayer reports whether t is inherited from the layer.
func (t Transparency) IsByLayer() bool { return !t.set && !t.byBlock }

// Value returns the packed transparency value stored in the object stream:
// 0 by layer, 0x01000000 by block, 0x02000000|alpha for an explicit alpha.
func (t Transparency) Value() uint32 {
	switch {
	case t.byBlock:
		return 0x01000000
	case t.set:
		return 0x02000000 | uint32(t.alpha)
	default:
		return 0
	}
}
