package encoding

import (
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/text/encoding/charmap"

	"github.com/arloliu/cadbin/cad"
	"github.com/arloliu/cadbin/endian"
	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/format"
	"github.com/arloliu/cadbin/internal/options"
	"github.com/arloliu/cadbin/internal/pool"
)

// Two-bit prefixes shared by the compressed numeric codes.
const (
	codeFull  = 0b00 // full raw value follows
	codeByte  = 0b01 // one unsigned byte follows (BS, BL) or literal 1.0 (BD)
	codeZero  = 0b10 // literal zero
	codeShort = 0b11 // literal 256 (BS only)
)

// Prefixes of the double-with-default code.
const (
	ddDefault   = 0b00 // value equals the default
	ddLow4      = 0b01 // bytes 0-3 replaced
	ddMiddle6   = 0b10 // bytes 4-5 then 0-3 replaced
	ddFullValue = 0b11 // raw double
)

// Packed color flag bytes for revisions that store colors as a long.
const (
	colorFlagByLayer = 0xC0
	colorFlagByBlock = 0xC1
	colorFlagRGB     = 0xC2
	colorFlagIndex   = 0xC3
)

// Entity color flags.
const (
	enColorRGB          = 0x8000
	enColorTransparency = 0x2000
	enColorIndexMask    = 0x01FF
)

// MaxTextLength is the largest character count a variable text can carry.
const MaxTextLength = math.MaxUint16

// BitWriter appends DWG bit codes to a byte buffer, most significant bit
// first.
//
// Bits are accumulated in a 64-bit buffer and flushed to the pooled byte
// buffer 8 bytes at a time, so the writer never needs random access into
// what it has already written. Values that depend on the revision (text,
// colors, thickness, extrusion, object type) are encoded for the revision
// the writer was created with.
//
// A BitWriter is not safe for concurrent use. Call Finish to return its
// buffer to the pool; any further use panics.
type BitWriter struct {
	bitBuf   uint64 // pending bits, right-aligned
	bitCount int    // number of valid bits in bitBuf, 0-63

	buf    *pool.ByteBuffer
	engine endian.EndianEngine

	rev       format.Revision
	r2000Plus bool
	r2004Plus bool
	r2007Plus bool
	r2010Plus bool
	codePage  *charmap.Charmap
}

// BitWriterOption configures a BitWriter.
type BitWriterOption = options.Option[*BitWriter]

// WithCodePage sets the single-byte code page used for text before R2007.
// The default is Windows-1252. A nil code page is ignored.
func WithCodePage(cp *charmap.Charmap) BitWriterOption {
	return options.NoError(func(w *BitWriter) {
		if cp != nil {
			w.codePage = cp
		}
	})
}

// NewBitWriter creates a writer for the given revision.
//
// Parameters:
//   - rev: revision that selects the encoding of revision-dependent codes
//   - opts: optional settings such as WithCodePage
//
// Returns:
//   - *BitWriter: an empty writer backed by a pooled record buffer
func NewBitWriter(rev format.Revision, opts ...BitWriterOption) *BitWriter {
	w := &BitWriter{
		buf:       pool.GetRecordBuffer(),
		engine:    endian.GetLittleEndianEngine(),
		rev:       rev,
		r2000Plus: rev >= format.R2000,
		r2004Plus: rev >= format.R2004,
		r2007Plus: rev >= format.R2007,
		r2010Plus: rev >= format.R2010,
		codePage:  charmap.Windows1252,
	}
	_ = options.Apply(w, opts...)

	return w
}

// Revision returns the revision the writer encodes for.
func (w *BitWriter) Revision() format.Revision {
	return w.rev
}

// BitLen returns the number of bits written so far.
func (w *BitWriter) BitLen() int {
	w.mustBeOpen()

	return w.buf.Len()*8 + w.bitCount
}

// ByteLen returns the number of bytes Bytes would return.
func (w *BitWriter) ByteLen() int {
	return (w.BitLen() + 7) / 8
}

// Bytes returns the written bits padded with zero bits to a whole byte.
//
// Padding is not part of the stream: later writes continue at the unpadded
// cursor. The returned slice references the internal buffer and is valid
// until the next write, Reset or Finish.
func (w *BitWriter) Bytes() []byte {
	w.mustBeOpen()

	n := w.buf.Len()
	if w.bitCount == 0 {
		return w.buf.Bytes()
	}

	pending := (w.bitCount + 7) / 8
	w.buf.Grow(pending)
	out := w.buf.B[:n+pending]
	aligned := w.bitBuf << (64 - w.bitCount)
	for i := range pending {
		out[n+i] = byte(aligned >> (56 - 8*i))
	}

	return out
}

// Reset discards all written bits and keeps the buffer for reuse.
func (w *BitWriter) Reset() {
	w.mustBeOpen()

	w.buf.Reset()
	w.bitBuf = 0
	w.bitCount = 0
}

// Finish returns the buffer to the pool. The writer becomes unusable;
// retrieve the data with Bytes before calling Finish.
func (w *BitWriter) Finish() {
	if w.buf == nil {
		return
	}

	pool.PutRecordBuffer(w.buf)
	w.buf = nil
}

// Align pads the stream with zero bits up to the next byte boundary.
func (w *BitWriter) Align() {
	w.mustBeOpen()

	if rem := w.bitCount % 8; rem != 0 {
		w.writeBits(0, 8-rem)
	}
}

// AppendBits appends every bit written to src, without src's padding.
func (w *BitWriter) AppendBits(src *BitWriter) {
	w.mustBeOpen()
	src.mustBeOpen()

	whole := src.buf.Bytes()
	if w.bitCount%8 == 0 {
		w.flushWhole()
		w.buf.MustWrite(whole)
	} else {
		for _, b := range whole {
			w.writeBits(uint64(b), 8)
		}
	}

	w.writeBits(src.bitBuf, src.bitCount)
}

// WriteBit writes a single bit [B].
func (w *BitWriter) WriteBit(v bool) {
	w.mustBeOpen()

	if v {
		w.writeBits(1, 1)
	} else {
		w.writeBits(0, 1)
	}
}

// Write2Bits writes a two-bit value [BB].
//
// Panics with errs.ErrValueOutOfRange if v is greater than 3.
func (w *BitWriter) Write2Bits(v uint8) {
	w.mustBeOpen()

	if v > 3 {
		panic(fmt.Errorf("%w: two-bit value %d", errs.ErrValueOutOfRange, v))
	}
	w.writeBits(uint64(v), 2)
}

// WriteBits writes the low n bits of v, most significant first.
//
// Panics with errs.ErrValueOutOfRange if n is outside 0-64.
func (w *BitWriter) WriteBits(v uint64, n int) {
	w.mustBeOpen()

	if n < 0 || n > 64 {
		panic(fmt.Errorf("%w: bit count %d", errs.ErrValueOutOfRange, n))
	}
	w.writeBits(v, n)
}

// WriteByte writes a raw char [RC]. It never returns an error.
func (w *BitWriter) WriteByte(b byte) error {
	w.mustBeOpen()
	w.writeBits(uint64(b), 8)

	return nil
}

// WriteBytes writes raw bytes at the current bit position.
func (w *BitWriter) WriteBytes(data []byte) {
	w.mustBeOpen()

	if w.bitCount%8 == 0 {
		w.flushWhole()
		w.buf.MustWrite(data)

		return
	}

	for _, b := range data {
		w.writeBits(uint64(b), 8)
	}
}

// WriteRawShort writes a little-endian 16-bit value [RS].
func (w *BitWriter) WriteRawShort(v int16) {
	w.mustBeOpen()

	var tmp [2]byte
	w.engine.PutUint16(tmp[:], uint16(v)) //nolint:gosec
	w.WriteBytes(tmp[:])
}

// WriteRawLong writes a little-endian 32-bit value [RL].
func (w *BitWriter) WriteRawLong(v int32) {
	w.mustBeOpen()

	var tmp [4]byte
	w.engine.PutUint32(tmp[:], uint32(v)) //nolint:gosec
	w.WriteBytes(tmp[:])
}

// WriteRawDouble writes a little-endian IEEE 754 double [RD].
func (w *BitWriter) WriteRawDouble(v float64) {
	w.mustBeOpen()

	var tmp [8]byte
	w.engine.PutUint64(tmp[:], math.Float64bits(v))
	w.WriteBytes(tmp[:])
}

// Write2RawDouble writes two raw doubles [2RD].
func (w *BitWriter) Write2RawDouble(p cad.XY) {
	w.WriteRawDouble(p.X)
	w.WriteRawDouble(p.Y)
}

// WriteBitShort writes a compressed 16-bit value [BS].
//
// Encoding:
//   - 10: the value 0
//   - 11: the value 256
//   - 01 + RC: values 1-255
//   - 00 + RS: anything else
func (w *BitWriter) WriteBitShort(v int16) {
	w.mustBeOpen()

	switch {
	case v == 0:
		w.writeBits(codeZero, 2)
	case v == 256:
		w.writeBits(codeShort, 2)
	case v > 0 && v < 256:
		w.writeBits(codeByte<<8|uint64(v), 10)
	default:
		w.writeBits(codeFull, 2)
		w.WriteRawShort(v)
	}
}

// WriteBitLong writes a compressed 32-bit value [BL].
//
// Encoding:
//   - 10: the value 0
//   - 01 + RC: values 1-255
//   - 00 + RL: anything else
func (w *BitWriter) WriteBitLong(v int32) {
	w.mustBeOpen()

	switch {
	case v == 0:
		w.writeBits(codeZero, 2)
	case v > 0 && v < 256:
		w.writeBits(codeByte<<8|uint64(v), 10)
	default:
		w.writeBits(codeFull, 2)
		w.WriteRawLong(v)
	}
}

// WriteBitDouble writes a compressed double [BD].
//
// Encoding:
//   - 01: the value 1.0
//   - 10: the value 0.0 (positive zero only)
//   - 00 + RD: anything else
func (w *BitWriter) WriteBitDouble(v float64) {
	w.mustBeOpen()

	switch math.Float64bits(v) {
	case 0:
		w.writeBits(codeZero, 2)
	case 0x3FF0000000000000:
		w.writeBits(codeByte, 2)
	default:
		w.writeBits(codeFull, 2)
		w.WriteRawDouble(v)
	}
}

// WriteBitDoubleWithDefault writes v relative to def [DD].
//
// Only the bytes that differ from def are stored: nothing when the values
// are identical, the low 4 bytes when the high 4 match, bytes 4-5 and 0-3
// when the high 2 match, the full double otherwise.
func (w *BitWriter) WriteBitDoubleWithDefault(v, def float64) {
	w.mustBeOpen()

	vb := math.Float64bits(v)
	db := math.Float64bits(def)

	var tmp [8]byte
	w.engine.PutUint64(tmp[:], vb)

	switch {
	case vb == db:
		w.writeBits(ddDefault, 2)
	case vb>>32 == db>>32:
		w.writeBits(ddLow4, 2)
		w.WriteBytes(tmp[:4])
	case vb>>48 == db>>48:
		w.writeBits(ddMiddle6, 2)
		w.WriteBytes(tmp[4:6])
		w.WriteBytes(tmp[:4])
	default:
		w.writeBits(ddFullValue, 2)
		w.WriteBytes(tmp[:])
	}
}

// Write2BitDouble writes two compressed doubles [2BD].
func (w *BitWriter) Write2BitDouble(p cad.XY) {
	w.WriteBitDouble(p.X)
	w.WriteBitDouble(p.Y)
}

// Write3BitDouble writes three compressed doubles [3BD].
func (w *BitWriter) Write3BitDouble(p cad.XYZ) {
	w.WriteBitDouble(p.X)
	w.WriteBitDouble(p.Y)
	w.WriteBitDouble(p.Z)
}

// WriteBitThickness writes a thickness [BT].
//
// From R2000 a zero thickness is a single 1 bit; any other value is a 0 bit
// followed by BD. R13 and R14 always write a plain BD.
func (w *BitWriter) WriteBitThickness(v float64) {
	w.mustBeOpen()

	if !w.r2000Plus {
		w.WriteBitDouble(v)
		return
	}

	if math.Float64bits(v) == 0 {
		w.writeBits(1, 1)
		return
	}
	w.writeBits(0, 1)
	w.WriteBitDouble(v)
}

// WriteBitExtrusion writes an extrusion direction [BE].
//
// From R2000 the default (0,0,1) is a single 1 bit; any other vector is a
// 0 bit followed by 3BD. R13 and R14 always write a plain 3BD.
func (w *BitWriter) WriteBitExtrusion(n cad.XYZ) {
	w.mustBeOpen()

	if !w.r2000Plus {
		w.Write3BitDouble(n)
		return
	}

	if n == cad.ZAxis {
		w.writeBits(1, 1)
		return
	}
	w.writeBits(0, 1)
	w.Write3BitDouble(n)
}

// WriteVariableText writes a length-prefixed string [TV, TU].
//
// The length is a BS holding the number of characters: bytes of the code
// page before R2007, UTF-16 code units from R2007. Characters the code page
// cannot represent are replaced.
//
// Panics with errs.ErrValueOutOfRange if the string is longer than
// MaxTextLength characters.
func (w *BitWriter) WriteVariableText(s string) {
	w.mustBeOpen()

	if s == "" {
		w.WriteBitShort(0)
		return
	}

	data, units := encodeText(s, w.r2007Plus, w.codePage)
	if units > MaxTextLength {
		panic(fmt.Errorf("%w: text of %d characters", errs.ErrValueOutOfRange, units))
	}

	w.WriteBitShort(int16(uint16(units))) //nolint:gosec
	w.WriteBytes(data)
}

// WriteCmColor writes a table color [CMC].
//
// Before R2004 the color is its palette index as BS. From R2004 it is BS 0,
// a BL packing a flag byte with the index or RGB value, and an RC 0 for
// "no color name".
func (w *BitWriter) WriteCmColor(c cad.Color) {
	w.mustBeOpen()

	if !w.r2004Plus {
		w.WriteBitShort(c.Index())
		return
	}

	w.WriteBitShort(0)
	w.WriteBitLong(int32(packColor(c))) //nolint:gosec
	w.writeBits(0, 8)
}

// WriteEnColor writes an entity color and transparency [ENC].
//
// Before R2004 only the palette index is stored. From R2004 a BS carries
// the index plus flags announcing a true color BL and a transparency BL.
func (w *BitWriter) WriteEnColor(c cad.Color, t cad.Transparency) {
	w.mustBeOpen()

	if !w.r2004Plus {
		w.WriteBitShort(c.Index())
		return
	}

	var flags uint16
	if c.IsTrueColor() {
		flags |= enColorRGB
	} else {
		flags |= uint16(c.Index()) & enColorIndexMask //nolint:gosec
	}
	if !t.IsByLayer() {
		flags |= enColorTransparency
	}

	w.WriteBitShort(int16(flags)) //nolint:gosec
	if c.IsTrueColor() {
		w.WriteBitLong(int32(packColor(c))) //nolint:gosec
	}
	if !t.IsByLayer() {
		w.WriteBitLong(int32(t.Value())) //nolint:gosec
	}
}

// WriteObjectType writes a record type number [BS, OT].
//
// Before R2010 the type is a BS. From R2010 a two-bit code selects between
// a byte (00), a byte offset by 0x1F0 (01) and a raw short (10).
func (w *BitWriter) WriteObjectType(t format.ObjectType) {
	w.mustBeOpen()

	if !w.r2010Plus {
		w.WriteBitShort(int16(t))
		return
	}

	switch {
	case t >= 0 && t < 0x100:
		w.writeBits(0b00<<8|uint64(t), 10)
	case t >= 0x1F0 && t < 0x2F0:
		w.writeBits(0b01<<8|uint64(t-0x1F0), 10)
	default:
		w.writeBits(0b10, 2)
		w.WriteRawShort(int16(t))
	}
}

// WriteHandle writes a handle reference [H]: a 4-bit code, a 4-bit byte
// count and the handle bytes, most significant first. Handle 0 has a byte
// count of 0.
//
// Panics with errs.ErrValueOutOfRange for an unknown reference code.
func (w *BitWriter) WriteHandle(code format.ReferenceType, h cad.Handle) {
	w.mustBeOpen()

	if !code.IsValid() {
		panic(fmt.Errorf("%w: reference code %d", errs.ErrValueOutOfRange, code))
	}

	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], uint64(h))
	digits := tmp[:]
	for len(digits) > 0 && digits[0] == 0 {
		digits = digits[1:]
	}

	w.writeBits(uint64(code)<<4|uint64(len(digits)), 8)
	w.WriteBytes(digits)
}

func packColor(c cad.Color) uint32 {
	switch {
	case c.IsByLayer():
		return colorFlagByLayer << 24
	case c.IsByBlock():
		return colorFlagByBlock << 24
	case c.IsTrueColor():
		return colorFlagRGB<<24 | c.RGB()
	default:
		return colorFlagIndex<<24 | uint32(c.Index()) //nolint:gosec
	}
}

func (w *BitWriter) mustBeOpen() {
	if w.buf == nil {
		panic("bit writer already finished - cannot use it after Finish()")
	}
}

// writeBits appends the low numBits bits of value, 0 <= numBits <= 64.
func (w *BitWriter) writeBits(value uint64, numBits int) {
	if numBits == 0 {
		return
	}

	if numBits < 64 {
		value &= (1 << numBits) - 1
	}

	available := 64 - w.bitCount
	if numBits < available {
		w.bitBuf = (w.bitBuf << numBits) | value
		w.bitCount += numBits

		return
	}

	// Fill the accumulator, flush it and keep the remaining low bits.
	rest := numBits - available
	if available == 64 {
		w.bitBuf = value
	} else {
		w.bitBuf = (w.bitBuf << available) | (value >> rest)
	}
	w.flushBits()

	if rest > 0 {
		w.bitBuf = value & ((1 << rest) - 1)
		w.bitCount = rest
	}
}

// flushBits writes a full 64-bit accumulator to the byte buffer.
func (w *BitWriter) flushBits() {
	start := w.buf.Len()
	w.buf.ExtendOrGrow(8)
	binary.BigEndian.PutUint64(w.buf.Slice(start, start+8), w.bitBuf)

	w.bitBuf = 0
	w.bitCount = 0
}

// flushWhole moves the complete bytes of a byte-aligned accumulator to the
// byte buffer.
func (w *BitWriter) flushWhole() {
	for w.bitCount > 0 {
		w.bitCount -= 8
		_ = w.buf.WriteByte(byte(w.bitBuf >> w.bitCount))
	}
	w.bitBuf = 0
}
