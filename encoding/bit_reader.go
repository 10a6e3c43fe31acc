package encoding

import (
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/text/encoding/charmap"

	"github.com/arloliu/cadbin/cad"
	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/format"
)

// BitReader decodes the bit codes produced by BitWriter.
//
// Every Read method mirrors the Write method of the same name. Reads past
// the end of the data return errs.ErrUnexpectedEOF; once a read fails the
// reader position is unspecified.
type BitReader struct {
	data     []byte // source data
	bytePos  int    // next byte to load into bitBuf
	bitBuf   uint64 // pending bits, left-aligned
	bitCount int    // number of valid bits in bitBuf

	r2000Plus bool
	r2004Plus bool
	r2007Plus bool
	r2010Plus bool
	codePage  *charmap.Charmap
}

// NewBitReader creates a reader over data for the given revision.
//
// Parameters:
//   - data: encoded bits, most significant bit first
//   - rev: revision the data was written for
//   - cp: code page of pre-R2007 text, nil for Windows-1252
func NewBitReader(data []byte, rev format.Revision, cp *charmap.Charmap) *BitReader {
	if cp == nil {
		cp = charmap.Windows1252
	}

	return &BitReader{
		data:      data,
		r2000Plus: rev >= format.R2000,
		r2004Plus: rev >= format.R2004,
		r2007Plus: rev >= format.R2007,
		r2010Plus: rev >= format.R2010,
		codePage:  cp,
	}
}

// Position returns the number of bits consumed.
func (r *BitReader) Position() int {
	return r.bytePos*8 - r.bitCount
}

// Remaining returns the number of unread bits.
func (r *BitReader) Remaining() int {
	return len(r.data)*8 - r.Position()
}

// SkipBits discards n bits.
func (r *BitReader) SkipBits(n int) error {
	for n > 0 {
		step := min(n, 64)
		if _, err := r.ReadBits(step); err != nil {
			return err
		}
		n -= step
	}

	return nil
}

// AlignToByte discards the bits up to the next byte boundary.
func (r *BitReader) AlignToByte() {
	if rem := r.Position() % 8; rem != 0 {
		_ = r.SkipBits(8 - rem)
	}
}

// ReadBit reads a single bit [B].
func (r *BitReader) ReadBit() (bool, error) {
	v, err := r.ReadBits(1)
	return v == 1, err
}

// Read2Bits reads a two-bit value [BB].
func (r *BitReader) Read2Bits() (uint8, error) {
	v, err := r.ReadBits(2)
	return uint8(v), err //nolint:gosec
}

// ReadBits reads n bits, 0 <= n <= 64, and returns them right-aligned.
func (r *BitReader) ReadBits(n int) (uint64, error) {
	if n < 0 || n > 64 {
		return 0, fmt.Errorf("%w: bit count %d", errs.ErrValueOutOfRange, n)
	}
	if n == 0 {
		return 0, nil
	}

	if n <= r.bitCount {
		result := r.bitBuf >> (64 - n)
		r.bitBuf <<= n
		r.bitCount -= n

		return result, nil
	}

	var result uint64
	for n > 0 {
		if r.bitCount == 0 && !r.fillBuffer() {
			return 0, errs.ErrUnexpectedEOF
		}

		take := min(n, r.bitCount)
		result = result<<take | r.bitBuf>>(64-take)
		if take == 64 {
			r.bitBuf = 0
		} else {
			r.bitBuf <<= take
		}
		r.bitCount -= take
		n -= take
	}

	return result, nil
}

// ReadByte reads a raw char [RC].
func (r *BitReader) ReadByte() (byte, error) {
	v, err := r.ReadBits(8)
	return byte(v), err
}

// ReadBytes reads n raw bytes.
func (r *BitReader) ReadBytes(n int) ([]byte, error) {
	out := make([]byte, n)
	for i := range out {
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		out[i] = b
	}

	return out, nil
}

// ReadRawShort reads a little-endian 16-bit value [RS].
func (r *BitReader) ReadRawShort() (int16, error) {
	var tmp [2]byte
	if err := r.readInto(tmp[:]); err != nil {
		return 0, err
	}

	return int16(binary.LittleEndian.Uint16(tmp[:])), nil //nolint:gosec
}

// ReadRawLong reads a little-endian 32-bit value [RL].
func (r *BitReader) ReadRawLong() (int32, error) {
	var tmp [4]byte
	if err := r.readInto(tmp[:]); err != nil {
		return 0, err
	}

	return int32(binary.LittleEndian.Uint32(tmp[:])), nil //nolint:gosec
}

// ReadRawDouble reads a little-endian double [RD].
func (r *BitReader) ReadRawDouble() (float64, error) {
	var tmp [8]byte
	if err := r.readInto(tmp[:]); err != nil {
		return 0, err
	}

	return math.Float64frombits(binary.LittleEndian.Uint64(tmp[:])), nil
}

// Read2RawDouble reads two raw doubles [2RD].
func (r *BitReader) Read2RawDouble() (cad.XY, error) {
	x, err := r.ReadRawDouble()
	if err != nil {
		return cad.XY{}, err
	}
	y, err := r.ReadRawDouble()

	return cad.XY{X: x, Y: y}, err
}

// ReadBitShort reads a compressed 16-bit value [BS].
func (r *BitReader) ReadBitShort() (int16, error) {
	code, err := r.ReadBits(2)
	if err != nil {
		return 0, err
	}

	switch code {
	case codeFull:
		return r.ReadRawShort()
	case codeByte:
		b, err := r.ReadByte()
		return int16(b), err
	case codeZero:
		return 0, nil
	default:
		return 256, nil
	}
}

// ReadBitLong reads a compressed 32-bit value [BL].
func (r *BitReader) ReadBitLong() (int32, error) {
	code, err := r.ReadBits(2)
	if err != nil {
		return 0, err
	}

	switch code {
	case codeFull:
		return r.ReadRawLong()
	case codeByte:
		b, err := r.ReadByte()
		return int32(b), err
	case codeZero:
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: bit long prefix 11", errs.ErrInvalidBitCode)
	}
}

// ReadBitDouble reads a compressed double [BD].
func (r *BitReader) ReadBitDouble() (float64, error) {
	code, err := r.ReadBits(2)
	if err != nil {
		return 0, err
	}

	switch code {
	case codeFull:
		return r.ReadRawDouble()
	case codeByte:
		return 1.0, nil
	case codeZero:
		return 0.0, nil
	default:
		return 0, fmt.Errorf("%w: bit double prefix 11", errs.ErrInvalidBitCode)
	}
}

// ReadBitDoubleWithDefault reads a double stored relative to def [DD].
func (r *BitReader) ReadBitDoubleWithDefault(def float64) (float64, error) {
	code, err := r.ReadBits(2)
	if err != nil {
		return 0, err
	}

	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(def))

	switch code {
	case ddDefault:
		return def, nil
	case ddLow4:
		err = r.readInto(tmp[:4])
	case ddMiddle6:
		if err = r.readInto(tmp[4:6]); err == nil {
			err = r.readInto(tmp[:4])
		}
	default:
		err = r.readInto(tmp[:])
	}
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(binary.LittleEndian.Uint64(tmp[:])), nil
}

// Read2BitDouble reads two compressed doubles [2BD].
func (r *BitReader) Read2BitDouble() (cad.XY, error) {
	x, err := r.ReadBitDouble()
	if err != nil {
		return cad.XY{}, err
	}
	y, err := r.ReadBitDouble()

	return cad.XY{X: x, Y: y}, err
}

// Read3BitDouble reads three compressed doubles [3BD].
func (r *BitReader) Read3BitDouble() (cad.XYZ, error) {
	var p cad.XYZ
	var err error

	if p.X, err = r.ReadBitDouble(); err != nil {
		return p, err
	}
	if p.Y, err = r.ReadBitDouble(); err != nil {
		return p, err
	}
	p.Z, err = r.ReadBitDouble()

	return p, err
}

// ReadBitThickness reads a thickness [BT].
func (r *BitReader) ReadBitThickness() (float64, error) {
	if r.r2000Plus {
		zero, err := r.ReadBit()
		if err != nil || zero {
			return 0, err
		}
	}

	return r.ReadBitDouble()
}

// ReadBitExtrusion reads an extrusion direction [BE].
func (r *BitReader) ReadBitExtrusion() (cad.XYZ, error) {
	if r.r2000Plus {
		isDefault, err := r.ReadBit()
		if err != nil {
			return cad.XYZ{}, err
		}
		if isDefault {
			return cad.ZAxis, nil
		}
	}

	return r.Read3BitDouble()
}

// ReadVariableText reads a length-prefixed string [TV, TU].
func (r *BitReader) ReadVariableText() (string, error) {
	n, err := r.ReadBitShort()
	if err != nil {
		return "", err
	}

	units := int(uint16(n)) //nolint:gosec
	if units == 0 {
		return "", nil
	}
	if r.r2007Plus {
		units *= 2
	}

	data, err := r.ReadBytes(units)
	if err != nil {
		return "", err
	}

	return decodeText(data, r.r2007Plus, r.codePage)
}

// ReadCmColor reads a table color [CMC].
func (r *BitReader) ReadCmColor() (cad.Color, error) {
	index, err := r.ReadBitShort()
	if err != nil {
		return cad.Color{}, err
	}
	if !r.r2004Plus {
		return indexColor(index)
	}

	packed, err := r.ReadBitLong()
	if err != nil {
		return cad.Color{}, err
	}
	if _, err := r.ReadByte(); err != nil {
		return cad.Color{}, err
	}

	return unpackColor(uint32(packed)) //nolint:gosec
}

// ReadEnColor reads an entity color and transparency [ENC].
func (r *BitReader) ReadEnColor() (cad.Color, cad.Transparency, error) {
	v, err := r.ReadBitShort()
	if err != nil {
		return cad.Color{}, cad.Transparency{}, err
	}
	if !r.r2004Plus {
		c, err := indexColor(v)
		return c, cad.Transparency{}, err
	}

	flags := uint16(v) //nolint:gosec

	var color cad.Color
	if flags&enColorRGB != 0 {
		packed, err := r.ReadBitLong()
		if err != nil {
			return cad.Color{}, cad.Transparency{}, err
		}
		color, err = unpackColor(uint32(packed)) //nolint:gosec
		if err != nil {
			return cad.Color{}, cad.Transparency{}, err
		}
	} else {
		color, err = indexColor(int16(flags & enColorIndexMask)) //nolint:gosec
		if err != nil {
			return cad.Color{}, cad.Transparency{}, err
		}
	}

	transparency := cad.Transparency{}
	if flags&enColorTransparency != 0 {
		raw, err := r.ReadBitLong()
		if err != nil {
			return cad.Color{}, cad.Transparency{}, err
		}
		switch uint32(raw) >> 24 { //nolint:gosec
		case 0x01:
			transparency = cad.TransparencyByBlock
		case 0x02:
			transparency = cad.Opacity(uint8(raw))
		}
	}

	return color, transparency, nil
}

// ReadObjectType reads a record type number [BS, OT].
func (r *BitReader) ReadObjectType() (format.ObjectType, error) {
	if !r.r2010Plus {
		v, err := r.ReadBitShort()
		return format.ObjectType(v), err
	}

	code, err := r.ReadBits(2)
	if err != nil {
		return 0, err
	}

	switch code {
	case 0b00:
		b, err := r.ReadByte()
		return format.ObjectType(b), err
	case 0b01:
		b, err := r.ReadByte()
		return format.ObjectType(b) + 0x1F0, err
	default:
		v, err := r.ReadRawShort()
		return format.ObjectType(v), err
	}
}

// ReadHandle reads a handle reference [H].
func (r *BitReader) ReadHandle() (format.ReferenceType, cad.Handle, error) {
	head, err := r.ReadByte()
	if err != nil {
		return 0, 0, err
	}

	code := format.ReferenceType(head >> 4)
	count := int(head & 0x0F)
	if count > 8 {
		return 0, 0, fmt.Errorf("%w: handle of %d bytes", errs.ErrInvalidBitCode, count)
	}

	var h uint64
	for range count {
		b, err := r.ReadByte()
		if err != nil {
			return 0, 0, err
		}
		h = h<<8 | uint64(b)
	}

	return code, cad.Handle(h), nil
}

func (r *BitReader) readInto(dst []byte) error {
	for i := range dst {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}
		dst[i] = b
	}

	return nil
}

// fillBuffer loads up to 8 bytes into the empty bit buffer, left-aligned.
func (r *BitReader) fillBuffer() bool {
	if r.bytePos >= len(r.data) {
		return false
	}

	n := min(8, len(r.data)-r.bytePos)
	if n == 8 {
		r.bitBuf = binary.BigEndian.Uint64(r.data[r.bytePos : r.bytePos+8])
		r.bytePos += 8
		r.bitCount = 64

		return true
	}

	r.bitBuf = 0
	for range n {
		r.bitBuf = r.bitBuf<<8 | uint64(r.data[r.bytePos])
		r.bytePos++
	}
	r.bitBuf <<= (8 - n) * 8
	r.bitCount = n * 8

	return true
}

func indexColor(index int16) (cad.Color, error) {
	if index < 0 || index > 256 {
		return cad.Color{}, fmt.Errorf("%w: color index %d", errs.ErrInvalidBitCode, index)
	}

	return cad.IndexColor(index), nil
}

func unpackColor(packed uint32) (cad.Color, error) {
	switch packed >> 24 {
	case colorFlagByLayer:
		return cad.ByLayer, nil
	case colorFlagByBlock:
		return cad.ByBlock, nil
	case colorFlagRGB:
		return cad.TrueColor(uint8(packed>>16), uint8(packed>>8), uint8(packed)), nil
	case colorFlagIndex:
		return indexColor(int16(packed & 0xFFFF)) //nolint:gosec
	default:
		return cad.Color{}, fmt.Errorf("%w: color flag %#x", errs.ErrInvalidBitCode, packed>>24)
	}
}
