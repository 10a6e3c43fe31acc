package encoding

import (
	"fmt"

	"github.com/arloliu/cadbin/errs"
)

// AppendModularShort appends v as a modular short [MS]: little-endian
// 16-bit words carrying 15 bits each, the high bit of every word except
// the last set.
//
// Record sizes are written this way in front of each object record.
func AppendModularShort(dst []byte, v uint32) []byte {
	for v >= 0x8000 {
		word := uint16(v&0x7FFF) | 0x8000
		dst = append(dst, byte(word), byte(word>>8))
		v >>= 15
	}

	return append(dst, byte(v), byte(v>>8))
}

// ReadModularShort decodes a modular short from the start of src.
//
// Returns:
//   - uint32: the decoded value
//   - int: number of bytes consumed
//   - error: errs.ErrUnexpectedEOF if src ends inside the value
func ReadModularShort(src []byte) (uint32, int, error) {
	var (
		v     uint32
		shift uint
	)

	for pos := 0; pos+1 < len(src); pos += 2 {
		word := uint32(src[pos]) | uint32(src[pos+1])<<8
		if shift > 30 {
			return 0, 0, fmt.Errorf("%w: modular short longer than 32 bits", errs.ErrInvalidBitCode)
		}
		v |= (word & 0x7FFF) << shift
		if word&0x8000 == 0 {
			return v, pos + 2, nil
		}
		shift += 15
	}

	return 0, 0, errs.ErrUnexpectedEOF
}

// AppendModularChar appends v as a modular char [MC]: little-endian 7-bit
// groups with a continuation bit (0x80); bit 0x40 of the last byte is the
// sign.
func AppendModularChar(dst []byte, v int64) []byte {
	negative := v < 0
	u := uint64(v)
	if negative {
		u = uint64(-v)
	}

	for u >= 0x40 {
		dst = append(dst, byte(u&0x7F)|0x80)
		u >>= 7
	}

	last := byte(u)
	if negative {
		last |= 0x40
	}

	return append(dst, last)
}

// ReadModularChar decodes a modular char from the start of src.
//
// Returns:
//   - int64: the decoded value
//   - int: number of bytes consumed
//   - error: errs.ErrUnexpectedEOF if src ends inside the value
func ReadModularChar(src []byte) (int64, int, error) {
	var (
		v     uint64
		shift uint
	)

	for pos, b := range src {
		if shift > 56 {
			return 0, 0, fmt.Errorf("%w: modular char longer than 64 bits", errs.ErrInvalidBitCode)
		}
		if b&0x80 != 0 {
			v |= uint64(b&0x7F) << shift
			shift += 7

			continue
		}

		v |= uint64(b&0x3F) << shift
		if b&0x40 != 0 {
			return -int64(v), pos + 1, nil //nolint:gosec
		}

		return int64(v), pos + 1, nil //nolint:gosec
	}

	return 0, 0, errs.ErrUnexpectedEOF
}
