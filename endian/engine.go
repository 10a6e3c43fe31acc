// Package endian provides byte order utilities for the raw (unpacked)
// values of the object stream.
//
// Raw shorts, longs and doubles are always stored little-endian in the
// drawing format regardless of the host byte order. The bit codec appends
// them through an EndianEngine so that the conversion is a single call:
//
//	engine := endian.GetLittleEndianEngine()
//	tmp = engine.AppendUint64(tmp[:0], math.Float64bits(v))
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian, in which
// case raw values need no byte swapping.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine used for raw values.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
//
// Handle values are stored most significant byte first, which is the only
// big-endian quantity in the object stream.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
