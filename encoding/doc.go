// Package encoding implements the bit-level codes of the drawing object
// stream.
//
// The object stream is not byte oriented. Every value is appended at the
// current bit position, most significant bit first, and most numeric
// values use a short prefix that selects a compact representation:
//
//	BS  bit short     00 raw short, 01 byte, 10 zero, 11 256
//	BL  bit long      00 raw long,  01 byte, 10 zero
//	BD  bit double    00 raw double, 01 1.0, 10 0.0
//	DD  double with default: only the bytes that differ from a reference value
//	BT  thickness     1 bit for zero (R2000+)
//	BE  extrusion     1 bit for (0,0,1) (R2000+)
//	H   handle        4-bit code, 4-bit length, big-endian handle bytes
//
// Raw values (RC, RS, RL, RD) are little-endian and never compressed.
//
// BitWriter produces these codes for one format revision; BitReader is its
// exact inverse and is used to inspect written records.
//
// # Usage
//
//	w := encoding.NewBitWriter(format.R2000)
//	defer w.Finish()
//
//	w.WriteBitShort(256)         // 2 bits
//	w.WriteBitDouble(1.0)        // 2 bits
//	w.WriteVariableText("Base")  // BS length + 4 bytes
//	w.WriteHandle(format.ReferenceSoftPointer, 0x1F)
//
//	data := w.Bytes() // padded to a whole byte
//
// Record size prefixes are byte oriented and use the modular encodings
// AppendModularShort and AppendModularChar.
//
// # Thread Safety
//
// BitWriter and BitReader are not safe for concurrent use.
package encoding
