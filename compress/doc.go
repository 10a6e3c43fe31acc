// Package compress provides the codecs an object section can be flushed
// through.
//
// An object section is a run of bit-packed records. Record prefixes and
// common data repeat the same short bit patterns, so general-purpose
// compressors do well on it. Compression is applied only at the sink
// boundary (dwg.ObjectSection.WriteTo); the in-memory section and its
// handle offsets always describe the uncompressed bytes.
//
// Supported codecs:
//
//   - format.CompressionNone: bytes are passed through unchanged
//   - format.CompressionZstd: klauspost zstd, best ratio
//   - format.CompressionS2: klauspost s2, fast with a good ratio
//   - format.CompressionLZ4: pierrec lz4 block format, fastest to decode
//
// All codecs are safe for concurrent use. Zstd encoders and decoders and
// LZ4 compressors are pooled.
//
// Example:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(section.Bytes())
package compress
