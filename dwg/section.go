package dwg

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/arloliu/cadbin/compress"
	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/format"
)

// ObjectSection is the result of a successful write: the concatenated
// object records and the handle map that locates them.
//
// The section owns its bytes and can be flushed to any number of sinks.
type ObjectSection struct {
	data          []byte
	handles       *HandleMap
	notifications []Notification
	revision      format.Revision
	compression   format.CompressionType
}

// Bytes returns the uncompressed section bytes. The slice must not be
// modified.
func (s *ObjectSection) Bytes() []byte {
	return s.data
}

// Len returns the uncompressed section size in bytes.
func (s *ObjectSection) Len() int {
	return len(s.data)
}

// Handles returns the handle to offset map of the written records.
func (s *ObjectSection) Handles() *HandleMap {
	return s.handles
}

// Notifications returns a copy of the notifications raised while writing.
func (s *ObjectSection) Notifications() []Notification {
	return slices.Clone(s.notifications)
}

// Revision returns the revision the section was written for.
func (s *ObjectSection) Revision() format.Revision {
	return s.revision
}

// Compression returns the codec applied by WriteTo.
func (s *ObjectSection) Compression() format.CompressionType {
	return s.compression
}

// Compress returns the section compressed with the configured codec.
//
// With format.CompressionNone the returned slice is a copy of Bytes.
func (s *ObjectSection) Compress() ([]byte, compress.CompressionStats, error) {
	stats := compress.CompressionStats{
		Algorithm:    s.compression,
		OriginalSize: int64(len(s.data)),
	}

	codec, err := compress.GetCodec(s.compression)
	if err != nil {
		return nil, stats, fmt.Errorf("%w: %w", errs.ErrInvalidCompression, err)
	}

	start := time.Now()
	out, err := codec.Compress(s.data)
	if err != nil {
		return nil, stats, fmt.Errorf("compress object section: %w", err)
	}
	stats.CompressionTimeNs = time.Since(start).Nanoseconds()
	stats.CompressedSize = int64(len(out))
	stats.Ratio = stats.CompressionRatio()

	return out, stats, nil
}

// WriteTo writes the section to dst, compressed with the configured codec.
// It implements io.WriterTo.
//
// A failed write leaves the section unchanged, so the call can be retried.
//
// Returns:
//   - errs.ErrSinkWrite wrapping the sink error
func (s *ObjectSection) WriteTo(dst io.Writer) (int64, error) {
	data := s.data
	if s.compression != format.CompressionNone {
		out, _, err := s.Compress()
		if err != nil {
			return 0, err
		}
		data = out
	}

	n, err := dst.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return int64(n), fmt.Errorf("%w: %w", errs.ErrSinkWrite, err)
	}

	return int64(n), nil
}
