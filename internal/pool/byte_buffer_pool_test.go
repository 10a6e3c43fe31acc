package pool

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(4)

	n, err := bb.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.NoError(t, bb.WriteByte(4))
	bb.MustWrite([]byte{5})

	require.Equal(t, []byte{1, 2, 3, 4, 5}, bb.Bytes())
	require.Equal(t, 5, bb.Len())

	capBefore := bb.Cap()
	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(32)
		require.Equal(t, 64, bb.Cap())
	})

	t.Run("tiny buffer grows by minimum step", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.MustWrite([]byte{1, 2, 3, 4, 5, 6, 7, 8})
		bb.Grow(1)
		require.Equal(t, 8+minBufferGrowth, bb.Cap())
		require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, bb.Bytes())
	})

	t.Run("record buffer doubles", func(t *testing.T) {
		bb := NewByteBuffer(RecordBufferDefaultSize)
		bb.ExtendOrGrow(RecordBufferDefaultSize)
		bb.MustWrite([]byte{1})
		require.Equal(t, 2*RecordBufferDefaultSize, bb.Cap())
		require.LessOrEqual(t, bb.Cap(), RecordBufferMaxThreshold)
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := 2 * smallBufferGrowthThreshold
		bb := NewByteBuffer(size)
		bb.ExtendOrGrow(size)
		bb.Grow(1)
		require.Equal(t, size+size/4, bb.Cap())
	})

	t.Run("large request", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(SectionBufferDefaultSize * 2)
		require.GreaterOrEqual(t, bb.Cap(), SectionBufferDefaultSize*2)
	})
}

func TestByteBuffer_ExtendOrGrow(t *testing.T) {
	bb := NewByteBuffer(2)
	bb.ExtendOrGrow(2)
	require.Equal(t, 2, bb.Len())

	bb.ExtendOrGrow(10)
	require.Equal(t, 12, bb.Len())

	s := bb.Slice(2, 4)
	require.Len(t, s, 2)
	require.Panics(t, func() { bb.Slice(4, 2) })
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("boom") }

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte("abc"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(3), n)
	require.Equal(t, "abc", out.String())

	_, err = bb.WriteTo(failingWriter{})
	require.Error(t, err)
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(16, 32)

	bb := p.Get()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	bb.MustWrite([]byte{1, 2, 3})
	p.Put(bb)

	again := p.Get()
	require.Equal(t, 0, again.Len())

	// Oversized buffers are dropped, nil is ignored.
	p.Put(NewByteBuffer(64))
	p.Put(nil)
}

func TestDefaultPools(t *testing.T) {
	rec := GetRecordBuffer()
	require.NotNil(t, rec)
	require.Equal(t, 0, rec.Len())
	PutRecordBuffer(rec)

	sec := GetSectionBuffer()
	require.NotNil(t, sec)
	require.Equal(t, 0, sec.Len())
	PutSectionBuffer(sec)
}
