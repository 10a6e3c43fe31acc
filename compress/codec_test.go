package compress

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cadbin/format"
)

// sectionLikeData imitates an object section: short records sharing
// prefixes, with a varying handle byte.
func sectionLikeData(records int) []byte {
	var buf bytes.Buffer
	for i := range records {
		buf.Write([]byte{0x1A, 0x00, 0x4C, 0xC0, 0x41, byte(i), 0x2A, 0x80})
		buf.Write(bytes.Repeat([]byte{0x00}, 12))
		buf.WriteByte(byte(i * 7))
	}

	return buf.Bytes()
}

func allCodecs() map[format.CompressionType]Codec {
	return map[format.CompressionType]Codec{
		format.CompressionNone: NewNoOpCompressor(),
		format.CompressionZstd: NewZstdCompressor(),
		format.CompressionS2:   NewS2Compressor(),
		format.CompressionLZ4:  NewLZ4Compressor(),
	}
}

func TestCreateCodec(t *testing.T) {
	for ct := range allCodecs() {
		codec, err := CreateCodec(ct, "section")
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := CreateCodec(format.CompressionType(0x7F), "section")
	require.ErrorContains(t, err, "invalid section compression")
}

func TestGetCodec(t *testing.T) {
	codec, err := GetCodec(format.CompressionS2)
	require.NoError(t, err)
	require.IsType(t, S2Compressor{}, codec)

	_, err = GetCodec(0)
	require.Error(t, err)
}

func TestCompressionStats(t *testing.T) {
	stats := CompressionStats{OriginalSize: 1000, CompressedSize: 250}
	require.InDelta(t, 0.25, stats.CompressionRatio(), 1e-9)
	require.InDelta(t, 75.0, stats.SpaceSavings(), 1e-9)

	require.Zero(t, CompressionStats{}.CompressionRatio())
}

func TestNoOpCompressor_SharesInput(t *testing.T) {
	data := []byte{1, 2, 3}
	codec := NewNoOpCompressor()

	out, err := codec.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &out[0])

	back, err := codec.Decompress(out)
	require.NoError(t, err)
	require.Equal(t, data, back)
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for ct, codec := range allCodecs() {
		t.Run(ct.String(), func(t *testing.T) {
			out, err := codec.Compress(nil)
			require.NoError(t, err)

			back, err := codec.Decompress(out)
			require.NoError(t, err)
			require.Empty(t, back)
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	sizes := []int{1, 16, 1024, 20000}
	for ct, codec := range allCodecs() {
		for _, records := range sizes {
			t.Run(fmt.Sprintf("%s/%d", ct, records), func(t *testing.T) {
				data := sectionLikeData(records)

				packed, err := codec.Compress(data)
				require.NoError(t, err)
				if ct != format.CompressionNone && records >= 1024 {
					require.Less(t, len(packed), len(data))
				}

				back, err := codec.Decompress(packed)
				require.NoError(t, err)
				require.Equal(t, data, back)
			})
		}
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	garbage := []byte{0xFF, 0xFE, 0xFD, 0xFC, 0x00, 0x01, 0x02}
	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			_, err = codec.Decompress(garbage)
			require.Error(t, err)
		})
	}
}

func TestLZ4Compressor_HighExpansion(t *testing.T) {
	data := bytes.Repeat([]byte{0}, 1<<20)
	codec := NewLZ4Compressor()

	packed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Less(t, len(packed)*4, len(data))

	back, err := codec.Decompress(packed)
	require.NoError(t, err)
	require.Equal(t, data, back)
}

func TestAllCodecs_Concurrent(t *testing.T) {
	data := sectionLikeData(512)
	for ct, codec := range allCodecs() {
		t.Run(ct.String(), func(t *testing.T) {
			var wg sync.WaitGroup
			errs := make(chan error, 8)
			for range 8 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					packed, err := codec.Compress(data)
					if err != nil {
						errs <- err
						return
					}
					back, err := codec.Decompress(packed)
					if err != nil {
						errs <- err
						return
					}
					if !bytes.Equal(data, back) {
						errs <- fmt.Errorf("%s: round trip mismatch", ct)
					}
				}()
			}
			wg.Wait()
			close(errs)

			for err := range errs {
				require.NoError(t, err)
			}
		})
	}
}
