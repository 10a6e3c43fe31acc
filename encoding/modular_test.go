package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cadbin/errs"
)

func TestModularShort(t *testing.T) {
	tests := []struct {
		value  uint32
		expect []byte
	}{
		{0, []byte{0x00, 0x00}},
		{0x31, []byte{0x31, 0x00}},
		{0x7FFF, []byte{0xFF, 0x7F}},
		{0x8000, []byte{0x00, 0x80, 0x01, 0x00}},
		{0x12345678, []byte{0x78, 0xD6, 0x68, 0x24}},
	}

	for _, tt := range tests {
		got := AppendModularShort(nil, tt.value)
		require.Equal(t, tt.expect, got, "value %#x", tt.value)

		v, n, err := ReadModularShort(append(got, 0xEE))
		require.NoError(t, err)
		require.Equal(t, tt.value, v)
		require.Equal(t, len(tt.expect), n)
	}

	_, _, err := ReadModularShort([]byte{0x00, 0x80, 0x01})
	require.ErrorIs(t, err, errs.ErrUnexpectedEOF)
}

func TestModularChar(t *testing.T) {
	tests := []struct {
		value  int64
		expect []byte
	}{
		{0, []byte{0x00}},
		{0x3F, []byte{0x3F}},
		{0x40, []byte{0xC0, 0x00}},
		{-5, []byte{0x45}},
		{4610, []byte{0x82, 0x24}},
	}

	for _, tt := range tests {
		got := AppendModularChar(nil, tt.value)
		require.Equal(t, tt.expect, got, "value %d", tt.value)

		v, n, err := ReadModularChar(got)
		require.NoError(t, err)
		require.Equal(t, tt.value, v)
		require.Equal(t, len(tt.expect), n)
	}

	_, _, err := ReadModularChar([]byte{0x80, 0x80})
	require.ErrorIs(t, err, errs.ErrUnexpectedEOF)
}
