package encoding

import (
	"fmt"

	textencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/arloliu/cadbin/errs"
)

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// encodeText converts s to its stored form and returns the bytes together
// with the character count written as the length prefix.
func encodeText(s string, wide bool, cp *charmap.Charmap) ([]byte, int) {
	if wide {
		data, err := utf16LE.NewEncoder().Bytes([]byte(s))
		if err != nil {
			panic(fmt.Errorf("%w: text is not valid for UTF-16: %w", errs.ErrValueOutOfRange, err))
		}

		return data, len(data) / 2
	}

	data, err := textencoding.ReplaceUnsupported(cp.NewEncoder()).Bytes([]byte(s))
	if err != nil {
		panic(fmt.Errorf("%w: text cannot be encoded: %w", errs.ErrValueOutOfRange, err))
	}

	return data, len(data)
}

// decodeText is the inverse of encodeText.
func decodeText(data []byte, wide bool, cp *charmap.Charmap) (string, error) {
	var (
		out []byte
		err error
	)
	if wide {
		out, err = utf16LE.NewDecoder().Bytes(data)
	} else {
		out, err = cp.NewDecoder().Bytes(data)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrInvalidBitCode, err)
	}

	return string(out), nil
}
