package dd

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/fleetcodec/tachograph-go/internal/ddserr"
)

// CodePage identifies a tachograph text code page, the 1-byte tag that
// precedes every StringValue.
type CodePage byte

// Known code pages (Data Dictionary StringValue / CodePage).
const (
	CodePageDefault   CodePage = 0
	CodePageISO8859_1 CodePage = 1
	CodePageISO8859_2 CodePage = 2
	CodePageISO8859_3 CodePage = 3
	CodePageISO8859_5 CodePage = 5
	CodePageISO8859_7 CodePage = 7
	CodePageISO8859_9 CodePage = 9
	CodePageISO8859_13 CodePage = 13
	CodePageISO8859_15 CodePage = 15
	CodePageISO8859_16 CodePage = 16
	CodePageKOI8R      CodePage = 80
	CodePageKOI8U      CodePage = 85
	CodePageEmpty      CodePage = 255
)

// charmapFor returns the x/text Charmap for a known code page, falling back
// to ISO-8859-1 for anything unrecognized (including the default/0 page).
func charmapFor(cp CodePage) *charmap.Charmap {
	switch cp {
	case CodePageISO8859_1, CodePageDefault:
		return charmap.ISO8859_1
	case CodePageISO8859_2:
		return charmap.ISO8859_2
	case CodePageISO8859_3:
		return charmap.ISO8859_3
	case CodePageISO8859_5:
		return charmap.ISO8859_5
	case CodePageISO8859_7:
		return charmap.ISO8859_7
	case CodePageISO8859_9:
		return charmap.ISO8859_9
	case CodePageISO8859_13:
		return charmap.ISO8859_13
	case CodePageISO8859_15:
		return charmap.ISO8859_15
	case CodePageISO8859_16:
		return charmap.ISO8859_16
	case CodePageKOI8R:
		return charmap.KOI8R
	case CodePageKOI8U:
		return charmap.KOI8U
	default:
		return charmap.ISO8859_1
	}
}

// trimPadding strips trailing NUL, then leading/trailing ASCII whitespace
// and the protocol's common padding bytes.
func trimPadding(b []byte) []byte {
	b = bytes.TrimRight(b, "\x00")
	return bytes.Trim(b, "\t\n\v\f\r \x85\xA0\xFF")
}

// DecodeCodePageString decodes data using the character table named by
// codePage. Tag 0xFF (CodePageEmpty) is the "invalid" sentinel and decodes
// to the empty string; any other unrecognized tag falls back to ISO-8859-1,
// never to an error.
func DecodeCodePageString(codePage byte, data []byte) (string, error) {
	if CodePage(codePage) == CodePageEmpty {
		return "", nil
	}
	cm := charmapFor(CodePage(codePage))
	decoded, err := cm.NewDecoder().String(string(data))
	if err != nil {
		return "", fmt.Errorf("%w: failed to decode code page %d string: %v", ddserr.ErrInvalidData, codePage, err)
	}
	trimmed := string(trimPadding([]byte(decoded)))
	if !utf8.ValidString(trimmed) {
		trimmed = strings.ToValidUTF8(trimmed, string(utf8.RuneError))
	}
	return trimmed, nil
}

// EncodeCodePageString encodes s using the character table named by
// codePage, for the narrow round-trip test paths.
func EncodeCodePageString(codePage byte, s string) ([]byte, error) {
	if CodePage(codePage) == CodePageEmpty {
		return []byte{}, nil
	}
	cm := charmapFor(CodePage(codePage))
	encoded, err := cm.NewEncoder().String(s)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode string to code page %d: %v", ddserr.ErrInvalidEncode, codePage, err)
	}
	return []byte(encoded), nil
}

// DecodeISO88591Rune maps a single byte to its Unicode scalar under
// ISO-8859-1, where byte value equals rune value for the entire 0x00..0xFF
// range. This is the fallback table exercised directly by the
// code-page-fallback property test.
func DecodeISO88591Rune(b byte) rune {
	return rune(b)
}

// DecodeIA5 validates data as 7-bit ASCII (IA5), then trims trailing NUL
// and whitespace. Any byte >= 0x80 is a validation failure.
func DecodeIA5(data []byte) (string, error) {
	for i, b := range data {
		if b >= 0x80 {
			return "", fmt.Errorf("%w: byte %d (0x%02X) at position %d is not valid IA5/ASCII", ddserr.ErrInvalidData, b, b, i)
		}
	}
	return string(trimPadding(data)), nil
}

// EncodeIA5 encodes an ASCII string to bytes, optionally right-padding with
// spaces to a fixed length.
func EncodeIA5(s string, length int) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return nil, fmt.Errorf("%w: non-ASCII byte %q at position %d", ddserr.ErrInvalidEncode, s[i], i)
		}
	}
	if length <= 0 {
		return []byte(s), nil
	}
	if len(s) > length {
		return nil, fmt.Errorf("%w: string length %d exceeds field length %d", ddserr.ErrInvalidEncode, len(s), length)
	}
	out := make([]byte, length)
	copy(out, s)
	for i := len(s); i < length; i++ {
		out[i] = ' '
	}
	return out, nil
}
