// Package hexdump renders raw binary regions that a decoder could not
// classify (an Oddball Crash Dump tail, a card file's missing-data stub)
// into a human-readable dump for diagnostics, and parses that format back.
package hexdump

import (
	"bytes"
	"encoding/hex"
)

// Marshal converts binary data into hexdump format matching `hexdump -C`.
// The output format is:
//
//	00000000  48 65 6c 6c 6f 20 57 6f  72 6c 64 21              |Hello World!|
//	0000000c  01 02 03                                          |...|
//
// Each line contains 16 bytes of data with:
//   - 8-digit hex offset (lowercase, zero-padded)
//   - Two spaces separator
//   - Hex bytes (lowercase, space-separated, double space after byte 8)
//   - ASCII representation (printable chars or '.' for non-printable)
func Marshal(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}

	var buf bytes.Buffer
	const bytesPerLine = 16

	for offset := 0; offset < len(data); offset += bytesPerLine {
		buf.WriteString(hex.EncodeToString([]byte{
			byte(offset >> 24),
			byte(offset >> 16),
			byte(offset >> 8),
			byte(offset),
		}))
		buf.WriteString("  ")

		end := offset + bytesPerLine
		if end > len(data) {
			end = len(data)
		}
		chunk := data[offset:end]

		for i, b := range chunk {
			if i == 8 {
				buf.WriteString(" ")
			}
			buf.WriteString(hex.EncodeToString([]byte{b}))
			buf.WriteString(" ")
		}

		// Full line width is 16*3 + 1 (extra space at byte 8) + 1 (space
		// before the ASCII column) = 50 columns.
		hexChars := len(chunk)*3 + 1
		if len(chunk) <= 8 {
			hexChars = len(chunk) * 3
		}
		for i := 0; i < 50-hexChars; i++ {
			buf.WriteByte(' ')
		}

		buf.WriteByte('|')
		for _, b := range chunk {
			if b >= 0x20 && b <= 0x7e {
				buf.WriteByte(b)
			} else {
				buf.WriteByte('.')
			}
		}
		buf.WriteString("|\n")
	}

	return buf.Bytes(), nil
}

// MarshalString is a convenience wrapper around Marshal for the common case
// of embedding a dump directly in an error message or log line.
func MarshalString(data []byte) string {
	out, _ := Marshal(data)
	return string(out)
}
