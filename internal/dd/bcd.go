package dd

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/ddserr"
)

// DecodeBCD decodes a binary-coded-decimal byte slice into a decimal digit
// string of length 2*len(data). Each byte holds two decimal digits in its
// high and low nibble. A nibble greater than 9 is a decode error.
func DecodeBCD(data []byte) (string, error) {
	out := make([]byte, 0, len(data)*2)
	for i, b := range data {
		hi := b >> 4
		lo := b & 0x0F
		if hi > 9 || lo > 9 {
			return "", fmt.Errorf("%w: invalid BCD nibble in byte %d (0x%02X)", ddserr.ErrInvalidData, i, b)
		}
		out = append(out, '0'+hi, '0'+lo)
	}
	return string(out), nil
}

// DecodeBCDStrict is DecodeBCD with a compile-time-known expected byte
// count, erroring on any length mismatch before attempting to decode.
func DecodeBCDStrict(data []byte, wantLen int) (string, error) {
	if len(data) != wantLen {
		return "", fmt.Errorf("%w: invalid BCD length: got %d, want %d", ddserr.ErrInvalidData, len(data), wantLen)
	}
	return DecodeBCD(data)
}

// EncodeBCD encodes an ASCII decimal digit string into BCD bytes. An odd
// number of digits is padded with one leading zero. The output length is
// ceil(len(s)/2).
func EncodeBCD(s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, fmt.Errorf("%w: non-digit byte %q at position %d", ddserr.ErrInvalidEncode, s[i], i)
		}
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	out := make([]byte, len(s)/2)
	for i := 0; i < len(out); i++ {
		hi := s[2*i] - '0'
		lo := s[2*i+1] - '0'
		out[i] = hi<<4 | lo
	}
	return out, nil
}

// EncodeBCDStrict is EncodeBCD with a compile-time-known expected output
// byte count, erroring if the encoded result would not match it.
func EncodeBCDStrict(s string, wantLen int) ([]byte, error) {
	out, err := EncodeBCD(s)
	if err != nil {
		return nil, err
	}
	if len(out) != wantLen {
		return nil, fmt.Errorf("%w: encoded BCD length %d does not match expected %d", ddserr.ErrInvalidEncode, len(out), wantLen)
	}
	return out, nil
}
