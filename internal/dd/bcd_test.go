package dd

import (
	"errors"
	"testing"

	"github.com/fleetcodec/tachograph-go/internal/ddserr"
)

func TestBCDRoundTrip(t *testing.T) {
	cases := []struct {
		bytes []byte
		digits string
	}{
		{[]byte{0x12, 0x34, 0x56}, "123456"},
		{[]byte{0x00, 0x00}, "0000"},
		{[]byte{0x99}, "99"},
	}
	for _, c := range cases {
		got, err := DecodeBCD(c.bytes)
		if err != nil {
			t.Fatalf("DecodeBCD(%v) error: %v", c.bytes, err)
		}
		if got != c.digits {
			t.Fatalf("DecodeBCD(%v) = %q, want %q", c.bytes, got, c.digits)
		}
		back, err := EncodeBCD(got)
		if err != nil {
			t.Fatalf("EncodeBCD(%q) error: %v", got, err)
		}
		if string(back) != string(c.bytes) {
			t.Fatalf("EncodeBCD(%q) = %v, want %v", got, back, c.bytes)
		}
	}
}

func TestDecodeBCDInvalidNibble(t *testing.T) {
	_, err := DecodeBCD([]byte{0xAB})
	if !errors.Is(err, ddserr.ErrInvalidData) {
		t.Fatalf("expected ErrInvalidData, got %v", err)
	}
}

func TestEncodeBCDOddLengthPads(t *testing.T) {
	got, err := EncodeBCD("123")
	if err != nil {
		t.Fatalf("EncodeBCD error: %v", err)
	}
	want := []byte{0x01, 0x23}
	if string(got) != string(want) {
		t.Fatalf("EncodeBCD(\"123\") = %v, want %v", got, want)
	}
}

func TestBCDStrictLengthMismatch(t *testing.T) {
	if _, err := DecodeBCDStrict([]byte{0x12}, 2); !errors.Is(err, ddserr.ErrInvalidData) {
		t.Fatalf("expected ErrInvalidData, got %v", err)
	}
	if _, err := EncodeBCDStrict("123456", 2); !errors.Is(err, ddserr.ErrInvalidEncode) {
		t.Fatalf("expected ErrInvalidEncode, got %v", err)
	}
}

func TestHexFormatting(t *testing.T) {
	data := []byte{0x01, 0x23, 0xAB, 0xCD}
	if got := HexUpper(data); got != "0123ABCD" {
		t.Fatalf("HexUpper = %q, want 0123ABCD", got)
	}
	if got := HexLower(data); got != "0123abcd" {
		t.Fatalf("HexLower = %q, want 0123abcd", got)
	}
}
