package tachograph

import (
	"testing"

	"github.com/fleetcodec/tachograph-go/internal/card"
	"github.com/fleetcodec/tachograph-go/internal/cert"
)

func TestVerifyRejectsBadERCALength(t *testing.T) {
	data := &TachographData{Type: DataTypeCard, CardGen1: &card.RawCardFile{}}
	if _, err := Verify(data, make([]byte, 10)); err == nil {
		t.Fatal("expected an error for a malformed ERCA key length")
	}
}

func TestVerifyGen1UnsignedWithoutIdentificationBlocks(t *testing.T) {
	data := &TachographData{Type: DataTypeCard, CardGen1: &card.RawCardFile{}}
	result, err := Verify(data, make([]byte, 144))
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if result.Status != cert.StatusUnsigned {
		t.Errorf("Status = %v, want Unsigned", result.Status)
	}
}

func TestVerifyMismatchedGenerationErrors(t *testing.T) {
	data := &TachographData{Type: DataTypeCard, CardGen2: &card.RawCardFile{}}
	if _, err := Verify(data, make([]byte, 144)); err == nil {
		t.Fatal("expected an error when the Gen1-shaped ERCA key has no Gen1 data to verify")
	}
}
