package vu

import (
	"testing"

	"github.com/fleetcodec/tachograph-go/internal/dd"
)

func TestUnmarshalVehicleUnitDataDispatchesGen1Overview(t *testing.T) {
	var opts UnmarshalOptions

	fixed := make([]byte, 194+194+17+15+4+4+4+1+4+18+36)
	body := append(fixed, 0x00, 0x00)
	body = append(body, make([]byte, gen1SignatureSize)...)

	stream := append([]byte{trepMagic, byte(TREPGen1Overview)}, body...)

	out, err := opts.UnmarshalVehicleUnitData(stream)
	if err != nil {
		t.Fatalf("UnmarshalVehicleUnitData() error = %v", err)
	}
	if out.Generation != dd.Generation1 {
		t.Fatalf("Generation = %v, want Generation1", out.Generation)
	}
	if out.OverviewGen1 == nil {
		t.Fatal("OverviewGen1 should be set")
	}
}

func TestUnmarshalVehicleUnitDataNoMarkersErrors(t *testing.T) {
	var opts UnmarshalOptions
	if _, err := opts.UnmarshalVehicleUnitData([]byte{0x00, 0x01, 0x02}); err == nil {
		t.Fatal("expected error when no TREP markers are found")
	}
}
