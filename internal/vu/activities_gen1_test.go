package vu

import "testing"

func TestUnmarshalActivitiesGen1MinimalZeroRecords(t *testing.T) {
	var opts UnmarshalOptions

	// dateOfDay(4) + odometerMidnight(3) + 4 zero counts (u16, u16, u8, u16)
	payload := make([]byte, 4+3)
	payload = append(payload, 0x00, 0x00) // noOfIW
	payload = append(payload, 0x00, 0x00) // noOfActivityChanges
	payload = append(payload, 0x00)       // noOfPlaces
	payload = append(payload, 0x00, 0x00) // noOfConditions
	payload = append(payload, make([]byte, gen1SignatureSize)...)

	out, err := opts.unmarshalActivitiesGen1(payload)
	if err != nil {
		t.Fatalf("unmarshalActivitiesGen1() error = %v", err)
	}
	if len(out.CardIWRecords) != 0 || len(out.ActivityChanges) != 0 || len(out.PlaceRecords) != 0 || len(out.SpecificConditions) != 0 {
		t.Fatalf("expected all-empty record lists, got %+v", out)
	}
}

func TestUnmarshalActivitiesGen1TrailingBytesErrors(t *testing.T) {
	var opts UnmarshalOptions
	payload := make([]byte, 4+3+2+2+1+2)
	payload = append(payload, 0xFF) // one stray byte before signature
	payload = append(payload, make([]byte, gen1SignatureSize)...)
	if _, err := opts.unmarshalActivitiesGen1(payload); err == nil {
		t.Fatal("expected error for trailing bytes")
	}
}
