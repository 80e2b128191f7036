package vu

import "testing"

func TestUnmarshalEventsAndFaultsGen1MinimalZeroRecords(t *testing.T) {
	var opts UnmarshalOptions

	payload := []byte{0x00}                    // noOfFaults=0
	payload = append(payload, 0x00)             // noOfEvents=0
	payload = append(payload, make([]byte, vuOverspeedControlDataSize)...)
	payload = append(payload, 0x00) // noOfOverspeedEvents=0
	payload = append(payload, 0x00) // noOfTimeAdjustments=0
	payload = append(payload, make([]byte, gen1SignatureSize)...)

	out, err := opts.unmarshalEventsAndFaultsGen1(payload)
	if err != nil {
		t.Fatalf("unmarshalEventsAndFaultsGen1() error = %v", err)
	}
	if len(out.Faults) != 0 || len(out.Events) != 0 || len(out.OverspeedEvents) != 0 || len(out.TimeAdjustments) != 0 {
		t.Fatalf("expected all-empty record lists, got %+v", out)
	}
}
