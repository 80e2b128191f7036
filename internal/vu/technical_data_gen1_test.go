package vu

import "testing"

func TestUnmarshalTechnicalDataGen1MinimalZeroRecords(t *testing.T) {
	var opts UnmarshalOptions

	payload := make([]byte, vuIdentificationLenGen1+sensorPairedLenGen1)
	payload = append(payload, 0x00) // noOfCalibrationRecords=0
	payload = append(payload, make([]byte, gen1SignatureSize)...)

	out, err := opts.unmarshalTechnicalDataGen1(payload)
	if err != nil {
		t.Fatalf("unmarshalTechnicalDataGen1() error = %v", err)
	}
	if len(out.CalibrationRecords) != 0 {
		t.Fatalf("expected no calibration records, got %+v", out.CalibrationRecords)
	}
}
