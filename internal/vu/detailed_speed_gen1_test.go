package vu

import "testing"

func TestUnmarshalDetailedSpeedGen1OneBlock(t *testing.T) {
	var opts UnmarshalOptions

	payload := []byte{0x00, 0x01} // noOfSpeedBlocks=1
	payload = append(payload, make([]byte, detailedSpeedBlockSizeGen1)...)
	payload = append(payload, make([]byte, gen1SignatureSize)...)

	out, err := opts.unmarshalDetailedSpeedGen1(payload)
	if err != nil {
		t.Fatalf("unmarshalDetailedSpeedGen1() error = %v", err)
	}
	if len(out.SpeedBlocks) != 1 {
		t.Fatalf("len(SpeedBlocks) = %d, want 1", len(out.SpeedBlocks))
	}
}
