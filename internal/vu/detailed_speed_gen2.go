package vu

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/byteio"
)

// DetailedSpeedGen2 is the Gen2 VU Detailed Speed TREP payload: a single
// RecordArray of VuDetailedSpeedBlock records followed by a signature
// array, kept structural for the same reason as OverviewGen2.
type DetailedSpeedGen2 struct {
	SpeedBlocks RecordArray
	Signature   RecordArray
}

func (opts UnmarshalOptions) unmarshalDetailedSpeedGen2(payload []byte) (DetailedSpeedGen2, error) {
	r := byteio.New(payload)
	blocks, err := ReadRecordArray(r)
	if err != nil {
		return DetailedSpeedGen2{}, fmt.Errorf("failed to read speed blocks record array: %w", err)
	}
	signature, err := ReadRecordArray(r)
	if err != nil {
		return DetailedSpeedGen2{}, fmt.Errorf("failed to read signature record array: %w", err)
	}
	if !r.AtEOF() {
		return DetailedSpeedGen2{}, fmt.Errorf("detailed speed gen2 payload has %d trailing bytes after signature array", r.Remaining())
	}
	return DetailedSpeedGen2{SpeedBlocks: blocks, Signature: signature}, nil
}
