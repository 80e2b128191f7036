package vu

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/byteio"
	"github.com/fleetcodec/tachograph-go/internal/dd"
)

// DetailedSpeedBlock is the Data Dictionary VuDetailedSpeedBlock type: one
// second-by-second speed trace starting at a recorded minute boundary.
//
// Binary Layout (64 bytes): speedBlockBeginDate(4, TimeReal) + speedsPerSecond(60, 1 byte each, km/h)
type DetailedSpeedBlock struct {
	BeginDate dd.TimeReal
	SpeedsKmh [60]byte
}

const detailedSpeedBlockSizeGen1 = 64

func (opts UnmarshalOptions) unmarshalDetailedSpeedBlock(r *byteio.Reader) (DetailedSpeedBlock, error) {
	d := opts.dataOpts()
	begin, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return DetailedSpeedBlock{}, fmt.Errorf("failed to read speed block begin date: %w", err)
	}
	speeds, err := r.ReadArray(60)
	if err != nil {
		return DetailedSpeedBlock{}, fmt.Errorf("failed to read speeds per second: %w", err)
	}
	var out DetailedSpeedBlock
	out.BeginDate = begin
	copy(out.SpeedsKmh[:], speeds)
	return out, nil
}

// DetailedSpeedGen1 is the Gen1 VU Detailed Speed TREP payload (Annex 1B,
// Appendix 7 section 2.2.6.5).
//
// Binary Layout (variable, signature trailing): noOfSpeedBlocks(2) + N*64 + signature(128)
type DetailedSpeedGen1 struct {
	SpeedBlocks []DetailedSpeedBlock
	Signature   []byte
}

func (opts UnmarshalOptions) unmarshalDetailedSpeedGen1(payload []byte) (DetailedSpeedGen1, error) {
	if len(payload) < gen1SignatureSize {
		return DetailedSpeedGen1{}, fmt.Errorf("detailed speed gen1 payload shorter than signature size: %d bytes", len(payload))
	}
	data := payload[:len(payload)-gen1SignatureSize]
	signature := payload[len(payload)-gen1SignatureSize:]

	r := byteio.New(data)
	noOfBlocks, err := r.ReadUint16()
	if err != nil {
		return DetailedSpeedGen1{}, fmt.Errorf("failed to read speed block count: %w", err)
	}
	out := DetailedSpeedGen1{Signature: signature}
	for i := uint16(0); i < noOfBlocks; i++ {
		block, err := opts.unmarshalDetailedSpeedBlock(r)
		if err != nil {
			return DetailedSpeedGen1{}, fmt.Errorf("failed to read speed block %d: %w", i, err)
		}
		out.SpeedBlocks = append(out.SpeedBlocks, block)
	}
	if !r.AtEOF() {
		return DetailedSpeedGen1{}, fmt.Errorf("detailed speed gen1 payload has %d trailing bytes", r.Remaining())
	}
	return out, nil
}
