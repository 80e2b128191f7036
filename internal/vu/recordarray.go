package vu

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/byteio"
	"github.com/fleetcodec/tachograph-go/internal/ddserr"
)

// RecordArray is the Gen2 "record array with embedded metadata" shape:
// a record-type ID, a record size, a record count, then exactly
// size*count bytes of record data. Consumed bytes = 5 + size*count.
type RecordArray struct {
	RecordType  byte
	RecordSize  uint16
	RecordCount uint16
	Records     [][]byte
}

// ReadRecordArray reads one RecordArray header and its records off r.
// RecordSize is trusted even when it does not match what this module
// otherwise expects for RecordType, forward-compatible with newer-format
// records carrying extra trailing bytes per record.
func ReadRecordArray(r *byteio.Reader) (RecordArray, error) {
	recordType, err := r.ReadByte()
	if err != nil {
		return RecordArray{}, fmt.Errorf("failed to read record type: %w", err)
	}
	size, err := r.ReadUint16()
	if err != nil {
		return RecordArray{}, fmt.Errorf("failed to read record size: %w", err)
	}
	count, err := r.ReadUint16()
	if err != nil {
		return RecordArray{}, fmt.Errorf("failed to read record count: %w", err)
	}
	out := RecordArray{RecordType: recordType, RecordSize: size, RecordCount: count}
	for i := uint16(0); i < count; i++ {
		rec, err := r.ReadArray(int(size))
		if err != nil {
			return RecordArray{}, fmt.Errorf("%w: failed to read record %d/%d of type %d: %v", ddserr.ErrInputUnderflow, i, count, recordType, err)
		}
		out.Records = append(out.Records, rec)
	}
	return out, nil
}

// ReadRecordArrays reads successive RecordArrays until the reader is
// exhausted, used to decode the whole body of a Gen2 TREP payload (which is
// a sequence of record arrays terminated by a signature record array).
func ReadRecordArrays(r *byteio.Reader) ([]RecordArray, error) {
	var out []RecordArray
	for !r.AtEOF() {
		ra, err := ReadRecordArray(r)
		if err != nil {
			return nil, err
		}
		out = append(out, ra)
	}
	return out, nil
}
