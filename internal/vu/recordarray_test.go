package vu

import (
	"testing"

	"github.com/fleetcodec/tachograph-go/internal/byteio"
)

func TestReadRecordArrayConsumesExactBytes(t *testing.T) {
	// recordType=0x01, recordSize=3, recordCount=2, then 2*3=6 bytes of records.
	data := []byte{0x01, 0x00, 0x03, 0x00, 0x02, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}
	r := byteio.New(data)
	ra, err := ReadRecordArray(r)
	if err != nil {
		t.Fatalf("ReadRecordArray() error = %v", err)
	}
	if ra.RecordType != 0x01 || ra.RecordSize != 3 || ra.RecordCount != 2 {
		t.Fatalf("ra = %+v", ra)
	}
	if len(ra.Records) != 2 {
		t.Fatalf("len(Records) = %d, want 2", len(ra.Records))
	}
	if !r.AtEOF() {
		t.Fatalf("reader should be exhausted, %d bytes remaining", r.Remaining())
	}
}

func TestReadRecordArraysReadsSequence(t *testing.T) {
	data := []byte{
		0x01, 0x00, 0x02, 0x00, 0x01, 0xAA, 0xBB,
		0x02, 0x00, 0x01, 0x00, 0x02, 0x11, 0x22,
	}
	r := byteio.New(data)
	arrays, err := ReadRecordArrays(r)
	if err != nil {
		t.Fatalf("ReadRecordArrays() error = %v", err)
	}
	if len(arrays) != 2 {
		t.Fatalf("len(arrays) = %d, want 2", len(arrays))
	}
	if arrays[0].RecordCount != 1 || arrays[1].RecordCount != 2 {
		t.Fatalf("arrays = %+v", arrays)
	}
}

func TestReadRecordArrayTruncatedRecordsErrors(t *testing.T) {
	// Declares 2 records of 3 bytes each but only supplies 4 bytes.
	data := []byte{0x01, 0x00, 0x03, 0x00, 0x02, 0xAA, 0xBB, 0xCC, 0xDD}
	r := byteio.New(data)
	if _, err := ReadRecordArray(r); err == nil {
		t.Fatal("expected error for truncated record array, got nil")
	}
}
