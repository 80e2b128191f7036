package card

import (
	"testing"

	"github.com/fleetcodec/tachograph-go/internal/dd"
)

func u16b(v uint16) []byte { return []byte{byte(v >> 8), byte(v)} }

func tlvBlock(fileID FileID, appendix Appendix, payload []byte) []byte {
	out := append([]byte{}, u16b(uint16(fileID))...)
	out = append(out, byte(appendix))
	out = append(out, u16b(uint16(len(payload)))...)
	out = append(out, payload...)
	return out
}

func TestUnmarshalRawCardFileDuplicateBlock(t *testing.T) {
	var opts UnmarshalOptions
	opts.Strict = true
	data := append(tlvBlock(FileICC, AppendixGen1Data, make([]byte, 25)), tlvBlock(FileICC, AppendixGen1Data, make([]byte, 25))...)
	if _, err := opts.UnmarshalRawCardFile(data); err == nil {
		t.Fatal("expected duplicate card file error under strict mode")
	}
}

func TestUnmarshalRawCardFilePartitionsGen2(t *testing.T) {
	var opts UnmarshalOptions
	data := append(tlvBlock(FileICC, AppendixGen1Data, make([]byte, 25)), tlvBlock(FileGNSSPlaces, AppendixGen2Data, make([]byte, 11))...)
	raw, err := opts.UnmarshalRawCardFile(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(raw.Gen1) != 1 || len(raw.Gen2) != 1 {
		t.Fatalf("gen1=%d gen2=%d, want 1 and 1", len(raw.Gen1), len(raw.Gen2))
	}
}

func TestUnmarshalDriverCardMinimal(t *testing.T) {
	var opts UnmarshalOptions

	icc := make([]byte, 25)
	ic := make([]byte, 8)
	ident := make([]byte, 143)
	ident[0] = byte(dd.NationFrance)

	appID := make([]byte, 10)
	appID[0] = 1 // driver card
	appID[3] = 0 // events per type
	appID[4] = 0 // faults per type

	var data []byte
	data = append(data, tlvBlock(FileICC, AppendixGen1Data, icc)...)
	data = append(data, tlvBlock(FileIC, AppendixGen1Data, ic)...)
	data = append(data, tlvBlock(FileIdentification, AppendixGen1Data, ident)...)
	data = append(data, tlvBlock(FileApplicationIdentification, AppendixGen1Data, appID)...)

	raw, err := opts.UnmarshalRawCardFile(data)
	if err != nil {
		t.Fatalf("assembler error: %v", err)
	}
	dc, err := opts.UnmarshalDriverCard(raw)
	if err != nil {
		t.Fatalf("driver card parse error: %v", err)
	}
	if dc.Generation != dd.Generation1 {
		t.Fatalf("generation = %v, want Generation1", dc.Generation)
	}
	if dc.Identification.CardIssuingMemberState != dd.NationFrance {
		t.Fatalf("issuing member state = %v, want NationFrance", dc.Identification.CardIssuingMemberState)
	}
}

func TestInferCardTypeMissingApplicationIdentification(t *testing.T) {
	var opts UnmarshalOptions
	raw := &RawCardFile{}
	if _, err := InferCardType(raw, opts); err == nil {
		t.Fatal("expected missing card file error")
	}
}
