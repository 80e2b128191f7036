package tachograph

import "testing"

func TestClassifyHeaderVUGen1(t *testing.T) {
	dataType, cardInVU, err := classifyHeader([]byte{0x76, 0x01, 0x00})
	if err != nil {
		t.Fatalf("classifyHeader() error = %v", err)
	}
	if dataType != DataTypeVU || cardInVU {
		t.Errorf("got (%v, %v), want (DataTypeVU, false)", dataType, cardInVU)
	}
}

func TestClassifyHeaderCardEmbeddedInVU(t *testing.T) {
	dataType, cardInVU, err := classifyHeader([]byte{0x76, 0x06})
	if err != nil {
		t.Fatalf("classifyHeader() error = %v", err)
	}
	if dataType != DataTypeVU || !cardInVU {
		t.Errorf("got (%v, %v), want (DataTypeVU, true)", dataType, cardInVU)
	}
}

func TestClassifyHeaderCard(t *testing.T) {
	dataType, _, err := classifyHeader([]byte{0x00, 0x02})
	if err != nil {
		t.Fatalf("classifyHeader() error = %v", err)
	}
	if dataType != DataTypeCard {
		t.Errorf("dataType = %v, want DataTypeCard", dataType)
	}
}

func TestClassifyHeaderUnknownMagicErrors(t *testing.T) {
	if _, _, err := classifyHeader([]byte{0xAA, 0xBB}); err == nil {
		t.Fatal("expected error for unrecognized magic bytes")
	}
}

func TestClassifyHeaderTooShortErrors(t *testing.T) {
	if _, _, err := classifyHeader([]byte{0x76}); err == nil {
		t.Fatal("expected error for a file shorter than the magic header")
	}
}

func TestParseBytesVUGen1Overview(t *testing.T) {
	fixed := make([]byte, 194+194+17+15+4+4+4+1+4+18+36)
	payload := append(fixed, 0x00, 0x00)
	payload = append(payload, make([]byte, 128)...)

	data := append([]byte{0x76, 0x01}, payload...)
	out, err := ParseBytes(data)
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	if out.Type != DataTypeVU || out.VUGen1 == nil {
		t.Fatalf("got %+v, want a decoded Gen1 VU overview", out)
	}
	if out.VUGen1.OverviewGen1 == nil {
		t.Fatal("expected OverviewGen1 to be populated")
	}
}

func TestParseBytesUnknownMagicErrors(t *testing.T) {
	if _, err := ParseBytes([]byte{0xAA, 0xBB, 0xCC}); err == nil {
		t.Fatal("expected error for unrecognized magic bytes")
	}
}

// TestClassifyHeaderTotality checks that every possible 2-byte prefix
// either classifies into one of the named cases (0x7601, 0x7621, 0x7631,
// 0x7606, 0x0002) or yields an InvalidHeaderData-equivalent error; there
// is no third outcome.
func TestClassifyHeaderTotality(t *testing.T) {
	named := map[[2]byte]bool{
		{0x76, 0x01}: true,
		{0x76, 0x21}: true,
		{0x76, 0x31}: true,
		{0x76, 0x06}: true,
		{0x00, 0x02}: true,
	}
	for b0 := 0; b0 <= 0xFF; b0++ {
		for b1 := 0; b1 <= 0xFF; b1++ {
			prefix := [2]byte{byte(b0), byte(b1)}
			_, _, err := classifyHeader(prefix[:])
			switch {
			case named[prefix]:
				if err != nil {
					t.Fatalf("classifyHeader(%02x %02x) unexpectedly errored: %v", b0, b1, err)
				}
			default:
				if err == nil {
					t.Fatalf("classifyHeader(%02x %02x) should have errored, named = %v", b0, b1, named[prefix])
				}
			}
		}
	}
}
