package dd

import "testing"

func TestTimeRealFidelity(t *testing.T) {
	for _, v := range []uint32{0, 1, 1704067200, 4294967295} {
		tr := TimeRealFromUint32(v)
		if tr.GetData() != v {
			t.Fatalf("GetData() = %d, want %d", tr.GetData(), v)
		}
		if v == 0 && tr.HasData() {
			t.Fatal("zero TimeReal should report HasData() == false")
		}
		if v != 0 && !tr.HasData() {
			t.Fatal("nonzero TimeReal should report HasData() == true")
		}
	}
}

func TestTimeRealReadWriteRoundTrip(t *testing.T) {
	var mopts MarshalOptions
	var uopts UnmarshalOptions
	tr := TimeRealFromUint32(1704067200)
	encoded, err := mopts.MarshalTimeReal(tr)
	if err != nil {
		t.Fatalf("MarshalTimeReal error: %v", err)
	}
	r := New(encoded)
	decoded, err := uopts.UnmarshalTimeReal(r)
	if err != nil {
		t.Fatalf("UnmarshalTimeReal error: %v", err)
	}
	if decoded.GetData() != tr.GetData() {
		t.Fatalf("round trip mismatch: got %d, want %d", decoded.GetData(), tr.GetData())
	}
}

func TestTimeRealFormat(t *testing.T) {
	tr := TimeRealFromUint32(1704067200)
	if got, want := tr.Format(), "2024-01-01 00:00:00"; got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
	if got := TimeRealFromUint32(0).Format(); got != "" {
		t.Fatalf("Format() of unset value = %q, want empty string", got)
	}
}
