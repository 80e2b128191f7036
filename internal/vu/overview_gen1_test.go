package vu

import "testing"

func TestUnmarshalOverviewGen1MinimalZeroRecords(t *testing.T) {
	var opts UnmarshalOptions

	// Fixed-size fields up to and including companyOrWorkshopName, then a
	// zero company-locks count and a zero control-activity count.
	fixed := make([]byte, 194+194+17+15+4+4+4+1+4+18+36)
	payload := append(fixed, 0x00, 0x00) // noOfLocks=0, noOfControls=0
	payload = append(payload, make([]byte, gen1SignatureSize)...)

	out, err := opts.unmarshalOverviewGen1(payload)
	if err != nil {
		t.Fatalf("unmarshalOverviewGen1() error = %v", err)
	}
	if len(out.CompanyLocks) != 0 || len(out.ControlActivity) != 0 {
		t.Fatalf("expected no locks/controls, got %+v", out)
	}
	if len(out.Signature) != gen1SignatureSize {
		t.Fatalf("len(Signature) = %d, want %d", len(out.Signature), gen1SignatureSize)
	}
}

func TestUnmarshalOverviewGen1TooShortForSignature(t *testing.T) {
	var opts UnmarshalOptions
	if _, err := opts.unmarshalOverviewGen1(make([]byte, gen1SignatureSize-1)); err == nil {
		t.Fatal("expected error for payload shorter than signature size")
	}
}
