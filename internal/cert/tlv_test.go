package cert

import "testing"

func TestReadTLVSequenceRoundTrip(t *testing.T) {
	a := tlvElement{Tag: tagCAR, Value: []byte("CA000001")}
	b := tlvElement{Tag: tagCHR, Value: []byte("CH000001")}
	data := append(encodeTLV(a), encodeTLV(b)...)

	elements, err := readTLVSequence(data)
	if err != nil {
		t.Fatalf("readTLVSequence() error = %v", err)
	}
	if len(elements) != 2 {
		t.Fatalf("len(elements) = %d, want 2", len(elements))
	}
	if elements[0].Tag != tagCAR || string(elements[0].Value) != "CA000001" {
		t.Errorf("elements[0] = %+v, want tag %x value CA000001", elements[0], tagCAR)
	}
	if elements[1].Tag != tagCHR || string(elements[1].Value) != "CH000001" {
		t.Errorf("elements[1] = %+v, want tag %x value CH000001", elements[1], tagCHR)
	}
}

func TestReadTLVTwoByteTag(t *testing.T) {
	inner := encodeTLV(tlvElement{Tag: tagProfileID, Value: []byte{0x01}})
	outer := encodeTLV(tlvElement{Tag: tagCertificateBody, Value: inner})

	el, err := readTLV(outer)
	if err != nil {
		t.Fatalf("readTLV() error = %v", err)
	}
	if el.Tag != tagCertificateBody {
		t.Fatalf("Tag = 0x%X, want 0x%X", el.Tag, tagCertificateBody)
	}
	children, err := readTLVSequence(el.Value)
	if err != nil {
		t.Fatalf("readTLVSequence() error = %v", err)
	}
	if len(children) != 1 || children[0].Tag != tagProfileID {
		t.Fatalf("children = %+v, want one Profile-ID element", children)
	}
}

func TestReadTLVTruncatedErrors(t *testing.T) {
	if _, err := readTLV([]byte{0x42}); err == nil {
		t.Fatal("expected error for truncated TLV")
	}
}
