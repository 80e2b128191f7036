package domtree

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/fleetcodec/tachograph-go/internal/dd"
)

type sample struct {
	Name      string
	Signature []byte
	When      dd.TimeReal
	Tags      []string
}

func TestConvertStructFields(t *testing.T) {
	s := sample{
		Name:      "hello",
		Signature: []byte{0x01, 0xFF},
		When:      dd.TimeRealFromUint32(1),
		Tags:      []string{"a", "b"},
	}
	tree := Convert(s)
	m, ok := tree.(map[string]any)
	if !ok {
		t.Fatalf("Convert() = %T, want map[string]any", tree)
	}
	if m["Name"] != "hello" {
		t.Errorf("Name = %v, want hello", m["Name"])
	}
	raw, ok := m["Signature"].(RawBytes)
	if !ok || len(raw) != 2 {
		t.Fatalf("Signature = %v, want RawBytes of length 2", m["Signature"])
	}
	tr, ok := m["When"].(TimeRealView)
	if !ok || tr.Seconds != 1 {
		t.Fatalf("When = %v, want TimeRealView{Seconds: 1}", m["When"])
	}
	tags, ok := m["Tags"].([]any)
	if !ok || len(tags) != 2 {
		t.Fatalf("Tags = %v, want slice of length 2", m["Tags"])
	}
}

func TestConvertNilPointer(t *testing.T) {
	var p *sample
	if got := Convert(p); got != nil {
		t.Errorf("Convert(nil pointer) = %v, want nil", got)
	}
}

func TestRawBytesMarshalJSONIsIntegerArray(t *testing.T) {
	out, err := json.Marshal(RawBytes{0x00, 0x01, 0xFF})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(out) != "[0,1,255]" {
		t.Errorf("json output = %s, want [0,1,255]", out)
	}
}

func TestWriteXMLRendersBytesAsUpperHex(t *testing.T) {
	s := sample{Name: "n", Signature: []byte{0xAB, 0xCD}, When: dd.TimeRealFromUint32(0)}
	out, err := WriteXML("Sample", Convert(s))
	if err != nil {
		t.Fatalf("WriteXML() error = %v", err)
	}
	if !strings.Contains(string(out), "<Signature>ABCD</Signature>") {
		t.Errorf("xml output missing upper-hex signature:\n%s", out)
	}
}
