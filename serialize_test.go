package tachograph

import (
	"strings"
	"testing"
)

func buildMinimalVUGen1() *TachographData {
	fixed := make([]byte, 194+194+17+15+4+4+4+1+4+18+36)
	payload := append(fixed, 0x00, 0x00)
	payload = append(payload, make([]byte, 128)...)
	data := append([]byte{0x76, 0x01}, payload...)

	out, err := ParseBytes(data)
	if err != nil {
		panic(err)
	}
	return out
}

func TestSerializeJSONContainsTimeRealShape(t *testing.T) {
	data := buildMinimalVUGen1()
	out, err := SerializeJSON(data)
	if err != nil {
		t.Fatalf("SerializeJSON() error = %v", err)
	}
	if !strings.Contains(out, `"seconds"`) || !strings.Contains(out, `"formatted"`) {
		t.Errorf("json output missing TimeReal shape:\n%s", out[:min(len(out), 500)])
	}
}

func TestSerializeXMLContainsUpperHexSignature(t *testing.T) {
	data := buildMinimalVUGen1()
	out, err := SerializeXML(data)
	if err != nil {
		t.Fatalf("SerializeXML() error = %v", err)
	}
	if !strings.Contains(out, "<Signature>") {
		t.Errorf("xml output missing Signature element:\n%s", out[:min(len(out), 500)])
	}
}
