package tachograph

import (
	"encoding/json"
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/domtree"
)

// SerializeJSON renders data's decoded record tree as JSON. Binary fields
// are emitted as arrays of integers and TimeReal fields as their raw u32
// plus a derived "YYYY-MM-DD HH:MM:SS" string, per the serialization
// contract.
func SerializeJSON(data *TachographData) (string, error) {
	tree := domtree.Convert(data)
	out, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize tachograph data to json: %w", err)
	}
	return string(out), nil
}

// SerializeXML renders data's decoded record tree as XML. Binary fields
// are emitted as upper-case hex strings, the XML counterpart of
// SerializeJSON's integer arrays.
func SerializeXML(data *TachographData) (string, error) {
	tree := domtree.Convert(data)
	out, err := domtree.WriteXML("TachographData", tree)
	if err != nil {
		return "", fmt.Errorf("failed to serialize tachograph data to xml: %w", err)
	}
	return string(out), nil
}
