package domtree

import "encoding/json"

// MarshalJSON renders b as a JSON array of integers (one per byte), per the
// serialization contract for binary fields.
func (b RawBytes) MarshalJSON() ([]byte, error) {
	ints := make([]int, len(b))
	for i, v := range b {
		ints[i] = int(v)
	}
	return json.Marshal(ints)
}
