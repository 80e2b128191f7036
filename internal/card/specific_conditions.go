package card

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/byteio"
	"github.com/fleetcodec/tachograph-go/internal/dd"
)

// SpecificConditionType is the Data Dictionary SpecificConditionType enum
// (section 2.127): out-of-scope / ferry-train-crossing / unknown.
type SpecificConditionType byte

// SpecificConditionRecord is the Data Dictionary SpecificConditionRecord
// (section 2.126), Gen2-only.
//
// Binary Layout (5 bytes): entryTime(4, TimeReal) + specificConditionType(1)
type SpecificConditionRecord struct {
	EntryTime             dd.TimeReal
	SpecificConditionType SpecificConditionType
}

func isSpecificConditionRecordEmpty(s SpecificConditionRecord) bool {
	return s.EntryTime.GetData() == 0
}

func (opts UnmarshalOptions) unmarshalSpecificConditionRecord(r *byteio.Reader) (SpecificConditionRecord, error) {
	d := opts.dataOpts()
	t, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return SpecificConditionRecord{}, fmt.Errorf("failed to read entry time: %w", err)
	}
	typ, err := r.ReadByte()
	if err != nil {
		return SpecificConditionRecord{}, fmt.Errorf("failed to read specific condition type: %w", err)
	}
	return SpecificConditionRecord{EntryTime: t, SpecificConditionType: SpecificConditionType(typ)}, nil
}

// SpecificConditions is the Data Dictionary CardSpecificConditions record
// (section 2.128): a flat array of condition records, unindexed.
type SpecificConditions struct {
	Records []SpecificConditionRecord
}

func (opts UnmarshalOptions) unmarshalSpecificConditions(data []byte, recordCount int) (SpecificConditions, error) {
	r := byteio.New(data)
	var out SpecificConditions
	for i := 0; i < recordCount; i++ {
		rec, err := opts.unmarshalSpecificConditionRecord(r)
		if err != nil {
			return SpecificConditions{}, fmt.Errorf("failed to read specific condition record %d: %w", i, err)
		}
		if isSpecificConditionRecordEmpty(rec) {
			continue
		}
		out.Records = append(out.Records, rec)
	}
	return out, nil
}
