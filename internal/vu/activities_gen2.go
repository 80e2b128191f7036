package vu

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/byteio"
)

// ActivitiesGen2 is the Gen2 VU Activities TREP payload for one downloaded
// day: a sequence of RecordArrays, kept structural for the same reason as
// OverviewGen2.
type ActivitiesGen2 struct {
	Arrays []RecordArray
}

func (opts UnmarshalOptions) unmarshalActivitiesGen2(payload []byte) (ActivitiesGen2, error) {
	r := byteio.New(payload)
	arrays, err := ReadRecordArrays(r)
	if err != nil {
		return ActivitiesGen2{}, fmt.Errorf("failed to read activities record arrays: %w", err)
	}
	return ActivitiesGen2{Arrays: arrays}, nil
}
