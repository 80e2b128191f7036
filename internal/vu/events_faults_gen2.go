package vu

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/byteio"
)

// EventsAndFaultsGen2 is the Gen2 VU Events and Faults TREP payload: a
// sequence of RecordArrays, kept structural for the same reason as
// OverviewGen2. Gen2v2 adds extra record arrays (e.g. VU power supply
// interruption, sensor/GNSS faults) that are carried as additional entries
// rather than named fields.
type EventsAndFaultsGen2 struct {
	Arrays []RecordArray
}

func (opts UnmarshalOptions) unmarshalEventsAndFaultsGen2(payload []byte) (EventsAndFaultsGen2, error) {
	r := byteio.New(payload)
	arrays, err := ReadRecordArrays(r)
	if err != nil {
		return EventsAndFaultsGen2{}, fmt.Errorf("failed to read events and faults record arrays: %w", err)
	}
	return EventsAndFaultsGen2{Arrays: arrays}, nil
}
