package card

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/byteio"
	"github.com/fleetcodec/tachograph-go/internal/dd"
)

// EventRecord is the Data Dictionary CardEventRecord (section 2.19).
//
// Binary Layout (24 bytes): eventType(1) + beginTime(4) + endTime(4) + vehicleRegistration(15)
type EventRecord struct {
	EventType                  dd.EventFaultType
	BeginTime                  dd.TimeReal
	EndTime                    dd.TimeReal
	VehicleRegistrationIdentification dd.VehicleRegistrationIdentification
}

// FaultRecord is the Data Dictionary CardFaultRecord (section 2.21): same
// wire shape as EventRecord.
//
// Binary Layout (24 bytes): faultType(1) + beginTime(4) + endTime(4) + vehicleRegistration(15)
type FaultRecord struct {
	FaultType                  dd.EventFaultType
	BeginTime                  dd.TimeReal
	EndTime                    dd.TimeReal
	VehicleRegistrationIdentification dd.VehicleRegistrationIdentification
}

const recordEventFaultLen = 24

func (opts UnmarshalOptions) unmarshalEventRecord(r *byteio.Reader) (EventRecord, error) {
	d := opts.dataOpts()
	typ, err := r.ReadByte()
	if err != nil {
		return EventRecord{}, fmt.Errorf("failed to read event type: %w", err)
	}
	begin, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return EventRecord{}, fmt.Errorf("failed to read begin time: %w", err)
	}
	end, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return EventRecord{}, fmt.Errorf("failed to read end time: %w", err)
	}
	vrn, err := d.UnmarshalVehicleRegistrationIdentification(r)
	if err != nil {
		return EventRecord{}, fmt.Errorf("failed to read vehicle registration: %w", err)
	}
	return EventRecord{
		EventType:                         dd.DecodeEventFaultType(typ),
		BeginTime:                         begin,
		EndTime:                           end,
		VehicleRegistrationIdentification: vrn,
	}, nil
}

func (opts UnmarshalOptions) unmarshalFaultRecord(r *byteio.Reader) (FaultRecord, error) {
	d := opts.dataOpts()
	typ, err := r.ReadByte()
	if err != nil {
		return FaultRecord{}, fmt.Errorf("failed to read fault type: %w", err)
	}
	begin, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return FaultRecord{}, fmt.Errorf("failed to read begin time: %w", err)
	}
	end, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return FaultRecord{}, fmt.Errorf("failed to read end time: %w", err)
	}
	vrn, err := d.UnmarshalVehicleRegistrationIdentification(r)
	if err != nil {
		return FaultRecord{}, fmt.Errorf("failed to read vehicle registration: %w", err)
	}
	return FaultRecord{
		FaultType:                         dd.DecodeEventFaultType(typ),
		BeginTime:                         begin,
		EndTime:                           end,
		VehicleRegistrationIdentification: vrn,
	}, nil
}

// isEventRecordEmpty implements the event-table pruning predicate: a
// record is empty when its event type byte is 0 (decoded as
// EventFaultTypeNoEvent) and begin and end time both report
// get_data() == 0.
func isEventRecordEmpty(e EventRecord) bool {
	return e.EventType == dd.EventFaultTypeNoEvent && e.BeginTime.GetData() == 0 && e.EndTime.GetData() == 0
}

// isFaultRecordEmpty implements the fault-table pruning predicate, kept
// distinct from isEventRecordEmpty even though both reduce to the same
// zero-check here: the Data Dictionary defines event and fault pruning
// independently, and a future revision could diverge them.
func isFaultRecordEmpty(f FaultRecord) bool {
	return f.FaultType == dd.EventFaultTypeNoEvent && f.BeginTime.GetData() == 0 && f.EndTime.GetData() == 0
}

// EventsData is the Data Dictionary CardEventData record (section 2.69):
// categoryCount categories of events (6 for Gen1, 11 for Gen2), each
// holding noOfEventsPerType records. A category with every record empty is
// pruned entirely.
type EventsData struct {
	Categories [][]EventRecord
}

func (opts UnmarshalOptions) unmarshalEventsData(data []byte, categoryCount int, recordsPerCategory int) (EventsData, error) {
	r := byteio.New(data)
	var out EventsData
	for c := 0; c < categoryCount; c++ {
		var records []EventRecord
		anyNonEmpty := false
		for i := 0; i < recordsPerCategory; i++ {
			rec, err := opts.unmarshalEventRecord(r)
			if err != nil {
				return EventsData{}, fmt.Errorf("failed to read event record %d in category %d: %w", i, c, err)
			}
			if !isEventRecordEmpty(rec) {
				anyNonEmpty = true
			}
			records = append(records, rec)
		}
		if anyNonEmpty {
			out.Categories = append(out.Categories, records)
		}
	}
	return out, nil
}

// FaultsData is the Data Dictionary CardFaultData record (section 2.74):
// exactly two categories (Appendix: "exactly two categories x
// no_faults_per_type records"). Empty categories are pruned.
type FaultsData struct {
	Categories [][]FaultRecord
}

func (opts UnmarshalOptions) unmarshalFaultsData(data []byte, recordsPerCategory int) (FaultsData, error) {
	const categoryCount = 2
	r := byteio.New(data)
	var out FaultsData
	for c := 0; c < categoryCount; c++ {
		var records []FaultRecord
		anyNonEmpty := false
		for i := 0; i < recordsPerCategory; i++ {
			rec, err := opts.unmarshalFaultRecord(r)
			if err != nil {
				return FaultsData{}, fmt.Errorf("failed to read fault record %d in category %d: %w", i, c, err)
			}
			if !isFaultRecordEmpty(rec) {
				anyNonEmpty = true
			}
			records = append(records, rec)
		}
		if anyNonEmpty {
			out.Categories = append(out.Categories, records)
		}
	}
	return out, nil
}

// eventCategoriesForGeneration returns the number of event categories for
// a driver card: 6 for Gen1, 11 for Gen2.
func eventCategoriesForGeneration(gen dd.Generation) int {
	if gen == dd.Generation2 {
		return 11
	}
	return 6
}
