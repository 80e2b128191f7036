package vu

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/byteio"
	"github.com/fleetcodec/tachograph-go/internal/dd"
)

// VuFaultRecord is the Data Dictionary VuFaultRecord type (section 2.201).
//
// Binary Layout (82 bytes):
//
//	faultType(1) + faultRecordPurpose(1) + faultBeginTime(4) + faultEndTime(4) +
//	cardNumberDriverSlotBegin(18) + cardNumberCodriverSlotBegin(18) +
//	cardNumberDriverSlotEnd(18) + cardNumberCodriverSlotEnd(18)
type VuFaultRecord struct {
	FaultType                  dd.EventFaultType
	RecordPurpose               byte
	BeginTime                   dd.TimeReal
	EndTime                     dd.TimeReal
	CardNumberDriverSlotBegin   dd.FullCardNumber
	CardNumberCodriverSlotBegin dd.FullCardNumber
	CardNumberDriverSlotEnd     dd.FullCardNumber
	CardNumberCodriverSlotEnd   dd.FullCardNumber
}

const vuFaultRecordSize = 82

func (opts UnmarshalOptions) unmarshalVuFaultRecord(r *byteio.Reader) (VuFaultRecord, error) {
	d := opts.dataOpts()
	faultType, err := r.ReadByte()
	if err != nil {
		return VuFaultRecord{}, fmt.Errorf("failed to read fault type: %w", err)
	}
	purpose, err := r.ReadByte()
	if err != nil {
		return VuFaultRecord{}, fmt.Errorf("failed to read fault record purpose: %w", err)
	}
	begin, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return VuFaultRecord{}, fmt.Errorf("failed to read fault begin time: %w", err)
	}
	end, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return VuFaultRecord{}, fmt.Errorf("failed to read fault end time: %w", err)
	}
	driverBegin, err := d.UnmarshalFullCardNumber(r)
	if err != nil {
		return VuFaultRecord{}, fmt.Errorf("failed to read driver slot begin card number: %w", err)
	}
	codriverBegin, err := d.UnmarshalFullCardNumber(r)
	if err != nil {
		return VuFaultRecord{}, fmt.Errorf("failed to read codriver slot begin card number: %w", err)
	}
	driverEnd, err := d.UnmarshalFullCardNumber(r)
	if err != nil {
		return VuFaultRecord{}, fmt.Errorf("failed to read driver slot end card number: %w", err)
	}
	codriverEnd, err := d.UnmarshalFullCardNumber(r)
	if err != nil {
		return VuFaultRecord{}, fmt.Errorf("failed to read codriver slot end card number: %w", err)
	}
	return VuFaultRecord{
		FaultType:                   dd.DecodeEventFaultType(faultType),
		RecordPurpose:               purpose,
		BeginTime:                   begin,
		EndTime:                     end,
		CardNumberDriverSlotBegin:   driverBegin,
		CardNumberCodriverSlotBegin: codriverBegin,
		CardNumberDriverSlotEnd:     driverEnd,
		CardNumberCodriverSlotEnd:   codriverEnd,
	}, nil
}

// VuEventRecord is the Data Dictionary VuEventRecord type (section 2.198):
// wire-identical to VuFaultRecord with one trailing similarEventsNumber byte.
//
// Binary Layout (83 bytes): VuFaultRecord(82) + similarEventsNumber(1)
type VuEventRecord struct {
	VuFaultRecord
	SimilarEventsNumber byte
}

const vuEventRecordSize = 83

func (opts UnmarshalOptions) unmarshalVuEventRecord(r *byteio.Reader) (VuEventRecord, error) {
	base, err := opts.unmarshalVuFaultRecord(r)
	if err != nil {
		return VuEventRecord{}, err
	}
	similar, err := r.ReadByte()
	if err != nil {
		return VuEventRecord{}, fmt.Errorf("failed to read similar events number: %w", err)
	}
	return VuEventRecord{VuFaultRecord: base, SimilarEventsNumber: similar}, nil
}

// VuOverspeedControlData is the Data Dictionary VuOverSpeedingControlData
// type (section 2.212).
//
// Binary Layout (9 bytes): lastOverspeedControlTime(4) + firstOverspeedSince(4) + numberOfOverspeedSince(1)
type VuOverspeedControlData struct {
	LastOverspeedControlTime     dd.TimeReal
	FirstOverspeedSinceLastControl dd.TimeReal
	NumberOfOverspeedSinceLastControl byte
}

const vuOverspeedControlDataSize = 9

func (opts UnmarshalOptions) unmarshalVuOverspeedControlData(r *byteio.Reader) (VuOverspeedControlData, error) {
	d := opts.dataOpts()
	last, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return VuOverspeedControlData{}, fmt.Errorf("failed to read last overspeed control time: %w", err)
	}
	first, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return VuOverspeedControlData{}, fmt.Errorf("failed to read first overspeed since: %w", err)
	}
	number, err := r.ReadByte()
	if err != nil {
		return VuOverspeedControlData{}, fmt.Errorf("failed to read number of overspeeds since last control: %w", err)
	}
	return VuOverspeedControlData{
		LastOverspeedControlTime:          last,
		FirstOverspeedSinceLastControl:    first,
		NumberOfOverspeedSinceLastControl: number,
	}, nil
}

// VuOverspeedEventRecord is the Data Dictionary VuOverSpeedingEventRecord
// type (section 2.215).
//
// Binary Layout (31 bytes):
//
//	eventType(1) + eventRecordPurpose(1) + eventBeginTime(4) + eventEndTime(4) +
//	maxSpeedValue(1) + averageSpeedValue(1) + cardNumberDriverSlotBegin(18) + similarEventsNumber(1)
type VuOverspeedEventRecord struct {
	EventType                 dd.EventFaultType
	RecordPurpose             byte
	BeginTime                 dd.TimeReal
	EndTime                   dd.TimeReal
	MaxSpeedValue             byte
	AverageSpeedValue         byte
	CardNumberDriverSlotBegin dd.FullCardNumber
	SimilarEventsNumber       byte
}

const vuOverspeedEventRecordSize = 31

func (opts UnmarshalOptions) unmarshalVuOverspeedEventRecord(r *byteio.Reader) (VuOverspeedEventRecord, error) {
	d := opts.dataOpts()
	eventType, err := r.ReadByte()
	if err != nil {
		return VuOverspeedEventRecord{}, fmt.Errorf("failed to read event type: %w", err)
	}
	purpose, err := r.ReadByte()
	if err != nil {
		return VuOverspeedEventRecord{}, fmt.Errorf("failed to read event record purpose: %w", err)
	}
	begin, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return VuOverspeedEventRecord{}, fmt.Errorf("failed to read event begin time: %w", err)
	}
	end, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return VuOverspeedEventRecord{}, fmt.Errorf("failed to read event end time: %w", err)
	}
	maxSpeed, err := r.ReadByte()
	if err != nil {
		return VuOverspeedEventRecord{}, fmt.Errorf("failed to read max speed value: %w", err)
	}
	avgSpeed, err := r.ReadByte()
	if err != nil {
		return VuOverspeedEventRecord{}, fmt.Errorf("failed to read average speed value: %w", err)
	}
	cardNo, err := d.UnmarshalFullCardNumber(r)
	if err != nil {
		return VuOverspeedEventRecord{}, fmt.Errorf("failed to read driver slot begin card number: %w", err)
	}
	similar, err := r.ReadByte()
	if err != nil {
		return VuOverspeedEventRecord{}, fmt.Errorf("failed to read similar events number: %w", err)
	}
	return VuOverspeedEventRecord{
		EventType:                 dd.DecodeEventFaultType(eventType),
		RecordPurpose:             purpose,
		BeginTime:                 begin,
		EndTime:                   end,
		MaxSpeedValue:             maxSpeed,
		AverageSpeedValue:         avgSpeed,
		CardNumberDriverSlotBegin: cardNo,
		SimilarEventsNumber:       similar,
	}, nil
}

// VuTimeAdjustmentRecord is the Data Dictionary VuTimeAdjustmentRecord type
// (section 2.232).
//
// Binary Layout (98 bytes): oldTimeValue(4) + newTimeValue(4) + workshopName(36) + workshopAddress(36) + workshopCardNumber(18)
type VuTimeAdjustmentRecord struct {
	OldTimeValue       dd.TimeReal
	NewTimeValue       dd.TimeReal
	WorkshopName       dd.Name
	WorkshopAddress    dd.Address
	WorkshopCardNumber dd.FullCardNumber
}

const vuTimeAdjustmentRecordSize = 98

func (opts UnmarshalOptions) unmarshalVuTimeAdjustmentRecord(r *byteio.Reader) (VuTimeAdjustmentRecord, error) {
	d := opts.dataOpts()
	oldTime, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return VuTimeAdjustmentRecord{}, fmt.Errorf("failed to read old time value: %w", err)
	}
	newTime, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return VuTimeAdjustmentRecord{}, fmt.Errorf("failed to read new time value: %w", err)
	}
	name, err := d.UnmarshalName(r)
	if err != nil {
		return VuTimeAdjustmentRecord{}, fmt.Errorf("failed to read workshop name: %w", err)
	}
	addr, err := d.UnmarshalAddress(r)
	if err != nil {
		return VuTimeAdjustmentRecord{}, fmt.Errorf("failed to read workshop address: %w", err)
	}
	cardNo, err := d.UnmarshalFullCardNumber(r)
	if err != nil {
		return VuTimeAdjustmentRecord{}, fmt.Errorf("failed to read workshop card number: %w", err)
	}
	return VuTimeAdjustmentRecord{
		OldTimeValue:       oldTime,
		NewTimeValue:       newTime,
		WorkshopName:       name,
		WorkshopAddress:    addr,
		WorkshopCardNumber: cardNo,
	}, nil
}

// EventsAndFaultsGen1 is the Gen1 VU Events and Faults TREP payload (Annex
// 1B, Appendix 7 sections 2.2.6.4 and 2.2.6.5).
//
// Binary Layout (variable, signature trailing):
//
//	faults(1 + N*82) + events(1 + M*83) + overspeedControl(9) +
//	overspeedEvents(1 + P*31) + timeAdjustments(1 + Q*98) + signature(128)
type EventsAndFaultsGen1 struct {
	Faults            []VuFaultRecord
	Events            []VuEventRecord
	OverspeedControl  VuOverspeedControlData
	OverspeedEvents   []VuOverspeedEventRecord
	TimeAdjustments   []VuTimeAdjustmentRecord
	Signature         []byte
}

func (opts UnmarshalOptions) unmarshalEventsAndFaultsGen1(payload []byte) (EventsAndFaultsGen1, error) {
	if len(payload) < gen1SignatureSize {
		return EventsAndFaultsGen1{}, fmt.Errorf("events and faults gen1 payload shorter than signature size: %d bytes", len(payload))
	}
	data := payload[:len(payload)-gen1SignatureSize]
	signature := payload[len(payload)-gen1SignatureSize:]

	r := byteio.New(data)
	out := EventsAndFaultsGen1{Signature: signature}

	noOfFaults, err := r.ReadByte()
	if err != nil {
		return EventsAndFaultsGen1{}, fmt.Errorf("failed to read fault count: %w", err)
	}
	for i := byte(0); i < noOfFaults; i++ {
		rec, err := opts.unmarshalVuFaultRecord(r)
		if err != nil {
			return EventsAndFaultsGen1{}, fmt.Errorf("failed to read fault record %d: %w", i, err)
		}
		out.Faults = append(out.Faults, rec)
	}

	noOfEvents, err := r.ReadByte()
	if err != nil {
		return EventsAndFaultsGen1{}, fmt.Errorf("failed to read event count: %w", err)
	}
	for i := byte(0); i < noOfEvents; i++ {
		rec, err := opts.unmarshalVuEventRecord(r)
		if err != nil {
			return EventsAndFaultsGen1{}, fmt.Errorf("failed to read event record %d: %w", i, err)
		}
		out.Events = append(out.Events, rec)
	}

	overspeedControl, err := opts.unmarshalVuOverspeedControlData(r)
	if err != nil {
		return EventsAndFaultsGen1{}, fmt.Errorf("failed to read overspeed control data: %w", err)
	}
	out.OverspeedControl = overspeedControl

	noOfOverspeedEvents, err := r.ReadByte()
	if err != nil {
		return EventsAndFaultsGen1{}, fmt.Errorf("failed to read overspeed event count: %w", err)
	}
	for i := byte(0); i < noOfOverspeedEvents; i++ {
		rec, err := opts.unmarshalVuOverspeedEventRecord(r)
		if err != nil {
			return EventsAndFaultsGen1{}, fmt.Errorf("failed to read overspeed event record %d: %w", i, err)
		}
		out.OverspeedEvents = append(out.OverspeedEvents, rec)
	}

	noOfAdjustments, err := r.ReadByte()
	if err != nil {
		return EventsAndFaultsGen1{}, fmt.Errorf("failed to read time adjustment count: %w", err)
	}
	for i := byte(0); i < noOfAdjustments; i++ {
		rec, err := opts.unmarshalVuTimeAdjustmentRecord(r)
		if err != nil {
			return EventsAndFaultsGen1{}, fmt.Errorf("failed to read time adjustment record %d: %w", i, err)
		}
		out.TimeAdjustments = append(out.TimeAdjustments, rec)
	}

	if !r.AtEOF() {
		return EventsAndFaultsGen1{}, fmt.Errorf("events and faults gen1 payload has %d trailing bytes", r.Remaining())
	}

	return out, nil
}
