package vu

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/byteio"
	"github.com/fleetcodec/tachograph-go/internal/card"
	"github.com/fleetcodec/tachograph-go/internal/dd"
)

// CardIWRecord is the Data Dictionary VuCardIWRecord (Gen1 shape): logged
// each time a card is inserted into or withdrawn from the VU during the
// downloaded day.
//
// Binary Layout (129 bytes):
//
//	cardHolderName(72) + fullCardNumber(18) + cardExpiryDate(4) + cardInsertionTime(4) +
//	vehicleOdometerAtInsertion(3) + cardSlotNumber(1) + cardWithdrawalTime(4) +
//	vehicleOdometerAtWithdrawal(3) + previousVehicleInfo(19) + manualInputFlag(1)
type CardIWRecord struct {
	CardHolderName             dd.HolderName
	FullCardNumber             dd.FullCardNumber
	CardExpiryDate             dd.TimeReal
	CardInsertionTime          dd.TimeReal
	VehicleOdometerAtInsertion dd.OdometerShort
	CardSlotNumber             byte
	CardWithdrawalTime         dd.TimeReal
	VehicleOdometerAtWithdrawal dd.OdometerShort
	PreviousVehicleInfo        []byte
	ManualInputFlag            byte
}

const cardIWRecordSize = 129

func (opts UnmarshalOptions) unmarshalCardIWRecord(r *byteio.Reader) (CardIWRecord, error) {
	d := opts.dataOpts()
	name, err := d.UnmarshalHolderName(r)
	if err != nil {
		return CardIWRecord{}, fmt.Errorf("failed to read card holder name: %w", err)
	}
	cardNo, err := d.UnmarshalFullCardNumber(r)
	if err != nil {
		return CardIWRecord{}, fmt.Errorf("failed to read full card number: %w", err)
	}
	expiry, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return CardIWRecord{}, fmt.Errorf("failed to read card expiry date: %w", err)
	}
	insertion, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return CardIWRecord{}, fmt.Errorf("failed to read card insertion time: %w", err)
	}
	odoIn, err := d.UnmarshalOdometerShort(r)
	if err != nil {
		return CardIWRecord{}, fmt.Errorf("failed to read odometer at insertion: %w", err)
	}
	slot, err := r.ReadByte()
	if err != nil {
		return CardIWRecord{}, fmt.Errorf("failed to read card slot number: %w", err)
	}
	withdrawal, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return CardIWRecord{}, fmt.Errorf("failed to read card withdrawal time: %w", err)
	}
	odoOut, err := d.UnmarshalOdometerShort(r)
	if err != nil {
		return CardIWRecord{}, fmt.Errorf("failed to read odometer at withdrawal: %w", err)
	}
	prevVehicle, err := r.ReadArray(19)
	if err != nil {
		return CardIWRecord{}, fmt.Errorf("failed to read previous vehicle info: %w", err)
	}
	manual, err := r.ReadByte()
	if err != nil {
		return CardIWRecord{}, fmt.Errorf("failed to read manual input flag: %w", err)
	}
	return CardIWRecord{
		CardHolderName:              name,
		FullCardNumber:              cardNo,
		CardExpiryDate:              expiry,
		CardInsertionTime:           insertion,
		VehicleOdometerAtInsertion:  odoIn,
		CardSlotNumber:              slot,
		CardWithdrawalTime:          withdrawal,
		VehicleOdometerAtWithdrawal: odoOut,
		PreviousVehicleInfo:         prevVehicle,
		ManualInputFlag:             manual,
	}, nil
}

// ActivitiesGen1 is the Gen1 VU Activities TREP payload for one downloaded
// day (Annex 1B Appendix 7 section 2.2.6.3).
//
// Binary Layout (variable, signature trailing):
//
//	dateOfDay(4, TimeReal) + odometerMidnight(3, OdometerShort) +
//	cardIWData(2 + N*129) + activityChanges(2 + M*2) +
//	placeRecords(1 + P*28) + specificConditions(2 + Q*5) + signature(128)
type ActivitiesGen1 struct {
	DateOfDay           dd.TimeReal
	OdometerMidnight    dd.OdometerShort
	CardIWRecords       []CardIWRecord
	ActivityChanges     []card.ActivityChangeInfo
	PlaceRecords        []VuPlaceRecord
	SpecificConditions  []SpecificConditionRecord
	Signature           []byte
}

// VuPlaceRecord pairs a PlaceRecord with the card that was used when the
// place entry was made, per the VU-side place log (distinct from the
// card-side place storage decoded in internal/card).
//
// Binary Layout (28 bytes): fullCardNumber(18) + placeRecord(10)
type VuPlaceRecord struct {
	FullCardNumber dd.FullCardNumber
	EntryTime      dd.TimeReal
	EntryType      byte
	Country        dd.NationNumeric
	Region         byte
	Odometer       dd.OdometerShort
}

// SpecificConditionRecord is the VU-side specific condition entry (spec
// section 4.7), wire-identical to the card-side record.
//
// Binary Layout (5 bytes): entryTime(4, TimeReal) + specificConditionType(1)
type SpecificConditionRecord struct {
	EntryTime             dd.TimeReal
	SpecificConditionType byte
}

func (opts UnmarshalOptions) unmarshalVuPlaceRecord(r *byteio.Reader) (VuPlaceRecord, error) {
	d := opts.dataOpts()
	cardNo, err := d.UnmarshalFullCardNumber(r)
	if err != nil {
		return VuPlaceRecord{}, fmt.Errorf("failed to read full card number: %w", err)
	}
	entryTime, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return VuPlaceRecord{}, fmt.Errorf("failed to read entry time: %w", err)
	}
	entryType, err := r.ReadByte()
	if err != nil {
		return VuPlaceRecord{}, fmt.Errorf("failed to read entry type: %w", err)
	}
	country, err := r.ReadByte()
	if err != nil {
		return VuPlaceRecord{}, fmt.Errorf("failed to read country: %w", err)
	}
	region, err := r.ReadByte()
	if err != nil {
		return VuPlaceRecord{}, fmt.Errorf("failed to read region: %w", err)
	}
	odometer, err := d.UnmarshalOdometerShort(r)
	if err != nil {
		return VuPlaceRecord{}, fmt.Errorf("failed to read odometer: %w", err)
	}
	return VuPlaceRecord{
		FullCardNumber: cardNo,
		EntryTime:      entryTime,
		EntryType:      entryType,
		Country:        dd.NationNumeric(country),
		Region:         region,
		Odometer:       odometer,
	}, nil
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
	return SpecificConditionRecord{EntryTime: t, SpecificConditionType: typ}, nil
}

func (opts UnmarshalOptions) unmarshalActivitiesGen1(payload []byte) (ActivitiesGen1, error) {
	if len(payload) < gen1SignatureSize {
		return ActivitiesGen1{}, fmt.Errorf("activities gen1 payload shorter than signature size: %d bytes", len(payload))
	}
	data := payload[:len(payload)-gen1SignatureSize]
	signature := payload[len(payload)-gen1SignatureSize:]

	r := byteio.New(data)
	d := opts.dataOpts()

	dateOfDay, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return ActivitiesGen1{}, fmt.Errorf("failed to read date of day: %w", err)
	}
	odometer, err := d.UnmarshalOdometerShort(r)
	if err != nil {
		return ActivitiesGen1{}, fmt.Errorf("failed to read odometer at midnight: %w", err)
	}

	out := ActivitiesGen1{DateOfDay: dateOfDay, OdometerMidnight: odometer, Signature: signature}

	noOfIW, err := r.ReadUint16()
	if err != nil {
		return ActivitiesGen1{}, fmt.Errorf("failed to read card iw record count: %w", err)
	}
	for i := uint16(0); i < noOfIW; i++ {
		rec, err := opts.unmarshalCardIWRecord(r)
		if err != nil {
			return ActivitiesGen1{}, fmt.Errorf("failed to read card iw record %d: %w", i, err)
		}
		out.CardIWRecords = append(out.CardIWRecords, rec)
	}

	noOfChanges, err := r.ReadUint16()
	if err != nil {
		return ActivitiesGen1{}, fmt.Errorf("failed to read activity change count: %w", err)
	}
	for i := uint16(0); i < noOfChanges; i++ {
		w, err := r.ReadUint16()
		if err != nil {
			return ActivitiesGen1{}, fmt.Errorf("failed to read activity change %d: %w", i, err)
		}
		out.ActivityChanges = append(out.ActivityChanges, card.DecodeActivityChangeInfo(w, false))
	}

	noOfPlaces, err := r.ReadByte()
	if err != nil {
		return ActivitiesGen1{}, fmt.Errorf("failed to read place record count: %w", err)
	}
	for i := byte(0); i < noOfPlaces; i++ {
		rec, err := opts.unmarshalVuPlaceRecord(r)
		if err != nil {
			return ActivitiesGen1{}, fmt.Errorf("failed to read place record %d: %w", i, err)
		}
		out.PlaceRecords = append(out.PlaceRecords, rec)
	}

	noOfConditions, err := r.ReadUint16()
	if err != nil {
		return ActivitiesGen1{}, fmt.Errorf("failed to read specific condition count: %w", err)
	}
	for i := uint16(0); i < noOfConditions; i++ {
		rec, err := opts.unmarshalSpecificConditionRecord(r)
		if err != nil {
			return ActivitiesGen1{}, fmt.Errorf("failed to read specific condition %d: %w", i, err)
		}
		out.SpecificConditions = append(out.SpecificConditions, rec)
	}

	if !r.AtEOF() {
		return ActivitiesGen1{}, fmt.Errorf("activities gen1 payload has %d trailing bytes", r.Remaining())
	}

	return out, nil
}
