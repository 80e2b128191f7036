package card

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/byteio"
	"github.com/fleetcodec/tachograph-go/internal/dd"
	"github.com/fleetcodec/tachograph-go/internal/ddserr"
)

// Identification is the Data Dictionary CardIdentification record
// (section 2.16): common card-holder identification fields shared by all
// four card kinds.
//
// Binary Layout (143 bytes):
//
//	cardIssuingMemberState(1) + cardNumber(16) + cardIssuingAuthorityName(36) +
//	cardIssueDate(4, TimeReal) + cardValidityBegin(4, TimeReal) + cardExpiryDate(4, TimeReal) +
//	holderName(72) + holderBirthDate(4, Datef) + holderPreferredLanguage(2, IA5)
type Identification struct {
	CardIssuingMemberState   dd.NationNumeric
	CardNumber               string
	CardIssuingAuthorityName dd.Name
	CardIssueDate            dd.TimeReal
	CardValidityBegin        dd.TimeReal
	CardExpiryDate           dd.TimeReal
	HolderName               dd.HolderName
	HolderBirthDate          dd.Datef
	HolderPreferredLanguage  string
}

func (opts UnmarshalOptions) unmarshalIdentification(data []byte) (Identification, error) {
	r := byteio.New(data)
	d := opts.dataOpts()

	nation, err := r.ReadByte()
	if err != nil {
		return Identification{}, fmt.Errorf("failed to read issuing member state: %w", err)
	}
	cardNumber, err := d.ReadIA5(r, 16)
	if err != nil {
		return Identification{}, fmt.Errorf("failed to read card number: %w", err)
	}
	authority, err := d.UnmarshalName(r)
	if err != nil {
		return Identification{}, fmt.Errorf("failed to read issuing authority name: %w", err)
	}
	issueDate, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return Identification{}, fmt.Errorf("failed to read issue date: %w", err)
	}
	validityBegin, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return Identification{}, fmt.Errorf("failed to read validity begin: %w", err)
	}
	expiry, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return Identification{}, fmt.Errorf("failed to read expiry date: %w", err)
	}
	holderName, err := d.UnmarshalHolderName(r)
	if err != nil {
		return Identification{}, fmt.Errorf("failed to read holder name: %w", err)
	}
	birthDate, err := d.UnmarshalDatef(r)
	if err != nil {
		return Identification{}, fmt.Errorf("failed to read holder birth date: %w", err)
	}
	language, err := d.ReadIA5(r, 2)
	if err != nil {
		return Identification{}, fmt.Errorf("failed to read preferred language: %w", err)
	}

	return Identification{
		CardIssuingMemberState:   dd.NationNumeric(nation),
		CardNumber:               cardNumber,
		CardIssuingAuthorityName: authority,
		CardIssueDate:            issueDate,
		CardValidityBegin:        validityBegin,
		CardExpiryDate:           expiry,
		HolderName:               holderName,
		HolderBirthDate:          birthDate,
		HolderPreferredLanguage:  language,
	}, nil
}

// ApplicationIdentification is the Data Dictionary
// CardApplicationIdentification record (section 2.9), Gen1 shape.
//
// Binary Layout (10 bytes):
//
//	typeOfTachographCardID(1) + cardStructureVersion(2) +
//	noOfEventsPerType(1) + noOfFaultsPerType(1) + activityStructureLength(2) +
//	noOfCardVehicleRecords(2) + noOfCardPlaceRecords(1)
type ApplicationIdentification struct {
	TypeOfTachographCardID  dd.EquipmentType
	CardStructureVersion    []byte
	NoOfEventsPerType       uint8
	NoOfFaultsPerType       uint8
	ActivityStructureLength uint16
	NoOfCardVehicleRecords  uint16
	NoOfCardPlaceRecords    uint8
}

func (opts UnmarshalOptions) unmarshalApplicationIdentification(data []byte) (ApplicationIdentification, error) {
	r := byteio.New(data)
	cardType, err := r.ReadByte()
	if err != nil {
		return ApplicationIdentification{}, fmt.Errorf("failed to read card type: %w", err)
	}
	structVersion, err := r.ReadArray(2)
	if err != nil {
		return ApplicationIdentification{}, fmt.Errorf("failed to read structure version: %w", err)
	}
	events, err := r.ReadByte()
	if err != nil {
		return ApplicationIdentification{}, fmt.Errorf("failed to read events per type: %w", err)
	}
	faults, err := r.ReadByte()
	if err != nil {
		return ApplicationIdentification{}, fmt.Errorf("failed to read faults per type: %w", err)
	}
	activityLen, err := r.ReadUint16()
	if err != nil {
		return ApplicationIdentification{}, fmt.Errorf("failed to read activity structure length: %w", err)
	}
	vehicleRecords, err := r.ReadUint16()
	if err != nil {
		return ApplicationIdentification{}, fmt.Errorf("failed to read vehicle record count: %w", err)
	}
	placeRecords, err := r.ReadByte()
	if err != nil {
		return ApplicationIdentification{}, fmt.Errorf("failed to read place record count: %w", err)
	}
	return ApplicationIdentification{
		TypeOfTachographCardID:  dd.DecodeEquipmentType(cardType),
		CardStructureVersion:    structVersion,
		NoOfEventsPerType:       events,
		NoOfFaultsPerType:       faults,
		ActivityStructureLength: activityLen,
		NoOfCardVehicleRecords:  vehicleRecords,
		NoOfCardPlaceRecords:    placeRecords,
	}, nil
}

// ApplicationIdentificationG2 is the Gen2 CardApplicationIdentification
// record, which adds GNSS/border/company-activity/control-activity counts
// over the Gen1 shape.
//
// Binary Layout (17 bytes):
//
//	typeOfTachographCardID(1) + cardStructureVersion(2) +
//	noOfEventsPerType(1) + noOfFaultsPerType(1) + activityStructureLength(2) +
//	noOfCardVehicleRecords(2) + noOfCardPlaceRecords(2) +
//	noOfGNSSADRecords(2) + noOfSpecificConditionRecords(2) +
//	noOfCardVehicleUnitRecords(2)
type ApplicationIdentificationG2 struct {
	ApplicationIdentification
	NoOfCardPlaceRecordsG2        uint16
	NoOfGNSSADRecords             uint16
	NoOfSpecificConditionRecords  uint16
	NoOfCardVehicleUnitRecords    uint16
}

func (opts UnmarshalOptions) unmarshalApplicationIdentificationG2(data []byte) (ApplicationIdentificationG2, error) {
	if len(data) < 17 {
		return ApplicationIdentificationG2{}, fmt.Errorf("%w: application identification v2 too short", ddserr.ErrInvalidData)
	}
	base, err := opts.unmarshalApplicationIdentification(data[:10])
	if err != nil {
		return ApplicationIdentificationG2{}, err
	}
	r := byteio.New(data[9:])
	placeRecords, err := r.ReadUint16()
	if err != nil {
		return ApplicationIdentificationG2{}, fmt.Errorf("failed to read g2 place record count: %w", err)
	}
	gnss, err := r.ReadUint16()
	if err != nil {
		return ApplicationIdentificationG2{}, fmt.Errorf("failed to read gnss record count: %w", err)
	}
	specific, err := r.ReadUint16()
	if err != nil {
		return ApplicationIdentificationG2{}, fmt.Errorf("failed to read specific condition record count: %w", err)
	}
	vu, err := r.ReadUint16()
	if err != nil {
		return ApplicationIdentificationG2{}, fmt.Errorf("failed to read vehicle unit record count: %w", err)
	}
	return ApplicationIdentificationG2{
		ApplicationIdentification:   base,
		NoOfCardPlaceRecordsG2:       placeRecords,
		NoOfGNSSADRecords:            gnss,
		NoOfSpecificConditionRecords: specific,
		NoOfCardVehicleUnitRecords:   vu,
	}, nil
}

// DrivingLicenceInfo is the Data Dictionary CardDrivingLicenceInformation
// record (section 2.20).
//
// Binary Layout (53 bytes):
//
//	drivingLicenceIssuingAuthority(36) + drivingLicenceIssuingNation(1) +
//	drivingLicenceNumber(16, IA5)
//
// Invariant: if an issuing authority is present but the licence number is
// empty, this is ErrCorruptedLicenceNumber.
type DrivingLicenceInfo struct {
	DrivingLicenceIssuingAuthority dd.Name
	DrivingLicenceIssuingNation    dd.NationNumeric
	DrivingLicenceNumber           string
}

func (opts UnmarshalOptions) unmarshalDrivingLicenceInfo(data []byte) (DrivingLicenceInfo, error) {
	r := byteio.New(data)
	d := opts.dataOpts()
	authority, err := d.UnmarshalName(r)
	if err != nil {
		return DrivingLicenceInfo{}, fmt.Errorf("failed to read issuing authority: %w", err)
	}
	nation, err := r.ReadByte()
	if err != nil {
		return DrivingLicenceInfo{}, fmt.Errorf("failed to read issuing nation: %w", err)
	}
	number, err := d.ReadIA5(r, 16)
	if err != nil {
		return DrivingLicenceInfo{}, fmt.Errorf("failed to read licence number: %w", err)
	}
	if authority.Value != "" && number == "" {
		return DrivingLicenceInfo{}, fmt.Errorf("%w", ddserr.ErrCorruptedLicenceNumber)
	}
	return DrivingLicenceInfo{
		DrivingLicenceIssuingAuthority: authority,
		DrivingLicenceIssuingNation:    dd.NationNumeric(nation),
		DrivingLicenceNumber:           number,
	}, nil
}

// CardDownload is the Data Dictionary LastCardDownload record
// (section 2.89): a single TimeReal.
//
// Binary Layout (4 bytes): timestamp(4, TimeReal)
type CardDownload struct {
	Timestamp dd.TimeReal
}

func (opts UnmarshalOptions) unmarshalCardDownload(data []byte) (CardDownload, error) {
	r := byteio.New(data)
	ts, err := opts.dataOpts().UnmarshalTimeReal(r)
	if err != nil {
		return CardDownload{}, fmt.Errorf("failed to read last card download timestamp: %w", err)
	}
	return CardDownload{Timestamp: ts}, nil
}
