package dd

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/ddserr"
)

// StringValue is a code-paged text field: a 1-byte code-page tag followed
// by a fixed-length byte block.
type StringValue struct {
	CodePage byte
	Value    string
}

// UnmarshalStringValue decodes length+1 bytes (1 code-page byte + length
// data bytes) into a StringValue.
func (opts UnmarshalOptions) UnmarshalStringValue(r *Reader, length int) (StringValue, error) {
	cp, err := r.ReadByte()
	if err != nil {
		return StringValue{}, fmt.Errorf("failed to read code page: %w", err)
	}
	data, err := r.ReadArray(length)
	if err != nil {
		return StringValue{}, fmt.Errorf("failed to read string data: %w", err)
	}
	value, err := DecodeCodePageString(cp, data)
	if err != nil {
		return StringValue{}, err
	}
	return StringValue{CodePage: cp, Value: value}, nil
}

// Name is the Data Dictionary Name type (section 2.92): a 36-byte
// code-paged field (1 code-page byte + 35 data bytes).
//
// Binary Layout (36 bytes): codePage(1) + name(35)
type Name struct {
	StringValue
}

func (opts UnmarshalOptions) UnmarshalName(r *Reader) (Name, error) {
	sv, err := opts.UnmarshalStringValue(r, 35)
	if err != nil {
		return Name{}, fmt.Errorf("failed to read Name: %w", err)
	}
	return Name{sv}, nil
}

// Address is the Data Dictionary Address type (section 2.1): identical
// on-wire shape to Name.
//
// Binary Layout (36 bytes): codePage(1) + address(35)
type Address struct {
	StringValue
}

func (opts UnmarshalOptions) UnmarshalAddress(r *Reader) (Address, error) {
	sv, err := opts.UnmarshalStringValue(r, 35)
	if err != nil {
		return Address{}, fmt.Errorf("failed to read Address: %w", err)
	}
	return Address{sv}, nil
}

// HolderName is the Data Dictionary HolderName type (section 2.76): a
// surname followed by first names, each a Name-shaped field.
//
// Binary Layout (72 bytes): surname(36) + firstNames(36)
type HolderName struct {
	Surname    Name
	FirstNames Name
}

func (opts UnmarshalOptions) UnmarshalHolderName(r *Reader) (HolderName, error) {
	surname, err := opts.UnmarshalName(r)
	if err != nil {
		return HolderName{}, fmt.Errorf("failed to read surname: %w", err)
	}
	first, err := opts.UnmarshalName(r)
	if err != nil {
		return HolderName{}, fmt.Errorf("failed to read first names: %w", err)
	}
	return HolderName{Surname: surname, FirstNames: first}, nil
}

// Datef is the Data Dictionary Datef type (section 2.57): a BCD-encoded
// year, month, and day.
//
// Binary Layout (4 bytes): year(BCD 2) + month(BCD 1) + day(BCD 1)
type Datef struct {
	Year  string
	Month string
	Day   string
}

func (opts UnmarshalOptions) UnmarshalDatef(r *Reader) (Datef, error) {
	raw, err := r.ReadArray(4)
	if err != nil {
		return Datef{}, fmt.Errorf("failed to read Datef: %w", err)
	}
	year, err := DecodeBCD(raw[0:2])
	if err != nil {
		return Datef{}, fmt.Errorf("failed to decode Datef year: %w", err)
	}
	month, err := DecodeBCD(raw[2:3])
	if err != nil {
		return Datef{}, fmt.Errorf("failed to decode Datef month: %w", err)
	}
	day, err := DecodeBCD(raw[3:4])
	if err != nil {
		return Datef{}, fmt.Errorf("failed to decode Datef day: %w", err)
	}
	return Datef{Year: year, Month: month, Day: day}, nil
}

// OdometerShort is the Data Dictionary OdometerShort type (section 2.113):
// a 3-byte big-endian unsigned integer. 0xFFFFFF is the null sentinel.
//
// Binary Layout (3 bytes): value (big-endian uint24)
type OdometerShort struct {
	Value uint32
	Null  bool
}

func (opts UnmarshalOptions) UnmarshalOdometerShort(r *Reader) (OdometerShort, error) {
	v, err := r.ReadUint24()
	if err != nil {
		return OdometerShort{}, fmt.Errorf("failed to read OdometerShort: %w", err)
	}
	if v == 0xFFFFFF {
		return OdometerShort{Null: true}, nil
	}
	return OdometerShort{Value: v}, nil
}

// VehicleRegistrationNumber is the Data Dictionary VehicleRegistrationNumber
// type (section 2.166): a code-page byte followed by 13 bytes of text. Code
// page 0xFF indicates the field is blank.
//
// Binary Layout (14 bytes): codePage(1) + text(13)
type VehicleRegistrationNumber struct {
	StringValue
}

func (opts UnmarshalOptions) UnmarshalVehicleRegistrationNumber(r *Reader) (VehicleRegistrationNumber, error) {
	sv, err := opts.UnmarshalStringValue(r, 13)
	if err != nil {
		return VehicleRegistrationNumber{}, fmt.Errorf("failed to read VehicleRegistrationNumber: %w", err)
	}
	return VehicleRegistrationNumber{sv}, nil
}

// VehicleRegistrationIdentification is the Data Dictionary
// VehicleRegistrationIdentification type (section 2.165): a nation byte
// followed by a VehicleRegistrationNumber.
//
// Binary Layout (15 bytes): nation(1) + vrn(14)
type VehicleRegistrationIdentification struct {
	Nation NationNumeric
	Number VehicleRegistrationNumber
}

func (opts UnmarshalOptions) UnmarshalVehicleRegistrationIdentification(r *Reader) (VehicleRegistrationIdentification, error) {
	nation, err := r.ReadByte()
	if err != nil {
		return VehicleRegistrationIdentification{}, fmt.Errorf("failed to read nation: %w", err)
	}
	vrn, err := opts.UnmarshalVehicleRegistrationNumber(r)
	if err != nil {
		return VehicleRegistrationIdentification{}, err
	}
	return VehicleRegistrationIdentification{Nation: NationNumeric(nation), Number: vrn}, nil
}

// DriverIdentification is the identification half of FullCardNumber's
// CardNumber CHOICE when CardType is DriverCard.
//
// Binary Layout (14 bytes): driverIdentificationNumber(14, IA5)
type DriverIdentification struct {
	DriverIdentificationNumber string
}

func (opts UnmarshalOptions) UnmarshalDriverIdentification(data []byte) (DriverIdentification, error) {
	if err := mustLen(data, 14); err != nil {
		return DriverIdentification{}, fmt.Errorf("failed to read DriverIdentification: %w", err)
	}
	s, err := DecodeIA5(data)
	if err != nil {
		return DriverIdentification{}, err
	}
	return DriverIdentification{DriverIdentificationNumber: s}, nil
}

// OwnerIdentification is the identification half of FullCardNumber's
// CardNumber CHOICE when CardType is WorkshopCard or CompanyCard.
//
// Binary Layout (16 bytes): ownerIdentification(14, IA5) + cardConsecutiveIndex(2, IA5)
type OwnerIdentification struct {
	OwnerIdentification   string
	CardConsecutiveIndex  string
}

func (opts UnmarshalOptions) UnmarshalOwnerIdentification(data []byte) (OwnerIdentification, error) {
	if err := mustLen(data, 16); err != nil {
		return OwnerIdentification{}, fmt.Errorf("failed to read OwnerIdentification: %w", err)
	}
	owner, err := DecodeIA5(data[0:14])
	if err != nil {
		return OwnerIdentification{}, err
	}
	idx, err := DecodeIA5(data[14:16])
	if err != nil {
		return OwnerIdentification{}, err
	}
	return OwnerIdentification{OwnerIdentification: owner, CardConsecutiveIndex: idx}, nil
}

// FullCardNumber is the Data Dictionary FullCardNumber type (section 2.73).
// A card type of Unknown with no identification payload is treated as the
// "NullCard" sentinel and decodes to a blank value.
//
// Binary Layout (18 bytes): cardType(1) + issuingMemberState(1) + cardNumber(16, CHOICE)
type FullCardNumber struct {
	CardType               EquipmentType
	CardIssuingMemberState NationNumeric
	DriverIdentification   *DriverIdentification
	OwnerIdentification    *OwnerIdentification
}

func (opts UnmarshalOptions) UnmarshalFullCardNumber(r *Reader) (FullCardNumber, error) {
	data, err := r.ReadArray(18)
	if err != nil {
		return FullCardNumber{}, fmt.Errorf("failed to read FullCardNumber: %w", err)
	}
	cardType := DecodeEquipmentType(data[0])
	out := FullCardNumber{
		CardType:               cardType,
		CardIssuingMemberState: NationNumeric(data[1]),
	}
	body := data[2:18]
	switch cardType {
	case EquipmentTypeDriverCard:
		d, err := opts.UnmarshalDriverIdentification(body[:14])
		if err != nil {
			return FullCardNumber{}, fmt.Errorf("failed to read driver identification: %w", err)
		}
		out.DriverIdentification = &d
	case EquipmentTypeWorkshopCard, EquipmentTypeControlCard, EquipmentTypeCompanyCard:
		o, err := opts.UnmarshalOwnerIdentification(body)
		if err != nil {
			return FullCardNumber{}, fmt.Errorf("failed to read owner identification: %w", err)
		}
		out.OwnerIdentification = &o
	}
	return out, nil
}

// MonthYear is the Data Dictionary month/year pair embedded in
// ExtendedSerialNumber: two BCD digits of month, two BCD digits of year.
//
// Binary Layout (2 bytes): month(BCD 1) + year(BCD 1)
type MonthYear struct {
	Month string
	Year  string
}

func (opts UnmarshalOptions) UnmarshalMonthYear(r *Reader) (MonthYear, error) {
	raw, err := r.ReadArray(2)
	if err != nil {
		return MonthYear{}, fmt.Errorf("failed to read MonthYear: %w", err)
	}
	month, err := DecodeBCD(raw[0:1])
	if err != nil {
		return MonthYear{}, fmt.Errorf("failed to decode month: %w", err)
	}
	year, err := DecodeBCD(raw[1:2])
	if err != nil {
		return MonthYear{}, fmt.Errorf("failed to decode year: %w", err)
	}
	return MonthYear{Month: month, Year: year}, nil
}

// ExtendedSerialNumber is the Data Dictionary ExtendedSerialNumber type
// (section 2.72).
//
// Binary Layout (8 bytes): serialNumber(4) + monthYear(2) + type(1) + manufacturerCode(1)
type ExtendedSerialNumber struct {
	SerialNumber     uint32
	MonthYear        MonthYear
	Type             byte
	ManufacturerCode byte
}

func (opts UnmarshalOptions) UnmarshalExtendedSerialNumber(r *Reader) (ExtendedSerialNumber, error) {
	serial, err := r.ReadUint32()
	if err != nil {
		return ExtendedSerialNumber{}, fmt.Errorf("failed to read serial number: %w", err)
	}
	my, err := opts.UnmarshalMonthYear(r)
	if err != nil {
		return ExtendedSerialNumber{}, err
	}
	typ, err := r.ReadByte()
	if err != nil {
		return ExtendedSerialNumber{}, fmt.Errorf("failed to read type: %w", err)
	}
	manu, err := r.ReadByte()
	if err != nil {
		return ExtendedSerialNumber{}, fmt.Errorf("failed to read manufacturer code: %w", err)
	}
	return ExtendedSerialNumber{
		SerialNumber:     serial,
		MonthYear:        my,
		Type:             typ,
		ManufacturerCode: manu,
	}, nil
}

// SoftwareIdentification is the Data Dictionary SoftwareIdentification type
// embedded in VuIdentification: a software version string followed by its
// installation date. Despite the ASN.1 naming, the Gen1 wire shape packs
// both fields into 8 bytes total, not 16.
//
// Binary Layout (8 bytes): softwareVersion(4, IA5) + softwareInstallationDate(4, TimeReal)
type SoftwareIdentification struct {
	SoftwareVersion          string
	SoftwareInstallationDate TimeReal
}

func (opts UnmarshalOptions) UnmarshalSoftwareIdentification(r *Reader) (SoftwareIdentification, error) {
	version, err := opts.readIA5(r, 4)
	if err != nil {
		return SoftwareIdentification{}, fmt.Errorf("failed to read software version: %w", err)
	}
	installDate, err := opts.UnmarshalTimeReal(r)
	if err != nil {
		return SoftwareIdentification{}, fmt.Errorf("failed to read software installation date: %w", err)
	}
	return SoftwareIdentification{SoftwareVersion: version, SoftwareInstallationDate: installDate}, nil
}

// readIA5 is a small helper shared by record decoders that read a
// fixed-length IA5 field directly off a Reader.
func (opts UnmarshalOptions) readIA5(r *Reader, n int) (string, error) {
	data, err := r.ReadArray(n)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ddserr.ErrInputUnderflow, err)
	}
	return DecodeIA5(data)
}

// ReadIA5 reads n bytes and decodes them as IA5 text, trimming trailing NUL
// and whitespace.
func (opts UnmarshalOptions) ReadIA5(r *Reader, n int) (string, error) {
	return opts.readIA5(r, n)
}
