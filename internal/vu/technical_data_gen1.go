package vu

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/byteio"
	"github.com/fleetcodec/tachograph-go/internal/dd"
)

// VuIdentification is the Data Dictionary VuIdentification type (section
// 2.205): the manufacturer and model identity recorded in the VU's
// technical data download.
//
// Binary Layout (Generation 1, 116 bytes):
//
//	manufacturerName(36) + manufacturerAddress(36) + partNumber(16, IA5) +
//	serialNumber(8, ExtendedSerialNumber) + softwareIdentification(8) +
//	manufacturingDate(4, TimeReal) + approvalNumber(8, IA5)
type VuIdentification struct {
	ManufacturerName       dd.StringValue
	ManufacturerAddress    dd.StringValue
	PartNumber             string
	SerialNumber           dd.ExtendedSerialNumber
	SoftwareIdentification dd.SoftwareIdentification
	ManufacturingDate      dd.TimeReal
	ApprovalNumber         string
}

const vuIdentificationLenGen1 = 116

func (opts UnmarshalOptions) unmarshalVuIdentification(r *byteio.Reader) (VuIdentification, error) {
	d := opts.dataOpts()
	name, err := d.UnmarshalStringValue(r, 35)
	if err != nil {
		return VuIdentification{}, fmt.Errorf("failed to read manufacturer name: %w", err)
	}
	addr, err := d.UnmarshalStringValue(r, 35)
	if err != nil {
		return VuIdentification{}, fmt.Errorf("failed to read manufacturer address: %w", err)
	}
	part, err := d.ReadIA5(r, 16)
	if err != nil {
		return VuIdentification{}, fmt.Errorf("failed to read part number: %w", err)
	}
	serial, err := d.UnmarshalExtendedSerialNumber(r)
	if err != nil {
		return VuIdentification{}, fmt.Errorf("failed to read serial number: %w", err)
	}
	software, err := d.UnmarshalSoftwareIdentification(r)
	if err != nil {
		return VuIdentification{}, fmt.Errorf("failed to read software identification: %w", err)
	}
	manufacturingDate, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return VuIdentification{}, fmt.Errorf("failed to read manufacturing date: %w", err)
	}
	approval, err := d.ReadIA5(r, 8)
	if err != nil {
		return VuIdentification{}, fmt.Errorf("failed to read approval number: %w", err)
	}
	return VuIdentification{
		ManufacturerName:       name,
		ManufacturerAddress:    addr,
		PartNumber:             part,
		SerialNumber:           serial,
		SoftwareIdentification: software,
		ManufacturingDate:      manufacturingDate,
		ApprovalNumber:         approval,
	}, nil
}

// SensorPaired is the Data Dictionary SensorPaired type (section 2.144):
// identity of the motion sensor paired with the VU at download time.
//
// Binary Layout (Generation 1, 20 bytes):
//
//	sensorSerialNumber(8, ExtendedSerialNumber) + sensorApprovalNumber(8, IA5) + sensorPairingDate(4, TimeReal)
type SensorPaired struct {
	SerialNumber   dd.ExtendedSerialNumber
	ApprovalNumber string
	PairingDate    dd.TimeReal
}

const sensorPairedLenGen1 = 20

func (opts UnmarshalOptions) unmarshalSensorPaired(r *byteio.Reader) (SensorPaired, error) {
	d := opts.dataOpts()
	serial, err := d.UnmarshalExtendedSerialNumber(r)
	if err != nil {
		return SensorPaired{}, fmt.Errorf("failed to read sensor serial number: %w", err)
	}
	approval, err := d.ReadIA5(r, 8)
	if err != nil {
		return SensorPaired{}, fmt.Errorf("failed to read sensor approval number: %w", err)
	}
	pairingDate, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return SensorPaired{}, fmt.Errorf("failed to read sensor pairing date: %w", err)
	}
	return SensorPaired{SerialNumber: serial, ApprovalNumber: approval, PairingDate: pairingDate}, nil
}

// VuCalibrationRecord is the Data Dictionary VuCalibrationRecord type
// (section 2.174): one calibration event logged at a workshop.
//
// Binary Layout (Generation 1, 167 bytes):
//
//	calibrationPurpose(1) + workshopName(36) + workshopAddress(36) + workshopCardNumber(18) +
//	workshopCardExpiryDate(4, Datef) + vehicleIdentificationNumber(17, IA5) +
//	vehicleRegistrationIdentification(15) + wVehicleCharacteristicConstant(2) +
//	kConstantOfRecordingEquipment(2) + lTyreCircumference(2) + tyreSize(15, IA5) +
//	authorisedSpeed(1) + oldOdometerValue(3) + newOdometerValue(3) +
//	oldTimeValue(4) + newTimeValue(4) + nextCalibrationDate(4)
type VuCalibrationRecord struct {
	CalibrationPurpose                 byte
	WorkshopName                       dd.Name
	WorkshopAddress                    dd.Address
	WorkshopCardNumber                 dd.FullCardNumber
	WorkshopCardExpiryDate             dd.Datef
	VehicleIdentificationNumber        string
	VehicleRegistrationIdentification  dd.VehicleRegistrationIdentification
	WVehicleCharacteristicConstant     uint16
	KConstantOfRecordingEquipment      uint16
	LTyreCircumference                 uint16
	TyreSize                           string
	AuthorisedSpeed                    byte
	OldOdometerValue                   dd.OdometerShort
	NewOdometerValue                   dd.OdometerShort
	OldTimeValue                       dd.TimeReal
	NewTimeValue                       dd.TimeReal
	NextCalibrationDate                dd.TimeReal
}

const vuCalibrationRecordLenGen1 = 167

func (opts UnmarshalOptions) unmarshalVuCalibrationRecord(r *byteio.Reader) (VuCalibrationRecord, error) {
	d := opts.dataOpts()
	purpose, err := r.ReadByte()
	if err != nil {
		return VuCalibrationRecord{}, fmt.Errorf("failed to read calibration purpose: %w", err)
	}
	workshopName, err := d.UnmarshalName(r)
	if err != nil {
		return VuCalibrationRecord{}, fmt.Errorf("failed to read workshop name: %w", err)
	}
	workshopAddress, err := d.UnmarshalAddress(r)
	if err != nil {
		return VuCalibrationRecord{}, fmt.Errorf("failed to read workshop address: %w", err)
	}
	workshopCard, err := d.UnmarshalFullCardNumber(r)
	if err != nil {
		return VuCalibrationRecord{}, fmt.Errorf("failed to read workshop card number: %w", err)
	}
	expiry, err := d.UnmarshalDatef(r)
	if err != nil {
		return VuCalibrationRecord{}, fmt.Errorf("failed to read workshop card expiry date: %w", err)
	}
	vin, err := d.ReadIA5(r, 17)
	if err != nil {
		return VuCalibrationRecord{}, fmt.Errorf("failed to read vehicle identification number: %w", err)
	}
	vrn, err := d.UnmarshalVehicleRegistrationIdentification(r)
	if err != nil {
		return VuCalibrationRecord{}, fmt.Errorf("failed to read vehicle registration: %w", err)
	}
	w, err := r.ReadUint16()
	if err != nil {
		return VuCalibrationRecord{}, fmt.Errorf("failed to read w-vehicle characteristic constant: %w", err)
	}
	k, err := r.ReadUint16()
	if err != nil {
		return VuCalibrationRecord{}, fmt.Errorf("failed to read k-constant of recording equipment: %w", err)
	}
	l, err := r.ReadUint16()
	if err != nil {
		return VuCalibrationRecord{}, fmt.Errorf("failed to read l-tyre circumference: %w", err)
	}
	tyreSize, err := d.ReadIA5(r, 15)
	if err != nil {
		return VuCalibrationRecord{}, fmt.Errorf("failed to read tyre size: %w", err)
	}
	speed, err := r.ReadByte()
	if err != nil {
		return VuCalibrationRecord{}, fmt.Errorf("failed to read authorised speed: %w", err)
	}
	oldOdo, err := d.UnmarshalOdometerShort(r)
	if err != nil {
		return VuCalibrationRecord{}, fmt.Errorf("failed to read old odometer value: %w", err)
	}
	newOdo, err := d.UnmarshalOdometerShort(r)
	if err != nil {
		return VuCalibrationRecord{}, fmt.Errorf("failed to read new odometer value: %w", err)
	}
	oldTime, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return VuCalibrationRecord{}, fmt.Errorf("failed to read old time value: %w", err)
	}
	newTime, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return VuCalibrationRecord{}, fmt.Errorf("failed to read new time value: %w", err)
	}
	nextCalibration, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return VuCalibrationRecord{}, fmt.Errorf("failed to read next calibration date: %w", err)
	}
	return VuCalibrationRecord{
		CalibrationPurpose:                purpose,
		WorkshopName:                      workshopName,
		WorkshopAddress:                   workshopAddress,
		WorkshopCardNumber:                workshopCard,
		WorkshopCardExpiryDate:            expiry,
		VehicleIdentificationNumber:       vin,
		VehicleRegistrationIdentification: vrn,
		WVehicleCharacteristicConstant:    w,
		KConstantOfRecordingEquipment:     k,
		LTyreCircumference:                l,
		TyreSize:                          tyreSize,
		AuthorisedSpeed:                   speed,
		OldOdometerValue:                  oldOdo,
		NewOdometerValue:                  newOdo,
		OldTimeValue:                      oldTime,
		NewTimeValue:                      newTime,
		NextCalibrationDate:               nextCalibration,
	}, nil
}

// TechnicalDataGen1 is the Gen1 VU Technical Data TREP payload (Annex 1B,
// Appendix 7 section 2.2.6.5).
//
// Binary Layout (variable, signature trailing):
//
//	vuIdentification(116) + sensorPaired(20) + calibrationRecords(1 + N*167) + signature(128)
type TechnicalDataGen1 struct {
	VuIdentification    VuIdentification
	SensorPaired        SensorPaired
	CalibrationRecords  []VuCalibrationRecord
	Signature           []byte
}

func (opts UnmarshalOptions) unmarshalTechnicalDataGen1(payload []byte) (TechnicalDataGen1, error) {
	if len(payload) < gen1SignatureSize {
		return TechnicalDataGen1{}, fmt.Errorf("technical data gen1 payload shorter than signature size: %d bytes", len(payload))
	}
	data := payload[:len(payload)-gen1SignatureSize]
	signature := payload[len(payload)-gen1SignatureSize:]

	r := byteio.New(data)

	vuIdent, err := opts.unmarshalVuIdentification(r)
	if err != nil {
		return TechnicalDataGen1{}, fmt.Errorf("failed to read vu identification: %w", err)
	}
	sensor, err := opts.unmarshalSensorPaired(r)
	if err != nil {
		return TechnicalDataGen1{}, fmt.Errorf("failed to read sensor paired: %w", err)
	}

	out := TechnicalDataGen1{VuIdentification: vuIdent, SensorPaired: sensor, Signature: signature}

	noOfRecords, err := r.ReadByte()
	if err != nil {
		return TechnicalDataGen1{}, fmt.Errorf("failed to read calibration record count: %w", err)
	}
	for i := byte(0); i < noOfRecords; i++ {
		rec, err := opts.unmarshalVuCalibrationRecord(r)
		if err != nil {
			return TechnicalDataGen1{}, fmt.Errorf("failed to read calibration record %d: %w", i, err)
		}
		out.CalibrationRecords = append(out.CalibrationRecords, rec)
	}

	if !r.AtEOF() {
		return TechnicalDataGen1{}, fmt.Errorf("technical data gen1 payload has %d trailing bytes", r.Remaining())
	}

	return out, nil
}
