package card

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/byteio"
	"github.com/fleetcodec/tachograph-go/internal/dd"
)

// GNSSAccumulatedDriving is the Data Dictionary GNSSAccumulatedDriving
// record (section 2.75), Gen2-only: periodic position capture taken every
// three hours of accumulated driving time.
//
// Binary Layout (13 bytes):
//
//	timeStamp(4, TimeReal) + accuracy(1) + latitude(4) + longitude(4)
type GNSSAccumulatedDriving struct {
	TimeStamp             dd.TimeReal
	GNSSAccuracy          byte
	GeoCoordinatesLatitude int32
	GeoCoordinatesLongitude int32
}

func isGNSSRecordEmpty(g GNSSAccumulatedDriving) bool {
	return g.TimeStamp.GetData() == 0
}

func (opts UnmarshalOptions) unmarshalGNSSRecord(r *byteio.Reader) (GNSSAccumulatedDriving, error) {
	d := opts.dataOpts()
	ts, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return GNSSAccumulatedDriving{}, fmt.Errorf("failed to read gnss timestamp: %w", err)
	}
	accuracy, err := r.ReadByte()
	if err != nil {
		return GNSSAccumulatedDriving{}, fmt.Errorf("failed to read gnss accuracy: %w", err)
	}
	lat, err := r.ReadUint32()
	if err != nil {
		return GNSSAccumulatedDriving{}, fmt.Errorf("failed to read latitude: %w", err)
	}
	lon, err := r.ReadUint32()
	if err != nil {
		return GNSSAccumulatedDriving{}, fmt.Errorf("failed to read longitude: %w", err)
	}
	return GNSSAccumulatedDriving{
		TimeStamp:               ts,
		GNSSAccuracy:            accuracy,
		GeoCoordinatesLatitude:  int32(lat),
		GeoCoordinatesLongitude: int32(lon),
	}, nil
}

// GNSSPlaces is the Data Dictionary CardGNSSPlaceRecord collection
// (section 2.76), Gen2-only.
type GNSSPlaces struct {
	Records []GNSSAccumulatedDriving
}

func (opts UnmarshalOptions) unmarshalGNSSPlaces(data []byte, recordCount int) (GNSSPlaces, error) {
	r := byteio.New(data)
	var out GNSSPlaces
	for i := 0; i < recordCount; i++ {
		rec, err := opts.unmarshalGNSSRecord(r)
		if err != nil {
			return GNSSPlaces{}, fmt.Errorf("failed to read gnss record %d: %w", i, err)
		}
		if isGNSSRecordEmpty(rec) {
			continue
		}
		out.Records = append(out.Records, rec)
	}
	return out, nil
}

// BorderCrossingRecord is the Data Dictionary CardBorderCrossingRecord
// (section 2.9a), Gen2v2-only.
//
// Binary Layout (18 bytes):
//
//	countryLeft(1) + countryEntered(1) + entryTime(4, TimeReal) +
//	accuracy(1) + latitude(4) + longitude(4) + vehicleOdometerValue(3)
type BorderCrossingRecord struct {
	CountryLeft     dd.NationNumeric
	CountryEntered  dd.NationNumeric
	EntryTime       dd.TimeReal
	GNSSAccuracy    byte
	Latitude        int32
	Longitude       int32
	VehicleOdometer dd.OdometerShort
}

func isBorderCrossingRecordEmpty(b BorderCrossingRecord) bool {
	return b.EntryTime.GetData() == 0
}

func (opts UnmarshalOptions) unmarshalBorderCrossingRecord(r *byteio.Reader) (BorderCrossingRecord, error) {
	d := opts.dataOpts()
	left, err := r.ReadByte()
	if err != nil {
		return BorderCrossingRecord{}, fmt.Errorf("failed to read country left: %w", err)
	}
	entered, err := r.ReadByte()
	if err != nil {
		return BorderCrossingRecord{}, fmt.Errorf("failed to read country entered: %w", err)
	}
	ts, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return BorderCrossingRecord{}, fmt.Errorf("failed to read entry time: %w", err)
	}
	accuracy, err := r.ReadByte()
	if err != nil {
		return BorderCrossingRecord{}, fmt.Errorf("failed to read gnss accuracy: %w", err)
	}
	lat, err := r.ReadUint32()
	if err != nil {
		return BorderCrossingRecord{}, fmt.Errorf("failed to read latitude: %w", err)
	}
	lon, err := r.ReadUint32()
	if err != nil {
		return BorderCrossingRecord{}, fmt.Errorf("failed to read longitude: %w", err)
	}
	odometer, err := d.UnmarshalOdometerShort(r)
	if err != nil {
		return BorderCrossingRecord{}, fmt.Errorf("failed to read odometer: %w", err)
	}
	return BorderCrossingRecord{
		CountryLeft:     dd.NationNumeric(left),
		CountryEntered:  dd.NationNumeric(entered),
		EntryTime:       ts,
		GNSSAccuracy:    accuracy,
		Latitude:        int32(lat),
		Longitude:       int32(lon),
		VehicleOdometer: odometer,
	}, nil
}

// BorderCrossings is the Data Dictionary CardBorderCrossings record
// (section 2.9b), Gen2v2-only.
type BorderCrossings struct {
	Records []BorderCrossingRecord
}

func (opts UnmarshalOptions) unmarshalBorderCrossings(data []byte, recordCount int) (BorderCrossings, error) {
	r := byteio.New(data)
	var out BorderCrossings
	for i := 0; i < recordCount; i++ {
		rec, err := opts.unmarshalBorderCrossingRecord(r)
		if err != nil {
			return BorderCrossings{}, fmt.Errorf("failed to read border crossing record %d: %w", i, err)
		}
		if isBorderCrossingRecordEmpty(rec) {
			continue
		}
		out.Records = append(out.Records, rec)
	}
	return out, nil
}

// VehicleUnitRecord is the Data Dictionary CardVehicleUnitRecord
// (section 2.28a), Gen2v2-only: each VU that read this card, for
// cross-VU audit trails.
//
// Binary Layout (10 bytes): timeStamp(4, TimeReal) + manufacturerCode(1) + deviceID(1) + softwareVersion(4)
type VehicleUnitRecord struct {
	TimeStamp        dd.TimeReal
	ManufacturerCode byte
	DeviceID         byte
	SoftwareVersion  []byte
}

func isVehicleUnitRecordEmpty(v VehicleUnitRecord) bool {
	return v.TimeStamp.GetData() == 0
}

func (opts UnmarshalOptions) unmarshalVehicleUnitRecord(r *byteio.Reader) (VehicleUnitRecord, error) {
	d := opts.dataOpts()
	ts, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return VehicleUnitRecord{}, fmt.Errorf("failed to read timestamp: %w", err)
	}
	manu, err := r.ReadByte()
	if err != nil {
		return VehicleUnitRecord{}, fmt.Errorf("failed to read manufacturer code: %w", err)
	}
	device, err := r.ReadByte()
	if err != nil {
		return VehicleUnitRecord{}, fmt.Errorf("failed to read device id: %w", err)
	}
	version, err := r.ReadArray(4)
	if err != nil {
		return VehicleUnitRecord{}, fmt.Errorf("failed to read software version: %w", err)
	}
	return VehicleUnitRecord{
		TimeStamp:        ts,
		ManufacturerCode: manu,
		DeviceID:         device,
		SoftwareVersion:  version,
	}, nil
}

// VehicleUnitsUsed is the Data Dictionary CardVehicleUnitsUsed record
// (section 2.28b), Gen2-only.
type VehicleUnitsUsed struct {
	Records []VehicleUnitRecord
}

func (opts UnmarshalOptions) unmarshalVehicleUnitsUsed(data []byte, recordCount int) (VehicleUnitsUsed, error) {
	r := byteio.New(data)
	var out VehicleUnitsUsed
	for i := 0; i < recordCount; i++ {
		rec, err := opts.unmarshalVehicleUnitRecord(r)
		if err != nil {
			return VehicleUnitsUsed{}, fmt.Errorf("failed to read vehicle unit record %d: %w", i, err)
		}
		if isVehicleUnitRecordEmpty(rec) {
			continue
		}
		out.Records = append(out.Records, rec)
	}
	return out, nil
}

// CalibrationAddData is the Data Dictionary CardCalibrationAddData record
// (section 2.12a), Gen2-only: only the leading u16 calibration record
// count is read; the calibration records themselves are not decoded. It is
// decoded for workshop cards.
type CalibrationAddData struct {
	NoOfCalibrationRecords uint16
}

func (opts UnmarshalOptions) unmarshalCalibrationAddData(data []byte) (CalibrationAddData, error) {
	r := byteio.New(data)
	n, err := r.ReadUint16()
	if err != nil {
		return CalibrationAddData{}, fmt.Errorf("failed to read calibration record count: %w", err)
	}
	return CalibrationAddData{NoOfCalibrationRecords: n}, nil
}

// VUConfiguration is the Data Dictionary VuConfiguration record
// (section 2.172), Gen2-only: a vendor-specific TLV blob this module stores
// verbatim rather than decoding further (spec Non-goals: vendor-specific
// configuration payloads are out of scope).
type VUConfiguration struct {
	Raw []byte
}

func (opts UnmarshalOptions) unmarshalVUConfiguration(data []byte) (VUConfiguration, error) {
	return VUConfiguration{Raw: data}, nil
}
