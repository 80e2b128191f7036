package card

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/byteio"
	"github.com/fleetcodec/tachograph-go/internal/dd"
)

// EntryTypeDailyWorkPeriod is the Data Dictionary EntryTypeDailyWorkPeriod
// enum (section 2.66): the subset relevant to a place record's entry type.
type EntryTypeDailyWorkPeriod int

const (
	EntryTypeBeginRelatedToWork EntryTypeDailyWorkPeriod = iota
	EntryTypeEndRelatedToWork
	EntryTypeBeginRelatedToAvailability
	EntryTypeEndRelatedToAvailability
)

// PlaceRecord is the Data Dictionary PlaceRecord (section 2.117).
//
// Binary Layout (10 bytes, Gen1) / (21 bytes, Gen2 with GNSS accuracy):
//
//	entryTime(4, TimeReal) + entryTypeDailyWorkPeriod(1) + dailyWorkPeriodCountry(1) +
//	dailyWorkPeriodRegion(1) + vehicleOdometerValue(3) [+ entryGNSSPlaceRecord(11) for Gen2]
type PlaceRecord struct {
	EntryTime                dd.TimeReal
	EntryType                EntryTypeDailyWorkPeriod
	DailyWorkPeriodCountry   dd.NationNumeric
	DailyWorkPeriodRegion    byte
	VehicleOdometerValue     dd.OdometerShort
	EntryGNSSPlaceRecord     []byte
}

func isPlaceRecordEmpty(p PlaceRecord) bool {
	return p.EntryTime.GetData() == 0
}

const placeRecordLenGen1 = 10

func (opts UnmarshalOptions) unmarshalPlaceRecord(r *byteio.Reader, gnssLen int) (PlaceRecord, error) {
	d := opts.dataOpts()
	entryTime, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return PlaceRecord{}, fmt.Errorf("failed to read entry time: %w", err)
	}
	entryTypeByte, err := r.ReadByte()
	if err != nil {
		return PlaceRecord{}, fmt.Errorf("failed to read entry type: %w", err)
	}
	country, err := r.ReadByte()
	if err != nil {
		return PlaceRecord{}, fmt.Errorf("failed to read country: %w", err)
	}
	region, err := r.ReadByte()
	if err != nil {
		return PlaceRecord{}, fmt.Errorf("failed to read region: %w", err)
	}
	odometer, err := d.UnmarshalOdometerShort(r)
	if err != nil {
		return PlaceRecord{}, fmt.Errorf("failed to read odometer: %w", err)
	}
	var gnss []byte
	if gnssLen > 0 {
		gnss, err = r.ReadArray(gnssLen)
		if err != nil {
			return PlaceRecord{}, fmt.Errorf("failed to read gnss place record: %w", err)
		}
	}
	return PlaceRecord{
		EntryTime:              entryTime,
		EntryType:               EntryTypeDailyWorkPeriod(entryTypeByte),
		DailyWorkPeriodCountry:  dd.NationNumeric(country),
		DailyWorkPeriodRegion:   region,
		VehicleOdometerValue:    odometer,
		EntryGNSSPlaceRecord:    gnss,
	}, nil
}

// Places is the Data Dictionary CardPlaceDailyWorkPeriod record
// (section 2.116): a ring-free flat array indexed from newest to oldest,
// with a pointer to the most recently written entry.
type Places struct {
	PlacePointerNewest byte
	Records            []PlaceRecord
}

// unmarshalPlaces reads the place pointer followed by recordCount fixed-size
// place records. gnssLen is 0 for Gen1 (no GNSS accuracy field) and 11 for
// Gen2.
func (opts UnmarshalOptions) unmarshalPlaces(data []byte, recordCount int, gnssLen int) (Places, error) {
	r := byteio.New(data)
	pointer, err := r.ReadByte()
	if err != nil {
		return Places{}, fmt.Errorf("failed to read place pointer: %w", err)
	}
	var out Places
	out.PlacePointerNewest = pointer
	for i := 0; i < recordCount; i++ {
		rec, err := opts.unmarshalPlaceRecord(r, gnssLen)
		if err != nil {
			return Places{}, fmt.Errorf("failed to read place record %d: %w", i, err)
		}
		if isPlaceRecordEmpty(rec) {
			continue
		}
		out.Records = append(out.Records, rec)
	}
	return out, nil
}
