package card

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/byteio"
	"github.com/fleetcodec/tachograph-go/internal/dd"
)

// VehicleRecord is the Data Dictionary CardVehicleRecord (section 2.24).
//
// Binary Layout (31 bytes):
//
//	odometerBegin(3) + odometerEnd(3) + vehicleFirstUse(4, TimeReal) +
//	vehicleLastUse(4, TimeReal) + vehicleRegistration(15) + vuDataBlockCounter(2)
type VehicleRecord struct {
	OdometerBegin        dd.OdometerShort
	OdometerEnd          dd.OdometerShort
	VehicleFirstUse      dd.TimeReal
	VehicleLastUse       dd.TimeReal
	VehicleRegistration  dd.VehicleRegistrationIdentification
	VuDataBlockCounter   []byte
}

func (opts UnmarshalOptions) unmarshalVehicleRecord(r *byteio.Reader) (VehicleRecord, error) {
	d := opts.dataOpts()
	begin, err := d.UnmarshalOdometerShort(r)
	if err != nil {
		return VehicleRecord{}, fmt.Errorf("failed to read odometer begin: %w", err)
	}
	end, err := d.UnmarshalOdometerShort(r)
	if err != nil {
		return VehicleRecord{}, fmt.Errorf("failed to read odometer end: %w", err)
	}
	firstUse, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return VehicleRecord{}, fmt.Errorf("failed to read first use: %w", err)
	}
	lastUse, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return VehicleRecord{}, fmt.Errorf("failed to read last use: %w", err)
	}
	vrn, err := d.UnmarshalVehicleRegistrationIdentification(r)
	if err != nil {
		return VehicleRecord{}, fmt.Errorf("failed to read vehicle registration: %w", err)
	}
	counter, err := r.ReadArray(2)
	if err != nil {
		return VehicleRecord{}, fmt.Errorf("failed to read vu data block counter: %w", err)
	}
	return VehicleRecord{
		OdometerBegin:       begin,
		OdometerEnd:         end,
		VehicleFirstUse:     firstUse,
		VehicleLastUse:      lastUse,
		VehicleRegistration: vrn,
		VuDataBlockCounter:  counter,
	}, nil
}

func isVehicleRecordEmpty(v VehicleRecord) bool {
	return v.VehicleFirstUse.GetData() == 0 && v.VehicleLastUse.GetData() == 0 && v.VehicleRegistration.Number.Value == ""
}

// VehiclesUsed is the Data Dictionary CardVehiclesUsed record (section 2.28):
// a pointer to the newest record followed by a flat array of vehicle
// records, unlike the driver activity storage this is not ring-wrapped.
type VehiclesUsed struct {
	VehiclePointerNewest uint16
	Records              []VehicleRecord
}

func (opts UnmarshalOptions) unmarshalVehiclesUsed(data []byte, recordCount int) (VehiclesUsed, error) {
	r := byteio.New(data)
	pointer, err := r.ReadUint16()
	if err != nil {
		return VehiclesUsed{}, fmt.Errorf("failed to read vehicle pointer newest: %w", err)
	}
	var out VehiclesUsed
	out.VehiclePointerNewest = pointer
	for i := 0; i < recordCount; i++ {
		rec, err := opts.unmarshalVehicleRecord(r)
		if err != nil {
			return VehiclesUsed{}, fmt.Errorf("failed to read vehicle record %d: %w", i, err)
		}
		if isVehicleRecordEmpty(rec) {
			continue
		}
		out.Records = append(out.Records, rec)
	}
	return out, nil
}
