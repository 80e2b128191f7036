package card

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/byteio"
	"github.com/fleetcodec/tachograph-go/internal/dd"
)

// CurrentUsage is the Data Dictionary CardCurrentUse record (section 2.15):
// the timestamp and vehicle registration of the currently inserted session,
// if any.
//
// Binary Layout (19 bytes): sessionOpenTime(4, TimeReal) + sessionOpenVehicle(15)
type CurrentUsage struct {
	SessionOpenTime    dd.TimeReal
	SessionOpenVehicle dd.VehicleRegistrationIdentification
}

func (opts UnmarshalOptions) unmarshalCurrentUsage(data []byte) (CurrentUsage, error) {
	r := byteio.New(data)
	d := opts.dataOpts()
	openTime, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return CurrentUsage{}, fmt.Errorf("failed to read session open time: %w", err)
	}
	vrn, err := d.UnmarshalVehicleRegistrationIdentification(r)
	if err != nil {
		return CurrentUsage{}, fmt.Errorf("failed to read session open vehicle: %w", err)
	}
	return CurrentUsage{SessionOpenTime: openTime, SessionOpenVehicle: vrn}, nil
}
