package card

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/byteio"
	"github.com/fleetcodec/tachograph-go/internal/dd"
)

// ControlType is the Data Dictionary ControlType bitmask (section 2.53):
// which of card-download, activities-display, printing, and VU-display a
// control officer exercised during the session.
type ControlType byte

// ControlActivityData is the Data Dictionary CardControlActivityDataRecord
// (section 2.14): the most recent control performed on a driver card,
// present on control cards as a running log instead.
//
// Binary Layout (46 bytes):
//
//	controlType(1) + controlTime(4, TimeReal) + controlCardNumber(18, FullCardNumber) +
//	controlVehicleRegistration(15) + controlDownloadPeriodBegin(4, TimeReal) + controlDownloadPeriodEnd(4, TimeReal)
type ControlActivityData struct {
	ControlType                ControlType
	ControlTime                dd.TimeReal
	ControlCardNumber          dd.FullCardNumber
	ControlVehicleRegistration dd.VehicleRegistrationIdentification
	ControlDownloadPeriodBegin dd.TimeReal
	ControlDownloadPeriodEnd   dd.TimeReal
}

func (opts UnmarshalOptions) unmarshalControlActivityData(data []byte) (ControlActivityData, error) {
	r := byteio.New(data)
	d := opts.dataOpts()
	ctrlType, err := r.ReadByte()
	if err != nil {
		return ControlActivityData{}, fmt.Errorf("failed to read control type: %w", err)
	}
	ctrlTime, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return ControlActivityData{}, fmt.Errorf("failed to read control time: %w", err)
	}
	cardNumber, err := d.UnmarshalFullCardNumber(r)
	if err != nil {
		return ControlActivityData{}, fmt.Errorf("failed to read control card number: %w", err)
	}
	vrn, err := d.UnmarshalVehicleRegistrationIdentification(r)
	if err != nil {
		return ControlActivityData{}, fmt.Errorf("failed to read control vehicle registration: %w", err)
	}
	periodBegin, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return ControlActivityData{}, fmt.Errorf("failed to read download period begin: %w", err)
	}
	periodEnd, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return ControlActivityData{}, fmt.Errorf("failed to read download period end: %w", err)
	}
	return ControlActivityData{
		ControlType:                ControlType(ctrlType),
		ControlTime:                ctrlTime,
		ControlCardNumber:          cardNumber,
		ControlVehicleRegistration: vrn,
		ControlDownloadPeriodBegin: periodBegin,
		ControlDownloadPeriodEnd:   periodEnd,
	}, nil
}
