package vu

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/byteio"
)

// TechnicalDataGen2 is the Gen2 VU Technical Data TREP payload (Annex 1C,
// Appendix 7 section 2.2.6.5): a fixed sequence of RecordArrays, kept
// structural for the same reason as OverviewGen2.
type TechnicalDataGen2 struct {
	IsV2                bool
	VuIdentification    RecordArray
	VuSensorPaired       RecordArray
	VuSensorExternalGNSSCoupled *RecordArray
	VuCalibrationData   RecordArray
	VuCardData          *RecordArray
	VuITSConsentRecords *RecordArray
	VuPowerSupplyInterruptionRecords *RecordArray
	Signature           RecordArray
}

func (opts UnmarshalOptions) unmarshalTechnicalDataGen2(payload []byte, isV2 bool) (TechnicalDataGen2, error) {
	r := byteio.New(payload)
	next := func(name string) (RecordArray, error) {
		ra, err := ReadRecordArray(r)
		if err != nil {
			return RecordArray{}, fmt.Errorf("failed to read %s record array: %w", name, err)
		}
		return ra, nil
	}

	var out TechnicalDataGen2
	out.IsV2 = isV2

	var err error
	if out.VuIdentification, err = next("vu identification"); err != nil {
		return TechnicalDataGen2{}, err
	}
	if out.VuSensorPaired, err = next("vu sensor paired"); err != nil {
		return TechnicalDataGen2{}, err
	}
	if isV2 {
		gnss, err := next("vu sensor external gnss coupled")
		if err != nil {
			return TechnicalDataGen2{}, err
		}
		out.VuSensorExternalGNSSCoupled = &gnss
	}
	if out.VuCalibrationData, err = next("vu calibration data"); err != nil {
		return TechnicalDataGen2{}, err
	}
	if isV2 {
		cardData, err := next("vu card data")
		if err != nil {
			return TechnicalDataGen2{}, err
		}
		out.VuCardData = &cardData
		itsConsent, err := next("vu its consent records")
		if err != nil {
			return TechnicalDataGen2{}, err
		}
		out.VuITSConsentRecords = &itsConsent
		powerInterruption, err := next("vu power supply interruption records")
		if err != nil {
			return TechnicalDataGen2{}, err
		}
		out.VuPowerSupplyInterruptionRecords = &powerInterruption
	}
	if out.Signature, err = next("signature"); err != nil {
		return TechnicalDataGen2{}, err
	}
	if !r.AtEOF() {
		return TechnicalDataGen2{}, fmt.Errorf("technical data gen2 payload has %d trailing bytes after signature array", r.Remaining())
	}
	return out, nil
}
