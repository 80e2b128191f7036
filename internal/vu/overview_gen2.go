package vu

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/byteio"
)

// OverviewGen2 is the Gen2 VU Overview TREP payload: a fixed sequence of
// RecordArrays (Annex 1C, Appendix 7 section 2.2.6.2). Gen2v2 inserts one
// additional VehicleRegistrationNumber array right after the VIN array;
// IsV2 distinguishes the two layouts.
//
// Each array is kept as its raw decoded RecordArray rather than further
// broken into semantic fields: the per-record layout for several of these
// arrays (company locks, control activity) is identical to their Gen1
// counterparts and is not re-derived here, mirroring how little the
// equivalent Gen2 overview path does beyond structural validation.
type OverviewGen2 struct {
	IsV2                               bool
	MemberStateCertificate             RecordArray
	VuCertificate                      RecordArray
	VehicleIdentificationNumber        RecordArray
	VehicleRegistrationNumber          *RecordArray
	VehicleRegistrationIdentification RecordArray
	CurrentDateTime                    RecordArray
	VuDownloadablePeriod               RecordArray
	CardSlotsStatus                    RecordArray
	VuDownloadActivityData             RecordArray
	VuCompanyLocks                     RecordArray
	VuControlActivity                  RecordArray
	Signature                          RecordArray
}

func (opts UnmarshalOptions) unmarshalOverviewGen2(payload []byte, isV2 bool) (OverviewGen2, error) {
	r := byteio.New(payload)
	next := func(name string) (RecordArray, error) {
		ra, err := ReadRecordArray(r)
		if err != nil {
			return RecordArray{}, fmt.Errorf("failed to read %s record array: %w", name, err)
		}
		return ra, nil
	}

	var out OverviewGen2
	out.IsV2 = isV2

	var err error
	if out.MemberStateCertificate, err = next("member state certificate"); err != nil {
		return OverviewGen2{}, err
	}
	if out.VuCertificate, err = next("vu certificate"); err != nil {
		return OverviewGen2{}, err
	}
	if out.VehicleIdentificationNumber, err = next("vehicle identification number"); err != nil {
		return OverviewGen2{}, err
	}
	if isV2 {
		vrn, err := next("vehicle registration number")
		if err != nil {
			return OverviewGen2{}, err
		}
		out.VehicleRegistrationNumber = &vrn
	}
	if out.VehicleRegistrationIdentification, err = next("vehicle registration identification"); err != nil {
		return OverviewGen2{}, err
	}
	if out.CurrentDateTime, err = next("current date time"); err != nil {
		return OverviewGen2{}, err
	}
	if out.VuDownloadablePeriod, err = next("downloadable period"); err != nil {
		return OverviewGen2{}, err
	}
	if out.CardSlotsStatus, err = next("card slots status"); err != nil {
		return OverviewGen2{}, err
	}
	if out.VuDownloadActivityData, err = next("download activity data"); err != nil {
		return OverviewGen2{}, err
	}
	if out.VuCompanyLocks, err = next("company locks"); err != nil {
		return OverviewGen2{}, err
	}
	if out.VuControlActivity, err = next("control activity"); err != nil {
		return OverviewGen2{}, err
	}
	if out.Signature, err = next("signature"); err != nil {
		return OverviewGen2{}, err
	}
	if !r.AtEOF() {
		return OverviewGen2{}, fmt.Errorf("overview gen2 payload has %d trailing bytes after signature array", r.Remaining())
	}
	return out, nil
}
