package vu

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/byteio"
	"github.com/fleetcodec/tachograph-go/internal/dd"
)

// CompanyLockRecord is the Data Dictionary VuCompanyLocksRecord (Gen1
// shape), logged each time a company locks or unlocks a vehicle unit.
//
// Binary Layout (98 bytes): lockInTime(4) + lockOutTime(4) + companyName(36) + companyAddress(36) + companyCardNumber(18)
type CompanyLockRecord struct {
	LockInTime        dd.TimeReal
	LockOutTime       dd.TimeReal
	CompanyName       dd.Name
	CompanyAddress    dd.Address
	CompanyCardNumber dd.FullCardNumber
}

// ControlActivityRecord is the VU-side analogue of the card's control
// activity record, logged by the VU itself rather than
// read back off a control card.
//
// Binary Layout (31 bytes): controlType(1) + controlTime(4) + controlCardNumber(18) + downloadPeriodBegin(4) + downloadPeriodEnd(4)
type ControlActivityRecord struct {
	ControlType          byte
	ControlTime          dd.TimeReal
	ControlCardNumber    dd.FullCardNumber
	DownloadPeriodBegin  dd.TimeReal
	DownloadPeriodEnd    dd.TimeReal
}

// OverviewGen1 is the Gen1 VU Overview TREP payload (Annex 1B, Appendix 7
// section 2.2.6.2).
//
// Binary Layout (variable, signature trailing):
//
//	memberStateCertificate(194) + vuCertificate(194) + vehicleIdentificationNumber(17, IA5) +
//	vehicleRegistrationIdentification(15) + currentDateTime(4, TimeReal) +
//	vuDownloadablePeriod(8: min+max TimeReal) + cardSlotsStatus(1) +
//	vuDownloadActivityData(58: downloadingTime(4) + fullCardNumber(18) + companyOrWorkshopName(36)) +
//	vuCompanyLocksData(1 + N*98) + vuControlActivityData(1 + M*31) + signature(128)
type OverviewGen1 struct {
	MemberStateCertificate []byte
	VuCertificate          []byte
	VehicleIdentificationNumber string
	VehicleRegistration    dd.VehicleRegistrationIdentification
	CurrentDateTime        dd.TimeReal
	DownloadablePeriodMin  dd.TimeReal
	DownloadablePeriodMax  dd.TimeReal
	CardSlotsStatus        byte
	DownloadingTime        dd.TimeReal
	DownloadedByCard       dd.FullCardNumber
	CompanyOrWorkshopName  dd.Name
	CompanyLocks           []CompanyLockRecord
	ControlActivity        []ControlActivityRecord
	Signature              []byte
}

const gen1SignatureSize = 128

func (opts UnmarshalOptions) unmarshalOverviewGen1(payload []byte) (OverviewGen1, error) {
	if len(payload) < gen1SignatureSize {
		return OverviewGen1{}, fmt.Errorf("overview gen1 payload shorter than signature size: %d bytes", len(payload))
	}
	data := payload[:len(payload)-gen1SignatureSize]
	signature := payload[len(payload)-gen1SignatureSize:]

	r := byteio.New(data)
	d := opts.dataOpts()

	msCert, err := r.ReadArray(194)
	if err != nil {
		return OverviewGen1{}, fmt.Errorf("failed to read member state certificate: %w", err)
	}
	vuCert, err := r.ReadArray(194)
	if err != nil {
		return OverviewGen1{}, fmt.Errorf("failed to read vu certificate: %w", err)
	}
	vin, err := d.ReadIA5(r, 17)
	if err != nil {
		return OverviewGen1{}, fmt.Errorf("failed to read vehicle identification number: %w", err)
	}
	vrn, err := d.UnmarshalVehicleRegistrationIdentification(r)
	if err != nil {
		return OverviewGen1{}, fmt.Errorf("failed to read vehicle registration: %w", err)
	}
	currentTime, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return OverviewGen1{}, fmt.Errorf("failed to read current date time: %w", err)
	}
	periodMin, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return OverviewGen1{}, fmt.Errorf("failed to read downloadable period min: %w", err)
	}
	periodMax, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return OverviewGen1{}, fmt.Errorf("failed to read downloadable period max: %w", err)
	}
	slots, err := r.ReadByte()
	if err != nil {
		return OverviewGen1{}, fmt.Errorf("failed to read card slots status: %w", err)
	}
	downloadTime, err := d.UnmarshalTimeReal(r)
	if err != nil {
		return OverviewGen1{}, fmt.Errorf("failed to read downloading time: %w", err)
	}
	downloadedBy, err := d.UnmarshalFullCardNumber(r)
	if err != nil {
		return OverviewGen1{}, fmt.Errorf("failed to read downloaded-by card number: %w", err)
	}
	companyName, err := d.UnmarshalName(r)
	if err != nil {
		return OverviewGen1{}, fmt.Errorf("failed to read company or workshop name: %w", err)
	}

	out := OverviewGen1{
		MemberStateCertificate:      msCert,
		VuCertificate:               vuCert,
		VehicleIdentificationNumber: vin,
		VehicleRegistration:         vrn,
		CurrentDateTime:             currentTime,
		DownloadablePeriodMin:       periodMin,
		DownloadablePeriodMax:       periodMax,
		CardSlotsStatus:             slots,
		DownloadingTime:             downloadTime,
		DownloadedByCard:            downloadedBy,
		CompanyOrWorkshopName:       companyName,
		Signature:                   signature,
	}

	noOfLocks, err := r.ReadByte()
	if err != nil {
		return OverviewGen1{}, fmt.Errorf("failed to read company locks count: %w", err)
	}
	for i := 0; i < int(noOfLocks); i++ {
		lockIn, err := d.UnmarshalTimeReal(r)
		if err != nil {
			return OverviewGen1{}, fmt.Errorf("failed to read company lock %d lock-in time: %w", i, err)
		}
		lockOut, err := d.UnmarshalTimeReal(r)
		if err != nil {
			return OverviewGen1{}, fmt.Errorf("failed to read company lock %d lock-out time: %w", i, err)
		}
		name, err := d.UnmarshalName(r)
		if err != nil {
			return OverviewGen1{}, fmt.Errorf("failed to read company lock %d company name: %w", i, err)
		}
		addr, err := d.UnmarshalAddress(r)
		if err != nil {
			return OverviewGen1{}, fmt.Errorf("failed to read company lock %d company address: %w", i, err)
		}
		card, err := d.UnmarshalFullCardNumber(r)
		if err != nil {
			return OverviewGen1{}, fmt.Errorf("failed to read company lock %d company card number: %w", i, err)
		}
		out.CompanyLocks = append(out.CompanyLocks, CompanyLockRecord{
			LockInTime: lockIn, LockOutTime: lockOut, CompanyName: name, CompanyAddress: addr, CompanyCardNumber: card,
		})
	}

	noOfControls, err := r.ReadByte()
	if err != nil {
		return OverviewGen1{}, fmt.Errorf("failed to read control activity count: %w", err)
	}
	for i := 0; i < int(noOfControls); i++ {
		ctrlType, err := r.ReadByte()
		if err != nil {
			return OverviewGen1{}, fmt.Errorf("failed to read control %d type: %w", i, err)
		}
		ctrlTime, err := d.UnmarshalTimeReal(r)
		if err != nil {
			return OverviewGen1{}, fmt.Errorf("failed to read control %d time: %w", i, err)
		}
		ctrlCard, err := d.UnmarshalFullCardNumber(r)
		if err != nil {
			return OverviewGen1{}, fmt.Errorf("failed to read control %d card number: %w", i, err)
		}
		periodBegin, err := d.UnmarshalTimeReal(r)
		if err != nil {
			return OverviewGen1{}, fmt.Errorf("failed to read control %d download period begin: %w", i, err)
		}
		periodEnd, err := d.UnmarshalTimeReal(r)
		if err != nil {
			return OverviewGen1{}, fmt.Errorf("failed to read control %d download period end: %w", i, err)
		}
		out.ControlActivity = append(out.ControlActivity, ControlActivityRecord{
			ControlType: ctrlType, ControlTime: ctrlTime, ControlCardNumber: ctrlCard,
			DownloadPeriodBegin: periodBegin, DownloadPeriodEnd: periodEnd,
		})
	}

	return out, nil
}
