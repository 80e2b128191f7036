package card

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/dd"
	"github.com/fleetcodec/tachograph-go/internal/ddserr"
)

// CertificateRecord is a card certificate block, kept as raw bytes: its
// structure belongs to the certificate chain verifier, not to the file
// assembler.
type CertificateRecord struct {
	Data []byte
}

// Common holds the fields present on every card kind regardless of
// generation: ICC/IC identification and the generic card identification
// block.
type Common struct {
	ICC            ICCIdentification
	IC             ICIdentification
	Identification Identification
	CardCertificate CertificateRecord
	CACertificate   CertificateRecord
}

func (opts UnmarshalOptions) unmarshalCommon(gen1 []FileBlock) (Common, error) {
	var out Common
	if data, _, ok := DataAndSignature(gen1, FileICC); ok {
		icc, err := opts.unmarshalICC(data)
		if err != nil {
			return Common{}, fmt.Errorf("failed to parse icc identification: %w", err)
		}
		out.ICC = icc
	}
	if data, _, ok := DataAndSignature(gen1, FileIC); ok {
		ic, err := opts.unmarshalIC(data)
		if err != nil {
			return Common{}, fmt.Errorf("failed to parse ic identification: %w", err)
		}
		out.IC = ic
	}
	if data, _, ok := DataAndSignature(gen1, FileIdentification); ok {
		ident, err := opts.unmarshalIdentification(data)
		if err != nil {
			return Common{}, fmt.Errorf("failed to parse identification: %w", err)
		}
		out.Identification = ident
	} else {
		return Common{}, fmt.Errorf("%w: card identification (EF 0x0520)", ddserr.ErrMissingCardFile)
	}
	if data, _, ok := DataAndSignature(gen1, FileCardCertificate); ok {
		out.CardCertificate = CertificateRecord{Data: data}
	}
	if data, _, ok := DataAndSignature(gen1, FileCACertificate); ok {
		out.CACertificate = CertificateRecord{Data: data}
	}
	return out, nil
}

// DriverCard is the fully decoded Gen1 and/or Gen2 contents of a driver
// card's file system.
type DriverCard struct {
	Common
	Generation              dd.Generation
	ApplicationIdentification   ApplicationIdentification
	ApplicationIdentificationG2 *ApplicationIdentificationG2
	DrivingLicenceInfo      DrivingLicenceInfo
	EventsData              EventsData
	FaultsData              FaultsData
	ActivityStructure       ActivityStructure
	VehiclesUsed            VehiclesUsed
	Places                  Places
	CurrentUsage            CurrentUsage
	ControlActivityData     ControlActivityData
	SpecificConditions      SpecificConditions
	GNSSPlaces              *GNSSPlaces
	VehicleUnitsUsed        *VehicleUnitsUsed
}

// UnmarshalDriverCard assembles a DriverCard from the raw TLV file blocks
// produced by UnmarshalRawCardFile. Gen2 fields are populated only when the
// Gen2 block subset is non-empty.
func (opts UnmarshalOptions) UnmarshalDriverCard(raw *RawCardFile) (*DriverCard, error) {
	common, err := opts.unmarshalCommon(raw.Gen1)
	if err != nil {
		return nil, err
	}
	out := &DriverCard{Common: common, Generation: dd.Generation1}

	appData, _, ok := DataAndSignature(raw.Gen1, FileApplicationIdentification)
	if !ok {
		return nil, fmt.Errorf("%w: application identification (EF 0x0501)", ddserr.ErrMissingCardFile)
	}
	appID, err := opts.unmarshalApplicationIdentification(appData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse application identification: %w", err)
	}
	out.ApplicationIdentification = appID

	if licData, _, ok := DataAndSignature(raw.Gen1, FileDrivingLicenceInfo); ok {
		lic, err := opts.unmarshalDrivingLicenceInfo(licData)
		if err != nil {
			return nil, fmt.Errorf("failed to parse driving licence info: %w", err)
		}
		out.DrivingLicenceInfo = lic
	}

	if evData, _, ok := DataAndSignature(raw.Gen1, FileEventsData); ok {
		events, err := opts.unmarshalEventsData(evData, eventCategoriesForGeneration(dd.Generation1), int(appID.NoOfEventsPerType))
		if err != nil {
			return nil, fmt.Errorf("failed to parse events data: %w", err)
		}
		out.EventsData = events
	}
	if faultData, _, ok := DataAndSignature(raw.Gen1, FileFaultsData); ok {
		faults, err := opts.unmarshalFaultsData(faultData, int(appID.NoOfFaultsPerType))
		if err != nil {
			return nil, fmt.Errorf("failed to parse faults data: %w", err)
		}
		out.FaultsData = faults
	}
	if actData, _, ok := DataAndSignature(raw.Gen1, FileDriverActivityData); ok {
		if len(actData) >= 4 {
			pointerOldest := uint16(actData[0])<<8 | uint16(actData[1])
			pointerNewest := uint16(actData[2])<<8 | uint16(actData[3])
			body := actData[4:]
			activity, err := opts.unmarshalActivityStructure(body, pointerOldest, pointerNewest)
			if err != nil {
				return nil, fmt.Errorf("failed to parse activity structure: %w", err)
			}
			out.ActivityStructure = activity
		}
	}
	if vehData, _, ok := DataAndSignature(raw.Gen1, FileVehiclesUsed); ok {
		vehicles, err := opts.unmarshalVehiclesUsed(vehData, int(appID.NoOfCardVehicleRecords))
		if err != nil {
			return nil, fmt.Errorf("failed to parse vehicles used: %w", err)
		}
		out.VehiclesUsed = vehicles
	}
	if placeData, _, ok := DataAndSignature(raw.Gen1, FilePlaces); ok {
		places, err := opts.unmarshalPlaces(placeData, int(appID.NoOfCardPlaceRecords), 0)
		if err != nil {
			return nil, fmt.Errorf("failed to parse places: %w", err)
		}
		out.Places = places
	}
	if usageData, _, ok := DataAndSignature(raw.Gen1, FileCurrentUsage); ok {
		usage, err := opts.unmarshalCurrentUsage(usageData)
		if err != nil {
			return nil, fmt.Errorf("failed to parse current usage: %w", err)
		}
		out.CurrentUsage = usage
	}
	if ctrlData, _, ok := DataAndSignature(raw.Gen1, FileControlActivityData); ok {
		ctrl, err := opts.unmarshalControlActivityData(ctrlData)
		if err != nil {
			return nil, fmt.Errorf("failed to parse control activity data: %w", err)
		}
		out.ControlActivityData = ctrl
	}

	if len(raw.Gen2) == 0 {
		return out, nil
	}
	out.Generation = dd.Generation2

	if appData2, _, ok := DataAndSignature(raw.Gen2, FileApplicationIdentificationV2); ok {
		appID2, err := opts.unmarshalApplicationIdentificationG2(appData2)
		if err != nil {
			return nil, fmt.Errorf("failed to parse gen2 application identification: %w", err)
		}
		out.ApplicationIdentificationG2 = &appID2
	}
	if out.ApplicationIdentificationG2 != nil {
		g2 := out.ApplicationIdentificationG2
		if scData, _, ok := DataAndSignature(raw.Gen2, FileSpecificConditions); ok {
			sc, err := opts.unmarshalSpecificConditions(scData, int(g2.NoOfSpecificConditionRecords))
			if err != nil {
				return nil, fmt.Errorf("failed to parse specific conditions: %w", err)
			}
			out.SpecificConditions = sc
		}
		if gnssData, _, ok := DataAndSignature(raw.Gen2, FileGNSSPlaces); ok {
			gnss, err := opts.unmarshalGNSSPlaces(gnssData, int(g2.NoOfGNSSADRecords))
			if err != nil {
				return nil, fmt.Errorf("failed to parse gnss places: %w", err)
			}
			out.GNSSPlaces = &gnss
		}
		if vuData, _, ok := DataAndSignature(raw.Gen2, FileVehicleUnitsUsed); ok {
			vu, err := opts.unmarshalVehicleUnitsUsed(vuData, int(g2.NoOfCardVehicleUnitRecords))
			if err != nil {
				return nil, fmt.Errorf("failed to parse vehicle units used: %w", err)
			}
			out.VehicleUnitsUsed = &vu
		}
	}

	return out, nil
}

// WorkshopCard is the decoded contents of a workshop card: Application
// Identification, the events and faults tables sized by its counts, and,
// on a Gen2 card, the calibration record count. Driver activity, vehicles
// used and places are not decoded for a workshop card.
type WorkshopCard struct {
	Common
	Generation                dd.Generation
	ApplicationIdentification ApplicationIdentification
	EventsData                EventsData
	FaultsData                FaultsData
	CalibrationAddData        *CalibrationAddData
}

func (opts UnmarshalOptions) UnmarshalWorkshopCard(raw *RawCardFile) (*WorkshopCard, error) {
	common, err := opts.unmarshalCommon(raw.Gen1)
	if err != nil {
		return nil, err
	}
	out := &WorkshopCard{Common: common, Generation: dd.Generation1}

	appData, _, ok := DataAndSignature(raw.Gen1, FileApplicationIdentification)
	if !ok {
		return nil, fmt.Errorf("%w: application identification (EF 0x0501)", ddserr.ErrMissingCardFile)
	}
	appID, err := opts.unmarshalApplicationIdentification(appData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse application identification: %w", err)
	}
	out.ApplicationIdentification = appID

	if evData, _, ok := DataAndSignature(raw.Gen1, FileEventsData); ok {
		events, err := opts.unmarshalEventsData(evData, eventCategoriesForGeneration(dd.Generation1), int(appID.NoOfEventsPerType))
		if err != nil {
			return nil, fmt.Errorf("failed to parse events data: %w", err)
		}
		out.EventsData = events
	}
	if faultData, _, ok := DataAndSignature(raw.Gen1, FileFaultsData); ok {
		faults, err := opts.unmarshalFaultsData(faultData, int(appID.NoOfFaultsPerType))
		if err != nil {
			return nil, fmt.Errorf("failed to parse faults data: %w", err)
		}
		out.FaultsData = faults
	}

	if len(raw.Gen2) > 0 {
		out.Generation = dd.Generation2
		if calData, _, ok := DataAndSignature(raw.Gen2, FileCalibrationAddData); ok {
			cal, err := opts.unmarshalCalibrationAddData(calData)
			if err != nil {
				return nil, fmt.Errorf("failed to parse calibration add data: %w", err)
			}
			out.CalibrationAddData = &cal
		}
	}

	return out, nil
}

// ControlCard is the decoded contents of a control card: unlike a driver
// card's single ControlActivityData record, a control card accumulates one
// record per control performed. The log is read by slicing the Control
// Activity file into fixed-size records, skipping records whose control
// time is zero; no count from Application Identification limits it.
type ControlCard struct {
	Common
	Generation                dd.Generation
	ApplicationIdentification ApplicationIdentification
	ControlActivityLog        []ControlActivityData
}

func (opts UnmarshalOptions) UnmarshalControlCard(raw *RawCardFile) (*ControlCard, error) {
	common, err := opts.unmarshalCommon(raw.Gen1)
	if err != nil {
		return nil, err
	}
	out := &ControlCard{Common: common, Generation: dd.Generation1}

	appData, _, ok := DataAndSignature(raw.Gen1, FileApplicationIdentification)
	if !ok {
		return nil, fmt.Errorf("%w: application identification (EF 0x0501)", ddserr.ErrMissingCardFile)
	}
	appID, err := opts.unmarshalApplicationIdentification(appData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse application identification: %w", err)
	}
	out.ApplicationIdentification = appID

	if ctrlData, _, ok := DataAndSignature(raw.Gen1, FileControlActivityData); ok {
		const recordLen = 46
		for off := 0; off+recordLen <= len(ctrlData); off += recordLen {
			rec, err := opts.unmarshalControlActivityData(ctrlData[off : off+recordLen])
			if err != nil {
				return nil, fmt.Errorf("failed to parse control activity record at offset %d: %w", off, err)
			}
			if rec.ControlTime.GetData() == 0 {
				continue
			}
			out.ControlActivityLog = append(out.ControlActivityLog, rec)
		}
	}

	if len(raw.Gen2) > 0 {
		out.Generation = dd.Generation2
	}

	return out, nil
}

// CompanyCard is the decoded contents of a company card: no events, faults,
// or activity storage, only identity and Application Identification. The
// company's locking/unlocking activity log is not decoded.
type CompanyCard struct {
	Common
	Generation                dd.Generation
	ApplicationIdentification ApplicationIdentification
}

func (opts UnmarshalOptions) UnmarshalCompanyCard(raw *RawCardFile) (*CompanyCard, error) {
	common, err := opts.unmarshalCommon(raw.Gen1)
	if err != nil {
		return nil, err
	}
	out := &CompanyCard{Common: common, Generation: dd.Generation1}

	appData, _, ok := DataAndSignature(raw.Gen1, FileApplicationIdentification)
	if !ok {
		return nil, fmt.Errorf("%w: application identification (EF 0x0501)", ddserr.ErrMissingCardFile)
	}
	appID, err := opts.unmarshalApplicationIdentification(appData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse application identification: %w", err)
	}
	out.ApplicationIdentification = appID

	if len(raw.Gen2) > 0 {
		out.Generation = dd.Generation2
	}

	return out, nil
}

// InferCardType reports which kind of card a raw TLV block set belongs to,
// read off the TypeOfTachographCardID field of the Application
// Identification record, which the caller uses to decide which
// Unmarshal* function to call next.
func InferCardType(raw *RawCardFile, opts UnmarshalOptions) (dd.EquipmentType, error) {
	data, _, ok := DataAndSignature(raw.Gen1, FileApplicationIdentification)
	if !ok {
		return dd.EquipmentTypeUnknown, fmt.Errorf("%w: application identification (EF 0x0501)", ddserr.ErrMissingCardFile)
	}
	appID, err := opts.unmarshalApplicationIdentification(data)
	if err != nil {
		return dd.EquipmentTypeUnknown, err
	}
	return appID.TypeOfTachographCardID, nil
}
