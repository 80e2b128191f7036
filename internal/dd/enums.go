package dd

// Generation discriminates Gen1 from Gen2 equipment and records.
type Generation int

const (
	GenerationUnknown Generation = iota
	Generation1
	Generation2
)

func (g Generation) String() string {
	switch g {
	case Generation1:
		return "GENERATION_1"
	case Generation2:
		return "GENERATION_2"
	default:
		return "GENERATION_UNKNOWN"
	}
}

// EquipmentType is the Data Dictionary EquipmentType enum (section 2.67).
// Unknown values decode to EquipmentTypeUnknown rather than an error.
type EquipmentType int

const (
	EquipmentTypeUnknown EquipmentType = iota
	EquipmentTypeDriverCard
	EquipmentTypeWorkshopCard
	EquipmentTypeControlCard
	EquipmentTypeCompanyCard
	EquipmentTypeVehicleUnit
	EquipmentTypeMotionSensor
)

// DecodeEquipmentType maps the Data Dictionary's numeric EquipmentType
// values onto EquipmentType. Values that do not appear in the table decode
// to EquipmentTypeUnknown, never an error.
func DecodeEquipmentType(b byte) EquipmentType {
	switch b {
	case 1:
		return EquipmentTypeDriverCard
	case 2:
		return EquipmentTypeWorkshopCard
	case 3:
		return EquipmentTypeControlCard
	case 4:
		return EquipmentTypeCompanyCard
	case 5:
		return EquipmentTypeVehicleUnit
	case 6:
		return EquipmentTypeMotionSensor
	default:
		return EquipmentTypeUnknown
	}
}

func (e EquipmentType) String() string {
	switch e {
	case EquipmentTypeDriverCard:
		return "DRIVER_CARD"
	case EquipmentTypeWorkshopCard:
		return "WORKSHOP_CARD"
	case EquipmentTypeControlCard:
		return "CONTROL_CARD"
	case EquipmentTypeCompanyCard:
		return "COMPANY_CARD"
	case EquipmentTypeVehicleUnit:
		return "VEHICLE_UNIT"
	case EquipmentTypeMotionSensor:
		return "MOTION_SENSOR"
	default:
		return "UNKNOWN"
	}
}

// NationNumeric is the Data Dictionary NationNumeric enum (section 2.97).
// The numeric value is preserved as-is; only a handful of members are
// named, the rest round-trip through their numeric value.
type NationNumeric byte

const (
	NationAustria      NationNumeric = 1
	NationBelgium      NationNumeric = 2
	NationBulgaria     NationNumeric = 3
	NationFrance       NationNumeric = 13
	NationGermany      NationNumeric = 11
	NationItaly        NationNumeric = 19
	NationNetherlands  NationNumeric = 26
	NationSpain        NationNumeric = 34
	NationUnitedKingdom NationNumeric = 39
)

var nationNames = map[NationNumeric]string{
	NationAustria:       "Austria",
	NationBelgium:       "Belgium",
	NationBulgaria:      "Bulgaria",
	NationFrance:        "France",
	NationGermany:       "Germany",
	NationItaly:         "Italy",
	NationNetherlands:   "Netherlands",
	NationSpain:         "Spain",
	NationUnitedKingdom: "United Kingdom",
}

// String returns the nation's name, "NATION_NONE" for 0, or
// "NATION_UNRECOGNIZED" for nations this module has not named explicitly
// (there are roughly 80 in the Data Dictionary).
func (n NationNumeric) String() string {
	if name, ok := nationNames[n]; ok {
		return name
	}
	if n == 0 {
		return "NATION_NONE"
	}
	return "NATION_UNRECOGNIZED"
}

// ActivityType is the 2-bit activity type carried in an ActivityChangeInfo
// record.
type ActivityType int

const (
	ActivityRest ActivityType = iota
	ActivityAvailability
	ActivityWork
	ActivityDriving
	// ActivityUnknown is not a value the 2-bit wire field can carry
	// directly; it is reserved for callers that derive activity type
	// from additional context this package does not itself compute.
	ActivityUnknown
)

func (a ActivityType) String() string {
	switch a {
	case ActivityRest:
		return "REST"
	case ActivityAvailability:
		return "AVAILABILITY"
	case ActivityWork:
		return "WORK"
	case ActivityDriving:
		return "DRIVING"
	default:
		return "UNKNOWN"
	}
}

// CardSlotStatus is the card-status bit of an ActivityChangeInfo record.
type CardSlotStatus int

const (
	CardSlotInserted CardSlotStatus = iota
	CardSlotRemoved
)

// ActivityChangeSource records whether an activity change was derived
// automatically (from vehicle motion) or entered manually, or is unknown.
type ActivityChangeSource int

const (
	ActivitySourceUnknown ActivityChangeSource = iota
	ActivitySourceAutomatic
	ActivitySourceManual
)

// EventFaultType is the Data Dictionary EventFaultType enum (section 2.70).
// Unknown values decode to EventFaultTypeUnknown.
type EventFaultType int

const (
	EventFaultTypeUnknown EventFaultType = iota
	EventFaultTypeNoEvent
	EventFaultTypeInsertionOfNonValidCard
	EventFaultTypeCardConflict
	EventFaultTypeTimeOverlap
	EventFaultTypeDrivingWithoutValidCard
	EventFaultTypeCardInsertionWhileDriving
	EventFaultTypeLastCardSessionNotClosed
	EventFaultTypeOverSpeeding
	EventFaultTypePowerSupplyInterruption
	EventFaultTypeMotionDataError
	EventFaultTypeVehicleMotionConflict
	EventFaultTypeSecurityBreach
	EventFaultTypeSensorFault
	EventFaultTypePrinterFault
	EventFaultTypeDisplayFault
	EventFaultTypeDownloadingFault
	EventFaultTypeCardFault
	EventFaultTypeVUInternalFault
)

// DecodeEventFaultType maps a raw byte to EventFaultType, falling back to
// EventFaultTypeUnknown for values this module has not named, matching
// the Unknown-variant convention every enum here reserves.
func DecodeEventFaultType(b byte) EventFaultType {
	switch {
	case b == 0x00:
		return EventFaultTypeNoEvent
	case b >= 0x01 && b <= 0x05:
		return EventFaultTypeInsertionOfNonValidCard + EventFaultType(b-1)
	case b >= 0x10 && b <= 0x17:
		return EventFaultTypeCardInsertionWhileDriving + EventFaultType(b-0x10)
	default:
		return EventFaultTypeUnknown
	}
}
