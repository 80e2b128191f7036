package tachograph

import (
	"fmt"
	"os"

	"github.com/fleetcodec/tachograph-go/internal/card"
	"github.com/fleetcodec/tachograph-go/internal/dd"
	"github.com/fleetcodec/tachograph-go/internal/ddserr"
	"github.com/fleetcodec/tachograph-go/internal/vu"
)

// ParseFile reads path and decodes it as a Digital Tachograph data
// download file.
func ParseFile(path string) (*TachographData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tachograph file: %w", err)
	}
	return ParseBytes(data)
}

// ParseBytes decodes data as a Digital Tachograph data download file,
// dispatching on its magic header to the Vehicle Unit or card assembler.
func ParseBytes(data []byte) (*TachographData, error) {
	dataType, _, err := classifyHeader(data)
	if err != nil {
		return nil, err
	}

	var unmarshalOpts dd.UnmarshalOptions

	switch dataType {
	case DataTypeVU:
		vuOpts := vu.UnmarshalOptions{UnmarshalOptions: unmarshalOpts}
		vuData, err := vuOpts.UnmarshalVehicleUnitData(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode vehicle unit data: %w", err)
		}
		out := &TachographData{Type: DataTypeVU}
		if vuData.Generation == dd.Generation1 {
			out.VUGen1 = vuData
		} else {
			out.VUGen2 = vuData
		}
		return out, nil

	case DataTypeCard:
		cardOpts := card.UnmarshalOptions{UnmarshalOptions: unmarshalOpts}
		raw, err := cardOpts.UnmarshalRawCardFile(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode card file: %w", err)
		}
		return parseCardFile(cardOpts, raw)

	default:
		return nil, fmt.Errorf("%w: unhandled data type", ddserr.ErrInvalidHeader)
	}
}

// parseCardFile dispatches raw's blocks to the correct card-kind parser,
// inferred from the Application Identification file, and splits the
// result into CardGen1/CardGen2 (and both, for a combined dump).
func parseCardFile(opts card.UnmarshalOptions, raw *card.RawCardFile) (*TachographData, error) {
	out := &TachographData{Type: DataTypeCard}
	if len(raw.Gen1) > 0 {
		out.CardGen1 = &card.RawCardFile{Gen1: raw.Gen1}
	}
	if len(raw.Gen2) > 0 {
		out.CardGen2 = &card.RawCardFile{Gen2: raw.Gen2}
	}

	cardType, err := card.InferCardType(raw, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to infer card type: %w", err)
	}

	switch cardType {
	case dd.EquipmentTypeDriverCard:
		driverCard, err := opts.UnmarshalDriverCard(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode driver card: %w", err)
		}
		out.DriverCard = driverCard
	case dd.EquipmentTypeWorkshopCard:
		workshopCard, err := opts.UnmarshalWorkshopCard(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode workshop card: %w", err)
		}
		out.WorkshopCard = workshopCard
	case dd.EquipmentTypeControlCard:
		controlCard, err := opts.UnmarshalControlCard(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode control card: %w", err)
		}
		out.ControlCard = controlCard
	case dd.EquipmentTypeCompanyCard:
		companyCard, err := opts.UnmarshalCompanyCard(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode company card: %w", err)
		}
		out.CompanyCard = companyCard
	default:
		return nil, fmt.Errorf("%w: card type %v", ddserr.ErrUnsupportedCardType, cardType)
	}

	return out, nil
}
