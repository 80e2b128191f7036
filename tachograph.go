// Package tachograph decodes European Union Digital Tachograph data
// download files (.DDD) emitted by Vehicle Units and smart cards (Driver,
// Workshop, Control, Company; Gen1 and Gen2 equipment) into structured
// records, and verifies the embedded certificate chain against a known
// European Root Certificate Authority (ERCA) public key.
package tachograph

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/card"
	"github.com/fleetcodec/tachograph-go/internal/ddserr"
	"github.com/fleetcodec/tachograph-go/internal/vu"
)

// DataType classifies the top-level shape of a decoded file: either a
// Vehicle Unit stream or a smart card dump.
type DataType int

const (
	DataTypeVU DataType = iota
	DataTypeCard
)

// TachographData is the top-level decoded result: one of a Gen1 VU stream,
// a Gen2 VU stream, a Gen1 card dump, a Gen2 card dump, or, when a card
// dump carries both generations side by side, both card results together.
type TachographData struct {
	Type DataType

	VUGen1 *vu.VehicleUnitData
	VUGen2 *vu.VehicleUnitData

	CardGen1 *card.RawCardFile
	CardGen2 *card.RawCardFile

	// DriverCard, WorkshopCard, ControlCard, CompanyCard hold the
	// card-kind-specific semantic parse, selected by inferring the card
	// kind from the Application Identification file. Exactly one is set
	// when Type is DataTypeCard.
	DriverCard   *card.DriverCard
	WorkshopCard *card.WorkshopCard
	ControlCard  *card.ControlCard
	CompanyCard  *card.CompanyCard
}

// CardCombined reports whether this result's card dump carried both Gen1
// and Gen2 file blocks in a single stream.
func (d *TachographData) CardCombined() bool {
	return d.CardGen1 != nil && d.CardGen2 != nil
}

// gen2LengthThreshold is the total-file-length cutoff (30000 bytes)
// associated with Gen2 card dumps. classifyHeader does not consult it: the
// card assembler splits Gen1 from Gen2 by each block's appendix byte.
const gen2LengthThreshold = 30000

// classifyHeader inspects the first two bytes of data and reports the
// decoding path to take. The total length is not inspected; the card
// generation is decided later by the card assembler from each block's
// appendix byte.
//
// Magic-number table:
//
//	0x76 0x01  VU Gen1
//	0x76 0x21  VU Gen2
//	0x76 0x31  VU Gen2 v2
//	0x00 0x02  Card
//	0x76 0x06  Card embedded in a VU dump
//
// Any other prefix is an ErrInvalidHeader error.
func classifyHeader(data []byte) (dataType DataType, cardInVUData bool, err error) {
	if len(data) < 2 {
		return 0, false, fmt.Errorf("%w: file is shorter than the 2-byte magic header", ddserr.ErrInvalidHeader)
	}
	switch {
	case data[0] == 0x76 && data[1] == 0x06:
		return DataTypeVU, true, nil
	case data[0] == 0x76 && (data[1] == 0x01 || data[1] == 0x21 || data[1] == 0x31):
		return DataTypeVU, false, nil
	case data[0] == 0x00 && data[1] == 0x02:
		return DataTypeCard, false, nil
	default:
		return 0, false, fmt.Errorf("%w: unrecognized magic bytes 0x%02x 0x%02x", ddserr.ErrInvalidHeader, data[0], data[1])
	}
}
