package card

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/byteio"
)

// ICCIdentification is the Data Dictionary CardIccIdentification record
// (section 2.23).
//
// Binary Layout (25 bytes):
//
//	clockStop(1) + cardExtendedSerialNumber(8) + approvalNumber(8, IA5) +
//	personaliserID(1) + embedderAssemblerID(5) + icIdentifier(2)
type ICCIdentification struct {
	ClockStop               byte
	CardExtendedSerialNumber []byte
	ApprovalNumber           string
	PersonaliserID           byte
	EmbedderAssemblerID      []byte
	ICIdentifier             []byte
}

func (opts UnmarshalOptions) unmarshalICC(data []byte) (ICCIdentification, error) {
	r := byteio.New(data)
	clockStop, err := r.ReadByte()
	if err != nil {
		return ICCIdentification{}, fmt.Errorf("failed to read clock stop: %w", err)
	}
	serial, err := r.ReadArray(8)
	if err != nil {
		return ICCIdentification{}, fmt.Errorf("failed to read extended serial number: %w", err)
	}
	approvalRaw, err := r.ReadArray(8)
	if err != nil {
		return ICCIdentification{}, fmt.Errorf("failed to read approval number: %w", err)
	}
	approval, err := opts.dataOpts().ReadIA5(byteio.New(approvalRaw), 8)
	if err != nil {
		return ICCIdentification{}, fmt.Errorf("failed to decode approval number: %w", err)
	}
	personaliser, err := r.ReadByte()
	if err != nil {
		return ICCIdentification{}, fmt.Errorf("failed to read personaliser id: %w", err)
	}
	embedder, err := r.ReadArray(5)
	if err != nil {
		return ICCIdentification{}, fmt.Errorf("failed to read embedder/assembler id: %w", err)
	}
	icID, err := r.ReadArray(2)
	if err != nil {
		return ICCIdentification{}, fmt.Errorf("failed to read ic identifier: %w", err)
	}
	return ICCIdentification{
		ClockStop:                clockStop,
		CardExtendedSerialNumber: serial,
		ApprovalNumber:           approval,
		PersonaliserID:           personaliser,
		EmbedderAssemblerID:      embedder,
		ICIdentifier:             icID,
	}, nil
}

// ICIdentification is the Data Dictionary CardIcIdentification record
// (section 2.22).
//
// Binary Layout (8 bytes): icSerialNumber(4) + icManufacturingReferences(4)
type ICIdentification struct {
	ICSerialNumber            []byte
	ICManufacturingReferences []byte
}

func (opts UnmarshalOptions) unmarshalIC(data []byte) (ICIdentification, error) {
	r := byteio.New(data)
	serial, err := r.ReadArray(4)
	if err != nil {
		return ICIdentification{}, fmt.Errorf("failed to read ic serial number: %w", err)
	}
	refs, err := r.ReadArray(4)
	if err != nil {
		return ICIdentification{}, fmt.Errorf("failed to read ic manufacturing references: %w", err)
	}
	return ICIdentification{ICSerialNumber: serial, ICManufacturingReferences: refs}, nil
}
