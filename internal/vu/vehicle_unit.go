package vu

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/dd"
	"github.com/fleetcodec/tachograph-go/internal/ddserr"
)

// VehicleUnitData is the assembled result of decoding one VU data-download
// stream: every TREP block found, grouped by kind. A stream may legally
// contain more than one Activities block (one per downloaded day) and more
// than one Overview or Technical Data block is treated as a later
// supersedes-earlier repeat rather than an error.
type VehicleUnitData struct {
	Generation dd.Generation

	OverviewGen1      *OverviewGen1
	OverviewGen2      *OverviewGen2
	ActivitiesGen1    []ActivitiesGen1
	ActivitiesGen2    []ActivitiesGen2
	EventsFaultsGen1  *EventsAndFaultsGen1
	EventsFaultsGen2  *EventsAndFaultsGen2
	DetailedSpeedGen1 *DetailedSpeedGen1
	DetailedSpeedGen2 *DetailedSpeedGen2
	TechnicalDataGen1 *TechnicalDataGen1
	TechnicalDataGen2 *TechnicalDataGen2
	CardDownloads     []CardDownload

	// OddballCrashDump holds the raw payload following a 0x11 marker, if
	// one terminated the scan.
	OddballCrashDump []byte
}

// UnmarshalVehicleUnitData scans data for TREP blocks and decodes each one
// according to its ID.
func (opts UnmarshalOptions) UnmarshalVehicleUnitData(data []byte) (*VehicleUnitData, error) {
	blocks := ScanBlocks(data)
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%w: no TREP markers found in vehicle unit stream", ddserr.ErrInvalidHeader)
	}

	out := &VehicleUnitData{}
	for _, block := range blocks {
		switch {
		case block.ID == TREPOddballCrashDump:
			out.OddballCrashDump = block.Payload

		case block.ID == TREPGen1Overview:
			out.Generation = dd.Generation1
			v, err := opts.unmarshalOverviewGen1(block.Payload)
			if err != nil {
				return nil, fmt.Errorf("failed to decode gen1 overview block: %w", err)
			}
			out.OverviewGen1 = &v
		case block.ID == TREPGen2Overview || block.ID == TREPGen2V2Overview:
			out.Generation = dd.Generation2
			v, err := opts.unmarshalOverviewGen2(block.Payload, block.ID == TREPGen2V2Overview)
			if err != nil {
				return nil, fmt.Errorf("failed to decode gen2 overview block: %w", err)
			}
			out.OverviewGen2 = &v

		case block.ID == TREPGen1Activities:
			out.Generation = dd.Generation1
			v, err := opts.unmarshalActivitiesGen1(block.Payload)
			if err != nil {
				return nil, fmt.Errorf("failed to decode gen1 activities block: %w", err)
			}
			out.ActivitiesGen1 = append(out.ActivitiesGen1, v)
		case block.ID == TREPGen2Activities || block.ID == TREPGen2V2Activities:
			out.Generation = dd.Generation2
			v, err := opts.unmarshalActivitiesGen2(block.Payload)
			if err != nil {
				return nil, fmt.Errorf("failed to decode gen2 activities block: %w", err)
			}
			out.ActivitiesGen2 = append(out.ActivitiesGen2, v)

		case block.ID == TREPGen1EventsFaults:
			out.Generation = dd.Generation1
			v, err := opts.unmarshalEventsAndFaultsGen1(block.Payload)
			if err != nil {
				return nil, fmt.Errorf("failed to decode gen1 events and faults block: %w", err)
			}
			out.EventsFaultsGen1 = &v
		case block.ID == TREPGen2EventsFaults || block.ID == TREPGen2V2EventsFaults:
			out.Generation = dd.Generation2
			v, err := opts.unmarshalEventsAndFaultsGen2(block.Payload)
			if err != nil {
				return nil, fmt.Errorf("failed to decode gen2 events and faults block: %w", err)
			}
			out.EventsFaultsGen2 = &v

		case block.ID == TREPGen1Speed:
			out.Generation = dd.Generation1
			v, err := opts.unmarshalDetailedSpeedGen1(block.Payload)
			if err != nil {
				return nil, fmt.Errorf("failed to decode gen1 detailed speed block: %w", err)
			}
			out.DetailedSpeedGen1 = &v
		case block.ID == TREPGen2Speed || block.ID == TREPGen2V2Speed:
			out.Generation = dd.Generation2
			v, err := opts.unmarshalDetailedSpeedGen2(block.Payload)
			if err != nil {
				return nil, fmt.Errorf("failed to decode gen2 detailed speed block: %w", err)
			}
			out.DetailedSpeedGen2 = &v

		case block.ID == TREPGen1TechnicalData:
			out.Generation = dd.Generation1
			v, err := opts.unmarshalTechnicalDataGen1(block.Payload)
			if err != nil {
				return nil, fmt.Errorf("failed to decode gen1 technical data block: %w", err)
			}
			out.TechnicalDataGen1 = &v
		case block.ID == TREPGen2TechnicalData || block.ID == TREPGen2V2TechnicalData:
			out.Generation = dd.Generation2
			v, err := opts.unmarshalTechnicalDataGen2(block.Payload, block.ID == TREPGen2V2TechnicalData)
			if err != nil {
				return nil, fmt.Errorf("failed to decode gen2 technical data block: %w", err)
			}
			out.TechnicalDataGen2 = &v

		case block.ID == TREPGen1CardDownload || block.ID == TREPGen2CardDownload:
			v, err := opts.unmarshalCardDownload(block.Payload)
			if err != nil {
				return nil, fmt.Errorf("failed to decode card download block: %w", err)
			}
			out.CardDownloads = append(out.CardDownloads, v)

		default:
			return nil, fmt.Errorf("%w: unrecognized TREP id 0x%02x", ddserr.ErrNotImplemented, byte(block.ID))
		}
	}

	return out, nil
}
