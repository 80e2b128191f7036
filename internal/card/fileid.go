package card

// FileID identifies a card Elementary File (EF) by its 2-byte big-endian
// tag.
type FileID uint16

// Elementary File identifiers. Values follow Appendix 2 of the Data
// Dictionary / Annex 1C. A handful of EFs exist only on Gen2 cards; these
// are called out explicitly since the assembler uses them to decide
// whether a block belongs to the Gen1 or Gen2 subset.
const (
	FileICC                       FileID = 0x0002
	FileIC                        FileID = 0x0005
	FileApplicationIdentification FileID = 0x0501
	FileIdentification            FileID = 0x0520
	FileCardDownload              FileID = 0x050E
	FileDrivingLicenceInfo        FileID = 0x0521
	FileEventsData                FileID = 0x0502
	FileFaultsData                FileID = 0x0503
	FileDriverActivityData        FileID = 0x0504
	FileVehiclesUsed              FileID = 0x0505
	FilePlaces                    FileID = 0x0506
	FileCurrentUsage              FileID = 0x0507
	FileControlActivityData       FileID = 0x0508
	FileSpecificConditions        FileID = 0x0522
	FileCardCertificate           FileID = 0xC100
	FileCACertificate             FileID = 0xC108

	// Gen2-only EFs.
	FileApplicationIdentificationV2 FileID = 0x0525
	FileGNSSPlaces                  FileID = 0x0524
	FileBorderCrossings              FileID = 0x0523
	FileVehicleUnitsUsed             FileID = 0x0527
	FileCalibrationAddData          FileID = 0x050A
	FileVUConfiguration              FileID = 0x0540
	FileCardSignCertificate          FileID = 0xC101
	FileLinkCertificate              FileID = 0xC109
)

// gen2OnlyFiles are the file IDs that only ever appear in a Gen2 card
// dump.
var gen2OnlyFiles = map[FileID]bool{
	FileApplicationIdentificationV2: true,
	FileGNSSPlaces:                  true,
	FileBorderCrossings:             true,
	FileVehicleUnitsUsed:            true,
	FileCalibrationAddData:          true,
	FileVUConfiguration:             true,
	FileCardSignCertificate:         true,
	FileLinkCertificate:             true,
}

// Appendix distinguishes the data block of an EF from its trailing
// signature block, and carries the Gen1/Gen2 discriminator that the wire
// format encodes in the low bits of the TLV tag appendix byte.
type Appendix byte

const (
	AppendixGen1Data      Appendix = 0x00
	AppendixGen1Signature Appendix = 0x01
	AppendixGen2Data      Appendix = 0x02
	AppendixGen2Signature Appendix = 0x03
)

// IsSignature reports whether this appendix marks a signature block.
func (a Appendix) IsSignature() bool {
	return a == AppendixGen1Signature || a == AppendixGen2Signature
}

// IsGen2 reports whether this appendix marks a Gen2 block.
func (a Appendix) IsGen2() bool {
	return a == AppendixGen2Data || a == AppendixGen2Signature
}
