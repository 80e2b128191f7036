package cert

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/card"
	"github.com/fleetcodec/tachograph-go/internal/security"
)

// signedFileIDsGen1 lists the Gen1 EFs whose data block is followed by a
// standalone RSA signature over that block, in the order a card dump
// conventionally carries them.
var signedFileIDsGen1 = []card.FileID{
	card.FileICC,
	card.FileIC,
	card.FileApplicationIdentification,
	card.FileIdentification,
	card.FileDrivingLicenceInfo,
	card.FileEventsData,
	card.FileFaultsData,
	card.FileDriverActivityData,
	card.FileVehiclesUsed,
	card.FilePlaces,
	card.FileCurrentUsage,
	card.FileControlActivityData,
}

// VerifyCardGen1 reconstructs the Gen1 RSA certificate chain from erca
// (the 144-byte ERCA public key) and raw's CA/card certificate blocks, then
// checks every signed Gen1 EF's data against its trailing signature using
// the card certificate's recovered public key.
//
// Per the chain, Unsigned is returned when raw has no IC/ICC identification
// blocks at all: there is nothing to authenticate.
func VerifyCardGen1(raw *card.RawCardFile, ercaData []byte) (*VerifyResult, error) {
	_, _, iccFound := card.DataAndSignature(raw.Gen1, card.FileICC)
	_, _, icFound := card.DataAndSignature(raw.Gen1, card.FileIC)
	if !iccFound && !icFound {
		return &VerifyResult{Status: StatusUnsigned}, nil
	}

	erca, err := UnmarshalECPK(ercaData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ERCA: %w", err)
	}
	caData, _, caFound := card.DataAndSignature(raw.Gen1, card.FileCACertificate)
	cardCertData, _, cardCertFound := card.DataAndSignature(raw.Gen1, card.FileCardCertificate)
	if !caFound || !cardCertFound {
		return &VerifyResult{
			Status: StatusInvalid,
			Files: []FileResult{
				{FileID: card.FileCardCertificate, Status: FileStatusNotHaveData},
			},
		}, nil
	}

	cardCert, err := VerifyGen1Chain(erca, caData, cardCertData)
	if err != nil {
		return &VerifyResult{
			Status: StatusInvalid,
			Files: []FileResult{
				{FileID: card.FileCardCertificate, Status: FileStatusInvalid},
			},
		}, nil
	}

	var files []FileResult
	for _, id := range signedFileIDsGen1 {
		data, signature, found := card.DataAndSignature(raw.Gen1, id)
		if !found {
			continue
		}
		result := FileResult{FileID: id, EndOfValidity: cardCert.EndOfValidity}
		switch {
		case len(signature) == 0:
			result.Status = FileStatusNotHaveSignature
		case len(signature) != 128:
			result.Status = FileStatusInvalidSignatureSize
		case len(data) == 0:
			result.Status = FileStatusNotHaveData
		default:
			if err := security.VerifyDataSignaturePKCS1v15SHA1(data, signature, cardCert.HolderPublicKey); err != nil {
				result.Status = FileStatusInvalid
			} else {
				result.Status = FileStatusValid
			}
		}
		files = append(files, result)
	}

	return &VerifyResult{Status: summarize(files), Files: files}, nil
}

// VerifyCardGen2 walks the Gen2 ECC certificate chain for raw's signed
// files, using erca (a 205-byte ERCA certificate) as the root of trust.
//
// The ERCA, link and card certificates are parsed, but no CHR/CAR linkage
// or validity-window check is made. The ECDSA signature check itself is
// not implemented (see VerifyGen2Certificate), so each certificate link is
// reported FileStatusInvalid and the aggregate is always PartiallyValid
// rather than a hard failure.
func VerifyCardGen2(raw *card.RawCardFile, ercaData []byte) (*VerifyResult, error) {
	_, _, iccFound := card.DataAndSignature(raw.Gen2, card.FileApplicationIdentificationV2)
	if !iccFound {
		return &VerifyResult{Status: StatusUnsigned}, nil
	}

	erca, err := ParseGen2Certificate(ercaData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode Gen2 ERCA: %w", err)
	}

	caData, _, caFound := card.DataAndSignature(raw.Gen2, card.FileLinkCertificate)
	cardCertData, _, cardCertFound := card.DataAndSignature(raw.Gen2, card.FileCardSignCertificate)
	if !caFound || !cardCertFound {
		return &VerifyResult{
			Status: StatusInvalid,
			Files: []FileResult{
				{FileID: card.FileCardSignCertificate, Status: FileStatusNotHaveData},
			},
		}, nil
	}

	caCert, err := ParseGen2Certificate(caData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode Gen2 CA certificate: %w", err)
	}
	cardCert, err := ParseGen2Certificate(cardCertData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode Gen2 card certificate: %w", err)
	}

	files := []FileResult{
		{FileID: card.FileLinkCertificate, Status: verifyGen2Link(erca, caCert)},
		{FileID: card.FileCardSignCertificate, Status: verifyGen2Link(caCert, cardCert)},
	}
	return &VerifyResult{Status: StatusPartiallyValid, Files: files}, nil
}

func verifyGen2Link(issuer, subject *Gen2Certificate) FileStatus {
	if err := VerifyGen2Certificate(subject, issuer); err != nil {
		return FileStatusInvalid
	}
	return FileStatusValid
}
