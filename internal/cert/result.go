package cert

import "github.com/fleetcodec/tachograph-go/internal/card"

// Status is the aggregate verification outcome for a card or vehicle unit
// dump.
type Status int

const (
	// StatusUnsigned is returned when the dump has no IC/ICC identification
	// blocks at all (a pre-signature format file: nothing to verify).
	StatusUnsigned Status = iota
	StatusValid
	StatusInvalid
	StatusPartiallyValid
)

func (s Status) String() string {
	switch s {
	case StatusUnsigned:
		return "Unsigned"
	case StatusValid:
		return "Valid"
	case StatusInvalid:
		return "Invalid"
	case StatusPartiallyValid:
		return "PartiallyValid"
	default:
		return "Unknown"
	}
}

// FileStatus is the per-file verification outcome for one signed EF.
type FileStatus int

const (
	FileStatusValid FileStatus = iota
	FileStatusInvalid
	FileStatusInvalidSignatureSize
	FileStatusNotHaveSignature
	FileStatusNotHaveData
)

func (s FileStatus) String() string {
	switch s {
	case FileStatusValid:
		return "Valid"
	case FileStatusInvalid:
		return "Invalid"
	case FileStatusInvalidSignatureSize:
		return "InvalidSignatureSize"
	case FileStatusNotHaveSignature:
		return "NotHaveSignature"
	case FileStatusNotHaveData:
		return "NotHaveData"
	default:
		return "Unknown"
	}
}

// FileResult is the verification outcome for one file within a dump.
type FileResult struct {
	FileID card.FileID
	Status FileStatus
	// EndOfValidity is the certificate chain link's end-of-validity time,
	// as a raw TimeReal seconds value; zero when not applicable.
	EndOfValidity uint32
}

// VerifyResult aggregates the per-file verification outcomes for a dump
// into a single overall status.
type VerifyResult struct {
	Status Status
	Files  []FileResult
}

// summarize derives the aggregate Status from a set of per-file results.
// All files valid → Valid; a mix of valid and invalid/missing →
// PartiallyValid; all invalid or missing → Invalid; no files at all →
// Unsigned.
func summarize(files []FileResult) Status {
	if len(files) == 0 {
		return StatusUnsigned
	}
	var valid, other int
	for _, f := range files {
		if f.Status == FileStatusValid {
			valid++
		} else {
			other++
		}
	}
	switch {
	case other == 0:
		return StatusValid
	case valid == 0:
		return StatusInvalid
	default:
		return StatusPartiallyValid
	}
}
