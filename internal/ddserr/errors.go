// Package ddserr defines the shared error taxonomy used throughout the
// tachograph decoding and verification pipeline.
//
// Every internal package wraps these sentinels with fmt.Errorf("...: %w", ...)
// so that callers can classify a failure with errors.Is while still getting a
// descriptive message.
package ddserr

import "errors"

var (
	// ErrInputUnderflow is returned when a byte reader reaches EOF before
	// satisfying a requested read.
	ErrInputUnderflow = errors.New("tachograph: input underflow")

	// ErrInvalidHeader is returned when the leading magic bytes of a file
	// do not match any known header classification.
	ErrInvalidHeader = errors.New("tachograph: invalid header")

	// ErrInvalidGeneration is returned when the equipment generation could
	// not be inferred from a header or file-level record.
	ErrInvalidGeneration = errors.New("tachograph: could not infer generation")

	// ErrInvalidData is returned for BCD/IA5 validation failures, bit
	// pattern violations, and other data-level decode errors.
	ErrInvalidData = errors.New("tachograph: invalid data")

	// ErrInvalidEncode is the symmetric case of ErrInvalidData for the
	// narrow write paths exercised by tests.
	ErrInvalidEncode = errors.New("tachograph: invalid data for encoding")

	// ErrRecordOutOfRange is returned when a declared pointer (e.g. a ring
	// buffer oldest/newest offset) is greater than or equal to its
	// declared capacity.
	ErrRecordOutOfRange = errors.New("tachograph: record pointer out of range")

	// ErrDailyActivity is returned when a ring-buffer traversal invariant
	// is violated (odd record length, more than 1440 activity changes in
	// a single day).
	ErrDailyActivity = errors.New("tachograph: invalid card activity daily record")

	// ErrCorruptedLicenceNumber is returned when a driving licence
	// authority is present but the licence number is empty.
	ErrCorruptedLicenceNumber = errors.New("tachograph: corrupted driving licence number")

	// ErrUnsupportedCardType is returned when the equipment-type field
	// does not name a card kind this module can decode.
	ErrUnsupportedCardType = errors.New("tachograph: unsupported card type")

	// ErrDuplicateCardFile is returned when a (file ID, appendix) pair
	// appears more than once within a generation section.
	ErrDuplicateCardFile = errors.New("tachograph: duplicate card file block")

	// ErrSignatureBeforeData is returned when a signature block for a
	// file ID is encountered before that file's data block.
	ErrSignatureBeforeData = errors.New("tachograph: signature block precedes data block")

	// ErrPartialCardFile is returned when a data block is followed by a
	// malformed or truncated continuation.
	ErrPartialCardFile = errors.New("tachograph: partial card file block")

	// ErrMissingCardFile is returned when a mandatory card file could not
	// be located while dispatching a card-kind parser.
	ErrMissingCardFile = errors.New("tachograph: missing card file")

	// ErrVerify is returned when certificate chain reconstruction or a
	// signature check fails.
	ErrVerify = errors.New("tachograph: verification failed")

	// ErrNotImplemented marks code paths that are intentionally
	// incomplete, such as the Gen2 ECDSA certificate signature check.
	ErrNotImplemented = errors.New("tachograph: not implemented")

	// ErrEmptyInputData is returned when an ERCA key buffer does not have
	// one of the two contractual lengths (144 or 205 bytes).
	ErrEmptyInputData = errors.New("tachograph: empty or malformed input data")
)
