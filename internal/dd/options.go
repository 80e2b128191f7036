// Package dd implements the primitive codecs and shared domain value types
// of the tachograph Data Dictionary: BCD digits, code-paged text, IA5
// strings, TimeReal timestamps, and the handful of fixed-size records
// (Name, Address, HolderName, FullCardNumber, VehicleRegistrationIdentification,
// ExtendedSerialNumber, Datef, OdometerShort) that Gen1 and Gen2 records
// share.
//
// Every decoder is a method on UnmarshalOptions so that card- and vu-level
// options structs can embed dd.UnmarshalOptions and inherit these methods,
// mirroring how protojson.UnmarshalOptions methods are used in the wider
// Go protobuf ecosystem.
package dd

// UnmarshalOptions provides context for decoding binary Data Dictionary
// values.
//
// The zero value is valid and selects the default, non-strict behavior
// described on each method.
type UnmarshalOptions struct {
	// PreserveRawData controls whether decoded value types retain the raw
	// bytes they were built from, alongside their semantic fields. This is
	// used for diagnostics (hex-dumping a record on a later error) rather
	// than for re-encoding: this module does not support round-tripping a
	// full file back to bytes.
	PreserveRawData bool
}

// MarshalOptions provides context for the narrow set of encode paths that
// exist purely to support round-trip tests of primitive codecs (BCD,
// TimeReal, hex). This module does not implement full-file re-encoding.
type MarshalOptions struct {
	// Strict controls whether encoders reject out-of-range input that a
	// tolerant decoder would otherwise accept (e.g. non-ASCII-digit bytes
	// passed to EncodeBCD).
	Strict bool
}
