package dd

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/fleetcodec/tachograph-go/internal/ddserr"
)

// TimeReal is the tachograph's TimeReal value: an unsigned 32-bit count of
// seconds since the Unix epoch. Raw is always preserved, even when it is
// zero; Time is nil exactly when Raw is zero, distinguishing "has no data"
// from the genuine epoch instant.
//
// ASN.1 Definition:
//
//	TimeReal ::= INTEGER (0..2^32-1)
type TimeReal struct {
	Raw  uint32
	Time *timestamppb.Timestamp
}

// GetData returns the raw numeric value, matching the "get_data()" accessor
// name used elsewhere in this package's empty-record pruning predicates.
func (t TimeReal) GetData() uint32 {
	return t.Raw
}

// HasData reports whether the value is the distinguished "unset" state.
func (t TimeReal) HasData() bool {
	return t.Raw != 0
}

// Format renders the value as "YYYY-MM-DD HH:MM:SS" in UTC. An unset
// value formats as the empty string.
func (t TimeReal) Format() string {
	if !t.HasData() {
		return ""
	}
	return time.Unix(int64(t.Raw), 0).UTC().Format("2006-01-02 15:04:05")
}

// UnmarshalTimeReal decodes a 4-byte big-endian TimeReal.
//
// Binary Layout (4 bytes):
//   - Seconds since Unix epoch (4 bytes): Big-endian uint32
func (opts UnmarshalOptions) UnmarshalTimeReal(r *Reader) (TimeReal, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return TimeReal{}, fmt.Errorf("failed to read TimeReal: %w", err)
	}
	return TimeRealFromUint32(v), nil
}

// TimeRealFromUint32 builds a TimeReal from an already-read 32-bit value,
// used when the 4 bytes were consumed as part of a larger fixed-width read.
func TimeRealFromUint32(v uint32) TimeReal {
	tr := TimeReal{Raw: v}
	if v != 0 {
		tr.Time = timestamppb.New(time.Unix(int64(v), 0).UTC())
	}
	return tr
}

// MarshalTimeReal encodes a TimeReal back to its 4-byte big-endian form, for
// the narrow round-trip test paths.
func (opts MarshalOptions) MarshalTimeReal(t TimeReal) ([]byte, error) {
	var buf [4]byte
	buf[0] = byte(t.Raw >> 24)
	buf[1] = byte(t.Raw >> 16)
	buf[2] = byte(t.Raw >> 8)
	buf[3] = byte(t.Raw)
	return buf[:], nil
}

// mustLen guards strict fixed-size readers: it returns ErrInvalidData
// unless data is exactly want bytes long; kept local to avoid repeating
// the check.
func mustLen(data []byte, want int) error {
	if len(data) != want {
		return fmt.Errorf("%w: got %d bytes, want %d", ddserr.ErrInvalidData, len(data), want)
	}
	return nil
}
