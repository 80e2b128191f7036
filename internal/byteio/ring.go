package byteio

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/ddserr"
)

// RingReader wraps an owned byte vector of fixed capacity and reads that wrap
// modulo the vector's length. It is used exclusively for traversing the
// circular daily-activity storage on a driver card.
type RingReader struct {
	data []byte
	pos  int
}

// NewRingReader constructs a ring-buffered view starting at offset within
// data. offset must be within [0, len(data)).
func NewRingReader(data []byte, offset int) (*RingReader, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: ring buffer capacity is zero", ddserr.ErrRecordOutOfRange)
	}
	if offset < 0 || offset >= len(data) {
		return nil, fmt.Errorf("%w: ring buffer offset %d out of bounds (capacity %d)", ddserr.ErrRecordOutOfRange, offset, len(data))
	}
	return &RingReader{data: data, pos: offset}, nil
}

// Len returns the ring's declared capacity.
func (r *RingReader) Len() int {
	return len(r.data)
}

// Pos returns the current position, already reduced modulo the capacity.
func (r *RingReader) Pos() int {
	return r.pos
}

// ReadByte reads a single byte and advances the cursor modulo capacity.
func (r *RingReader) ReadByte() byte {
	b := r.data[r.pos]
	r.pos = (r.pos + 1) % len(r.data)
	return b
}

// ReadUint16 reads a big-endian 16-bit unsigned integer, wrapping as needed.
func (r *RingReader) ReadUint16() uint16 {
	hi := r.ReadByte()
	lo := r.ReadByte()
	return uint16(hi)<<8 | uint16(lo)
}

// ReadUint32 reads a big-endian 32-bit unsigned integer, wrapping as needed.
func (r *RingReader) ReadUint32() uint32 {
	var v uint32
	for i := 0; i < 4; i++ {
		v = v<<8 | uint32(r.ReadByte())
	}
	return v
}

// ReadArray reads n bytes, wrapping as needed, into a newly allocated slice.
func (r *RingReader) ReadArray(n int) []byte {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = r.ReadByte()
	}
	return out
}
