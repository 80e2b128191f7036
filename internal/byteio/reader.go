// Package byteio implements the sequential, random-access, and ring-buffered
// byte reader abstraction that every record decoder in internal/dd,
// internal/card, and internal/vu is built on.
//
// A Reader owns no memory of its own: it wraps a caller-provided []byte and
// tracks a cursor into it. Reads are sequential unless Seek is called.
package byteio

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/ddserr"
)

// Reader provides big-endian integer reads, fixed- and variable-size byte
// reads, and absolute seeking over an in-memory buffer.
type Reader struct {
	data []byte
	pos  int
}

// New returns a Reader positioned at the start of data.
func New(data []byte) *Reader {
	return &Reader{data: data}
}

// Len returns the total length of the underlying buffer.
func (r *Reader) Len() int {
	return len(r.data)
}

// Pos returns the current read offset.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// AtEOF reports whether the cursor has reached the end of the buffer.
func (r *Reader) AtEOF() bool {
	return r.pos >= len(r.data)
}

// Seek moves the cursor to an absolute offset. It is an error to seek past
// the end of the buffer.
func (r *Reader) Seek(offset int) error {
	if offset < 0 || offset > len(r.data) {
		return fmt.Errorf("%w: seek offset %d out of bounds (len %d)", ddserr.ErrInputUnderflow, offset, len(r.data))
	}
	r.pos = offset
	return nil
}

// require checks that n more bytes are available, returning ErrInputUnderflow
// wrapped with context if not.
func (r *Reader) require(n int) error {
	if r.Remaining() < n {
		return fmt.Errorf("%w: need %d bytes, have %d at offset %d", ddserr.ErrInputUnderflow, n, r.Remaining(), r.pos)
	}
	return nil
}

// ReadByte reads a single unsigned byte (u8).
func (r *Reader) ReadByte() (byte, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadUint8 reads a single unsigned byte (u8). Alias of ReadByte kept for
// symmetry with ReadUint16/24/32.
func (r *Reader) ReadUint8() (uint8, error) {
	return r.ReadByte()
}

// ReadUint16 reads a big-endian 16-bit unsigned integer.
func (r *Reader) ReadUint16() (uint16, error) {
	if err := r.require(2); err != nil {
		return 0, err
	}
	v := uint16(r.data[r.pos])<<8 | uint16(r.data[r.pos+1])
	r.pos += 2
	return v, nil
}

// ReadUint24 reads a big-endian 24-bit unsigned integer, returned widened to
// uint32.
func (r *Reader) ReadUint24() (uint32, error) {
	if err := r.require(3); err != nil {
		return 0, err
	}
	v := uint32(r.data[r.pos])<<16 | uint32(r.data[r.pos+1])<<8 | uint32(r.data[r.pos+2])
	r.pos += 3
	return v, nil
}

// ReadUint32 reads a big-endian 32-bit unsigned integer.
func (r *Reader) ReadUint32() (uint32, error) {
	if err := r.require(4); err != nil {
		return 0, err
	}
	v := uint32(r.data[r.pos])<<24 | uint32(r.data[r.pos+1])<<16 | uint32(r.data[r.pos+2])<<8 | uint32(r.data[r.pos+3])
	r.pos += 4
	return v, nil
}

// ReadArray reads exactly n bytes into a newly allocated slice owned by the
// caller.
func (r *Reader) ReadArray(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative read length %d", ddserr.ErrInvalidData, n)
	}
	if err := r.require(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.data[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

// PeekArray reads n bytes without advancing the cursor.
func (r *Reader) PeekArray(n int) ([]byte, error) {
	if err := r.require(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.data[r.pos:r.pos+n])
	return out, nil
}

// ReadRemaining reads every byte from the cursor to the end of the buffer.
func (r *Reader) ReadRemaining() []byte {
	out := make([]byte, r.Remaining())
	copy(out, r.data[r.pos:])
	r.pos = len(r.data)
	return out
}

// Skip advances the cursor by n bytes without copying them.
func (r *Reader) Skip(n int) error {
	if err := r.require(n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

// ReaderFunc is a generic decoder function shape: given a Reader positioned at a
// record's start, produce a decoded value of type T. This is the
// function-shaped analogue of the source's Readable<T> capability described
// in the design notes.
type ReaderFunc[T any] func(*Reader) (T, error)

// ReaderWithParamsFunc is the parameterized analogue of ReaderFunc, used
// where a decoder needs externally supplied counts (e.g. the number of
// events per type declared in Application Identification).
type ReaderWithParamsFunc[T any, P any] func(*Reader, P) (T, error)
