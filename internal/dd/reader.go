package dd

import "github.com/fleetcodec/tachograph-go/internal/byteio"

// Reader is a local alias of byteio.Reader so that dd's decoder methods can
// be written as `func (opts UnmarshalOptions) UnmarshalFoo(r *Reader) (...)`
// without every caller importing byteio directly.
type Reader = byteio.Reader

// New constructs a Reader over data, delegating to byteio.New.
func New(data []byte) *Reader {
	return byteio.New(data)
}
