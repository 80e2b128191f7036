// Package vu implements the Vehicle Unit Response Assembler: scanning a VU
// data-download stream for Transfer-Response-Parameter (TREP) blocks and
// decoding each block's payload.
package vu

import "github.com/fleetcodec/tachograph-go/internal/dd"

// UnmarshalOptions provides context for decoding a VU stream.
type UnmarshalOptions struct {
	dd.UnmarshalOptions
}

func (o UnmarshalOptions) dataOpts() dd.UnmarshalOptions {
	return o.UnmarshalOptions
}
