// Package card implements the Card File Assembler and the per-card-kind
// record decoders (Driver, Workshop, Control, Company; Gen1 and Gen2).
package card

import "github.com/fleetcodec/tachograph-go/internal/dd"

// UnmarshalOptions provides context for decoding binary card file data.
//
// It embeds dd.UnmarshalOptions to inherit the primitive codecs, following
// the same embedding idiom used across the module: a package's options
// struct embeds its dependency's options struct so that a single value can
// be threaded through every layer.
type UnmarshalOptions struct {
	dd.UnmarshalOptions

	// Strict controls how the assembler handles a repeated (file ID,
	// appendix) block and a signature block that precedes its data block.
	// If true, both are hard errors. If false (default), a repeat is
	// skipped and an early signature block is kept. Unrecognized file IDs
	// are accepted either way.
	Strict bool
}

func (o UnmarshalOptions) dataOpts() dd.UnmarshalOptions {
	return o.UnmarshalOptions
}
