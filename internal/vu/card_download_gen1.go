package vu

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/card"
)

// CardDownload is the VU Card Download TREP payload: the raw TLV-encoded
// card file content the VU re-embeds when a driver's card data was read
// during the download session. This is the "Card embedded in VU dump"
// magic-header case. Both Gen1 and Gen2 use the same card-file TLV block
// shape, so a single decoder covers both generations.
type CardDownload struct {
	RawCardFile *card.RawCardFile
}

func (opts UnmarshalOptions) unmarshalCardDownload(payload []byte) (CardDownload, error) {
	cardOpts := card.UnmarshalOptions{UnmarshalOptions: opts.UnmarshalOptions}
	raw, err := cardOpts.UnmarshalRawCardFile(payload)
	if err != nil {
		return CardDownload{}, fmt.Errorf("failed to read embedded card file: %w", err)
	}
	return CardDownload{RawCardFile: raw}, nil
}
