package card

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/byteio"
	"github.com/fleetcodec/tachograph-go/internal/ddserr"
	"github.com/fleetcodec/tachograph-go/internal/hexdump"
)

// FileBlock is one TLV-decoded card file block: a file ID, the
// Gen1/Gen2 + data/signature discriminator from its appendix byte, and the
// payload (or signature) bytes.
//
// Binary Layout: fileID(2, big-endian) + appendix(1) + size(2, big-endian) + payload(size)
type FileBlock struct {
	FileID   FileID
	Appendix Appendix
	Payload  []byte

	// MissingData is set when the stream ends right after the block's
	// header although its declared size is non-zero; Payload is nil in that
	// case. A payload that is only partly present is an ErrPartialCardFile
	// error instead.
	MissingData bool
}

// RawCardFile is the full sequence of TLV blocks scanned from a card dump,
// split into the Gen1 and Gen2 subsets.
type RawCardFile struct {
	Gen1 []FileBlock
	Gen2 []FileBlock

	// TrailingNoise is a hex dump of any bytes left over at the end of the
	// stream once too few bytes remain to hold another block header. It is
	// empty when the stream ends exactly on a block boundary.
	TrailingNoise string
}

// UnmarshalRawCardFile scans data as a sequence of card file TLV blocks and
// partitions them into Gen1 and Gen2 subsets.
//
// For each block: read file_id (u16 BE), appendix (u8), size (u16 BE); if
// the stream ends right after the header and size is non-zero, keep the
// block with MissingData set; otherwise read size payload bytes. Blocks
// are deduplicated by (file_id, appendix) within a generation: with
// opts.Strict a repeat is a DuplicateCardFile error, otherwise the repeat
// is skipped and the first block kept. With opts.Strict a signature block
// (odd appendix) that is not preceded by its data block (even appendix)
// for the same file ID is a SignatureBeforeCardFile error; otherwise it is
// kept.
func (opts UnmarshalOptions) UnmarshalRawCardFile(data []byte) (*RawCardFile, error) {
	r := byteio.New(data)
	out := &RawCardFile{}
	seen := map[struct {
		gen2 bool
		id   FileID
		app  Appendix
	}]bool{}

	for !r.AtEOF() {
		if r.Remaining() < 5 {
			// A dangling partial header produces no block. Whatever is
			// left over is too short to be a block, so dump it for
			// diagnosis rather than silently discarding it.
			if r.Remaining() > 0 {
				out.TrailingNoise = hexdump.MarshalString(r.ReadRemaining())
			}
			break
		}
		idVal, err := r.ReadUint16()
		if err != nil {
			return nil, fmt.Errorf("failed to read file id: %w", err)
		}
		appByte, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("failed to read appendix: %w", err)
		}
		size, err := r.ReadUint16()
		if err != nil {
			return nil, fmt.Errorf("failed to read size: %w", err)
		}

		block := FileBlock{FileID: FileID(idVal), Appendix: Appendix(appByte)}

		if r.AtEOF() && size > 0 {
			block.MissingData = true
		} else {
			payload, err := r.ReadArray(int(size))
			if err != nil {
				return nil, fmt.Errorf("%w: failed to read payload for file 0x%04X: %v", ddserr.ErrPartialCardFile, idVal, err)
			}
			block.Payload = payload
		}

		key := struct {
			gen2 bool
			id   FileID
			app  Appendix
		}{block.Appendix.IsGen2(), block.FileID, block.Appendix}
		if seen[key] {
			if opts.Strict {
				return nil, fmt.Errorf("%w: file 0x%04X appendix %d", ddserr.ErrDuplicateCardFile, idVal, appByte)
			}
			continue
		}
		seen[key] = true

		if block.Appendix.IsSignature() {
			dataKey := key
			dataKey.app = block.Appendix - 1
			if !seen[dataKey] {
				if opts.Strict {
					return nil, fmt.Errorf("%w: file 0x%04X", ddserr.ErrSignatureBeforeData, idVal)
				}
			}
		}

		if block.Appendix.IsGen2() || gen2OnlyFiles[block.FileID] {
			out.Gen2 = append(out.Gen2, block)
		} else {
			out.Gen1 = append(out.Gen1, block)
		}
	}

	return out, nil
}

// DataAndSignature locates the data and (optional) trailing signature
// payloads for fileID within blocks: a record at index i is paired with
// a trailing signature at i+1 sharing the same file ID.
func DataAndSignature(blocks []FileBlock, fileID FileID) (data []byte, signature []byte, found bool) {
	for i, b := range blocks {
		if b.FileID != fileID || b.Appendix.IsSignature() {
			continue
		}
		data = b.Payload
		found = true
		if i+1 < len(blocks) {
			next := blocks[i+1]
			if next.FileID == fileID && next.Appendix.IsSignature() {
				signature = next.Payload
			}
		}
		return data, signature, found
	}
	return nil, nil, false
}
