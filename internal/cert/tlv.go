package cert

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/ddserr"
)

// readTLV reads one BER-TLV element (ISO 7816-4 tag/length encoding) from
// the start of data and returns it; any bytes after the element are
// ignored.
func readTLV(data []byte) (tlvElement, error) {
	el, _, err := readTLVAt(data)
	return el, err
}

// readTLVSequence reads a concatenation of sibling BER-TLV elements until
// data is exhausted.
func readTLVSequence(data []byte) ([]tlvElement, error) {
	var out []tlvElement
	for len(data) > 0 {
		el, n, err := readTLVAt(data)
		if err != nil {
			return nil, err
		}
		out = append(out, el)
		data = data[n:]
	}
	return out, nil
}

func readTLVAt(data []byte) (tlvElement, int, error) {
	if len(data) < 2 {
		return tlvElement{}, 0, fmt.Errorf("%w: truncated TLV tag", ddserr.ErrInputUnderflow)
	}
	tag, tagLen, err := readTag(data)
	if err != nil {
		return tlvElement{}, 0, err
	}
	rest := data[tagLen:]
	length, lenLen, err := readLength(rest)
	if err != nil {
		return tlvElement{}, 0, err
	}
	rest = rest[lenLen:]
	if len(rest) < length {
		return tlvElement{}, 0, fmt.Errorf("%w: TLV value for tag 0x%X declares %d bytes, only %d remain", ddserr.ErrInputUnderflow, tag, length, len(rest))
	}
	total := tagLen + lenLen + length
	return tlvElement{Tag: tag, Value: rest[:length]}, total, nil
}

func readTag(data []byte) (tag int, n int, err error) {
	first := data[0]
	if first&0x1F != 0x1F {
		return int(first), 1, nil
	}
	if len(data) < 2 {
		return 0, 0, fmt.Errorf("%w: truncated multi-byte TLV tag", ddserr.ErrInputUnderflow)
	}
	tag = int(first)<<8 | int(data[1])
	return tag, 2, nil
}

func readLength(data []byte) (length int, n int, err error) {
	if len(data) < 1 {
		return 0, 0, fmt.Errorf("%w: truncated TLV length", ddserr.ErrInputUnderflow)
	}
	first := data[0]
	if first&0x80 == 0 {
		return int(first), 1, nil
	}
	numBytes := int(first & 0x7F)
	if numBytes == 0 || numBytes > 4 {
		return 0, 0, fmt.Errorf("%w: unsupported TLV length form 0x%X", ddserr.ErrInvalidData, first)
	}
	if len(data) < 1+numBytes {
		return 0, 0, fmt.Errorf("%w: truncated TLV long-form length", ddserr.ErrInputUnderflow)
	}
	for i := 0; i < numBytes; i++ {
		length = length<<8 | int(data[1+i])
	}
	return length, 1 + numBytes, nil
}

func encodeTLV(el tlvElement) []byte {
	out := encodeTag(el.Tag)
	out = append(out, encodeLength(len(el.Value))...)
	out = append(out, el.Value...)
	return out
}

func encodeTag(tag int) []byte {
	if tag <= 0xFF {
		return []byte{byte(tag)}
	}
	return []byte{byte(tag >> 8), byte(tag)}
}

func encodeLength(length int) []byte {
	if length < 0x80 {
		return []byte{byte(length)}
	}
	if length <= 0xFF {
		return []byte{0x81, byte(length)}
	}
	return []byte{0x82, byte(length >> 8), byte(length)}
}
