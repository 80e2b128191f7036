package tachograph

import (
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/cert"
	"github.com/fleetcodec/tachograph-go/internal/ddserr"
)

// VerifyResult is the outcome of checking a card's signed files against
// the certificate chain rooted at a European Root Certificate Authority
// (ERCA) public key.
type VerifyResult = cert.VerifyResult

// Verify checks data's card files against erca, the ERCA public key: a
// 144-byte raw RSA blob for the Gen1 chain, or a 205-byte TLV certificate
// for the Gen2 chain. Any other length is rejected immediately, per the
// ERCA key format contract.
//
// The two chains are rooted at different ERCA key formats, so erca's
// length also selects which generation of data is verified. For a
// combined card dump (both Gen1 and Gen2 file blocks present) this
// verifies only the generation matching erca's length; call Verify again
// with the other generation's ERCA key to check the other half.
func Verify(data *TachographData, erca []byte) (*VerifyResult, error) {
	if data == nil {
		return nil, fmt.Errorf("tachograph data is nil")
	}
	switch len(erca) {
	case 144:
		if data.CardGen1 == nil {
			return nil, fmt.Errorf("%w: data has no Gen1 card files to verify", ddserr.ErrVerify)
		}
		return cert.VerifyCardGen1(data.CardGen1, erca)

	case 205:
		if data.CardGen2 == nil {
			return nil, fmt.Errorf("%w: data has no Gen2 card files to verify", ddserr.ErrVerify)
		}
		return cert.VerifyCardGen2(data.CardGen2, erca)

	default:
		return nil, fmt.Errorf("%w: ERCA key must be 144 (Gen1) or 205 (Gen2) bytes, got %d", ddserr.ErrEmptyInputData, len(erca))
	}
}
