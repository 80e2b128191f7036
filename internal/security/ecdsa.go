package security

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"math/big"
)

// CurveForOID resolves a Gen2 Domain-Parameters OID to its elliptic curve
// and the hash size CSM_50 pairs with it. Only the NIST curves are
// supported; see DESIGN.md for why Brainpool curve support is out of
// scope here.
func CurveForOID(oid string) (curve elliptic.Curve, hashBits int, err error) {
	switch oid {
	case "1.2.840.10045.3.1.7": // NIST P-256 (secp256r1)
		return elliptic.P256(), 256, nil
	case "1.3.132.0.34": // NIST P-384 (secp384r1)
		return elliptic.P384(), 384, nil
	case "1.3.132.0.35": // NIST P-521 (secp521r1)
		return elliptic.P521(), 521, nil
	default:
		return nil, 0, fmt.Errorf("unsupported or unrecognized curve OID: %s", oid)
	}
}

// VerifyECDSA verifies an ECDSA signature over data, hashing data with the
// algorithm CSM_50 pairs with hashBits (256→SHA-256, 384→SHA-384,
// 512/521→SHA-512) for the Gen2 certificate chain.
func VerifyECDSA(data []byte, r, s *big.Int, pub *ecdsa.PublicKey, hashBits int) error {
	if pub == nil {
		return fmt.Errorf("ecdsa public key is nil")
	}
	var hash []byte
	switch hashBits {
	case 256:
		h := sha256.Sum256(data)
		hash = h[:]
	case 384:
		h := sha512.Sum384(data)
		hash = h[:]
	case 512, 521:
		h := sha512.Sum512(data)
		hash = h[:]
	default:
		return fmt.Errorf("unsupported hash size for ecdsa: %d bits", hashBits)
	}
	if !ecdsa.Verify(pub, hash, r, s) {
		return fmt.Errorf("ecdsa signature verification failed")
	}
	return nil
}
