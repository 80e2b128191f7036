// Package security implements the raw cryptographic primitives used by the
// certificate chain verifier: RSA signature recovery for Gen1 and ECDSA
// verification for Gen2, plus the PKCS#1 v1.5 check used for VU data
// downloads.
package security

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha1"
	"fmt"
	"math/big"
)

// RSAPublicKey is a bare RSA public key, modeled as modulus and exponent
// big integers rather than crypto/rsa.PublicKey so that Gen1's raw
// (non-PKCS#1) signature recovery step can operate on it directly.
type RSAPublicKey struct {
	Modulus  *big.Int
	Exponent *big.Int
}

// RecoverRSA performs the raw RSA operation `signature^e mod n` and returns
// the recovered block as a big-endian byte slice exactly ModulusSize bytes
// long, per the Gen1 certificate verify step. This is not PKCS#1 v1.5
// verification: the tachograph's self-certifying scheme defines its own
// envelope format (0x6A ... 0xBC) over the recovered bytes.
func RecoverRSA(signature []byte, pub RSAPublicKey) ([]byte, error) {
	if pub.Modulus == nil || pub.Exponent == nil {
		return nil, fmt.Errorf("rsa public key is incomplete")
	}
	modulusSize := (pub.Modulus.BitLen() + 7) / 8
	sigInt := new(big.Int).SetBytes(signature)
	if sigInt.Cmp(pub.Modulus) >= 0 {
		return nil, fmt.Errorf("signature is not smaller than modulus")
	}
	recovered := new(big.Int).Exp(sigInt, pub.Exponent, pub.Modulus)
	out := make([]byte, modulusSize)
	recovered.FillBytes(out)
	return out, nil
}

// VerifyDataSignaturePKCS1v15SHA1 verifies a Gen1 VU data-block signature:
// standard PKCS#1 v1.5 over the SHA-1 digest of data, per Appendix 11
// section 6 (CSM_034). This is distinct from RecoverRSA, which implements
// the certificate chain's raw-RSA envelope rather than PKCS#1 padding.
func VerifyDataSignaturePKCS1v15SHA1(data, signature []byte, pub RSAPublicKey) error {
	if pub.Modulus == nil || pub.Exponent == nil {
		return fmt.Errorf("rsa public key is incomplete")
	}
	if pub.Exponent.BitLen() > 31 {
		return fmt.Errorf("rsa exponent too large: %d bits", pub.Exponent.BitLen())
	}
	pk := &rsa.PublicKey{N: pub.Modulus, E: int(pub.Exponent.Int64())}
	hash := sha1.Sum(data)
	if err := rsa.VerifyPKCS1v15(pk, crypto.SHA1, hash[:], signature); err != nil {
		return fmt.Errorf("pkcs1v15 signature verification failed: %w", err)
	}
	return nil
}
