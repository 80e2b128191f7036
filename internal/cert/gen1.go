// Package cert reconstructs and verifies the Gen1 and Gen2 certificate
// chains used to authenticate card and vehicle unit data, and aggregates
// the result of verifying a card's signed files against that chain.
package cert

import (
	"crypto/sha1"
	"fmt"

	"github.com/fleetcodec/tachograph-go/internal/ddserr"
	"github.com/fleetcodec/tachograph-go/internal/security"
)

// ecpkLen is the length of an externally-provided European Root Certificate
// (ERCA) public key blob for the Gen1 chain.
const ecpkLen = 144

// gen1CertLen is the length of a self-contained Gen1 certificate
// (CA certificate or card certificate).
const gen1CertLen = 194

// ECPK is the Gen1 European Root Certificate public key: the root of trust
// for the RSA certificate chain, provided externally (it is not itself
// signed by anything in the chain).
//
// Binary Layout (144 bytes):
//   - Certificate Holder Reference (8 bytes)
//   - RSA public key (136 bytes): modulus (128 bytes) + exponent (8 bytes)
type ECPK struct {
	HolderReference []byte
	PublicKey       security.RSAPublicKey
}

// UnmarshalECPK decodes a 144-byte ERCA public key blob.
func UnmarshalECPK(data []byte) (ECPK, error) {
	if len(data) != ecpkLen {
		return ECPK{}, fmt.Errorf("%w: ECPK must be %d bytes, got %d", ddserr.ErrEmptyInputData, ecpkLen, len(data))
	}
	holderRef := append([]byte(nil), data[0:8]...)
	modulus := data[8:136]
	exponent := data[136:144]
	return ECPK{
		HolderReference: holderRef,
		PublicKey: security.RSAPublicKey{
			Modulus:  bytesToBigInt(modulus),
			Exponent: bytesToBigInt(exponent),
		},
	}, nil
}

// Gen1Certificate is a self-contained 194-byte RSA certificate: a CA
// certificate (signed by the ERCA) or a card certificate (signed by a CA
// certificate).
//
// Binary Layout (194 bytes):
//   - Signature (128 bytes)
//   - Public key remainder (58 bytes)
//   - CA reference (8 bytes)
type Gen1Certificate struct {
	Signature          []byte
	PublicKeyRemainder []byte
	CAReference        []byte
	EndOfValidity      uint32
	HolderReference    []byte
	HolderPublicKey    security.RSAPublicKey
}

// UnmarshalGen1Certificate decodes a 194-byte Gen1 certificate's envelope
// fields without verifying its signature.
func UnmarshalGen1Certificate(data []byte) (Gen1Certificate, error) {
	if len(data) != gen1CertLen {
		return Gen1Certificate{}, fmt.Errorf("%w: Gen1 certificate must be %d bytes, got %d", ddserr.ErrEmptyInputData, gen1CertLen, len(data))
	}
	return Gen1Certificate{
		Signature:          append([]byte(nil), data[0:128]...),
		PublicKeyRemainder: append([]byte(nil), data[128:186]...),
		CAReference:        append([]byte(nil), data[186:194]...),
	}, nil
}

// VerifyGen1Certificate recovers and checks cert's raw-RSA envelope against
// issuer's public key, and on success fills in cert's end-of-validity,
// holder reference, and holder public key fields.
//
// Verify step: perf = signature^e mod n. The recovered block must begin
// with 0x6A and end with 0xBC. cr (106 bytes) is positions 1..107 and h (20
// bytes, SHA-1) is positions 107..127; SHA-1(cr ∥ public-key-remainder)
// must equal h. The 164-byte concatenation cr ∥ public-key-remainder then
// yields end-of-validity (bytes 16..20, TimeReal), holder-reference (bytes
// 20..28), and the holder's RSA public key (bytes 28..164).
func VerifyGen1Certificate(cert *Gen1Certificate, issuer security.RSAPublicKey) error {
	recovered, err := security.RecoverRSA(cert.Signature, issuer)
	if err != nil {
		return fmt.Errorf("%w: failed to recover certificate envelope: %v", ddserr.ErrVerify, err)
	}
	if len(recovered) != 128 {
		return fmt.Errorf("%w: recovered envelope has unexpected length %d", ddserr.ErrVerify, len(recovered))
	}
	if recovered[0] != 0x6A {
		return fmt.Errorf("%w: recovered envelope does not begin with 0x6A", ddserr.ErrVerify)
	}
	if recovered[127] != 0xBC {
		return fmt.Errorf("%w: recovered envelope does not end with 0xBC", ddserr.ErrVerify)
	}
	cr := recovered[1:107]
	h := recovered[107:127]

	check := sha1.New()
	check.Write(cr)
	check.Write(cert.PublicKeyRemainder)
	sum := check.Sum(nil)
	if !bytesEqual(sum, h) {
		return fmt.Errorf("%w: certificate hash mismatch", ddserr.ErrVerify)
	}

	payload := make([]byte, 0, 164)
	payload = append(payload, cr...)
	payload = append(payload, cert.PublicKeyRemainder...)

	cert.EndOfValidity = uint32(payload[16])<<24 | uint32(payload[17])<<16 | uint32(payload[18])<<8 | uint32(payload[19])
	cert.HolderReference = append([]byte(nil), payload[20:28]...)
	modulus := payload[28:156]
	exponent := payload[156:164]
	cert.HolderPublicKey = security.RSAPublicKey{
		Modulus:  bytesToBigInt(modulus),
		Exponent: bytesToBigInt(exponent),
	}
	return nil
}

// VerifyGen1Chain reconstructs and verifies the full Gen1 chain
// ECPK → caCert → cardCert, and requires holder-reference linkage between
// consecutive links: each certificate's holder-reference must equal the
// CA-reference of the certificate it signs.
func VerifyGen1Chain(erca ECPK, caCertData, cardCertData []byte) (*Gen1Certificate, error) {
	caCert, err := UnmarshalGen1Certificate(caCertData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode CA certificate: %w", err)
	}
	if err := VerifyGen1Certificate(&caCert, erca.PublicKey); err != nil {
		return nil, fmt.Errorf("failed to verify CA certificate: %w", err)
	}
	if !bytesEqual(erca.HolderReference, caCert.CAReference) {
		return nil, fmt.Errorf("%w: ERCA holder reference does not match CA certificate's CA reference", ddserr.ErrVerify)
	}

	cardCert, err := UnmarshalGen1Certificate(cardCertData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode card certificate: %w", err)
	}
	if err := VerifyGen1Certificate(&cardCert, caCert.HolderPublicKey); err != nil {
		return nil, fmt.Errorf("failed to verify card certificate: %w", err)
	}
	if !bytesEqual(caCert.HolderReference, cardCert.CAReference) {
		return nil, fmt.Errorf("%w: CA holder reference does not match card certificate's CA reference", ddserr.ErrVerify)
	}

	return &cardCert, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
