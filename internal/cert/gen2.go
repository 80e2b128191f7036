package cert

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/fleetcodec/tachograph-go/internal/ddserr"
	"github.com/fleetcodec/tachograph-go/internal/security"
)

// Gen2 certificate TLV tags.
//
// Binary Layout: each tag is a BER-TLV element; tag and length encodings
// follow ISO 7816-4. Tags above 0xFF are two-byte tags, as listed.
const (
	tagApplicationTemplate = 0x7F81
	tagCertificateBody     = 0x7FAE
	tagProfileID           = 0x5F19
	tagCAR                 = 0x42
	tagCHA                 = 0x5F3C
	tagExtensions          = 0x7FA9
	tagDomainParameters    = 0x06
	tagPublicPoint         = 0x86
	tagCHR                 = 0x5F20
	tagEffectiveDate       = 0x5F25
	tagExpirationDate      = 0x5F24
	tagSignature           = 0x5F37
)

// tlvElement is one decoded BER-TLV element within a Gen2 certificate.
type tlvElement struct {
	Tag   int
	Value []byte
}

// Gen2Certificate is a decoded Gen2 ECC certificate: a BER-TLV structure
// wrapping a certificate body (the signed portion) and a trailing
// signature.
//
// Binary Layout: Application-Template 0x7F81 { Certificate-Body 0x7FAE {
// Profile-ID 0x5F19, CAR 0x42, CHA 0x5F3C, public-key block { Domain-
// Parameters 0x06, Public-Point 0x86 }, CHR 0x5F20, Effective-Date 0x5F25,
// Expiration-Date 0x5F24, [Extensions 0x7FA9] }, Signature 0x5F37 }
type Gen2Certificate struct {
	// RawBody is the encoded Certificate-Body element (tag + length +
	// value), the bytes the signature is computed over.
	RawBody []byte

	ProfileID      []byte
	CAR            []byte
	CHA            []byte
	DomainParamOID string
	PublicPoint    []byte
	CHR            []byte
	EffectiveDate  []byte
	ExpirationDate []byte
	Extensions     []byte
	Signature      []byte
}

// ParseGen2Certificate walks the BER-TLV structure of a Gen2 certificate
// (a 205-byte ERCA or a CA/card certificate of the same shape) and returns
// its decoded fields without verifying its signature.
func ParseGen2Certificate(data []byte) (*Gen2Certificate, error) {
	top, err := readTLV(data)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate envelope: %w", err)
	}
	if top.Tag != tagApplicationTemplate {
		return nil, fmt.Errorf("%w: expected Application-Template tag 0x%X, got 0x%X", ddserr.ErrInvalidData, tagApplicationTemplate, top.Tag)
	}

	cert := &Gen2Certificate{}
	children, err := readTLVSequence(top.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate template children: %w", err)
	}
	for _, child := range children {
		switch child.Tag {
		case tagCertificateBody:
			cert.RawBody = encodeTLV(child)
			if err := parseCertificateBody(cert, child.Value); err != nil {
				return nil, fmt.Errorf("failed to parse certificate body: %w", err)
			}
		case tagSignature:
			cert.Signature = child.Value
		default:
			// Ignore unrecognized top-level elements; Gen2 certificates may
			// carry vendor extensions alongside the standard template.
		}
	}
	if cert.RawBody == nil {
		return nil, fmt.Errorf("%w: certificate has no Certificate-Body element", ddserr.ErrInvalidData)
	}
	return cert, nil
}

func parseCertificateBody(cert *Gen2Certificate, body []byte) error {
	elements, err := readTLVSequence(body)
	if err != nil {
		return err
	}
	for _, e := range elements {
		switch e.Tag {
		case tagProfileID:
			cert.ProfileID = e.Value
		case tagCAR:
			cert.CAR = e.Value
		case tagCHA:
			cert.CHA = e.Value
		case tagDomainParameters:
			cert.DomainParamOID = oidFromBytes(e.Value)
		case tagPublicPoint:
			cert.PublicPoint = e.Value
		case tagCHR:
			cert.CHR = e.Value
		case tagEffectiveDate:
			cert.EffectiveDate = e.Value
		case tagExpirationDate:
			cert.ExpirationDate = e.Value
		case tagExtensions:
			cert.Extensions = e.Value
		}
	}
	return nil
}

// PublicKey builds the ecdsa.PublicKey a Gen2Certificate's public point
// encodes, given the curve named by its Domain-Parameters OID.
//
// Binary Layout of Public-Point (tag 0x86): 0x04 ∥ X ∥ Y, the uncompressed
// point encoding of [SEC 1].
func (c *Gen2Certificate) PublicKey() (*ecdsa.PublicKey, int, error) {
	curve, hashBits, err := security.CurveForOID(c.DomainParamOID)
	if err != nil {
		return nil, 0, err
	}
	if len(c.PublicPoint) < 1 || c.PublicPoint[0] != 0x04 {
		return nil, 0, fmt.Errorf("%w: public point is not in uncompressed form", ddserr.ErrInvalidData)
	}
	coord := (len(c.PublicPoint) - 1) / 2
	x := new(big.Int).SetBytes(c.PublicPoint[1 : 1+coord])
	y := new(big.Int).SetBytes(c.PublicPoint[1+coord:])
	return &ecdsa.PublicKey{Curve: curve, X: x, Y: y}, hashBits, nil
}

// VerifyGen2Certificate checks cert's signature against issuer's public
// key. The signature is over RawBody (the Certificate-Body element
// including its tag and length), and is itself r ∥ s in plain format per
// [TR-03111], each component sized to the curve's field width.
//
// This step is intentionally unimplemented: CSM_61's exact point encoding
// and the domain parameter tables needed to resolve every possible OID
// require Annex 1C, which is not available in this module. Callers receive
// ErrNotImplemented rather than a silent pass.
func VerifyGen2Certificate(cert *Gen2Certificate, issuer *Gen2Certificate) error {
	return fmt.Errorf("%w: Gen2 ECDSA certificate signature verification", ddserr.ErrNotImplemented)
}

func oidFromBytes(b []byte) string {
	// Domain-Parameters carries the curve OID as a BER-encoded OBJECT
	// IDENTIFIER value (without its own tag/length, already stripped by
	// the TLV reader).
	if len(b) == 0 {
		return ""
	}
	oid := fmt.Sprintf("%d.%d", b[0]/40, b[0]%40)
	var value uint64
	for _, c := range b[1:] {
		value = value<<7 | uint64(c&0x7F)
		if c&0x80 == 0 {
			oid += fmt.Sprintf(".%d", value)
			value = 0
		}
	}
	return oid
}
