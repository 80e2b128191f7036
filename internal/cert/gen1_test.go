package cert

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"math/big"
	"testing"

	"github.com/fleetcodec/tachograph-go/internal/security"
)

// signGen1Envelope builds a 128-byte signature over a synthetic certificate
// payload (end-of-validity, holder-reference, holder public key, public-key
// remainder) using issuer's private key, mirroring the Gen1 certificate
// issuing process.
func signGen1Envelope(t *testing.T, issuer *rsa.PrivateKey, payload []byte, publicKeyRemainder []byte) []byte {
	t.Helper()
	cr := make([]byte, 106)
	copy(cr, payload)

	h := sha1.New()
	h.Write(cr)
	h.Write(publicKeyRemainder)
	sum := h.Sum(nil)

	block := make([]byte, 128)
	block[0] = 0x6A
	copy(block[1:107], cr)
	copy(block[107:127], sum)
	block[127] = 0xBC

	blockInt := new(big.Int).SetBytes(block)
	sigInt := new(big.Int).Exp(blockInt, issuer.D, issuer.N)
	signature := make([]byte, 128)
	sigInt.FillBytes(signature)
	return signature
}

func TestVerifyGen1CertificateRoundTrip(t *testing.T) {
	issuer, err := rsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		t.Fatalf("rsa.GenerateKey() error = %v", err)
	}
	holder, err := rsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		t.Fatalf("rsa.GenerateKey() error = %v", err)
	}

	holderModulus := make([]byte, 128)
	holder.N.FillBytes(holderModulus)
	holderExponent := make([]byte, 8)
	big.NewInt(int64(holder.E)).FillBytes(holderExponent)

	// The 164-byte reconstructed buffer is cr(106) ∥ publicKeyRemainder(58),
	// with the holder's 128-byte modulus spanning bytes 28..156 and its
	// 8-byte exponent spanning bytes 156..164.
	publicKeyRemainder := make([]byte, 58)
	copy(publicKeyRemainder[:50], holderModulus[78:128])
	copy(publicKeyRemainder[50:58], holderExponent)

	payload := make([]byte, 106)
	payload[19] = 0x01 // end-of-validity = 1
	copy(payload[20:28], []byte("CAREF001"))
	copy(payload[28:106], holderModulus[:78])

	signature := signGen1Envelope(t, issuer, payload, publicKeyRemainder)

	cert := Gen1Certificate{
		Signature:          signature,
		PublicKeyRemainder: publicKeyRemainder,
		CAReference:        []byte("CAREF001"),
	}
	issuerPub := security.RSAPublicKey{Modulus: issuer.N, Exponent: big.NewInt(int64(issuer.E))}
	if err := VerifyGen1Certificate(&cert, issuerPub); err != nil {
		t.Fatalf("VerifyGen1Certificate() error = %v", err)
	}
	if cert.EndOfValidity != 1 {
		t.Errorf("EndOfValidity = %d, want 1", cert.EndOfValidity)
	}
	if string(cert.HolderReference) != "CAREF001" {
		t.Errorf("HolderReference = %q, want %q", cert.HolderReference, "CAREF001")
	}
}

func TestVerifyGen1CertificateRejectsBadSignature(t *testing.T) {
	issuer, err := rsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		t.Fatalf("rsa.GenerateKey() error = %v", err)
	}
	cert := Gen1Certificate{
		Signature:          make([]byte, 128),
		PublicKeyRemainder: make([]byte, 58),
		CAReference:        make([]byte, 8),
	}
	issuerPub := security.RSAPublicKey{Modulus: issuer.N, Exponent: big.NewInt(int64(issuer.E))}
	if err := VerifyGen1Certificate(&cert, issuerPub); err == nil {
		t.Fatal("expected verification failure for an all-zero signature")
	}
}

func TestUnmarshalECPKRejectsWrongLength(t *testing.T) {
	if _, err := UnmarshalECPK(make([]byte, 10)); err == nil {
		t.Fatal("expected error for undersized ECPK")
	}
}
