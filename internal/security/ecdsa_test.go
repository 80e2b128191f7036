package security

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"testing"
)

func TestVerifyECDSARoundTrip(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("ecdsa.GenerateKey() error = %v", err)
	}
	data := []byte("gen2 certificate body")
	hash := sha256.Sum256(data)
	r, s, err := ecdsa.Sign(rand.Reader, key, hash[:])
	if err != nil {
		t.Fatalf("ecdsa.Sign() error = %v", err)
	}
	if err := VerifyECDSA(data, r, s, &key.PublicKey, 256); err != nil {
		t.Fatalf("VerifyECDSA() error = %v", err)
	}
}

func TestVerifyECDSARejectsTamperedData(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("ecdsa.GenerateKey() error = %v", err)
	}
	data := []byte("gen2 certificate body")
	hash := sha256.Sum256(data)
	r, s, err := ecdsa.Sign(rand.Reader, key, hash[:])
	if err != nil {
		t.Fatalf("ecdsa.Sign() error = %v", err)
	}
	if err := VerifyECDSA([]byte("tampered body"), r, s, &key.PublicKey, 256); err == nil {
		t.Fatal("expected verification failure for tampered data")
	}
}

func TestCurveForOIDUnsupportedBrainpool(t *testing.T) {
	if _, _, err := CurveForOID("1.3.36.3.3.2.8.1.1.7"); err == nil {
		t.Fatal("expected error for brainpoolP256r1 OID, which this module does not support")
	}
}

func TestCurveForOIDKnownNISTCurves(t *testing.T) {
	for _, oid := range []string{"1.2.840.10045.3.1.7", "1.3.132.0.34", "1.3.132.0.35"} {
		if _, _, err := CurveForOID(oid); err != nil {
			t.Errorf("CurveForOID(%q) error = %v", oid, err)
		}
	}
}
