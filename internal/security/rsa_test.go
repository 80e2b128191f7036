package security

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"math/big"
	"testing"
)

func TestRecoverRSARoundTrip(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		t.Fatalf("rsa.GenerateKey() error = %v", err)
	}

	block := make([]byte, 128)
	block[0] = 0x6A
	block[127] = 0xBC
	for i := 1; i < 127; i++ {
		block[i] = byte(i)
	}

	blockInt := new(big.Int).SetBytes(block)
	// Raw RSA "signing" with the private exponent: signature = block^d mod n.
	sigInt := new(big.Int).Exp(blockInt, key.D, key.N)
	signature := make([]byte, 128)
	sigInt.FillBytes(signature)

	pub := RSAPublicKey{Modulus: key.N, Exponent: big.NewInt(int64(key.E))}
	recovered, err := RecoverRSA(signature, pub)
	if err != nil {
		t.Fatalf("RecoverRSA() error = %v", err)
	}
	if recovered[0] != 0x6A || recovered[127] != 0xBC {
		t.Fatalf("recovered envelope bytes = %#x .. %#x, want 0x6a .. 0xbc", recovered[0], recovered[127])
	}
	for i := 1; i < 127; i++ {
		if recovered[i] != block[i] {
			t.Fatalf("recovered[%d] = %#x, want %#x", i, recovered[i], block[i])
		}
	}
}

func TestVerifyDataSignaturePKCS1v15SHA1RoundTrip(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		t.Fatalf("rsa.GenerateKey() error = %v", err)
	}
	data := []byte("vu technical data payload")
	hashArr := sha1.Sum(data)
	signature, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA1, hashArr[:])
	if err != nil {
		t.Fatalf("rsa.SignPKCS1v15() error = %v", err)
	}
	pub := RSAPublicKey{Modulus: key.N, Exponent: big.NewInt(int64(key.E))}
	if err := VerifyDataSignaturePKCS1v15SHA1(data, signature, pub); err != nil {
		t.Fatalf("VerifyDataSignaturePKCS1v15SHA1() error = %v", err)
	}
}

func TestVerifyDataSignaturePKCS1v15SHA1RejectsTamperedData(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		t.Fatalf("rsa.GenerateKey() error = %v", err)
	}
	data := []byte("vu technical data payload")
	hashArr := sha1.Sum(data)
	signature, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA1, hashArr[:])
	if err != nil {
		t.Fatalf("rsa.SignPKCS1v15() error = %v", err)
	}
	pub := RSAPublicKey{Modulus: key.N, Exponent: big.NewInt(int64(key.E))}
	if err := VerifyDataSignaturePKCS1v15SHA1([]byte("tampered payload"), signature, pub); err == nil {
		t.Fatal("expected verification failure for tampered data")
	}
}
