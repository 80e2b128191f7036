package cert

import "testing"

// prime256v1OIDBytes is the DER content octets (tag and length already
// stripped) of OID 1.2.840.10045.3.1.7 (NIST P-256 / secp256r1).
var prime256v1OIDBytes = []byte{0x2A, 0x86, 0x48, 0xCE, 0x3D, 0x03, 0x01, 0x07}

func buildGen2Certificate() []byte {
	publicPoint := make([]byte, 65)
	publicPoint[0] = 0x04
	for i := 1; i < 65; i++ {
		publicPoint[i] = byte(i)
	}

	body := append(encodeTLV(tlvElement{Tag: tagProfileID, Value: []byte{0x01}}), encodeTLV(tlvElement{Tag: tagCAR, Value: []byte("CAREF001")})...)
	body = append(body, encodeTLV(tlvElement{Tag: tagCHA, Value: []byte("CHA00001")})...)
	body = append(body, encodeTLV(tlvElement{Tag: tagDomainParameters, Value: prime256v1OIDBytes})...)
	body = append(body, encodeTLV(tlvElement{Tag: tagPublicPoint, Value: publicPoint})...)
	body = append(body, encodeTLV(tlvElement{Tag: tagCHR, Value: []byte("CHR00001")})...)
	body = append(body, encodeTLV(tlvElement{Tag: tagEffectiveDate, Value: []byte{0x24, 0x01, 0x01}})...)
	body = append(body, encodeTLV(tlvElement{Tag: tagExpirationDate, Value: []byte{0x34, 0x01, 0x01}})...)

	template := encodeTLV(tlvElement{Tag: tagCertificateBody, Value: body})
	template = append(template, encodeTLV(tlvElement{Tag: tagSignature, Value: make([]byte, 64)})...)

	return encodeTLV(tlvElement{Tag: tagApplicationTemplate, Value: template})
}

func TestParseGen2CertificateFields(t *testing.T) {
	cert, err := ParseGen2Certificate(buildGen2Certificate())
	if err != nil {
		t.Fatalf("ParseGen2Certificate() error = %v", err)
	}
	if string(cert.CAR) != "CAREF001" {
		t.Errorf("CAR = %q, want CAREF001", cert.CAR)
	}
	if string(cert.CHR) != "CHR00001" {
		t.Errorf("CHR = %q, want CHR00001", cert.CHR)
	}
	if cert.DomainParamOID != "1.2.840.10045.3.1.7" {
		t.Errorf("DomainParamOID = %q, want 1.2.840.10045.3.1.7", cert.DomainParamOID)
	}
	if len(cert.Signature) != 64 {
		t.Errorf("len(Signature) = %d, want 64", len(cert.Signature))
	}
	if len(cert.RawBody) == 0 {
		t.Error("RawBody is empty")
	}
}

func TestGen2CertificatePublicKeyResolvesCurve(t *testing.T) {
	cert, err := ParseGen2Certificate(buildGen2Certificate())
	if err != nil {
		t.Fatalf("ParseGen2Certificate() error = %v", err)
	}
	pub, hashBits, err := cert.PublicKey()
	if err != nil {
		t.Fatalf("PublicKey() error = %v", err)
	}
	if hashBits != 256 {
		t.Errorf("hashBits = %d, want 256", hashBits)
	}
	if pub.X.Sign() == 0 || pub.Y.Sign() == 0 {
		t.Error("expected non-zero public point coordinates")
	}
}

func TestVerifyGen2CertificateNotImplemented(t *testing.T) {
	cert, err := ParseGen2Certificate(buildGen2Certificate())
	if err != nil {
		t.Fatalf("ParseGen2Certificate() error = %v", err)
	}
	if err := VerifyGen2Certificate(cert, cert); err == nil {
		t.Fatal("expected ErrNotImplemented for Gen2 ECDSA verification")
	}
}
