package crypto

import (
	"bytes"
	"errors"
	"testing"

	"github.com/shufflebox/shufflebox-go/internal/wire"
)

func testFormat(t *testing.T) *wire.Format {
	t.Helper()
	f, err := wire.Generate()
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestEncryptDecrypt_OAEP(t *testing.T) {
	key := testRSAPair(t)
	enc := &OAEPWrapper{Public: &key.PublicKey}
	dec := &OAEPWrapper{Private: key}
	f := testFormat(t)

	payload := []byte("Test Message")
	envelope, err := Encrypt(payload, enc, f)
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}

	got, err := Decrypt(envelope, dec, f)
	if err != nil {
		t.Fatalf("Decrypt() error = %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Decrypt() = %q, want %q", got, payload)
	}
}

func TestEncryptDecrypt_KEM(t *testing.T) {
	pubText, privText, err := GenerateKEMKeyPair()
	if err != nil {
		t.Fatal(err)
	}
	enc, err := NewKEMWrapperFromPublicText(pubText)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := NewKEMWrapperFromPrivateText(privText)
	if err != nil {
		t.Fatal(err)
	}
	f := testFormat(t)

	payload := randomBytes(t, 4096)
	envelope, err := Encrypt(payload, enc, f)
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}

	got, err := Decrypt(envelope, dec, f)
	if err != nil {
		t.Fatalf("Decrypt() error = %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Error("payload changed across encrypt/decrypt")
	}
}

func TestEncrypt_NonDeterministic(t *testing.T) {
	key := testRSAPair(t)
	enc := &OAEPWrapper{Public: &key.PublicKey}
	f := testFormat(t)

	payload := []byte("same payload")
	a, err := Encrypt(payload, enc, f)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Encrypt(payload, enc, f)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a, b) {
		t.Error("two encryptions of the same payload produced identical envelopes")
	}
}

func TestDecrypt_TruncatedEnvelope(t *testing.T) {
	key := testRSAPair(t)
	dec := &OAEPWrapper{Private: key}
	f := testFormat(t)

	if _, err := Decrypt(make([]byte, 10), dec, f); !errors.Is(err, wire.ErrEnvelopeSize) {
		t.Errorf("Decrypt() error = %v, want wire.ErrEnvelopeSize", err)
	}
}
