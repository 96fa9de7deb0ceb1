package crypto

import (
	"bytes"
	stdcrypto "crypto"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"sync"
	"testing"
)

var (
	testRSAOnce sync.Once
	testRSAKey  *rsa.PrivateKey
	testRSAErr  error
)

func testRSAPair(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	testRSAOnce.Do(func() {
		testRSAKey, testRSAErr = rsa.GenerateKey(rand.Reader, 2048)
	})
	if testRSAErr != nil {
		t.Fatal(testRSAErr)
	}
	return testRSAKey
}

func TestOAEPWrapper_RoundTrip(t *testing.T) {
	key := testRSAPair(t)

	tests := []struct {
		name string
		hash stdcrypto.Hash
	}{
		{"default SHA-1", 0},
		{"SHA-256", stdcrypto.SHA256},
		{"SHA-512", stdcrypto.SHA512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := &OAEPWrapper{Public: &key.PublicKey, Hash: tt.hash}
			dec := &OAEPWrapper{Private: key, Hash: tt.hash}

			sessionKey := randomBytes(t, SessionKeySize)
			block, err := enc.Wrap(sessionKey)
			if err != nil {
				t.Fatalf("Wrap() error = %v", err)
			}
			if len(block) != enc.BlockSize() {
				t.Errorf("block length = %d, want %d", len(block), enc.BlockSize())
			}

			got, err := dec.Unwrap(block)
			if err != nil {
				t.Fatalf("Unwrap() error = %v", err)
			}
			if !bytes.Equal(got, sessionKey) {
				t.Error("session key changed across wrap/unwrap")
			}
		})
	}
}

func TestOAEPWrapper_HashMismatch(t *testing.T) {
	key := testRSAPair(t)
	enc := &OAEPWrapper{Public: &key.PublicKey, Hash: stdcrypto.SHA256}
	dec := &OAEPWrapper{Private: key} // SHA-1 default

	block, err := enc.Wrap(randomBytes(t, SessionKeySize))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := dec.Unwrap(block); !errors.Is(err, ErrUnwrapFailed) {
		t.Errorf("Unwrap() error = %v, want ErrUnwrapFailed", err)
	}
}

func TestOAEPWrapper_WrongKey(t *testing.T) {
	key := testRSAPair(t)
	other, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatal(err)
	}

	enc := &OAEPWrapper{Public: &key.PublicKey}
	block, err := enc.Wrap(randomBytes(t, SessionKeySize))
	if err != nil {
		t.Fatal(err)
	}

	dec := &OAEPWrapper{Private: other}
	if _, err := dec.Unwrap(block); !errors.Is(err, ErrUnwrapFailed) {
		t.Errorf("Unwrap() error = %v, want ErrUnwrapFailed", err)
	}
}

func TestOAEPWrapper_Validation(t *testing.T) {
	key := testRSAPair(t)

	enc := &OAEPWrapper{Public: &key.PublicKey}
	if _, err := enc.Wrap(make([]byte, 16)); !errors.Is(err, ErrInvalidSessionKeySize) {
		t.Errorf("short session key: error = %v, want ErrInvalidSessionKeySize", err)
	}

	dec := &OAEPWrapper{Private: key}
	if _, err := dec.Unwrap(make([]byte, 10)); !errors.Is(err, ErrInvalidBlockSize) {
		t.Errorf("short block: error = %v, want ErrInvalidBlockSize", err)
	}

	missingPub := &OAEPWrapper{Private: key}
	if _, err := missingPub.Wrap(make([]byte, SessionKeySize)); !errors.Is(err, ErrMissingPublicKey) {
		t.Errorf("Wrap without public key: error = %v, want ErrMissingPublicKey", err)
	}

	missingPriv := &OAEPWrapper{Public: &key.PublicKey}
	if _, err := missingPriv.Unwrap(make([]byte, missingPriv.BlockSize())); !errors.Is(err, ErrMissingPrivateKey) {
		t.Errorf("Unwrap without private key: error = %v, want ErrMissingPrivateKey", err)
	}
}

func TestKEMWrapper_RoundTrip(t *testing.T) {
	pubText, privText, err := GenerateKEMKeyPair()
	if err != nil {
		t.Fatalf("GenerateKEMKeyPair() error = %v", err)
	}

	enc, err := NewKEMWrapperFromPublicText(pubText)
	if err != nil {
		t.Fatalf("NewKEMWrapperFromPublicText() error = %v", err)
	}
	dec, err := NewKEMWrapperFromPrivateText(privText)
	if err != nil {
		t.Fatalf("NewKEMWrapperFromPrivateText() error = %v", err)
	}

	sessionKey := randomBytes(t, SessionKeySize)
	block, err := enc.Wrap(sessionKey)
	if err != nil {
		t.Fatalf("Wrap() error = %v", err)
	}
	if len(block) != enc.BlockSize() {
		t.Errorf("block length = %d, want %d", len(block), enc.BlockSize())
	}

	got, err := dec.Unwrap(block)
	if err != nil {
		t.Fatalf("Unwrap() error = %v", err)
	}
	if !bytes.Equal(got, sessionKey) {
		t.Error("session key changed across wrap/unwrap")
	}
}

func TestKEMWrapper_TamperedBlock(t *testing.T) {
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

	block, err := enc.Wrap(randomBytes(t, SessionKeySize))
	if err != nil {
		t.Fatal(err)
	}

	// Flip a bit in the sealed-key region; decapsulation still succeeds
	// but the inner AEAD must reject.
	block[len(block)-TagSize-1] ^= 0x01
	if _, err := dec.Unwrap(block); !errors.Is(err, ErrUnwrapFailed) {
		t.Errorf("Unwrap() error = %v, want ErrUnwrapFailed", err)
	}
}

func TestKEMWrapper_KeyTextValidation(t *testing.T) {
	if _, err := NewKEMWrapperFromPublicText("!!!not-base64!!!"); !errors.Is(err, ErrInvalidKEMKeyText) {
		t.Errorf("bad text: error = %v, want ErrInvalidKEMKeyText", err)
	}
	if _, err := NewKEMWrapperFromPublicText("AAAA"); !errors.Is(err, ErrInvalidKEMKeySize) {
		t.Errorf("short key: error = %v, want ErrInvalidKEMKeySize", err)
	}
	if _, err := NewKEMWrapperFromPrivateText("AAAA"); !errors.Is(err, ErrInvalidKEMKeySize) {
		t.Errorf("short private key: error = %v, want ErrInvalidKEMKeySize", err)
	}
}
