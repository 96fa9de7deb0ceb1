package crypto

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"
)

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		t.Fatal(err)
	}
	return b
}

func TestSealOpenAESGCM_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"empty", []byte{}},
		{"simple", []byte("hello world")},
		{"binary", []byte{0x00, 0xff, 0x7f, 0x80}},
		{"large", make([]byte, 10000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := randomBytes(t, SessionKeySize)
			nonce := randomBytes(t, NonceSize)

			ciphertext, tag, err := sealAESGCM(key, nonce, tt.plaintext)
			if err != nil {
				t.Fatalf("sealAESGCM() error = %v", err)
			}
			if len(ciphertext) != len(tt.plaintext) {
				t.Errorf("ciphertext length = %d, want %d", len(ciphertext), len(tt.plaintext))
			}
			if len(tag) != TagSize {
				t.Errorf("tag length = %d, want %d", len(tag), TagSize)
			}

			plaintext, err := openAESGCM(key, nonce, ciphertext, tag)
			if err != nil {
				t.Fatalf("openAESGCM() error = %v", err)
			}
			if !bytes.Equal(plaintext, tt.plaintext) {
				t.Errorf("plaintext = %v, want %v", plaintext, tt.plaintext)
			}
		})
	}
}

func TestSealAESGCM_InvalidSizes(t *testing.T) {
	plaintext := []byte("test")

	if _, _, err := sealAESGCM(make([]byte, 16), make([]byte, NonceSize), plaintext); !errors.Is(err, ErrInvalidKeySize) {
		t.Errorf("short key: error = %v, want ErrInvalidKeySize", err)
	}
	if _, _, err := sealAESGCM(make([]byte, SessionKeySize), make([]byte, 8), plaintext); !errors.Is(err, ErrInvalidNonceSize) {
		t.Errorf("short nonce: error = %v, want ErrInvalidNonceSize", err)
	}
}

func TestOpenAESGCM_Tampered(t *testing.T) {
	key := randomBytes(t, SessionKeySize)
	nonce := randomBytes(t, NonceSize)
	ciphertext, tag, err := sealAESGCM(key, nonce, []byte("sensitive data"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		mutate func(ct, tag []byte) (c, g []byte)
	}{
		{"flipped ciphertext bit", func(ct, tag []byte) ([]byte, []byte) {
			ct = append([]byte(nil), ct...)
			ct[len(ct)/2] ^= 0x01
			return ct, tag
		}},
		{"flipped tag bit", func(ct, tag []byte) ([]byte, []byte) {
			tag = append([]byte(nil), tag...)
			tag[0] ^= 0x80
			return ct, tag
		}},
		{"truncated tag", func(ct, tag []byte) ([]byte, []byte) {
			return ct, tag[:TagSize-1]
		}},
		{"oversized tag", func(ct, tag []byte) ([]byte, []byte) {
			return ct, append(append([]byte(nil), tag...), 0x00)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, tg := tt.mutate(ciphertext, tag)
			if _, err := openAESGCM(key, nonce, ct, tg); !errors.Is(err, ErrAuthenticationFailed) {
				t.Errorf("openAESGCM() error = %v, want ErrAuthenticationFailed", err)
			}
		})
	}
}

func TestOpenAESGCM_WrongKey(t *testing.T) {
	nonce := randomBytes(t, NonceSize)
	ciphertext, tag, err := sealAESGCM(randomBytes(t, SessionKeySize), nonce, []byte("payload"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := openAESGCM(randomBytes(t, SessionKeySize), nonce, ciphertext, tag); !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("openAESGCM() error = %v, want ErrAuthenticationFailed", err)
	}
}
