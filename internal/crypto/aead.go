package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// sealAESGCM encrypts plaintext with AES-256-GCM and empty associated
// data, returning the ciphertext and the 16-byte tag separately.
func sealAESGCM(key, nonce, plaintext []byte) (ciphertext, tag []byte, err error) {
	aesGCM, err := newGCM(key, nonce)
	if err != nil {
		return nil, nil, err
	}

	sealed := aesGCM.Seal(nil, nonce, plaintext, nil)
	split := len(sealed) - TagSize
	return sealed[:split], sealed[split:], nil
}

// openAESGCM authenticates ciphertext against tag and decrypts it. The
// tag comparison happens inside GCM in constant time before any plaintext
// is released; a wrong-length tag short-circuits to failure.
func openAESGCM(key, nonce, ciphertext, tag []byte) ([]byte, error) {
	if len(tag) != TagSize {
		return nil, ErrAuthenticationFailed
	}

	aesGCM, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := aesGCM.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}

func newGCM(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != SessionKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), SessionKeySize)
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), NonceSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	return cipher.NewGCM(block)
}
