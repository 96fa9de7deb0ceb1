package crypto

import (
	"crypto/rand"
	"fmt"

	"github.com/shufflebox/shufflebox-go/internal/wire"
)

// Encrypt runs the envelope pipeline: fresh session key and nonce, wrap,
// AEAD seal, then framing per the wire format. No state survives the
// call; the session key and nonce are discarded with the stack.
func Encrypt(payload []byte, w Wrapper, format *wire.Format) ([]byte, error) {
	sessionKey := make([]byte, SessionKeySize)
	if _, err := rand.Read(sessionKey); err != nil {
		return nil, fmt.Errorf("generate session key: %w", err)
	}
	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	block, err := w.Wrap(sessionKey)
	if err != nil {
		return nil, fmt.Errorf("wrap session key: %w", err)
	}

	ciphertext, tag, err := sealAESGCM(sessionKey, nonce, payload)
	if err != nil {
		return nil, fmt.Errorf("seal payload: %w", err)
	}

	return format.Pack(&wire.Components{
		SessionKeyBlock: block,
		Nonce:           nonce,
		Ciphertext:      ciphertext,
		Tag:             tag,
	}, w.BlockSize())
}

// Decrypt mirrors Encrypt: unframe, unwrap the session key, then open the
// ciphertext. The plaintext is released only after the tag authenticates.
func Decrypt(envelope []byte, w Wrapper, format *wire.Format) ([]byte, error) {
	c, err := format.Unpack(envelope, w.BlockSize())
	if err != nil {
		return nil, err
	}

	sessionKey, err := w.Unwrap(c.SessionKeyBlock)
	if err != nil {
		return nil, err
	}

	return openAESGCM(sessionKey, c.Nonce, c.Ciphertext, c.Tag)
}
