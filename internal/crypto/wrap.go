package crypto

import (
	stdcrypto "crypto"
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"hash"

	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"
)

// DefaultOAEPHash is the OAEP hash used when callers do not choose one.
// SHA-1 is a legacy-interoperability default, not a security
// recommendation; see the package documentation.
const DefaultOAEPHash = stdcrypto.SHA1

// Wrapper wraps and unwraps per-message session keys. Implementations
// produce fixed-length blocks so the wire layout can account for them.
type Wrapper interface {
	// Wrap encrypts a session key for the holder of the matching
	// private key.
	Wrap(sessionKey []byte) ([]byte, error)

	// Unwrap recovers a session key from a wrapped block.
	Unwrap(block []byte) ([]byte, error)

	// BlockSize is the fixed byte length of wrapped blocks.
	BlockSize() int
}

// OAEPWrapper wraps session keys with RSA-OAEP. Exactly one of Public or
// Private is required depending on direction; Hash zero means
// DefaultOAEPHash.
type OAEPWrapper struct {
	Public  *rsa.PublicKey
	Private *rsa.PrivateKey
	Hash    stdcrypto.Hash
}

func (w *OAEPWrapper) hash() hash.Hash {
	h := w.Hash
	if h == 0 {
		h = DefaultOAEPHash
	}
	return h.New()
}

// BlockSize returns the RSA block length of whichever key the wrapper
// holds.
func (w *OAEPWrapper) BlockSize() int {
	if w.Public != nil {
		return (w.Public.N.BitLen() + 7) / 8
	}
	return (w.Private.N.BitLen() + 7) / 8
}

// Wrap encrypts the session key with RSA-OAEP under the public key.
func (w *OAEPWrapper) Wrap(sessionKey []byte) ([]byte, error) {
	if w.Public == nil {
		return nil, ErrMissingPublicKey
	}
	if len(sessionKey) != SessionKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSessionKeySize, len(sessionKey), SessionKeySize)
	}

	block, err := rsa.EncryptOAEP(w.hash(), rand.Reader, w.Public, sessionKey, nil)
	if err != nil {
		return nil, fmt.Errorf("RSA-OAEP wrap: %w", err)
	}
	return block, nil
}

// Unwrap decrypts a wrapped block and validates the recovered session
// key's length.
func (w *OAEPWrapper) Unwrap(block []byte) ([]byte, error) {
	if w.Private == nil {
		return nil, ErrMissingPrivateKey
	}
	if len(block) != w.BlockSize() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidBlockSize, len(block), w.BlockSize())
	}

	sessionKey, err := rsa.DecryptOAEP(w.hash(), rand.Reader, w.Private, block, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: RSA-OAEP: %v", ErrUnwrapFailed, err)
	}
	if len(sessionKey) != SessionKeySize {
		return nil, fmt.Errorf("%w: unwrapped %d bytes, want %d", ErrUnwrapFailed, len(sessionKey), SessionKeySize)
	}
	return sessionKey, nil
}
