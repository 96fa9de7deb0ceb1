package crypto

import "errors"

var (
	// ErrAuthenticationFailed is returned when the envelope's tag does
	// not authenticate the ciphertext.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidSessionKeySize is returned when a session key is not
	// exactly SessionKeySize bytes.
	ErrInvalidSessionKeySize = errors.New("invalid session key size")

	// ErrInvalidBlockSize is returned when a wrapped session key block
	// does not have the wrapper's block length.
	ErrInvalidBlockSize = errors.New("invalid session key block size")

	// ErrUnwrapFailed is returned when a session key block does not
	// unwrap to a valid session key.
	ErrUnwrapFailed = errors.New("session key unwrap failed")

	// ErrMissingPublicKey is returned when a wrapper without a public
	// key is asked to wrap.
	ErrMissingPublicKey = errors.New("wrapper has no public key")

	// ErrMissingPrivateKey is returned when a wrapper without a private
	// key is asked to unwrap.
	ErrMissingPrivateKey = errors.New("wrapper has no private key")

	// ErrInvalidKEMKeySize is returned when KEM key text decodes to the
	// wrong number of bytes.
	ErrInvalidKEMKeySize = errors.New("invalid KEM key size")

	// ErrInvalidKEMKeyText is returned when KEM key text is not valid
	// base64url.
	ErrInvalidKEMKeyText = errors.New("invalid KEM key text")
)
