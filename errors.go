package shufflebox

import (
	"errors"
	"fmt"

	"github.com/shufflebox/shufflebox-go/internal/crypto"
	"github.com/shufflebox/shufflebox-go/internal/keys"
	"github.com/shufflebox/shufflebox-go/internal/wire"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrKeyGeneration is returned when key pair generation fails.
	ErrKeyGeneration = errors.New("key generation failed")

	// ErrKeyDecode is returned when key text or a wrapped session key
	// cannot be decoded.
	ErrKeyDecode = errors.New("key decode failed")

	// ErrBadFormat is returned for malformed format descriptors and for
	// envelopes that do not match their format's layout.
	ErrBadFormat = errors.New("bad wire format")

	// ErrAuthentication is returned when an envelope's authentication
	// tag does not verify.
	ErrAuthentication = errors.New("envelope authentication failed")

	// ErrEncrypt is returned when an underlying encryption primitive
	// fails.
	ErrEncrypt = errors.New("encryption failed")

	// ErrDecrypt is returned when an underlying decryption primitive
	// fails.
	ErrDecrypt = errors.New("decryption failed")
)

// ShuffleboxError is implemented by all library errors.
type ShuffleboxError interface {
	error
	ShuffleboxError() // marker method
}

// KeyGenerationError indicates that a key pair could not be generated,
// such as a modulus size below the accepted minimum.
type KeyGenerationError struct {
	Bits int
	Err  error
}

func (e *KeyGenerationError) Error() string {
	if e.Bits > 0 {
		return fmt.Sprintf("key generation failed for %d-bit modulus: %v", e.Bits, e.Err)
	}
	return fmt.Sprintf("key generation failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *KeyGenerationError) Unwrap() error { return e.Err }

// Is implements errors.Is for sentinel error matching.
func (e *KeyGenerationError) Is(target error) bool { return target == ErrKeyGeneration }

// ShuffleboxError implements the ShuffleboxError interface.
func (e *KeyGenerationError) ShuffleboxError() {}

// KeyDecodeError indicates malformed key text, a malformed key
// structure, or a session key block that did not unwrap to a valid key.
type KeyDecodeError struct {
	Err error
}

func (e *KeyDecodeError) Error() string {
	return fmt.Sprintf("key decode failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *KeyDecodeError) Unwrap() error { return e.Err }

// Is implements errors.Is for sentinel error matching.
func (e *KeyDecodeError) Is(target error) bool { return target == ErrKeyDecode }

// ShuffleboxError implements the ShuffleboxError interface.
func (e *KeyDecodeError) ShuffleboxError() {}

// FormatError indicates a malformed format descriptor, an invalid format
// construction, or an envelope that does not match the format used to
// unpack it.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *FormatError) Unwrap() error { return e.Err }

// Is implements errors.Is for sentinel error matching.
func (e *FormatError) Is(target error) bool { return target == ErrBadFormat }

// ShuffleboxError implements the ShuffleboxError interface.
func (e *FormatError) ShuffleboxError() {}

// AuthenticationError indicates potential tampering: the envelope's tag
// did not authenticate the ciphertext. No plaintext is ever returned
// alongside this error.
type AuthenticationError struct{}

func (e *AuthenticationError) Error() string {
	return "envelope authentication failed: tag mismatch"
}

// Is implements errors.Is for sentinel error matching.
func (e *AuthenticationError) Is(target error) bool { return target == ErrAuthentication }

// ShuffleboxError implements the ShuffleboxError interface.
func (e *AuthenticationError) ShuffleboxError() {}

// EncryptionError wraps a primitive-level failure during encryption.
type EncryptionError struct {
	Err error
}

func (e *EncryptionError) Error() string {
	return fmt.Sprintf("encryption failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *EncryptionError) Unwrap() error { return e.Err }

// Is implements errors.Is for sentinel error matching.
func (e *EncryptionError) Is(target error) bool { return target == ErrEncrypt }

// ShuffleboxError implements the ShuffleboxError interface.
func (e *EncryptionError) ShuffleboxError() {}

// DecryptionError wraps a primitive-level failure during decryption.
type DecryptionError struct {
	Err error
}

func (e *DecryptionError) Error() string {
	return fmt.Sprintf("decryption failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DecryptionError) Unwrap() error { return e.Err }

// Is implements errors.Is for sentinel error matching.
func (e *DecryptionError) Is(target error) bool { return target == ErrDecrypt }

// ShuffleboxError implements the ShuffleboxError interface.
func (e *DecryptionError) ShuffleboxError() {}

// wireErrors lists every sentinel the wire package can fail with, so the
// facade can map them all onto FormatError.
var wireErrors = []error{
	wire.ErrDescriptorTooShort,
	wire.ErrUnsupportedVersion,
	wire.ErrComponentCount,
	wire.ErrDescriptorLength,
	wire.ErrUnknownKind,
	wire.ErrDuplicateKind,
	wire.ErrMissingKind,
	wire.ErrPaddingRange,
	wire.ErrComponentSize,
	wire.ErrEnvelopeSize,
	wire.ErrLayoutMismatch,
}

func isWireError(err error) bool {
	for _, sentinel := range wireErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// keyDecodeErrors lists internal errors that signal an undecodable key
// rather than a primitive failure.
var keyDecodeErrors = []error{
	keys.ErrMalformedKey,
	keys.ErrUnsupportedKeyVersion,
	keys.ErrUnexpectedAlgorithm,
	keys.ErrZeroComponent,
	keys.ErrInvalidKey,
	keys.ErrUnsupportedKey,
	keys.ErrInvalidKeyText,
	crypto.ErrInvalidKEMKeyText,
	crypto.ErrInvalidKEMKeySize,
	crypto.ErrUnwrapFailed,
}

func isKeyDecodeError(err error) bool {
	for _, sentinel := range keyDecodeErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// wrapEncryptError converts internal errors from the encrypt pipeline to
// public errors so that errors.Is() checks work correctly.
func wrapEncryptError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case isWireError(err):
		return &FormatError{Err: err}
	case isKeyDecodeError(err):
		return &KeyDecodeError{Err: err}
	default:
		return &EncryptionError{Err: err}
	}
}

// wrapDecryptError converts internal errors from the decrypt pipeline to
// public errors.
func wrapDecryptError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, crypto.ErrAuthenticationFailed):
		return &AuthenticationError{}
	case isWireError(err):
		return &FormatError{Err: err}
	case isKeyDecodeError(err):
		return &KeyDecodeError{Err: err}
	default:
		return &DecryptionError{Err: err}
	}
}
