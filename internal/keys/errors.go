package keys

import "errors"

var (
	// ErrModulusTooSmall is returned when a requested modulus size is
	// below the accepted minimum.
	ErrModulusTooSmall = errors.New("modulus size too small")

	// ErrMalformedKey is returned when a key structure cannot be parsed.
	ErrMalformedKey = errors.New("malformed key structure")

	// ErrUnsupportedKeyVersion is returned when a key structure carries a
	// nonzero version field.
	ErrUnsupportedKeyVersion = errors.New("unsupported key version")

	// ErrUnexpectedAlgorithm is returned when the algorithm identifier is
	// not rsaEncryption.
	ErrUnexpectedAlgorithm = errors.New("unexpected key algorithm")

	// ErrZeroComponent is returned when a key integer is missing, zero,
	// or negative.
	ErrZeroComponent = errors.New("zero-valued key component")

	// ErrInvalidKey is returned when a parsed key fails consistency
	// validation.
	ErrInvalidKey = errors.New("inconsistent key")

	// ErrUnsupportedKey is returned when a key cannot be encoded, such as
	// a multi-prime RSA key.
	ErrUnsupportedKey = errors.New("unsupported key")

	// ErrInvalidKeyText is returned when key text is not valid base64url.
	ErrInvalidKeyText = errors.New("invalid key text")
)
