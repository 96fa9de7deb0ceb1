package keys

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"io"
)

// Modulus size bounds, in bits.
const (
	// MinModulusBits is the smallest accepted RSA modulus size.
	MinModulusBits = 2048
	// DefaultModulusBits is the modulus size used when callers do not
	// choose one.
	DefaultModulusBits = 4096
)

// randReader is the entropy source used for key generation. It defaults
// to crypto/rand and can be overridden for testing.
var randReader io.Reader = rand.Reader

// SetRandReaderForTesting sets the random reader used by Generate.
// Returns a function to restore the original reader. Since this package
// is internal, this hook cannot be reached by external code.
func SetRandReaderForTesting(r io.Reader) func() {
	original := randReader
	randReader = r
	return func() { randReader = original }
}

// KeyPair is a generated RSA key pair. Only the encoded text forms of
// these keys ever cross the library boundary.
type KeyPair struct {
	Public  *rsa.PublicKey
	Private *rsa.PrivateKey
}

// Generate creates an RSA key pair with the given modulus size. The
// public exponent is 65537 and primality testing is handled by the
// underlying generator.
func Generate(bits int) (*KeyPair, error) {
	if bits < MinModulusBits {
		return nil, fmt.Errorf("%w: %d bits, minimum %d", ErrModulusTooSmall, bits, MinModulusBits)
	}

	priv, err := rsa.GenerateKey(randReader, bits)
	if err != nil {
		return nil, fmt.Errorf("generate RSA key: %w", err)
	}

	return &KeyPair{Public: &priv.PublicKey, Private: priv}, nil
}

// PublicBlockSize returns the RSA block length in bytes for a public key,
// which is also the wrapped session key block length.
func PublicBlockSize(key *rsa.PublicKey) int {
	return (key.N.BitLen() + 7) / 8
}

// PrivateBlockSize returns the RSA block length in bytes for a private key.
func PrivateBlockSize(key *rsa.PrivateKey) int {
	return PublicBlockSize(&key.PublicKey)
}
